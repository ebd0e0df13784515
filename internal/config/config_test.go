package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/winbridge/internal/ctxlog"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "main.hcl", `
layouter {
  enabled = true
}

window "status" {
  title  = "Status"
  x      = 2
  y      = 1
  width  = term.width / 2
  height = 6
  text   = "all good"
}

window "log" {
  title = "Log"
}
`)

	model, err := Load(testContext(), path, 80, 24)
	require.NoError(t, err)

	require.Len(t, model.Windows, 2)
	w := model.Windows[0]
	assert.Equal(t, "status", w.Name)
	assert.Equal(t, "Status", w.Title)
	assert.Equal(t, 2.0, w.X)
	assert.Equal(t, 1.0, w.Y)
	// term.width is exposed to geometry expressions.
	assert.Equal(t, 40.0, w.Width)
	assert.Equal(t, 6.0, w.Height)
	assert.Equal(t, "all good", w.Text)

	assert.True(t, model.LayouterEnabled())
}

func TestLoadDirectoryMergesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "a.hcl", `
window "a" {
  title = "A"
}
`)
	writeConfig(t, dir, "b.hcl", `
window "b" {
  title = "B"
}

layouter {
  enabled = false
}
`)

	model, err := Load(testContext(), dir, 80, 24)
	require.NoError(t, err)
	assert.Len(t, model.Windows, 2)
	assert.False(t, model.LayouterEnabled())
}

func TestLayouterEnabledDefaultsToTrue(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "main.hcl", `
window "w" {
  title = "W"
}
`)

	model, err := Load(testContext(), path, 80, 24)
	require.NoError(t, err)
	assert.Nil(t, model.Layouter)
	assert.True(t, model.LayouterEnabled())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "main.hcl", `window "broken" {`)
		_, err := Load(testContext(), path, 80, 24)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("unknown attribute", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "main.hcl", `
window "w" {
  title = "W"
  flavor = "?"
}
`)
		_, err := Load(testContext(), path, 80, 24)
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("duplicate window names", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "main.hcl", `
window "w" {
  title = "W"
}

window "w" {
  title = "W again"
}
`)
		_, err := Load(testContext(), path, 80, 24)
		assert.ErrorContains(t, err, "duplicate window name")
	})

	t.Run("negative geometry", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "main.hcl", `
window "w" {
  title = "W"
  width = -4
}
`)
		_, err := Load(testContext(), path, 80, 24)
		assert.ErrorContains(t, err, "must not be negative")
	})

	t.Run("duplicate layouter block across files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeConfig(t, dir, "a.hcl", `layouter { enabled = true }`)
		writeConfig(t, dir, "b.hcl", `layouter { enabled = false }`)
		_, err := Load(testContext(), dir, 80, 24)
		assert.ErrorContains(t, err, "duplicate layouter block")
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, err := Load(testContext(), filepath.Join(t.TempDir(), "nope.hcl"), 80, 24)
		assert.Error(t, err)
	})
}
