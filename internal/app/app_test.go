package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/winbridge/internal/registry"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestConfig(t *testing.T, path string) *Config {
	t.Helper()
	cfg, err := NewConfig(Config{
		ConfigPath: path,
		LogFormat:  "text",
		LogLevel:   "error",
	})
	require.NoError(t, err)
	return cfg
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{ConfigPath: "x.hcl"})
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.TermWidth)
	assert.Equal(t, 24, cfg.TermHeight)
}

func TestNewConfigRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	assert.ErrorContains(t, err, "ConfigPath is a required")
}

func TestRunRendersConfiguredWindows(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeConfig(t, `
window "status" {
  title  = "Status"
  x      = 3
  y      = 1
  width  = 24
  height = 4
  text   = "all good"
}
`)
	out := &bytes.Buffer{}
	host := New(out, newTestConfig(t, path))

	// --- Act ---
	err := host.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Status")
	assert.Contains(t, out.String(), "all good")
}

func TestRunWithLayouterDisabled(t *testing.T) {
	t.Parallel()

	// With the optional layouter disabled, no module is registered and the
	// built-in layout still renders every window.
	path := writeConfig(t, `
layouter {
  enabled = false
}

window "status" {
  title = "Status"
  text  = "fallback path"
}
`)
	out := &bytes.Buffer{}
	host := New(out, newTestConfig(t, path))

	require.NoError(t, host.Run(context.Background()))
	assert.Empty(t, host.registry.Modules())
	assert.Contains(t, out.String(), "fallback path")
}

func TestRunWithNoWindows(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `layouter { enabled = false }`)
	out := &bytes.Buffer{}
	host := New(out, newTestConfig(t, path))

	require.NoError(t, host.Run(context.Background()))
	assert.Empty(t, out.String())
}

func TestNewPanicsOnBadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `window "broken" {`)
	assert.Panics(t, func() {
		New(&bytes.Buffer{}, newTestConfig(t, path))
	})
}

func TestNewInjectsModulesForTests(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
window "w" {
  title = "W"
}
`)
	host := New(&bytes.Buffer{}, newTestConfig(t, path), stubModule{})

	mods := host.registry.Modules()
	require.Len(t, mods, 1)
	assert.Equal(t, "stub", mods[0].Name())
}

type stubModule struct{}

func (stubModule) Name() string            { return "stub" }
func (stubModule) Exports() map[string]any { return nil }

var _ registry.Module = stubModule{}
