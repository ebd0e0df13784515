// Package config loads the host's HCL configuration: the windows to lay out
// and the optional-layouter settings.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/winbridge/internal/ctxlog"
	"github.com/vk/winbridge/internal/fsutil"
)

// Window is one `window "<name>" {}` block.
type Window struct {
	Name   string  `hcl:"name,label"`
	Title  string  `hcl:"title"`
	X      float64 `hcl:"x,optional"`
	Y      float64 `hcl:"y,optional"`
	Width  float64 `hcl:"width,optional"`
	Height float64 `hcl:"height,optional"`
	Text   string  `hcl:"text,optional"`
}

// Layouter is the `layouter {}` block controlling the optional provider.
type Layouter struct {
	// Enabled loads the bundled snapwin provider into the host. The
	// capability layer itself never reads this; it resolves whatever modules
	// the host actually registered.
	Enabled bool `hcl:"enabled,optional"`
}

// Model is the decoded configuration for one host run.
type Model struct {
	Layouter *Layouter `hcl:"layouter,block"`
	Windows  []Window  `hcl:"window,block"`
}

// LayouterEnabled reports whether the optional provider should be loaded.
// The block is optional; absence means enabled.
func (m *Model) LayouterEnabled() bool {
	if m.Layouter == nil {
		return true
	}
	return m.Layouter.Enabled
}

// Load parses the HCL file or directory at path into a Model. Window
// geometry expressions may reference the terminal size through the `term`
// variable, e.g. `width = term.width / 2`.
func Load(ctx context.Context, path string, termWidth, termHeight int) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	filePaths, err := fsutil.CollectFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no .hcl configuration files found in %s", path)
	}
	logger.Debug("Found HCL configuration files.", "files", filePaths)

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"term": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(termWidth)),
				"height": cty.NumberIntVal(int64(termHeight)),
			}),
		},
	}

	parser := hclparse.NewParser()
	model := &Model{}
	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", filePath, diags)
		}

		var part Model
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &part); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", filePath, diags)
		}

		model.Windows = append(model.Windows, part.Windows...)
		if part.Layouter != nil {
			if model.Layouter != nil {
				return nil, fmt.Errorf("duplicate layouter block in %s", filePath)
			}
			model.Layouter = part.Layouter
		}
		logger.Debug("Loaded configuration file.", "file", filePath)
	}

	if err := validate(model); err != nil {
		return nil, err
	}
	logger.Info("Configuration loaded.", "windows", len(model.Windows))
	return model, nil
}

// validate enforces the invariants decoding cannot express.
func validate(m *Model) error {
	var errs []string
	seen := make(map[string]struct{})
	for _, w := range m.Windows {
		if _, dup := seen[w.Name]; dup {
			errs = append(errs, fmt.Sprintf("window '%s': duplicate window name", w.Name))
		}
		seen[w.Name] = struct{}{}
		if w.Width < 0 || w.Height < 0 {
			errs = append(errs, fmt.Sprintf("window '%s': width and height must not be negative", w.Name))
		}
		if w.Title == "" {
			errs = append(errs, fmt.Sprintf("window '%s': title must not be empty", w.Name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
