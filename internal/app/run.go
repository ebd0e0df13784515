package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/winbridge/internal/ctxlog"
	"github.com/vk/winbridge/internal/gui"
	"github.com/vk/winbridge/internal/layout"
)

// Run lays out and renders every configured window. Each window goes through
// the capability invoker, which prefers the optional layouter and falls back
// to the built-in layout; either way a frame is written to the output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.model.Windows) == 0 {
		a.logger.Warn("No windows configured, nothing to render.")
		return nil
	}

	style := gui.DefaultStyle()
	for id, w := range a.model.Windows {
		region := gui.Rect{X: w.X, Y: w.Y, W: w.Width, H: w.Height}

		var body strings.Builder
		fn := gui.WindowFunc(func(int) {
			body.WriteString(w.Text)
		})

		var opts []gui.Option
		if w.Width > 0 {
			opts = append(opts, gui.Width(w.Width))
		}
		if w.Height > 0 {
			opts = append(opts, gui.Height(w.Height))
		}

		region = a.invoker.LayoutWindow(ctx, id, region, fn, w.Title, style, layout.Window, opts...)
		a.logger.Debug("Window laid out.", "window", w.Name, "x", region.X, "y", region.Y, "w", region.W, "h", region.H)

		frame := layout.Render(region, w.Title, body.String(), style)
		if _, err := fmt.Fprintln(a.outW, frame); err != nil {
			return fmt.Errorf("failed to write window '%s': %w", w.Name, err)
		}
	}

	a.logger.Info("All windows rendered.", "count", len(a.model.Windows))
	return nil
}
