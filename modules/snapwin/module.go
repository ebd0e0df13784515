// Package snapwin is the reference optional window layouter. It snaps window
// regions to a coarse grid before applying layout options, so windows stay
// aligned as the host moves them around.
package snapwin

import (
	"math"

	"github.com/vk/winbridge/internal/gui"
)

// DefaultGrid is the snap pitch, in cells, of the layouter this module
// exports.
const DefaultGrid = 2

// WindowLayouter lays out windows on a snap grid.
type WindowLayouter struct {
	// Grid is the snap pitch in cells. Zero or negative disables snapping.
	Grid float64
}

// LayoutWindow implements the window-layout call shape: snap the region's
// position to the grid, apply the option constraints, run the callback, and
// return the adjusted region.
func (l WindowLayouter) LayoutWindow(id int, region gui.Rect, fn gui.WindowFunc, title string, style gui.Style, opts ...gui.Option) gui.Rect {
	if l.Grid > 0 {
		region.X = math.Round(region.X/l.Grid) * l.Grid
		region.Y = math.Round(region.Y/l.Grid) * l.Grid
	}
	region = gui.Apply(opts).Fit(region)
	if fn != nil {
		fn(id)
	}
	return region
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name identifies the module within the host.
func (Module) Name() string { return "snapwin" }

// Exports declares the layouter under its conventional qualified type name.
func (Module) Exports() map[string]any {
	return map[string]any{
		"github.com/vk/winbridge/modules/snapwin.WindowLayouter": WindowLayouter{Grid: DefaultGrid},
	}
}
