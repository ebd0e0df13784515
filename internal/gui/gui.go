// Package gui holds the shared value vocabulary of the windowing call:
// regions, window callbacks, chrome styles, and layout options. The host's
// built-in layout and any optional layouter module both speak these types,
// which is what makes exact signature matching between them possible.
package gui

import "github.com/charmbracelet/lipgloss"

// Rect is a window region in cell coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// WindowFunc draws the contents of a window. A layout function calls it once
// per layout pass with the window's id. The layout layer treats it as opaque.
type WindowFunc func(id int)

// Style describes the chrome of a window.
type Style struct {
	// Frame styles the window body (border, padding, colors).
	Frame lipgloss.Style
	// Title styles the title line inside the frame.
	Title lipgloss.Style
}

// DefaultStyle returns the chrome used when a window does not bring its own.
func DefaultStyle() Style {
	return Style{
		Frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Title: lipgloss.NewStyle().Bold(true),
	}
}

// LayoutFunc is the window-layout call shape shared by the host's built-in
// layout and optional layouter modules: lay out one window, run its callback,
// and return the (possibly adjusted) region.
type LayoutFunc func(id int, region Rect, fn WindowFunc, title string, style Style, opts ...Option) Rect

// Constraints collects the size demands a layout call makes on a region.
// The zero value constrains nothing.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64

	// ExpandWidth and ExpandHeight ask a layouter that knows its available
	// space to grow the region. Layouters without a bounds concept ignore
	// them.
	ExpandWidth  bool
	ExpandHeight bool
}

// Option adjusts layout constraints. Options are applied in order; later
// options win.
type Option func(*Constraints)

// Width pins the region width to w.
func Width(w float64) Option {
	return func(c *Constraints) { c.MinWidth, c.MaxWidth = w, w }
}

// Height pins the region height to h.
func Height(h float64) Option {
	return func(c *Constraints) { c.MinHeight, c.MaxHeight = h, h }
}

// MinWidth sets the minimum region width.
func MinWidth(w float64) Option {
	return func(c *Constraints) { c.MinWidth = w }
}

// MaxWidth sets the maximum region width.
func MaxWidth(w float64) Option {
	return func(c *Constraints) { c.MaxWidth = w }
}

// MinHeight sets the minimum region height.
func MinHeight(h float64) Option {
	return func(c *Constraints) { c.MinHeight = h }
}

// MaxHeight sets the maximum region height.
func MaxHeight(h float64) Option {
	return func(c *Constraints) { c.MaxHeight = h }
}

// ExpandWidth marks the region as horizontally greedy.
func ExpandWidth(expand bool) Option {
	return func(c *Constraints) { c.ExpandWidth = expand }
}

// ExpandHeight marks the region as vertically greedy.
func ExpandHeight(expand bool) Option {
	return func(c *Constraints) { c.ExpandHeight = expand }
}

// Apply folds a list of options into a Constraints value. Nil options are
// skipped.
func Apply(opts []Option) Constraints {
	var c Constraints
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Fit returns region resized to satisfy the constraints. Position is never
// touched; a zero min or max leaves that edge unconstrained.
func (c Constraints) Fit(region Rect) Rect {
	if c.MinWidth > 0 && region.W < c.MinWidth {
		region.W = c.MinWidth
	}
	if c.MaxWidth > 0 && region.W > c.MaxWidth {
		region.W = c.MaxWidth
	}
	if c.MinHeight > 0 && region.H < c.MinHeight {
		region.H = c.MinHeight
	}
	if c.MaxHeight > 0 && region.H > c.MaxHeight {
		region.H = c.MaxHeight
	}
	return region
}
