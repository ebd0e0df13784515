// Package layout is the host's own window layout: the trusted fallback the
// capability layer degrades to, plus the lipgloss renderer that draws window
// chrome for the host.
package layout

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vk/winbridge/internal/gui"
)

// Window is the built-in layout function. It has the same shape as the
// optional layouter: fold the options into constraints, size the region,
// run the window callback, and return the adjusted region.
func Window(id int, region gui.Rect, fn gui.WindowFunc, title string, style gui.Style, opts ...gui.Option) gui.Rect {
	region = gui.Apply(opts).Fit(region)
	if fn != nil {
		fn(id)
	}
	return region
}

// Render draws the chrome for one window: the title line on top of the
// content, framed by the window style and sized to the region.
func Render(region gui.Rect, title, content string, style gui.Style) string {
	body := content
	if title != "" {
		head := style.Title.Render(title)
		body = lipgloss.JoinVertical(lipgloss.Left, head, content)
	}
	frame := style.Frame
	if region.W > 0 {
		frame = frame.Width(int(region.W))
	}
	if region.H > 0 {
		frame = frame.Height(int(region.H))
	}
	return frame.Render(body)
}
