// Package preview renders sprite canvases for display in a terminal.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duckgen/internal/core"
)

// cellWidth is how many terminal columns one pixel takes.
// Terminal cells are roughly twice as tall as they are wide.
const cellWidth = 2

// Renderer turns a canvas into a printable string.
type Renderer struct {
	color  bool
	styles map[core.Color]lipgloss.Style
	empty  lipgloss.Style
}

// NewRenderer creates a renderer. With color disabled it produces plain ASCII.
func NewRenderer(color bool) *Renderer {
	r := &Renderer{
		color:  color,
		styles: make(map[core.Color]lipgloss.Style, core.ColorCount),
		empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
	}
	for _, c := range core.AllColors() {
		r.styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return r
}

// Render draws the canvas, one row per line.
func (r *Renderer) Render(c *core.Canvas) string {
	if !r.color {
		return RenderASCII(c)
	}

	var sb strings.Builder
	for y := 0; y < core.Size; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color to keep escape codes short
		x := 0
		for x < core.Size {
			start := c.Get(x, y)
			n := 0
			for x < core.Size && c.Get(x, y) == start {
				n++
				x++
			}
			sb.WriteString(r.run(start, n))
		}
	}
	return sb.String()
}

// run renders n adjacent cells of one color.
func (r *Renderer) run(c core.Color, n int) string {
	if c.IsTransparent() {
		return r.empty.Render(strings.Repeat("·", n*cellWidth))
	}
	// Translucent smoke reads better as a lighter shade block
	block := "█"
	if c.NRGBA().A < 255 {
		block = "▒"
	}
	return r.styles[c].Render(strings.Repeat(block, n*cellWidth))
}

// RenderASCII renders one character per pixel using core.Color.Char.
func RenderASCII(c *core.Canvas) string {
	return c.String()
}

// Legend lists every palette character with its color name.
func Legend() string {
	var sb strings.Builder
	for i, c := range core.AllColors() {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteRune(c.Char())
		sb.WriteString("=")
		sb.WriteString(c.String())
	}
	return sb.String()
}
