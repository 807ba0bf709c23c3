package core

import "strings"

// Size is the width and height of every sprite frame, in pixels.
const Size = 16

// Canvas is a fixed 16x16 grid of palette colors for a single frame.
// Cells are stored in row-major order: index = y*Size + x.
// The zero value is a fully transparent canvas ready for use.
type Canvas struct {
	cells [Size * Size]Color
}

// NewCanvas creates a new, fully transparent canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Bounds returns the rectangle covered by the canvas.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, Size, Size)
}

// InBounds returns true if (x, y) lies on the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Set paints a single cell.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.cells[y*Size+x] = col
}

// Get returns the color at the given position.
// Returns Transparent for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Color {
	if !c.InBounds(x, y) {
		return Transparent
	}
	return c.cells[y*Size+x]
}

// Clear resets every cell to Transparent.
func (c *Canvas) Clear() {
	c.cells = [Size * Size]Color{}
}

// FillRect paints every cell between the inclusive corners (x0, y0) and (x1, y1).
// The part of the range outside the canvas is clipped.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col Color) {
	c.DrawRect(Span(x0, y0, x1, y1), col)
}

// DrawRect fills a rectangular area, clipped to the canvas.
func (c *Canvas) DrawRect(r Rect, col Color) {
	r = r.Intersect(c.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.cells[y*Size+x] = col
		}
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (c *Canvas) DrawHLine(x, y, length int, col Color) {
	for i := 0; i < length; i++ {
		c.Set(x+i, y, col)
	}
}

// Count returns how many cells hold the given color.
func (c *Canvas) Count(col Color) int {
	n := 0
	for _, cell := range c.cells {
		if cell == col {
			n++
		}
	}
	return n
}

// Painted returns the number of non-transparent cells.
func (c *Canvas) Painted() int {
	return len(c.cells) - c.Count(Transparent)
}

// Equal returns true if both canvases hold the same colors.
func (c *Canvas) Equal(other *Canvas) bool {
	return c.cells == other.cells
}

// Diff returns the coordinates of cells that differ between two canvases,
// ordered by row then column.
func (c *Canvas) Diff(other *Canvas) [][2]int {
	var diffs [][2]int
	for i := range c.cells {
		if c.cells[i] != other.cells[i] {
			diffs = append(diffs, [2]int{i % Size, i / Size})
		}
	}
	return diffs
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	cp := *c
	return &cp
}

// String converts the canvas to one character per cell using Color.Char.
// Each row is joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(Size*Size + Size)

	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < Size; x++ {
			sb.WriteRune(c.cells[y*Size+x].Char())
		}
	}
	return sb.String()
}
