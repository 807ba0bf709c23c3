package core

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrCanvasSize is returned when an image is not exactly Size x Size.
	ErrCanvasSize = errors.New("core: image is not 16x16")

	// ErrUnknownColor is returned when an image holds a color outside the palette.
	ErrUnknownColor = errors.New("core: color not in palette")
)

// Image converts the canvas into a non-premultiplied RGBA image.
// NRGBA keeps translucent palette entries (smoke) byte-exact when encoded.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			img.SetNRGBA(x, y, c.cells[y*Size+x].NRGBA())
		}
	}
	return img
}

// CanvasFromImage maps a decoded image back onto the palette.
func CanvasFromImage(img image.Image) (*Canvas, error) {
	b := img.Bounds()
	if b.Dx() != Size || b.Dy() != Size {
		return nil, fmt.Errorf("%w: got %dx%d", ErrCanvasSize, b.Dx(), b.Dy())
	}

	c := NewCanvas()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			v := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			col, ok := Lookup(v)
			if !ok {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrUnknownColor, v, x, y)
			}
			c.Set(x, y, col)
		}
	}
	return c, nil
}
