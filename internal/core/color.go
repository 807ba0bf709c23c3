package core

import (
	"fmt"
	"image/color"
)

// Color is an entry in the fixed sprite palette.
// The zero value is Transparent, so a freshly allocated canvas is empty.
type Color uint8

// Palette entries, in the order they are listed in the sprite design.
const (
	Transparent Color = iota
	HeadGreen
	NeckWhite
	ChestBrown
	BodyGrey
	BeakOrange
	EyeBlack
	GroundLine
	Smoke
	StarGold
	ColorCount // Sentinel value for iteration
)

// palette maps each Color to its non-premultiplied RGBA value.
var palette = [ColorCount]color.NRGBA{
	Transparent: {R: 0, G: 0, B: 0, A: 0},
	HeadGreen:   {R: 34, G: 139, B: 34, A: 255},
	NeckWhite:   {R: 255, G: 255, B: 255, A: 255},
	ChestBrown:  {R: 139, G: 69, B: 19, A: 255},
	BodyGrey:    {R: 160, G: 160, B: 160, A: 255},
	BeakOrange:  {R: 255, G: 140, B: 0, A: 255},
	EyeBlack:    {R: 0, G: 0, B: 0, A: 255},
	GroundLine:  {R: 80, G: 80, B: 80, A: 255},
	Smoke:       {R: 210, G: 210, B: 230, A: 180},
	StarGold:    {R: 255, G: 215, B: 0, A: 255},
}

// NRGBA returns the 8-bit RGBA value of the color.
// Unknown values map to transparent.
func (c Color) NRGBA() color.NRGBA {
	if c >= ColorCount {
		return palette[Transparent]
	}
	return palette[c]
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	v := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.NRGBA().A == 0
}

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case Transparent:
		return "transparent"
	case HeadGreen:
		return "head-green"
	case NeckWhite:
		return "neck-white"
	case ChestBrown:
		return "chest-brown"
	case BodyGrey:
		return "body-grey"
	case BeakOrange:
		return "beak-orange"
	case EyeBlack:
		return "eye-black"
	case GroundLine:
		return "ground-line"
	case Smoke:
		return "smoke"
	case StarGold:
		return "star-gold"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case Transparent:
		return '.'
	case HeadGreen:
		return 'G'
	case NeckWhite:
		return 'W'
	case ChestBrown:
		return 'B'
	case BodyGrey:
		return 'g'
	case BeakOrange:
		return 'O'
	case EyeBlack:
		return 'K'
	case GroundLine:
		return 'L'
	case Smoke:
		return 's'
	case StarGold:
		return '*'
	default:
		return '?'
	}
}

// Lookup returns the palette entry with exactly the given RGBA value.
// Every fully transparent value maps to Transparent.
func Lookup(v color.NRGBA) (Color, bool) {
	if v.A == 0 {
		return Transparent, true
	}
	for _, c := range AllColors() {
		if palette[c] == v {
			return c, true
		}
	}
	return Transparent, false
}

// AllColors returns a slice of all palette colors.
func AllColors() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := Transparent; c < ColorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}
