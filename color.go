package pantext

import (
	"image/color"

	"github.com/gogpu/pantext/internal/blend"
)

// Color is an 8-bit per channel color with straight (non-premultiplied)
// alpha. For glyph pixels A is the blend weight; colors committed to a
// Canvas are treated as opaque.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Transparent = Color{}
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Over composites c onto dst:
//
//	result = dst*(1-a) + c*a, a = c.A/255
//
// per red, green and blue channel, rounded to nearest. The destination alpha
// is returned unchanged.
func (c Color) Over(dst Color) Color {
	return Color{
		R: blend.Lerp(dst.R, c.R, c.A),
		G: blend.Lerp(dst.G, c.G, c.A),
		B: blend.Lerp(dst.B, c.B, c.A),
		A: dst.A,
	}
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
