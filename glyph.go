package pantext

import "fmt"

// BitmapBuffer holds the pixels of a RasterizedGlyph in one of the source
// encodings: RGBBuffer or RGBABuffer.
type BitmapBuffer interface {
	channels() int
	data() []byte
}

// RGBBuffer is a 3-channel (red, green, blue) glyph buffer. Its pixels are
// fully opaque.
type RGBBuffer []byte

func (b RGBBuffer) channels() int { return 3 }
func (b RGBBuffer) data() []byte  { return b }

// RGBABuffer is a 4-channel glyph buffer whose fourth channel is coverage.
type RGBABuffer []byte

func (b RGBABuffer) channels() int { return 4 }
func (b RGBABuffer) data() []byte  { return b }

// RasterizedGlyph is a glyph as produced by a GlyphSource.
//
// Left is the horizontal offset from the pen position to the bitmap's left
// edge. Top is the distance from the baseline up to the bitmap's top row.
type RasterizedGlyph struct {
	Width  int
	Height int
	Left   int
	Top    int
	Buffer BitmapBuffer
}

// GlyphBitmap is a glyph in the uniform color+coverage representation the
// compositor consumes: one Color per pixel, row-major, A = coverage.
type GlyphBitmap struct {
	Width  int
	Height int
	Left   int
	Top    int
	Pix    []Color
}

// At returns the pixel at local offset (lx, ly).
func (b GlyphBitmap) At(lx, ly int) Color {
	return b.Pix[ly*b.Width+lx]
}

// AdaptGlyph converts a rasterized glyph into a GlyphBitmap. RGB pixels get
// alpha 255, RGBA pixels keep their coverage. Extents and bearings are
// copied through unchanged.
func AdaptGlyph(g RasterizedGlyph) (GlyphBitmap, error) {
	if g.Width < 0 || g.Height < 0 {
		return GlyphBitmap{}, fmt.Errorf("%w: %dx%d", ErrBitmapSize, g.Width, g.Height)
	}

	n := g.Width * g.Height
	bm := GlyphBitmap{
		Width:  g.Width,
		Height: g.Height,
		Left:   g.Left,
		Top:    g.Top,
		Pix:    make([]Color, n),
	}
	if g.Buffer == nil {
		if n != 0 {
			return GlyphBitmap{}, fmt.Errorf("%w: %dx%d glyph has no buffer", ErrBitmapSize, g.Width, g.Height)
		}
		return bm, nil
	}

	ch := g.Buffer.channels()
	src := g.Buffer.data()
	if len(src) != n*ch {
		return GlyphBitmap{}, fmt.Errorf("%w: %dx%d glyph with %d channels needs %d bytes, got %d",
			ErrBitmapSize, g.Width, g.Height, ch, n*ch, len(src))
	}

	for i := range bm.Pix {
		j := i * ch
		a := uint8(255)
		if ch == 4 {
			a = src[j+3]
		}
		bm.Pix[i] = Color{R: src[j], G: src[j+1], B: src[j+2], A: a}
	}
	return bm, nil
}

// NewPlaceholder returns a hollow box glyph of the given size in color c,
// drawn in place of characters the glyph source cannot rasterize.
func NewPlaceholder(width, height, top int, c Color) GlyphBitmap {
	width = max(width, 0)
	height = max(height, 0)
	bm := GlyphBitmap{
		Width:  width,
		Height: height,
		Top:    top,
		Pix:    make([]Color, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				bm.Pix[y*width+x] = c
			}
		}
	}
	return bm
}
