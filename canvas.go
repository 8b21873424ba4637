package pantext

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Canvas is a fixed-size row-major pixel buffer, index = y*width + x.
//
// A Canvas is conceptually opaque: SetPixel blends onto the existing pixel
// without touching its alpha, and Bytes always reports alpha 255.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

// NewCanvas creates a canvas filled with opaque black.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	return NewCanvasWithBackground(width, height, Black)
}

// NewCanvasWithBackground creates a canvas filled with bg.
func NewCanvasWithBackground(width, height int, bg Color) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	c.Clear(bg)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// SetPixel blends col onto the pixel at p (see Color.Over).
// Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(p Coordinate, col Color) {
	i, ok := p.ToIndex(c.width, c.height)
	if !ok {
		return
	}
	c.pix[i] = col.Over(c.pix[i])
}

// Pixel returns the pixel at p, or false if p is outside the canvas.
func (c *Canvas) Pixel(p Coordinate) (Color, bool) {
	i, ok := p.ToIndex(c.width, c.height)
	if !ok {
		return Color{}, false
	}
	return c.pix[i], true
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Bytes returns the canvas as width*height*4 bytes of RGBA, row-major.
// The alpha byte is always 255.
func (c *Canvas) Bytes() []byte {
	buf := make([]byte, len(c.pix)*4)
	c.encode(buf)
	return buf
}

// WriteRGBA encodes the canvas into dst, which must be exactly
// width*height*4 bytes long (a presentation surface's frame).
func (c *Canvas) WriteRGBA(dst []byte) error {
	if len(dst) != len(c.pix)*4 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(dst), len(c.pix)*4)
	}
	c.encode(dst)
	return nil
}

func (c *Canvas) encode(dst []byte) {
	for i, p := range c.pix {
		j := i * 4
		dst[j+0] = p.R
		dst[j+1] = p.G
		dst[j+2] = p.B
		dst[j+3] = 255
	}
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.encode(img.Pix)
	return img
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	p, ok := c.Pixel(Pt(x, y))
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
