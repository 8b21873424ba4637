package pantext

import "fmt"

// Blit composites every pixel of bm onto c, with local offset (lx, ly)
// landing at anchor + (lx, ly). Pixels falling outside the canvas are
// clipped. A bitmap whose Pix does not hold Width×Height pixels is
// rejected with ErrBitmapSize and leaves c untouched.
func Blit(bm GlyphBitmap, c *Canvas, anchor Coordinate) error {
	if bm.Width < 0 || bm.Height < 0 || len(bm.Pix) != bm.Width*bm.Height {
		return fmt.Errorf("%w: %dx%d bitmap with %d pixels", ErrBitmapSize, bm.Width, bm.Height, len(bm.Pix))
	}
	for ly := 0; ly < bm.Height; ly++ {
		y := anchor.Y + ly
		if y < 0 || y >= c.height {
			continue
		}
		for lx := 0; lx < bm.Width; lx++ {
			c.SetPixel(Coordinate{X: anchor.X + lx, Y: y}, bm.At(lx, ly))
		}
	}
	return nil
}
