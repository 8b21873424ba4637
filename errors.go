package pantext

import "errors"

// Sentinel errors for the pantext package.
var (
	// ErrBitmapSize is returned when a rasterized glyph's buffer length does
	// not match its width, height and channel count.
	ErrBitmapSize = errors.New("pantext: glyph buffer does not match glyph size")

	// ErrFrameSize is returned when a presentation buffer is not
	// width*height*4 bytes long.
	ErrFrameSize = errors.New("pantext: frame buffer size mismatch")

	// ErrInvalidCanvasSize is returned for non-positive canvas dimensions.
	ErrInvalidCanvasSize = errors.New("pantext: invalid canvas size")

	// ErrNilGlyphSource is returned when a Renderer is created without a
	// glyph source.
	ErrNilGlyphSource = errors.New("pantext: nil glyph source")
)
