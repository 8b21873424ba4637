package text

import (
	"golang.org/x/image/font"

	"github.com/gogpu/pantext"
)

// Encoding selects the pixel layout of rasterized glyphs.
type Encoding int

const (
	// EncodingRGBA paints the foreground color with the glyph coverage in
	// the alpha channel.
	EncodingRGBA Encoding = iota

	// EncodingRGB paints the foreground color scaled by coverage, opaque.
	// Such glyphs overwrite whatever is under their bounding box.
	EncodingRGB
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingRGBA:
		return "rgba"
	case EncodingRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// Option configures a Rasterizer during creation.
type Option func(*config)

// config holds configuration for Rasterizer.
type config struct {
	systemFonts bool
	cacheDir    string
	fallback    bool
	cacheSize   int
	scale       float64
	hinting     font.Hinting
	encoding    Encoding
	foreground  pantext.Color
}

// defaultConfig returns the default rasterizer configuration.
func defaultConfig() config {
	return config{
		systemFonts: true,
		cacheSize:   1024,
		scale:       1,
		hinting:     font.HintingFull,
		encoding:    EncodingRGBA,
		foreground:  pantext.White,
	}
}

// WithSystemFonts enables or disables lookup of installed fonts.
// Registered and bundled fonts are always available.
func WithSystemFonts(enabled bool) Option {
	return func(c *config) {
		c.systemFonts = enabled
	}
}

// WithFontCacheDir sets the directory for the system font index.
// The default is the user cache directory.
func WithFontCacheDir(dir string) Option {
	return func(c *config) {
		c.cacheDir = dir
	}
}

// WithFallback makes LoadFont fall back to the bundled Go font when the
// requested family cannot be found.
func WithFallback(enabled bool) Option {
	return func(c *config) {
		c.fallback = enabled
	}
}

// WithCacheSize sets the maximum number of cached glyphs.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

// WithScaleFactor sets the display scale factor. Glyphs are rasterized at
// 72*scale DPI, so a size in points maps to the same number of pixels at
// scale 1.
func WithScaleFactor(scale float64) Option {
	return func(c *config) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithHinting sets the outline hinting mode.
func WithHinting(h font.Hinting) Option {
	return func(c *config) {
		c.hinting = h
	}
}

// WithEncoding sets the pixel layout of rasterized glyphs.
func WithEncoding(e Encoding) Option {
	return func(c *config) {
		c.encoding = e
	}
}

// WithForeground sets the glyph color.
func WithForeground(fg pantext.Color) Option {
	return func(c *config) {
		c.foreground = fg
	}
}
