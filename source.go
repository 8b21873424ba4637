package pantext

// Size is a font size in points.
type Size float64

// FontDesc describes a font by family and style, for example
// {Family: "Input Sans", Style: "Light"}.
type FontDesc struct {
	Family string
	Style  string
}

// String returns the description as "Family Style".
func (d FontDesc) String() string {
	if d.Style == "" {
		return d.Family
	}
	return d.Family + " " + d.Style
}

// FontKey identifies a font loaded by a GlyphSource. Its value is only
// meaningful to the source that issued it.
type FontKey uint32

// GlyphKey selects one rasterized glyph.
type GlyphKey struct {
	Char rune
	Font FontKey
	Size Size
}

// GlyphSource loads fonts and rasterizes glyphs.
//
// The layout engine treats it as a synchronous call returning a bitmap or
// an error. Caching is up to the implementation; see package text.
type GlyphSource interface {
	// LoadFont resolves a font description at the given size. It fails if the
	// family or style is unavailable.
	LoadFont(desc FontDesc, size Size) (FontKey, error)

	// Glyph rasterizes one character. It fails if the character cannot be
	// rasterized for the font.
	Glyph(key GlyphKey) (RasterizedGlyph, error)
}
