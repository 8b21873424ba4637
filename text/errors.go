package text

import (
	"errors"
	"fmt"

	"github.com/gogpu/pantext"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no font matches a description.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrInvalidSize is returned for a font size that is not a positive
	// finite number.
	ErrInvalidSize = errors.New("text: invalid font size")

	// ErrGlyphNotFound is returned when the font has no glyph for a
	// character.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrUnknownFont is returned for a FontKey this Rasterizer never issued.
	ErrUnknownFont = errors.New("text: unknown font")
)

// FontLoadError is returned when a font description cannot be resolved or
// loaded.
type FontLoadError struct {
	Family string
	Style  string
	Err    error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("text: load font %q style %q: %v", e.Family, e.Style, e.Err)
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// GlyphLookupError is returned when a glyph cannot be rasterized.
type GlyphLookupError struct {
	Char rune
	Font pantext.FontKey
	Err  error
}

func (e *GlyphLookupError) Error() string {
	return fmt.Sprintf("text: glyph %q in font %d: %v", e.Char, e.Font, e.Err)
}

func (e *GlyphLookupError) Unwrap() error {
	return e.Err
}
