package pantext

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MissingGlyphPolicy decides what a layout pass does when the glyph source
// cannot produce a glyph for a character.
type MissingGlyphPolicy int

const (
	// MissingGlyphAbort stops the pass and returns the lookup error.
	MissingGlyphAbort MissingGlyphPolicy = iota

	// MissingGlyphSkip logs the failure and advances the pen by the space width.
	MissingGlyphSkip

	// MissingGlyphPlaceholder draws Layout.Placeholder in place of the glyph.
	MissingGlyphPlaceholder
)

// String returns the policy name.
func (p MissingGlyphPolicy) String() string {
	switch p {
	case MissingGlyphAbort:
		return "abort"
	case MissingGlyphSkip:
		return "skip"
	case MissingGlyphPlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("MissingGlyphPolicy(%d)", int(p))
	}
}

// spaceProbe is the character whose extent stands in for a blank.
const spaceProbe = 'i'

// MeasureSpaceWidth approximates the advance of a blank character as
// width('i') + left_bearing('i'). Blanks have no visible glyph to measure,
// and 'i' is usually about as wide as a space. This is a heuristic, not the
// font's advance metric for U+0020.
func MeasureSpaceWidth(src GlyphSource, font FontKey, size Size) (int, error) {
	g, err := src.Glyph(GlyphKey{Char: spaceProbe, Font: font, Size: size})
	if err != nil {
		return 0, fmt.Errorf("pantext: measure space width: %w", err)
	}
	return g.Width + g.Left, nil
}

// Pen is the layout cursor: the horizontal insertion point and the
// baseline shared by every glyph of a pass.
type Pen struct {
	X        int
	Baseline int
}

// Layout holds everything a single-line layout pass needs besides the text
// and the pan offset. A Layout value is read-only during a pass.
type Layout struct {
	Source GlyphSource
	Font   FontKey
	Size   Size

	// Origin is the left margin (X) and baseline (Y) before panning.
	Origin Coordinate

	// SpaceWidth is the advance of a blank, normally from MeasureSpaceWidth.
	SpaceWidth int

	Missing     MissingGlyphPolicy
	Placeholder GlyphBitmap
}

// Composite lays text out on one line and composites each glyph onto c.
//
// The pen starts at Origin+pan. Characters are walked as given. Blank
// characters advance the pen by SpaceWidth without a glyph lookup. Every
// other character is fetched from the source, adapted, blitted at
// (pen.X+left, baseline-top) and advances the pen by width+left. The final
// pen is returned.
//
// A precomposed character the source has no glyph for is drawn from its
// canonical decomposition when every part has a glyph. Otherwise the
// failure is handled according to Missing; with MissingGlyphAbort the error
// is returned and the rest of the text is not laid out.
func (l *Layout) Composite(text string, pan Coordinate, c *Canvas) (Pen, error) {
	pen := Pen{X: l.Origin.X + pan.X, Baseline: l.Origin.Y + pan.Y}

	for i, r := range text {
		if unicode.IsSpace(r) {
			pen.X += l.SpaceWidth
			continue
		}

		gs, err := l.lookup(r)
		if err != nil {
			switch l.Missing {
			case MissingGlyphSkip:
				Logger().Warn("pantext: skipping glyph", "char", string(r), "offset", i, "err", err)
				pen.X += l.SpaceWidth
				continue
			case MissingGlyphPlaceholder:
				Logger().Warn("pantext: placeholder glyph", "char", string(r), "offset", i, "err", err)
				adv, perr := composite(l.Placeholder, c, pen)
				if perr != nil {
					return pen, fmt.Errorf("pantext: placeholder for %q at byte %d: %w", r, i, perr)
				}
				pen.X += adv
				continue
			default:
				return pen, fmt.Errorf("pantext: layout %q at byte %d: %w", r, i, err)
			}
		}

		for _, g := range gs {
			bm, err := AdaptGlyph(g)
			if err == nil {
				var adv int
				adv, err = composite(bm, c, pen)
				pen.X += adv
			}
			if err != nil {
				return pen, fmt.Errorf("pantext: layout %q at byte %d: %w", r, i, err)
			}
		}
	}

	return pen, nil
}

// lookup returns the glyphs drawn for r: its own glyph, or the glyphs of
// its NFD decomposition when r has none. The error is always the one
// reported for r itself.
func (l *Layout) lookup(r rune) ([]RasterizedGlyph, error) {
	g, err := l.Source.Glyph(GlyphKey{Char: r, Font: l.Font, Size: l.Size})
	if err == nil {
		return []RasterizedGlyph{g}, nil
	}

	s := string(r)
	d := norm.NFD.String(s)
	if d == s {
		return nil, err
	}
	gs := make([]RasterizedGlyph, 0, utf8.RuneCountInString(d))
	for _, part := range d {
		pg, perr := l.Source.Glyph(GlyphKey{Char: part, Font: l.Font, Size: l.Size})
		if perr != nil {
			return nil, err
		}
		gs = append(gs, pg)
	}
	Logger().Debug("pantext: decomposed glyph", "char", s, "parts", len(gs))
	return gs, nil
}

// composite blits bm relative to the pen and returns the pen advance.
func composite(bm GlyphBitmap, c *Canvas, pen Pen) (int, error) {
	anchor := Coordinate{X: pen.X + bm.Left, Y: pen.Baseline - bm.Top}
	if err := Blit(bm, c, anchor); err != nil {
		return 0, err
	}
	return bm.Width + bm.Left, nil
}

// LayoutAndComposite is the function form of Layout.Composite. Placeholder
// glyphs, if the policy asks for them, are drawn in White.
func LayoutAndComposite(text string, src GlyphSource, font FontKey, size Size, origin, pan Coordinate,
	spaceWidth int, c *Canvas, policy MissingGlyphPolicy) (Pen, error) {
	l := Layout{
		Source:     src,
		Font:       font,
		Size:       size,
		Origin:     origin,
		SpaceWidth: spaceWidth,
		Missing:    policy,
	}
	if policy == MissingGlyphPlaceholder {
		ph, err := placeholderFor(src, font, size, spaceWidth, White)
		if err != nil {
			return Pen{X: origin.X + pan.X, Baseline: origin.Y + pan.Y}, err
		}
		l.Placeholder = ph
	}
	return l.Composite(text, pan, c)
}

// placeholderFor sizes a placeholder box like the space probe glyph: one
// space wide and as tall as 'i'.
func placeholderFor(src GlyphSource, font FontKey, size Size, spaceWidth int, c Color) (GlyphBitmap, error) {
	probe, err := src.Glyph(GlyphKey{Char: spaceProbe, Font: font, Size: size})
	if err != nil {
		return GlyphBitmap{}, fmt.Errorf("pantext: placeholder metrics: %w", err)
	}
	return NewPlaceholder(spaceWidth, probe.Height, probe.Top, c), nil
}
