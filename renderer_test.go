package pantext

import (
	"bytes"
	"errors"
	"testing"
)

func newTestRenderer(t *testing.T, opts ...RendererOption) (*Renderer, *fakeSource) {
	t.Helper()
	src := newFakeSource(testGlyphs())
	opts = append([]RendererOption{WithCanvasSize(40, 30), WithOrigin(Pt(2, 10))}, opts...)
	r, err := NewRenderer(src, 1, 13, opts...)
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}
	return r, src
}

func TestNewRenderer_Errors(t *testing.T) {
	if _, err := NewRenderer(nil, 1, 13); !errors.Is(err, ErrNilGlyphSource) {
		t.Errorf("NewRenderer(nil) = %v, want ErrNilGlyphSource", err)
	}

	src := newFakeSource(testGlyphs())
	if _, err := NewRenderer(src, 1, 13, WithCanvasSize(0, 10)); !errors.Is(err, ErrInvalidCanvasSize) {
		t.Errorf("NewRenderer(0x10) = %v, want ErrInvalidCanvasSize", err)
	}

	empty := newFakeSource(map[rune]RasterizedGlyph{})
	if _, err := NewRenderer(empty, 1, 13); !errors.Is(err, errNoGlyph) {
		t.Errorf("NewRenderer(no 'i') = %v, want errNoGlyph", err)
	}
}

func TestNewRenderer_Defaults(t *testing.T) {
	r, err := NewRenderer(newFakeSource(testGlyphs()), 1, 13)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := r.CanvasSize(); w != 2000 || h != 1000 {
		t.Errorf("CanvasSize() = %dx%d, want 2000x1000", w, h)
	}
	if r.Origin() != Pt(100, 100) {
		t.Errorf("Origin() = %v, want (100,100)", r.Origin())
	}
	if r.SpaceWidth() != 3 {
		t.Errorf("SpaceWidth() = %d, want 3", r.SpaceWidth())
	}
}

// TestRender_SpaceWidthMeasuredOnce verifies the probe glyph is fetched at
// construction and not on every pass.
func TestRender_SpaceWidthMeasuredOnce(t *testing.T) {
	r, src := newTestRenderer(t)
	for i := 0; i < 3; i++ {
		if _, err := r.Render(RenderRequest{Text: "a a"}); err != nil {
			t.Fatal(err)
		}
	}
	if src.calls['i'] != 1 {
		t.Errorf("lookups of 'i' = %d, want 1", src.calls['i'])
	}
}

func TestRender_Deterministic(t *testing.T) {
	r, _ := newTestRenderer(t)
	req := RenderRequest{Text: "a ia", Pan: Pt(3, -1)}

	c1, err := r.Render(req)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := r.Render(req)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Error("identical requests produced different canvases")
	}
}

// TestRender_PannedOffCanvas pans the baseline above the canvas by more
// than the tallest glyph; nothing may be drawn.
func TestRender_PannedOffCanvas(t *testing.T) {
	r, _ := newTestRenderer(t)
	background := NewCanvas(40, 30).Bytes()

	// Origin Y is 10; tallest glyph is 5 pixels.
	c, err := r.Render(RenderRequest{Text: "aia ia", Pan: Pt(0, -15)})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c.Bytes(), background) {
		t.Error("fully clipped text modified the canvas")
	}
}

func TestRender_Background(t *testing.T) {
	r, _ := newTestRenderer(t, WithBackground(Color{R: 1, G: 2, B: 3, A: 0}))
	c, err := r.Render(RenderRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := c.Pixel(Pt(0, 0)); p != RGB(1, 2, 3) {
		t.Errorf("background = %+v, want opaque (1,2,3)", p)
	}
}

func TestRender_AbortReturnsNoCanvas(t *testing.T) {
	r, _ := newTestRenderer(t)
	c, err := r.Render(RenderRequest{Text: "a?"})
	if !errors.Is(err, errNoGlyph) {
		t.Fatalf("Render() = %v, want errNoGlyph", err)
	}
	if c != nil {
		t.Error("Render() returned a canvas on error")
	}
}

func TestRenderInto(t *testing.T) {
	r, _ := newTestRenderer(t)

	if err := r.RenderInto(RenderRequest{}, NewCanvas(3, 3)); !errors.Is(err, ErrInvalidCanvasSize) {
		t.Errorf("RenderInto(3x3) = %v, want ErrInvalidCanvasSize", err)
	}

	c := NewCanvas(40, 30)
	if err := r.RenderInto(RenderRequest{Text: "a"}, c); err != nil {
		t.Fatal(err)
	}
	want, _ := r.Render(RenderRequest{Text: "a"})
	if !bytes.Equal(c.Bytes(), want.Bytes()) {
		t.Error("RenderInto() differs from Render()")
	}

	// A failed pass leaves the canvas cleared, not partially drawn.
	if err := r.RenderInto(RenderRequest{Text: "a?"}, c); err == nil {
		t.Fatal("RenderInto() = nil, want error")
	}
	if !bytes.Equal(c.Bytes(), NewCanvas(40, 30).Bytes()) {
		t.Error("failed RenderInto() left glyphs on the canvas")
	}
}

func TestRender_Placeholder(t *testing.T) {
	r, _ := newTestRenderer(t, WithMissingGlyph(MissingGlyphPlaceholder), WithPlaceholderColor(RGB(9, 9, 9)))
	c, err := r.Render(RenderRequest{Text: "?"})
	if err != nil {
		t.Fatal(err)
	}
	// Placeholder: space width 3, 'i' height 5 and top 5, at pen (2, 10).
	if p, _ := c.Pixel(Pt(2, 5)); p != RGB(9, 9, 9) {
		t.Errorf("placeholder corner = %+v, want (9,9,9)", p)
	}
	if p, _ := c.Pixel(Pt(3, 6)); p != Black {
		t.Errorf("placeholder interior = %+v, want background", p)
	}
}
