package pantext

import "fmt"

// RenderRequest is the complete input of one render pass besides the fixed
// renderer configuration. Identical requests produce byte-identical canvases.
type RenderRequest struct {
	Text string

	// Pan is the accumulated pan offset added to the origin.
	Pan Coordinate
}

// Renderer turns render requests into canvases for one font at one size.
//
// The space width is measured once, when the Renderer is created. Nothing
// else carries over between passes: the pen starts at the origin on every
// pass and the only varying input is the RenderRequest.
//
// A Renderer is not safe for concurrent use; render passes are expected to
// be serialized by the caller's event loop.
type Renderer struct {
	layout     Layout
	width      int
	height     int
	background Color
}

// NewRenderer creates a Renderer for a font previously loaded from src.
// It fails if the space width cannot be measured.
func NewRenderer(src GlyphSource, font FontKey, size Size, opts ...RendererOption) (*Renderer, error) {
	if src == nil {
		return nil, ErrNilGlyphSource
	}

	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidCanvasSize, o.width, o.height)
	}

	space, err := MeasureSpaceWidth(src, font, size)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		layout: Layout{
			Source:     src,
			Font:       font,
			Size:       size,
			Origin:     o.origin,
			SpaceWidth: space,
			Missing:    o.missing,
		},
		width:      o.width,
		height:     o.height,
		background: o.background,
	}

	if o.missing == MissingGlyphPlaceholder {
		ph, err := placeholderFor(src, font, size, space, o.placeholder)
		if err != nil {
			return nil, err
		}
		r.layout.Placeholder = ph
	}

	Logger().Debug("pantext: renderer ready",
		"font", font, "size", float64(size), "space_width", space,
		"width", o.width, "height", o.height, "missing", o.missing.String())

	return r, nil
}

// SpaceWidth returns the measured advance of a blank character.
func (r *Renderer) SpaceWidth() int {
	return r.layout.SpaceWidth
}

// CanvasSize returns the fixed canvas dimensions.
func (r *Renderer) CanvasSize() (width, height int) {
	return r.width, r.height
}

// Origin returns the unpanned pen origin.
func (r *Renderer) Origin() Coordinate {
	return r.layout.Origin
}

// Render runs one pass on a freshly allocated canvas.
// On error no canvas is returned.
func (r *Renderer) Render(req RenderRequest) (*Canvas, error) {
	c := NewCanvasWithBackground(r.width, r.height, r.background)
	if _, err := r.layout.Composite(req.Text, req.Pan, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RenderInto runs one pass on c after clearing it to the background.
// c must have the renderer's canvas size. On error c is left cleared, never
// partially rendered.
func (r *Renderer) RenderInto(req RenderRequest, c *Canvas) error {
	if c.Width() != r.width || c.Height() != r.height {
		return fmt.Errorf("%w: canvas is %dx%d, renderer expects %dx%d",
			ErrInvalidCanvasSize, c.Width(), c.Height(), r.width, r.height)
	}
	c.Clear(r.background)
	if _, err := r.layout.Composite(req.Text, req.Pan, c); err != nil {
		c.Clear(r.background)
		return err
	}
	return nil
}
