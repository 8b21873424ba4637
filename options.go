package pantext

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r, err := pantext.NewRenderer(src, font, 13,
//	    pantext.WithCanvasSize(800, 200),
//	    pantext.WithOrigin(pantext.Pt(20, 40)),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	width, height int
	origin        Coordinate
	background    Color
	missing       MissingGlyphPolicy
	placeholder   Color
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		width:       2000,
		height:      1000,
		origin:      Coordinate{X: 100, Y: 100},
		background:  Black,
		missing:     MissingGlyphAbort,
		placeholder: White,
	}
}

// WithCanvasSize sets the fixed canvas dimensions.
func WithCanvasSize(width, height int) RendererOption {
	return func(o *rendererOptions) {
		o.width = width
		o.height = height
	}
}

// WithOrigin sets the left margin (X) and the unpanned baseline (Y).
func WithOrigin(origin Coordinate) RendererOption {
	return func(o *rendererOptions) {
		o.origin = origin
	}
}

// WithBackground sets the color every pass starts from. The color is
// stored opaque.
func WithBackground(c Color) RendererOption {
	return func(o *rendererOptions) {
		c.A = 255
		o.background = c
	}
}

// WithMissingGlyph sets the policy for characters the glyph source cannot
// rasterize. The default is MissingGlyphAbort.
func WithMissingGlyph(p MissingGlyphPolicy) RendererOption {
	return func(o *rendererOptions) {
		o.missing = p
	}
}

// WithPlaceholderColor sets the outline color of placeholder glyphs.
func WithPlaceholderColor(c Color) RendererOption {
	return func(o *rendererOptions) {
		o.placeholder = c
	}
}
