// Package text provides the glyph source for pantext.
//
// Rasterizer resolves font descriptions (family and style) to font files,
// rasterizes glyphs with golang.org/x/image/font/opentype and caches the
// results in a bounded LRU.
//
// # Font lookup
//
// A description is resolved in this order:
//
//   - fonts added with Rasterizer.RegisterFont
//   - the bundled Go fonts ("Go" and "Go Mono" families)
//   - installed system fonts, indexed with go-text/typesetting/fontscan
//   - the "Go" family, if WithFallback(true) is set
//
// # Example usage
//
//	src, err := text.NewRasterizer(text.WithScaleFactor(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	font, err := src.LoadFont(pantext.FontDesc{Family: "Input Sans", Style: "Light"}, 13)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := pantext.NewRenderer(src, font, 13)
//
// # Encodings
//
// Glyphs are produced in the foreground color. EncodingRGBA (the default)
// carries coverage in the alpha channel and blends smoothly. EncodingRGB
// bakes coverage into the color and produces opaque bitmaps.
package text
