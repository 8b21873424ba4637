// Package pantext renders a single line of text onto a fixed-size RGB canvas
// by compositing rasterized glyph bitmaps, and supports panning the text
// across the canvas.
//
// # Overview
//
// A render pass starts from a cleared canvas, walks the text character by
// character and alpha-blends each glyph bitmap at the pen position. Blank
// characters are not rasterized; they advance the pen by a space width
// measured once from the width of the glyph 'i'.
//
// # Quick Start
//
//	src, _ := text.NewRasterizer()
//	font, _ := src.LoadFont(pantext.FontDesc{Family: "Go"}, 13)
//
//	r, _ := pantext.NewRenderer(src, font, 13)
//	c, _ := r.Render(pantext.RenderRequest{Text: "hello world"})
//	c.SavePNG("hello.png")
//
// # Coordinate System
//
// Canvas coordinates are integers with the origin at the top-left:
//   - X increases right
//   - Y increases down
//
// Pixels outside the canvas are silently dropped, so glyphs may be
// positioned partially or entirely off-canvas.
//
// # Glyph Sources
//
// GlyphSource is the seam to the font rasterizer. Package text provides an
// implementation on golang.org/x/image/font/opentype with system font lookup.
// Rasterized glyphs come in RGB or RGBA encodings; AdaptGlyph converts both
// to the color+coverage form the compositor blends.
//
// # Presentation
//
// Canvas.Bytes and Canvas.WriteRGBA produce the tightly packed 8-bit RGBA
// frame (alpha always 255) that package present hands to PNG files, GPU
// textures and terminals.
//
// # Logging
//
// pantext logs through log/slog and is silent by default. See SetLogger.
package pantext
