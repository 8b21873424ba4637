package text

import (
	"fmt"
	"image"
	"math"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pantext"
	"github.com/gogpu/pantext/internal/blend"
)

// spaceProbe is the character used to pick a system face by style.
const spaceProbe = 'i'

// loadedFont is a parsed font and its faces, one per size.
type loadedFont struct {
	desc  pantext.FontDesc
	font  *opentype.Font
	faces map[pantext.Size]font.Face
}

// Rasterizer is a pantext.GlyphSource backed by golang.org/x/image.
//
// Fonts are looked up in this order: fonts added with RegisterFont, the
// bundled Go fonts, installed system fonts, and finally the fallback
// family if enabled.
//
// Rasterizer is safe for concurrent use.
type Rasterizer struct {
	mu         sync.Mutex
	cfg        config
	fonts      []*loadedFont
	byDesc     map[string]pantext.FontKey
	registered map[string][]byte
	system     *systemFonts
	cache      *lru.Cache[pantext.GlyphKey, pantext.RasterizedGlyph]
	buf        sfnt.Buffer
}

var _ pantext.GlyphSource = (*Rasterizer)(nil)

// NewRasterizer creates a Rasterizer.
func NewRasterizer(opts ...Option) (*Rasterizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.New[pantext.GlyphKey, pantext.RasterizedGlyph](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("text: glyph cache: %w", err)
	}

	r := &Rasterizer{
		cfg:        cfg,
		byDesc:     make(map[string]pantext.FontKey),
		registered: make(map[string][]byte),
		cache:      cache,
	}
	if cfg.systemFonts {
		r.system = newSystemFonts(cfg.cacheDir)
	}
	return r, nil
}

func descKey(desc pantext.FontDesc) string {
	return strings.ToLower(desc.Family) + "\x00" + strings.ToLower(desc.Style)
}

// RegisterFont makes font data (TTF, OTF or the first face of a
// collection) available under desc. It takes precedence over bundled and
// system fonts. The data slice is retained.
func (r *Rasterizer) RegisterFont(desc pantext.FontDesc, data []byte) error {
	if len(data) == 0 {
		return &FontLoadError{Family: desc.Family, Style: desc.Style, Err: ErrEmptyFontData}
	}
	if _, err := parseFont(data, 0); err != nil {
		return &FontLoadError{Family: desc.Family, Style: desc.Style, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered[descKey(desc)] = data
	return nil
}

// LoadFont resolves desc to a font and prepares a face at size.
// Loading the same description twice returns the same key.
func (r *Rasterizer) LoadFont(desc pantext.FontDesc, size pantext.Size) (pantext.FontKey, error) {
	if !validSize(size) {
		return 0, &FontLoadError{Family: desc.Family, Style: desc.Style, Err: ErrInvalidSize}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byDesc[descKey(desc)]
	if !ok {
		f, err := r.resolve(desc)
		if err != nil {
			return 0, &FontLoadError{Family: desc.Family, Style: desc.Style, Err: err}
		}
		r.fonts = append(r.fonts, &loadedFont{
			desc:  desc,
			font:  f,
			faces: make(map[pantext.Size]font.Face),
		})
		key = pantext.FontKey(len(r.fonts))
		r.byDesc[descKey(desc)] = key
	}

	if _, err := r.face(key, size); err != nil {
		return 0, &FontLoadError{Family: desc.Family, Style: desc.Style, Err: err}
	}
	return key, nil
}

// resolve finds the font data for desc. Must be called with mu held.
func (r *Rasterizer) resolve(desc pantext.FontDesc) (*opentype.Font, error) {
	log := pantext.Logger()

	if data, ok := r.registered[descKey(desc)]; ok {
		log.Debug("text: using registered font", "font", desc.String())
		return parseFont(data, 0)
	}

	aspect := ParseStyle(desc.Style)
	if data, ok := findBuiltin(desc.Family, aspect); ok {
		log.Debug("text: using bundled font", "font", desc.String())
		return parseFont(data, 0)
	}

	notFound := ErrFontNotFound
	if r.system != nil {
		loc, err := r.system.find(desc.Family, desc.Style)
		if err == nil {
			data, index, err := r.system.load(loc)
			if err != nil {
				return nil, err
			}
			log.Info("text: resolved system font", "font", desc.String(), "file", loc.File, "index", index)
			return parseFont(data, index)
		}
		notFound = err
	}

	if r.cfg.fallback {
		data, _ := findBuiltin(FallbackFamily, aspect)
		log.Warn("text: font not found, using fallback",
			"font", desc.String(), "fallback", FallbackFamily, "err", notFound)
		return parseFont(data, 0)
	}
	return nil, notFound
}

// parseFont parses a single font or face index of a collection.
func parseFont(data []byte, index int) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: font %d of collection: %w", index, err)
	}
	return f, nil
}

func validSize(size pantext.Size) bool {
	s := float64(size)
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// face returns the face of font key at size, creating it on first use.
// Must be called with mu held.
func (r *Rasterizer) face(key pantext.FontKey, size pantext.Size) (font.Face, error) {
	lf, err := r.font(key)
	if err != nil {
		return nil, err
	}
	if f, ok := lf.faces[size]; ok {
		return f, nil
	}
	if !validSize(size) {
		return nil, ErrInvalidSize
	}

	f, err := opentype.NewFace(lf.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72 * r.cfg.scale,
		Hinting: r.cfg.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	lf.faces[size] = f
	return f, nil
}

func (r *Rasterizer) font(key pantext.FontKey) (*loadedFont, error) {
	if key == 0 || int(key) > len(r.fonts) {
		return nil, ErrUnknownFont
	}
	return r.fonts[key-1], nil
}

// Glyph rasterizes key.Char. The bitmap is positioned relative to the pen
// on the baseline: Left is the horizontal bearing and Top the height above
// the baseline. Characters the font has no glyph for fail with
// ErrGlyphNotFound rather than rendering the font's .notdef box.
func (r *Rasterizer) Glyph(key pantext.GlyphKey) (pantext.RasterizedGlyph, error) {
	if g, ok := r.cache.Get(key); ok {
		return g, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	g, err := r.rasterize(key)
	if err != nil {
		return pantext.RasterizedGlyph{}, &GlyphLookupError{Char: key.Char, Font: key.Font, Err: err}
	}
	r.cache.Add(key, g)
	pantext.Logger().Debug("text: glyph cache miss", "char", string(key.Char), "font", key.Font)
	return g, nil
}

// rasterize renders one glyph. Must be called with mu held.
func (r *Rasterizer) rasterize(key pantext.GlyphKey) (pantext.RasterizedGlyph, error) {
	lf, err := r.font(key.Font)
	if err != nil {
		return pantext.RasterizedGlyph{}, err
	}
	idx, err := lf.font.GlyphIndex(&r.buf, key.Char)
	if err != nil {
		return pantext.RasterizedGlyph{}, fmt.Errorf("text: glyph index: %w", err)
	}
	if idx == 0 {
		return pantext.RasterizedGlyph{}, ErrGlyphNotFound
	}

	face, err := r.face(key.Font, key.Size)
	if err != nil {
		return pantext.RasterizedGlyph{}, err
	}

	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, key.Char)
	if !ok {
		return pantext.RasterizedGlyph{}, ErrGlyphNotFound
	}

	g := pantext.RasterizedGlyph{
		Width:  dr.Dx(),
		Height: dr.Dy(),
		Left:   dr.Min.X,
		Top:    -dr.Min.Y,
	}
	g.Buffer = r.encode(mask, maskp, g.Width, g.Height)
	return g, nil
}

// encode converts a coverage mask into the configured glyph encoding.
func (r *Rasterizer) encode(mask image.Image, maskp image.Point, w, h int) pantext.BitmapBuffer {
	fg := r.cfg.foreground
	coverage := func(x, y int) uint8 {
		if a, ok := mask.(*image.Alpha); ok {
			return a.AlphaAt(maskp.X+x, maskp.Y+y).A
		}
		_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
		return uint8(a >> 8)
	}

	switch r.cfg.encoding {
	case EncodingRGB:
		buf := make(pantext.RGBBuffer, w*h*3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := blend.Scale(coverage(x, y), fg.A)
				i := (y*w + x) * 3
				buf[i+0] = blend.Scale(fg.R, c)
				buf[i+1] = blend.Scale(fg.G, c)
				buf[i+2] = blend.Scale(fg.B, c)
			}
		}
		return buf
	default:
		buf := make(pantext.RGBABuffer, w*h*4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := (y*w + x) * 4
				buf[i+0] = fg.R
				buf[i+1] = fg.G
				buf[i+2] = fg.B
				buf[i+3] = blend.Scale(coverage(x, y), fg.A)
			}
		}
		return buf
	}
}

// Close releases all faces. The Rasterizer must not be used afterwards.
func (r *Rasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for _, lf := range r.fonts {
		for size, f := range lf.faces {
			if err := f.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
			delete(lf.faces, size)
		}
	}
	r.cache.Purge()
	return firstErr
}
