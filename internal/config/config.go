// Package config holds the command configuration: defaults, command-line
// flags and a PANTEXT_* environment overlay.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/pantext"
	"github.com/gogpu/pantext/text"
)

// EnvPrefix prefixes every environment variable the command reads.
const EnvPrefix = "PANTEXT_"

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Output modes.
const (
	ModeWindow   = "window"
	ModeTerminal = "terminal"
	ModePNG      = "png"
)

// DefaultText is the sample line rendered when no text is given.
const DefaultText = "the quick brown fox jumped over the lazy dog and THE QUICK BROWN FOX JUMPED OVER THE LAZY DOG"

// Config is the complete command configuration.
type Config struct {
	Mode  string
	Title string
	Text  string

	Family string
	Style  string
	Size   float64

	Width   int
	Height  int
	OriginX int
	OriginY int
	PanX    int
	PanY    int

	// ScrollScale is pixels per scroll unit; 0 picks a per-surface default.
	ScrollScale float64
	// ScaleFactor overrides the display scale; 0 asks the surface.
	ScaleFactor float64

	Background  string
	Foreground  string
	Placeholder string
	Missing     string
	Encoding    string

	SystemFonts  bool
	Fallback     bool
	FontCacheDir string

	Output   string
	LogLevel string
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Mode:        ModeWindow,
		Title:       "pantext",
		Text:        DefaultText,
		Family:      "Input Sans",
		Style:       "Light",
		Size:        13,
		Width:       2000,
		Height:      1000,
		OriginX:     100,
		OriginY:     100,
		Background:  "#000000",
		Foreground:  "#ffffff",
		Placeholder: "#ffffff",
		Missing:     pantext.MissingGlyphAbort.String(),
		Encoding:    text.EncodingRGBA.String(),
		SystemFonts: true,
		Output:      "pantext.png",
		LogLevel:    "info",
	}
}

// RegisterFlags binds c's fields to flags on fs. The current field values
// become the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "output: window, terminal or png")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.StringVar(&c.Text, "text", c.Text, "line of text to render")

	fs.StringVar(&c.Family, "family", c.Family, "font family")
	fs.StringVar(&c.Style, "style", c.Style, "font style, e.g. Light or Bold Italic")
	fs.Float64Var(&c.Size, "size", c.Size, "font size in points")

	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.OriginX, "origin-x", c.OriginX, "left margin in pixels")
	fs.IntVar(&c.OriginY, "origin-y", c.OriginY, "baseline in pixels")
	fs.IntVar(&c.PanX, "pan-x", c.PanX, "initial horizontal pan")
	fs.IntVar(&c.PanY, "pan-y", c.PanY, "initial vertical pan")
	fs.Float64Var(&c.ScrollScale, "scroll-scale", c.ScrollScale, "pixels per scroll unit (0: surface default)")
	fs.Float64Var(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "display scale factor (0: ask the surface)")

	fs.StringVar(&c.Background, "background", c.Background, "background color, hex")
	fs.StringVar(&c.Foreground, "foreground", c.Foreground, "glyph color, hex")
	fs.StringVar(&c.Placeholder, "placeholder", c.Placeholder, "placeholder glyph color, hex")
	fs.StringVar(&c.Missing, "missing", c.Missing, "missing glyph policy: abort, skip or placeholder")
	fs.StringVar(&c.Encoding, "encoding", c.Encoding, "glyph encoding: rgba or rgb")

	fs.BoolVar(&c.SystemFonts, "system-fonts", c.SystemFonts, "look up installed fonts")
	fs.BoolVar(&c.Fallback, "fallback", c.Fallback, "fall back to the Go font if the family is missing")
	fs.StringVar(&c.FontCacheDir, "font-cache", c.FontCacheDir, "system font index directory")

	fs.StringVar(&c.Output, "output", c.Output, "png output path, may contain %d")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// EnvName returns the environment variable for a flag: "origin-x" becomes
// PANTEXT_ORIGIN_X.
func EnvName(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// ApplyEnv sets every flag of fs that was not given on the command line
// from its environment variable, if present. lookup is usually
// os.LookupEnv. Command-line flags win over the environment, the
// environment wins over defaults.
func ApplyEnv(fs *flag.FlagSet, lookup func(string) (string, bool)) error {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	var errs []error
	fs.VisitAll(func(f *flag.Flag) {
		if explicit[f.Name] {
			return
		}
		env := EnvName(f.Name)
		val, ok := lookup(env)
		if !ok {
			return
		}
		if err := fs.Set(f.Name, val); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, env, val, err))
		}
	})
	return errors.Join(errs...)
}

// Load builds a Config from defaults, args and the process environment.
func Load(name string, args []string) (Config, *flag.FlagSet, error) {
	return load(name, args, os.LookupEnv)
}

func load(name string, args []string, lookup func(string) (string, bool)) (Config, *flag.FlagSet, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, fs, err
	}
	if err := ApplyEnv(fs, lookup); err != nil {
		return c, fs, err
	}
	if fs.NArg() > 0 {
		c.Text = strings.Join(fs.Args(), " ")
	}
	return c, fs, c.Validate()
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field string, val any) {
		errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalid, field, val))
	}

	switch c.Mode {
	case ModeWindow, ModeTerminal, ModePNG:
	default:
		bad("mode", c.Mode)
	}
	if c.Size <= 0 {
		bad("size", c.Size)
	}
	if c.Width <= 0 {
		bad("width", c.Width)
	}
	if c.Height <= 0 {
		bad("height", c.Height)
	}
	if c.ScrollScale < 0 {
		bad("scroll-scale", c.ScrollScale)
	}
	if c.ScaleFactor < 0 {
		bad("scale-factor", c.ScaleFactor)
	}
	if c.Family == "" {
		bad("family", `""`)
	}
	for field, val := range map[string]string{
		"background":  c.Background,
		"foreground":  c.Foreground,
		"placeholder": c.Placeholder,
	} {
		if _, err := ParseColor(val); err != nil {
			bad(field, val)
		}
	}
	if _, err := c.MissingPolicy(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.TextEncoding(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseColor parses a hex color such as "#ff8000" or "#f80" into an
// opaque color.
func ParseColor(s string) (pantext.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return pantext.Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	r, g, b := c.RGB255()
	return pantext.RGB(r, g, b), nil
}

// MissingPolicy returns the configured missing glyph policy.
func (c *Config) MissingPolicy() (pantext.MissingGlyphPolicy, error) {
	for _, p := range []pantext.MissingGlyphPolicy{
		pantext.MissingGlyphAbort,
		pantext.MissingGlyphSkip,
		pantext.MissingGlyphPlaceholder,
	} {
		if strings.EqualFold(c.Missing, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: missing = %q", ErrInvalid, c.Missing)
}

// TextEncoding returns the configured glyph encoding.
func (c *Config) TextEncoding() (text.Encoding, error) {
	for _, e := range []text.Encoding{text.EncodingRGBA, text.EncodingRGB} {
		if strings.EqualFold(c.Encoding, e.String()) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: encoding = %q", ErrInvalid, c.Encoding)
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log-level = %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
