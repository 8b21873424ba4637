package config

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/gogpu/pantext"
	"github.com/gogpu/pantext/text"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if c.Width != 2000 || c.Height != 1000 || c.OriginX != 100 || c.OriginY != 100 {
		t.Errorf("canvas = %dx%d origin (%d,%d), want 2000x1000 origin (100,100)",
			c.Width, c.Height, c.OriginX, c.OriginY)
	}
	if c.Family != "Input Sans" || c.Style != "Light" || c.Size != 13 {
		t.Errorf("font = %s %s %v, want Input Sans Light 13", c.Family, c.Style, c.Size)
	}
	if p, _ := c.MissingPolicy(); p != pantext.MissingGlyphAbort {
		t.Errorf("MissingPolicy() = %v, want abort", p)
	}
}

func TestLoad_Precedence(t *testing.T) {
	vars := map[string]string{
		"PANTEXT_SIZE":     "20",
		"PANTEXT_FAMILY":   "Go",
		"PANTEXT_ORIGIN_X": "7",
	}
	c, _, err := load("pantext", []string{"-family", "Go Mono", "-mode", "png"}, env(vars))
	if err != nil {
		t.Fatalf("load() = %v", err)
	}
	if c.Family != "Go Mono" {
		t.Errorf("Family = %q, want flag value Go Mono", c.Family)
	}
	if c.Size != 20 {
		t.Errorf("Size = %v, want env value 20", c.Size)
	}
	if c.OriginX != 7 {
		t.Errorf("OriginX = %d, want env value 7", c.OriginX)
	}
	if c.Mode != ModePNG {
		t.Errorf("Mode = %q, want png", c.Mode)
	}
	if c.Text != DefaultText {
		t.Errorf("Text = %q, want default", c.Text)
	}
}

func TestLoad_PositionalText(t *testing.T) {
	c, _, err := load("pantext", []string{"-size", "9", "hello", "world"}, env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if c.Text != "hello world" {
		t.Errorf("Text = %q, want %q", c.Text, "hello world")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		vars map[string]string
	}{
		{"bad env number", nil, map[string]string{"PANTEXT_WIDTH": "wide"}},
		{"bad mode", []string{"-mode", "hologram"}, nil},
		{"zero size", []string{"-size", "0"}, nil},
		{"bad color", []string{"-background", "#zzzzzz"}, nil},
		{"bad policy", nil, map[string]string{"PANTEXT_MISSING": "ignore"}},
		{"bad encoding", []string{"-encoding", "cmyk"}, nil},
		{"bad level", []string{"-log-level", "loud"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := load("pantext", tt.args, env(tt.vars))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("load() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestEnvName(t *testing.T) {
	if got := EnvName("origin-x"); got != "PANTEXT_ORIGIN_X" {
		t.Errorf("EnvName() = %q, want PANTEXT_ORIGIN_X", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    pantext.Color
		wantErr bool
	}{
		{"#ff8000", pantext.RGB(255, 128, 0), false},
		{"ff8000", pantext.RGB(255, 128, 0), false},
		{"#fff", pantext.White, false},
		{"#000000", pantext.Black, false},
		{"red", pantext.Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestAccessors(t *testing.T) {
	c := Default()
	c.Missing = "Placeholder"
	c.Encoding = "RGB"
	c.LogLevel = "debug"

	if p, err := c.MissingPolicy(); err != nil || p != pantext.MissingGlyphPlaceholder {
		t.Errorf("MissingPolicy() = %v, %v", p, err)
	}
	if e, err := c.TextEncoding(); err != nil || e != text.EncodingRGB {
		t.Errorf("TextEncoding() = %v, %v", e, err)
	}
	if l, err := c.Level(); err != nil || l != slog.LevelDebug {
		t.Errorf("Level() = %v, %v", l, err)
	}
}
