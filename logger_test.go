package pantext

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_WithAttrs(t *testing.T) {
	h := nopHandler{}
	got := h.WithAttrs([]slog.Attr{slog.String("key", "val")})
	if _, ok := got.(nopHandler); !ok {
		t.Errorf("nopHandler.WithAttrs() returned %T, want nopHandler", got)
	}
}

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("redraw", "frame", 1)
	if !strings.Contains(buf.String(), "redraw") {
		t.Errorf("log output = %q, want it to contain %q", buf.String(), "redraw")
	}
}

func TestSetLogger_SkippedGlyphWarning(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer SetLogger(nil)

	l := testLayout(newFakeSource(testGlyphs()))
	l.Missing = MissingGlyphSkip
	if _, err := l.Composite("a?", Pt(0, 0), NewCanvas(20, 20)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "skipping glyph") || !strings.Contains(out, "char=?") {
		t.Errorf("log output = %q, want a skipped glyph warning for '?'", out)
	}
}
