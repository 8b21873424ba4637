// Command pantext renders a line of text and pans it with the scroll wheel.
//
// Usage:
//
//	pantext [flags] [text...]
//
// Modes:
//
//	-mode window     OpenGL window (default)
//	-mode terminal   half-block pixels in the terminal
//	-mode png        render one frame to -output and exit
//
// Every flag can also be set through a PANTEXT_* environment variable,
// e.g. PANTEXT_FAMILY="Go Mono". Flags take precedence.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/faiface/mainthread"
	"golang.org/x/term"

	"github.com/gogpu/pantext"
	"github.com/gogpu/pantext/internal/config"
	"github.com/gogpu/pantext/internal/glwindow"
	"github.com/gogpu/pantext/present"
	"github.com/gogpu/pantext/present/terminal"
	"github.com/gogpu/pantext/text"
	"github.com/gogpu/pantext/viewer"
)

// Scroll scales used when -scroll-scale is 0. glfw reports scroll in
// lines, the terminal in wheel ticks of one cell (two pixels).
const (
	windowScrollScale   = 20
	terminalScrollScale = 2
)

func main() {
	cfg, fs, err := config.Load("pantext", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	pantext.SetLogger(newLogger(os.Stderr, level))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeWindow:
		mainthread.Run(func() {
			err = runWindow(ctx, cfg)
		})
	case config.ModeTerminal:
		err = runTerminal(ctx, cfg, fs, level)
	case config.ModePNG:
		err = runPNG(cfg)
	}

	if err != nil {
		pantext.Logger().Error("pantext: exiting", "err", err)
		stop()
		os.Exit(1)
	}
}

// newLogger returns a text logger for interactive use and a JSON logger
// when output is redirected.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// newRenderer loads the configured font and builds a renderer for a
// width×height canvas.
func newRenderer(cfg config.Config, scale float64, width, height int, origin pantext.Coordinate) (*pantext.Renderer, *text.Rasterizer, error) {
	// Validate has already checked colors, policy and encoding.
	fg, _ := config.ParseColor(cfg.Foreground)
	bg, _ := config.ParseColor(cfg.Background)
	ph, _ := config.ParseColor(cfg.Placeholder)
	policy, _ := cfg.MissingPolicy()
	enc, _ := cfg.TextEncoding()

	src, err := text.NewRasterizer(
		text.WithSystemFonts(cfg.SystemFonts),
		text.WithFontCacheDir(cfg.FontCacheDir),
		text.WithFallback(cfg.Fallback),
		text.WithScaleFactor(scale),
		text.WithEncoding(enc),
		text.WithForeground(fg),
	)
	if err != nil {
		return nil, nil, err
	}

	size := pantext.Size(cfg.Size)
	font, err := src.LoadFont(pantext.FontDesc{Family: cfg.Family, Style: cfg.Style}, size)
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}

	r, err := pantext.NewRenderer(src, font, size,
		pantext.WithCanvasSize(width, height),
		pantext.WithOrigin(origin),
		pantext.WithBackground(bg),
		pantext.WithMissingGlyph(policy),
		pantext.WithPlaceholderColor(ph),
	)
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}
	return r, src, nil
}

// pumpFunc forwards surface input to events until the surface closes.
type pumpFunc func(ctx context.Context, events chan<- viewer.Event) error

// runViewer drives the viewer from a surface's event pump. It returns
// when the viewer stops; a cancelled context is a normal exit.
func runViewer(ctx context.Context, cfg config.Config, r *pantext.Renderer, p present.Presenter, pump pumpFunc, scrollScale float64) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan viewer.Event, 64)
	go func() {
		defer close(events)
		if err := pump(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
			pantext.Logger().Warn("pantext: event pump stopped", "err", err)
		}
	}()

	if cfg.ScrollScale > 0 {
		scrollScale = cfg.ScrollScale
	}
	v := viewer.New(r, cfg.Text, p,
		viewer.WithScrollScale(scrollScale),
		viewer.WithInitialPan(pantext.Pt(cfg.PanX, cfg.PanY)),
	)
	err := v.Run(ctx, events)
	pantext.Logger().Info("pantext: session ended", "frames", v.Frames(), "pan", v.Pan())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runWindow(ctx context.Context, cfg config.Config) error {
	win, err := glwindow.Open(cfg.Title, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer win.Close()

	scale := cfg.ScaleFactor
	if scale == 0 {
		scale = win.ScaleFactor()
	}
	w, h := win.FrameSize()
	r, src, err := newRenderer(cfg, scale, w, h, pantext.Pt(cfg.OriginX, cfg.OriginY))
	if err != nil {
		return err
	}
	defer src.Close()

	return runViewer(ctx, cfg, r, win, win.Pump, windowScrollScale)
}

func runTerminal(ctx context.Context, cfg config.Config, fs *flag.FlagSet, level slog.Level) error {
	scr, err := terminal.New()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}

	// Log lines would tear the picture; hold them until the terminal is
	// restored.
	var logs bytes.Buffer
	pantext.SetLogger(newLogger(&logs, level))
	defer func() {
		scr.Fini()
		pantext.SetLogger(newLogger(os.Stderr, level))
		_, _ = os.Stderr.Write(logs.Bytes())
	}()

	w, h := scr.PixelSize()
	origin := pantext.Pt(cfg.OriginX, cfg.OriginY)
	if !flagSet(fs, "origin-x") {
		origin.X = 1
	}
	if !flagSet(fs, "origin-y") {
		origin.Y = (h + int(math.Round(cfg.Size))) / 2
	}

	scale := cfg.ScaleFactor
	if scale == 0 {
		scale = 1
	}
	r, src, err := newRenderer(cfg, scale, w, h, origin)
	if err != nil {
		return err
	}
	defer src.Close()

	return runViewer(ctx, cfg, r, scr, scr.Pump, terminalScrollScale)
}

func runPNG(cfg config.Config) error {
	scale := cfg.ScaleFactor
	if scale == 0 {
		scale = 1
	}
	r, src, err := newRenderer(cfg, scale, cfg.Width, cfg.Height, pantext.Pt(cfg.OriginX, cfg.OriginY))
	if err != nil {
		return err
	}
	defer src.Close()

	c, err := r.Render(pantext.RenderRequest{Text: cfg.Text, Pan: pantext.Pt(cfg.PanX, cfg.PanY)})
	if err != nil {
		return err
	}
	p := present.NewPNGPresenter(cfg.Output)
	if err := p.Present(c.Bytes(), c.Width(), c.Height()); err != nil {
		return err
	}
	pantext.Logger().Info("pantext: wrote png", "path", cfg.Output, "width", c.Width(), "height", c.Height())
	return nil
}

// flagSet reports whether name was given on the command line or through
// the environment.
func flagSet(fs *flag.FlagSet, name string) bool {
	if _, ok := os.LookupEnv(config.EnvName(name)); ok {
		return true
	}
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
