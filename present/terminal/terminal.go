// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package terminal presents frames in a terminal and turns terminal input
// into viewer events.
//
// Every character cell shows two vertically stacked pixels with the upper
// half block rune: the foreground is the upper pixel, the background the
// lower one. Frames larger than the terminal are cropped at the right and
// bottom edges.
package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/pantext"
	"github.com/gogpu/pantext/present"
	"github.com/gogpu/pantext/viewer"
)

// halfBlock is the upper half block rune.
const halfBlock = '▀'

// offFrame fills cells beyond the frame edges.
var offFrame = tcell.NewRGBColor(0, 0, 0)

// Screen is a tcell screen used as a presentation surface and event
// source.
type Screen struct {
	screen tcell.Screen
	mu     sync.Mutex
	closed bool
}

// New creates a Screen on the controlling terminal. Call Init before use.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing tcell screen, such as a simulation
// screen in tests.
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init initializes the terminal and enables mouse reporting.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	return nil
}

// Fini restores the terminal. Pump returns once the screen is finalized.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// PixelSize returns the frame size that fills the terminal exactly.
func (s *Screen) PixelSize() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols, rows := s.screen.Size()
	return cols, rows * 2
}

// Present draws frame and shows it.
func (s *Screen) Present(frame []byte, width, height int) error {
	if err := present.CheckFrame(frame, width, height); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return present.ErrSurfaceClosed
	}

	pixel := func(x, y int) tcell.Color {
		if x >= width || y >= height {
			return offFrame
		}
		i := (y*width + x) * 4
		return tcell.NewRGBColor(int32(frame[i]), int32(frame[i+1]), int32(frame[i+2]))
	}

	cols, rows := s.screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			style := tcell.StyleDefault.
				Foreground(pixel(cx, cy*2)).
				Background(pixel(cx, cy*2+1))
			s.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Pump reads terminal events and forwards them to events until the screen
// is finalized or ctx is done. Pump does not close events.
func (s *Screen) Pump(ctx context.Context, events chan<- viewer.Event) error {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}

		out, ok := translate(ev)
		if !ok {
			continue
		}
		select {
		case events <- out:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// translate maps a terminal event to a viewer event.
func translate(ev tcell.Event) (viewer.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return viewer.Quit{}, true
		case tcell.KeyUp:
			return viewer.Scroll{DY: 1}, true
		case tcell.KeyDown:
			return viewer.Scroll{DY: -1}, true
		case tcell.KeyLeft:
			return viewer.Scroll{DX: -1}, true
		case tcell.KeyRight:
			return viewer.Scroll{DX: 1}, true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return viewer.Quit{}, true
			}
		}

	case *tcell.EventMouse:
		b := ev.Buttons()
		switch {
		case b&tcell.WheelUp != 0:
			return viewer.Scroll{DY: 1}, true
		case b&tcell.WheelDown != 0:
			return viewer.Scroll{DY: -1}, true
		case b&tcell.WheelLeft != 0:
			return viewer.Scroll{DX: -1}, true
		case b&tcell.WheelRight != 0:
			return viewer.Scroll{DX: 1}, true
		case b&(tcell.Button1|tcell.Button2|tcell.Button3) != 0:
			return viewer.Press{}, true
		}

	case *tcell.EventResize:
		pantext.Logger().Debug("terminal: resize")
		return viewer.Redraw{}, true
	}
	return nil, false
}
