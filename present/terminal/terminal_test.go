// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package terminal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/pantext"
	"github.com/gogpu/pantext/present"
	"github.com/gogpu/pantext/viewer"
)

func newSimScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s, sim
}

func TestPresent_HalfBlocks(t *testing.T) {
	s, sim := newSimScreen(t, 3, 2)
	if w, h := s.PixelSize(); w != 3 || h != 4 {
		t.Fatalf("PixelSize() = %dx%d, want 3x4", w, h)
	}

	c := pantext.NewCanvas(2, 4)
	c.SetPixel(pantext.Pt(1, 2), pantext.RGB(255, 0, 0))
	c.SetPixel(pantext.Pt(1, 3), pantext.RGB(0, 0, 255))
	if err := s.Present(c.Bytes(), 2, 4); err != nil {
		t.Fatalf("Present() = %v", err)
	}

	tests := []struct {
		x, y   int
		fg, bg tcell.Color
	}{
		{1, 1, tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 0, 255)},
		{0, 0, tcell.NewRGBColor(0, 0, 0), tcell.NewRGBColor(0, 0, 0)},
		// Column 2 lies outside the 2-pixel-wide frame.
		{2, 1, offFrame, offFrame},
	}
	for _, tt := range tests {
		mainc, _, style, _ := sim.GetContent(tt.x, tt.y)
		if mainc != halfBlock {
			t.Errorf("cell (%d,%d) rune = %q, want %q", tt.x, tt.y, mainc, halfBlock)
		}
		fg, bg, _ := style.Decompose()
		if fg != tt.fg || bg != tt.bg {
			t.Errorf("cell (%d,%d) colors = %v/%v, want %v/%v", tt.x, tt.y, fg, bg, tt.fg, tt.bg)
		}
	}
}

func TestPresent_Errors(t *testing.T) {
	s, _ := newSimScreen(t, 3, 2)
	if err := s.Present(make([]byte, 3), 2, 2); !errors.Is(err, pantext.ErrFrameSize) {
		t.Errorf("Present(short) = %v, want ErrFrameSize", err)
	}
	s.Fini()
	if err := s.Present(make([]byte, 16), 2, 2); !errors.Is(err, present.ErrSurfaceClosed) {
		t.Errorf("Present() after Fini = %v, want ErrSurfaceClosed", err)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want viewer.Event
		ok   bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), viewer.Quit{}, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), viewer.Quit{}, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), viewer.Quit{}, true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), nil, false},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), viewer.Scroll{DY: 1}, true},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), viewer.Scroll{DX: -1}, true},
		{"wheel up", tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone), viewer.Scroll{DY: 1}, true},
		{"wheel down", tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone), viewer.Scroll{DY: -1}, true},
		{"wheel right", tcell.NewEventMouse(0, 0, tcell.WheelRight, tcell.ModNone), viewer.Scroll{DX: 1}, true},
		{"click", tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone), viewer.Press{}, true},
		{"motion", tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone), nil, false},
		{"resize", tcell.NewEventResize(80, 24), viewer.Redraw{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate() = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPump(t *testing.T) {
	s, sim := newSimScreen(t, 4, 2)

	events := make(chan viewer.Event, 16)
	done := make(chan error, 1)
	go func() { done <- s.Pump(context.Background(), events) }()

	_ = sim.PostEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	_ = sim.PostEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	_ = sim.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	want := []viewer.Event{viewer.Scroll{DY: -1}, viewer.Press{}, viewer.Quit{}}
	var got []viewer.Event
	timeout := time.After(5 * time.Second)
	for len(got) < len(want) {
		select {
		case ev := <-events:
			if _, redraw := ev.(viewer.Redraw); redraw {
				continue
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatalf("received %v, want %v", got, want)
		}
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}

	s.Fini()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Pump() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Pump() did not return after Fini")
	}
}
