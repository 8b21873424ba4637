// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/pantext"
)

func TestFunc(t *testing.T) {
	var got int
	p := Func(func(frame []byte, width, height int) error {
		got = width * height
		return nil
	})
	if err := p.Present(make([]byte, 24), 3, 2); err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("Func called with %d pixels, want 6", got)
	}
}

func TestCheckFrame(t *testing.T) {
	tests := []struct {
		name    string
		n, w, h int
		wantErr bool
	}{
		{"exact", 16, 2, 2, false},
		{"empty", 0, 0, 0, false},
		{"short", 15, 2, 2, true},
		{"rgb sized", 12, 2, 2, true},
		{"negative", 0, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFrame(make([]byte, tt.n), tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFrame() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, pantext.ErrFrameSize) {
				t.Errorf("CheckFrame() = %v, want ErrFrameSize", err)
			}
		})
	}
}

func TestPNGPresenter(t *testing.T) {
	dir := t.TempDir()
	p := NewPNGPresenter(filepath.Join(dir, "frame-%d.png"))

	c := pantext.NewCanvas(4, 3)
	c.SetPixel(pantext.Pt(1, 2), pantext.RGB(10, 20, 30))
	for i := 0; i < 2; i++ {
		if err := p.Present(c.Bytes(), 4, 3); err != nil {
			t.Fatalf("Present() = %v", err)
		}
	}
	if p.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", p.Frames())
	}

	f, err := os.Open(filepath.Join(dir, "frame-1.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
	r, g, b, a := img.At(1, 2).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
		t.Errorf("pixel = (%d,%d,%d,%d), want (10,20,30,255)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestPNGPresenter_BadFrame(t *testing.T) {
	p := NewPNGPresenter(filepath.Join(t.TempDir(), "out.png"))
	if err := p.Present(make([]byte, 5), 4, 3); !errors.Is(err, pantext.ErrFrameSize) {
		t.Errorf("Present() = %v, want ErrFrameSize", err)
	}
	if p.Frames() != 0 {
		t.Errorf("Frames() = %d after failure, want 0", p.Frames())
	}
}
