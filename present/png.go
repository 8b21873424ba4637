// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/gogpu/pantext"
)

// PNGPresenter writes every frame to a PNG file.
//
// If the path contains a %d verb it is formatted with the frame number,
// starting at 0, so each frame gets its own file. Otherwise each frame
// overwrites the previous one.
type PNGPresenter struct {
	path   string
	frames int
}

// NewPNGPresenter creates a PNGPresenter writing to path.
func NewPNGPresenter(path string) *PNGPresenter {
	return &PNGPresenter{path: path}
}

// Present encodes frame and writes it to the next file.
func (p *PNGPresenter) Present(frame []byte, width, height int) error {
	if err := CheckFrame(frame, width, height); err != nil {
		return err
	}

	path := p.path
	if strings.Contains(path, "%d") {
		path = fmt.Sprintf(path, p.frames)
	}

	img := &image.RGBA{
		Pix:    frame,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("present: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("present: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("present: close %s: %w", path, err)
	}

	pantext.Logger().Debug("present: wrote frame", "path", path, "frame", p.frames)
	p.frames++
	return nil
}

// Frames returns the number of frames written.
func (p *PNGPresenter) Frames() int {
	return p.frames
}
