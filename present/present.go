// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"fmt"

	"github.com/gogpu/pantext"
)

// ErrSurfaceClosed is returned by a Presenter whose surface has gone away.
// A render loop treats it, like any presentation error, as the end of the
// session rather than a failure.
var ErrSurfaceClosed = errors.New("present: surface closed")

// Presenter displays finished frames.
//
// frame is tightly packed 8-bit RGBA, row-major, top row first, with alpha
// always 255, as produced by pantext.Canvas.Bytes. The presenter must not
// retain frame after Present returns.
type Presenter interface {
	Present(frame []byte, width, height int) error
}

// Func adapts an ordinary function to the Presenter interface.
type Func func(frame []byte, width, height int) error

// Present calls f(frame, width, height).
func (f Func) Present(frame []byte, width, height int) error {
	return f(frame, width, height)
}

// CheckFrame reports whether frame has the size of a width×height RGBA
// image.
func CheckFrame(frame []byte, width, height int) error {
	if width < 0 || height < 0 || len(frame) != width*height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d", pantext.ErrFrameSize, len(frame), width, height)
	}
	return nil
}
