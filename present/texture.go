// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/pantext"
)

// Texture presentation errors.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("present: nil DeviceProvider")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("present: invalid dimensions")

	// ErrUnsupportedFormat is returned when the surface format cannot show
	// color frames.
	ErrUnsupportedFormat = errors.New("present: unsupported surface format")

	// ErrNoTextureCreator is returned when the draw context cannot create
	// textures.
	ErrNoTextureCreator = errors.New("present: draw context has no texture creator")

	// ErrTextureSize is returned when the creator hands back a texture of
	// another size than requested.
	ErrTextureSize = errors.New("present: texture size mismatch")
)

// textureDestroyer is implemented by textures that hold GPU memory.
type textureDestroyer interface {
	Destroy()
}

// srgbToLinear maps an sRGB-encoded channel to its linear value.
var srgbToLinear = func() (lut [256]uint8) {
	for i := range lut {
		v := float64(i) / 255
		r, _, _ := colorful.Color{R: v, G: v, B: v}.LinearRgb()
		lut[i] = uint8(math.Round(r * 255))
	}
	return lut
}()

// TexturePresenter uploads frames to a GPU texture for a host that owns
// the device and the draw loop: a gpucontext host application, or the
// glfw window of the pantext command.
//
// Present only stages the frame. The host calls RenderTo from its draw
// callback, which creates the texture on first use, uploads the staged
// frame if it changed and draws it at the origin.
//
// Canvas bytes are sRGB encoded. When the provider's surface format is an
// sRGB format the GPU encodes on write, so staged frames are converted to
// linear color first.
//
// TexturePresenter is NOT safe for concurrent use.
type TexturePresenter struct {
	surface gputypes.TextureFormat
	linear  bool
	width   int
	height  int
	frame   []byte
	texture gpucontext.Texture
	dirty   bool
	closed  bool
}

// NewTexturePresenter creates a TexturePresenter for width×height frames
// shown on provider's surface.
func NewTexturePresenter(provider gpucontext.DeviceProvider, width, height int) (*TexturePresenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	surface := provider.SurfaceFormat()
	if surface.IsDepthStencil() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, surface)
	}

	info := provider.AdapterInfo()
	pantext.Logger().Debug("present: texture presenter",
		"width", width, "height", height, "surface_format", surface.String(),
		"adapter", info.Name, "adapter_type", info.Type.String())

	return &TexturePresenter{
		surface: surface,
		linear:  surface.IsSrgb(),
		width:   width,
		height:  height,
		frame:   make([]byte, width*height*4),
	}, nil
}

// SurfaceFormat returns the provider's surface format.
func (p *TexturePresenter) SurfaceFormat() gputypes.TextureFormat {
	return p.surface
}

// Linear reports whether frames are converted to linear color on upload.
func (p *TexturePresenter) Linear() bool {
	return p.linear
}

// Present stages frame for the next RenderTo.
func (p *TexturePresenter) Present(frame []byte, width, height int) error {
	if p.closed {
		return ErrSurfaceClosed
	}
	if err := CheckFrame(frame, width, height); err != nil {
		return err
	}
	if width != p.width || height != p.height {
		return fmt.Errorf("%w: frame is %dx%d, texture is %dx%d",
			pantext.ErrFrameSize, width, height, p.width, p.height)
	}

	if p.linear {
		for i := 0; i < len(frame); i += 4 {
			p.frame[i+0] = srgbToLinear[frame[i+0]]
			p.frame[i+1] = srgbToLinear[frame[i+1]]
			p.frame[i+2] = srgbToLinear[frame[i+2]]
			p.frame[i+3] = frame[i+3]
		}
	} else {
		copy(p.frame, frame)
	}
	p.dirty = true
	return nil
}

// IsDirty reports whether a staged frame has not been uploaded yet.
func (p *TexturePresenter) IsDirty() bool {
	return p.dirty
}

// RenderTo uploads the staged frame if needed and draws it at (0, 0).
// Nothing is drawn before the first Present.
func (p *TexturePresenter) RenderTo(dc gpucontext.TextureDrawer) error {
	if p.closed {
		return ErrSurfaceClosed
	}
	if p.texture == nil && !p.dirty {
		return nil
	}

	if p.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		tex, err := creator.NewTextureFromRGBA(p.width, p.height, p.frame)
		if err != nil {
			return fmt.Errorf("present: NewTextureFromRGBA failed: %w", err)
		}
		if tex.Width() != p.width || tex.Height() != p.height {
			if d, ok := tex.(textureDestroyer); ok {
				d.Destroy()
			}
			return fmt.Errorf("%w: got %dx%d, want %dx%d",
				ErrTextureSize, tex.Width(), tex.Height(), p.width, p.height)
		}
		p.texture = tex
		p.dirty = false
	}

	if p.dirty {
		if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(p.frame); err != nil {
				return fmt.Errorf("present: texture update failed: %w", err)
			}
		}
		p.dirty = false
	}

	return dc.DrawTexture(p.texture, 0, 0)
}

// Close releases the texture. Close is idempotent.
func (p *TexturePresenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if d, ok := p.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.texture = nil
	return nil
}
