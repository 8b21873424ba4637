// Package glwindow is an OpenGL window surface for the viewer.
//
// The window is a small gpucontext host: it provides a device (its GL
// context), creates textures and draws them. Frames reach the screen
// through a present.TexturePresenter staged on the window. Textures are
// attached to read framebuffers and blitted onto the default framebuffer,
// so no shaders are involved. All glfw and GL calls run on the main thread
// through github.com/faiface/mainthread; the program must be started with
// mainthread.Run.
package glwindow

import (
	"context"
	"sync/atomic"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/pkg/errors"

	"github.com/gogpu/pantext"
	"github.com/gogpu/pantext/present"
	"github.com/gogpu/pantext/viewer"
)

// waitTimeout bounds how long Pump blocks in glfw so it notices
// cancellation.
const waitTimeout = 0.1

// Window is a fixed-size window. Frames have the size of its framebuffer,
// which on high density displays is larger than the window itself.
type Window struct {
	win      *glfw.Window
	renderer string
	surface  *present.TexturePresenter
	width    int // framebuffer width
	height   int // framebuffer height

	// pending is touched only on the main thread.
	pending []viewer.Event
	closed  atomic.Bool
}

// Open creates a non-resizable window of width×height screen coordinates.
func Open(title string, width, height int) (*Window, error) {
	w := &Window{}
	err := mainthread.CallErr(func() error {
		return w.open(title, width, height)
	})
	if err != nil {
		return nil, err
	}
	w.surface, err = present.NewTexturePresenter(w, w.width, w.height)
	if err != nil {
		mainthread.Call(w.destroy)
		return nil, errors.Wrap(err, "glwindow: surface")
	}
	pantext.Logger().Info("glwindow: opened",
		"width", width, "height", height,
		"frame_width", w.width, "frame_height", w.height, "scale", w.ScaleFactor())
	return w, nil
}

func (w *Window) open(title string, width, height int) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glwindow: init glfw")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return errors.Wrap(err, "glwindow: create window")
	}
	win.MakeContextCurrent()
	w.width, w.height = win.GetFramebufferSize()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return errors.Wrap(err, "glwindow: init gl")
	}

	w.renderer = gl.GoStr(gl.GetString(gl.RENDERER))

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.pending = append(w.pending, scrollEvent(xoff, yoff))
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, _ glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if ev, ok := mouseEvent(action); ok {
			w.pending = append(w.pending, ev)
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if ev, ok := keyEvent(key, action); ok {
			w.pending = append(w.pending, ev)
		}
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		w.pending = append(w.pending, viewer.Quit{})
	})
	win.SetRefreshCallback(func(_ *glfw.Window) {
		w.pending = append(w.pending, viewer.Redraw{})
	})

	w.win = win
	return nil
}

// FrameSize returns the size of frames accepted by Present.
func (w *Window) FrameSize() (width, height int) {
	return w.width, w.height
}

// ScaleFactor returns the window content scale.
func (w *Window) ScaleFactor() float64 {
	var scale float32 = 1
	mainthread.Call(func() {
		scale, _ = w.win.GetContentScale()
	})
	return float64(scale)
}

// Present uploads frame and shows it. It fails with
// present.ErrSurfaceClosed once the window is closed.
func (w *Window) Present(frame []byte, width, height int) error {
	if w.closed.Load() {
		return present.ErrSurfaceClosed
	}
	if err := w.surface.Present(frame, width, height); err != nil {
		return err
	}
	if err := w.surface.RenderTo(w); err != nil {
		return err
	}

	return mainthread.CallErr(func() error {
		if w.win.ShouldClose() {
			return present.ErrSurfaceClosed
		}
		w.win.SwapBuffers()
		return nil
	})
}

// Device returns nil: the window drives GL, not a WebGPU device.
func (w *Window) Device() gpucontext.Device { return nil }

// Queue returns nil.
func (w *Window) Queue() gpucontext.Queue { return nil }

// Adapter returns nil.
func (w *Window) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the format of the default framebuffer. sRGB
// encoding on write is never enabled.
func (w *Window) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// AdapterInfo names the GL renderer.
func (w *Window) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: w.renderer, Type: gpucontext.AdapterTypeUnknown}
}

// TextureCreator returns the window itself.
func (w *Window) TextureCreator() gpucontext.TextureCreator { return w }

// NewTextureFromRGBA creates a texture holding data, which must be
// width*height*4 bytes.
func (w *Window) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if err := present.CheckFrame(data, width, height); err != nil {
		return nil, errors.Wrap(err, "glwindow: new texture")
	}
	t := &texture{width: width, height: height}
	err := mainthread.CallErr(func() error {
		gl.GenTextures(1, &t.id)
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))

		gl.GenFramebuffers(1, &t.fbo)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, t.fbo)
		gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.id, 0)
		if status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			t.release()
			return errors.Errorf("glwindow: framebuffer incomplete: 0x%x", status)
		}
		return glError("new texture")
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// DrawTexture blits tex with its top-left corner at (x, y), measured from
// the top-left of the framebuffer. tex must come from NewTextureFromRGBA.
func (w *Window) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	t, ok := tex.(*texture)
	if !ok {
		return errors.Errorf("glwindow: cannot draw %T", tex)
	}
	x0 := int32(x)
	top := int32(w.height) - int32(y)

	return mainthread.CallErr(func() error {
		if t.id == 0 {
			return errTextureDestroyed
		}
		// Texture rows run top to bottom, GL rows bottom to top: flip on blit.
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, t.fbo)
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
		gl.BlitFramebuffer(0, 0, int32(t.width), int32(t.height),
			x0, top, x0+int32(t.width), top-int32(t.height), gl.COLOR_BUFFER_BIT, gl.NEAREST)
		return glError("draw texture")
	})
}

// Pump processes window events and forwards them to events until the
// window is closed or ctx is done. Pump does not close events.
func (w *Window) Pump(ctx context.Context, events chan<- viewer.Event) error {
	for !w.closed.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var batch []viewer.Event
		mainthread.Call(func() {
			if w.closed.Load() {
				return
			}
			glfw.WaitEventsTimeout(waitTimeout)
			batch, w.pending = w.pending, nil
		})

		for _, ev := range batch {
			select {
			case events <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

// Close destroys the window. Close is idempotent.
func (w *Window) Close() {
	if w.closed.Swap(true) {
		return
	}
	if w.surface != nil {
		_ = w.surface.Close()
	}
	mainthread.Call(w.destroy)
}

func (w *Window) destroy() {
	if w.win != nil {
		w.win.Destroy()
	}
	glfw.Terminate()
}

func scrollEvent(xoff, yoff float64) viewer.Event {
	return viewer.Scroll{DX: xoff, DY: yoff}
}

func mouseEvent(action glfw.Action) (viewer.Event, bool) {
	if action != glfw.Press {
		return nil, false
	}
	return viewer.Press{}, true
}

func keyEvent(key glfw.Key, action glfw.Action) (viewer.Event, bool) {
	if key == glfw.KeyEscape && action == glfw.Press {
		return viewer.Quit{}, true
	}
	return nil, false
}

var errTextureDestroyed = errors.New("glwindow: texture destroyed")

// texture is a GL texture bound to its own read framebuffer.
type texture struct {
	id     uint32
	fbo    uint32
	width  int
	height int
}

func (t *texture) Width() int  { return t.width }
func (t *texture) Height() int { return t.height }

// UpdateData replaces the texture pixels with data.
func (t *texture) UpdateData(data []byte) error {
	if err := present.CheckFrame(data, t.width, t.height); err != nil {
		return errors.Wrap(err, "glwindow: update texture")
	}
	return mainthread.CallErr(func() error {
		if t.id == 0 {
			return errTextureDestroyed
		}
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.width), int32(t.height),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
		return glError("update texture")
	})
}

// Destroy frees the texture. Destroy is idempotent.
func (t *texture) Destroy() {
	mainthread.Call(t.release)
}

// release must run on the main thread.
func (t *texture) release() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf("glwindow: %s: gl error 0x%x", op, code)
	}
	return nil
}
