// Package viewer drives pantext render passes from input events.
package viewer

import (
	"context"
	"fmt"
	"math"

	"github.com/gogpu/pantext"
	"github.com/gogpu/pantext/present"
)

// Viewer owns the pan state of an interactive session and renders one pass
// per input event.
//
// Horizontal scroll moves the text against the scroll direction and
// vertical scroll moves it with the scroll direction: pan.X -= dx and
// pan.Y += dy, both scaled. The pan accumulates for the life of the
// Viewer; only the pen position resets every pass.
type Viewer struct {
	renderer  *pantext.Renderer
	text      string
	presenter present.Presenter
	scale     float64

	// Pan is accumulated in float so fractional scroll deltas are not lost.
	panX, panY float64

	canvas *pantext.Canvas
	frame  []byte
	frames int
}

// New creates a Viewer that renders text with r and hands frames to p.
func New(r *pantext.Renderer, text string, p present.Presenter, opts ...Option) *Viewer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w, h := r.CanvasSize()
	return &Viewer{
		renderer:  r,
		text:      text,
		presenter: p,
		scale:     o.scrollScale,
		panX:      float64(o.initialPan.X),
		panY:      float64(o.initialPan.Y),
		canvas:    pantext.NewCanvas(w, h),
		frame:     make([]byte, w*h*4),
	}
}

// Pan returns the current pan offset in whole pixels.
func (v *Viewer) Pan() pantext.Coordinate {
	return pantext.Pt(int(math.Round(v.panX)), int(math.Round(v.panY)))
}

// Frames returns the number of completed passes.
func (v *Viewer) Frames() int {
	return v.frames
}

// Run renders the first frame, then one frame per event until a Quit
// event, the events channel closing, ctx being cancelled or the presenter
// failing.
//
// A presenter error ends the session and Run returns nil. A render error
// is returned; no frame is presented for that pass. On cancellation Run
// returns ctx.Err(). Events are never processed mid-pass.
func (v *Viewer) Run(ctx context.Context, events <-chan Event) error {
	if done, err := v.redraw(); done || err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case Quit:
				pantext.Logger().Info("viewer: quit", "frames", v.frames)
				return nil
			case Scroll:
				v.panX -= ev.DX * v.scale
				v.panY += ev.DY * v.scale
			case Press, Redraw:
			default:
				continue
			}
			if done, err := v.redraw(); done || err != nil {
				return err
			}
		}
	}
}

// redraw runs one pass and presents it. done reports that the surface is
// gone and the loop should stop.
func (v *Viewer) redraw() (done bool, err error) {
	n := v.frames
	pan := v.Pan()
	log := pantext.Logger()
	log.Debug("redraw", "frame", n, "pan_x", pan.X, "pan_y", pan.Y)

	if err := v.renderer.RenderInto(pantext.RenderRequest{Text: v.text, Pan: pan}, v.canvas); err != nil {
		return true, fmt.Errorf("viewer: frame %d: %w", n, err)
	}
	if err := v.canvas.WriteRGBA(v.frame); err != nil {
		return true, err
	}
	if err := v.presenter.Present(v.frame, v.canvas.Width(), v.canvas.Height()); err != nil {
		log.Warn("viewer: presentation failed, stopping", "frame", n, "err", err)
		return true, nil
	}

	v.frames++
	log.Debug("end redraw", "frame", n)
	return false, nil
}
