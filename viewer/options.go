package viewer

import "github.com/gogpu/pantext"

// Option configures a Viewer during creation.
type Option func(*options)

type options struct {
	scrollScale float64
	initialPan  pantext.Coordinate
}

func defaultOptions() options {
	return options{scrollScale: 1}
}

// WithScrollScale sets the pixels moved per scroll unit. Surfaces that
// report scroll in lines or wheel ticks need a scale above 1.
func WithScrollScale(scale float64) Option {
	return func(o *options) {
		o.scrollScale = scale
	}
}

// WithInitialPan sets the pan offset of the first pass.
func WithInitialPan(pan pantext.Coordinate) Option {
	return func(o *options) {
		o.initialPan = pan
	}
}
