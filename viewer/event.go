package viewer

// Event is an input event driving the render loop. It is one of Scroll,
// Press, Redraw or Quit.
type Event interface {
	event()
}

// Scroll is a pan delta from a scroll device, in device units. The loop
// multiplies it by the scroll scale before accumulating it.
type Scroll struct {
	DX, DY float64
}

// Press is a pointer press. It triggers a redraw without a state change.
type Press struct{}

// Redraw asks for a redraw, for example after the surface was exposed.
type Redraw struct{}

// Quit ends the loop between passes.
type Quit struct{}

func (Scroll) event() {}
func (Press) event()  {}
func (Redraw) event() {}
func (Quit) event()   {}
