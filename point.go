package pantext

// Coordinate is a signed pixel position in canvas space.
//
// Coordinates may be negative or lie beyond the canvas: glyph bearings and
// panning routinely push geometry off-canvas. Only ToIndex decides whether a
// coordinate addresses a pixel.
type Coordinate struct {
	X, Y int
}

// Pt is a convenience function to create a Coordinate.
func Pt(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the component-wise sum of two coordinates.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// ToIndex converts c to a row-major buffer index for a width×height grid.
// It reports false when X is outside [0, width) or Y is outside [0, height).
func (c Coordinate) ToIndex(width, height int) (int, bool) {
	if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
		return 0, false
	}
	return c.Y*width + c.X, true
}
