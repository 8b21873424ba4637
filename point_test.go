package pantext

import (
	"math"
	"testing"
)

func TestCoordinateToIndex(t *testing.T) {
	tests := []struct {
		name   string
		c      Coordinate
		w, h   int
		want   int
		wantOK bool
	}{
		{"origin", Pt(0, 0), 10, 5, 0, true},
		{"last pixel", Pt(9, 4), 10, 5, 49, true},
		{"row stride", Pt(3, 2), 10, 5, 23, true},
		{"x at width", Pt(10, 0), 10, 5, 0, false},
		{"y at height", Pt(0, 5), 10, 5, 0, false},
		{"negative x", Pt(-1, 0), 10, 5, 0, false},
		{"negative y", Pt(0, -1), 10, 5, 0, false},
		{"far negative", Pt(-1000, -1000), 10, 5, 0, false},
		{"min int", Pt(math.MinInt, math.MinInt), 10, 5, 0, false},
		{"max int", Pt(math.MaxInt, math.MaxInt), 10, 5, 0, false},
		{"empty grid", Pt(0, 0), 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.c.ToIndex(tt.w, tt.h)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("%v.ToIndex(%d, %d) = (%d, %v), want (%d, %v)",
					tt.c, tt.w, tt.h, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCoordinateAdd(t *testing.T) {
	got := Pt(3, -4).Add(Pt(-5, 10))
	if got != Pt(-2, 6) {
		t.Errorf("Add() = %v, want %v", got, Pt(-2, 6))
	}
}
