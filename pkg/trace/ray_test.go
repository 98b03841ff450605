package trace

import (
	"testing"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

func TestRayPosition(t *testing.T) {
	r := NewRay(math3d.Point(2, 3, 4), math3d.Vector(1, 0, 0))
	tests := []struct {
		t        float64
		expected math3d.Tuple4
	}{
		{0, math3d.Point(2, 3, 4)},
		{1, math3d.Point(3, 3, 4)},
		{-1, math3d.Point(1, 3, 4)},
		{2.5, math3d.Point(4.5, 3, 4)},
	}
	for _, tc := range tests {
		if got := r.Position(tc.t); got != tc.expected {
			t.Errorf("Position(%v) = %v, want %v", tc.t, got, tc.expected)
		}
	}
}

func TestRayTransform(t *testing.T) {
	r := NewRay(math3d.Point(1, 2, 3), math3d.Vector(0, 1, 0))

	moved := r.Transform(math3d.Translate(3, 4, 5))
	if moved.Origin != math3d.Point(4, 6, 8) {
		t.Errorf("translated origin = %v, want (4,6,8)", moved.Origin)
	}
	if moved.Direction != math3d.Vector(0, 1, 0) {
		t.Errorf("translation should not change direction, got %v", moved.Direction)
	}

	scaled := r.Transform(math3d.Scale(2, 3, 4))
	if scaled.Origin != math3d.Point(2, 6, 12) {
		t.Errorf("scaled origin = %v, want (2,6,12)", scaled.Origin)
	}
	if scaled.Direction != math3d.Vector(0, 3, 0) {
		t.Errorf("scaled direction = %v, want (0,3,0)", scaled.Direction)
	}

	if r.Origin != math3d.Point(1, 2, 3) {
		t.Errorf("Transform must not modify the receiver, origin now %v", r.Origin)
	}
}
