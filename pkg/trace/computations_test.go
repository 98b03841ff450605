package trace

import (
	"errors"
	"testing"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

func TestPrepareComputations(t *testing.T) {
	tests := []struct {
		name    string
		origin  math3d.Tuple4
		t       float64
		point   math3d.Tuple4
		normalv math3d.Tuple4
		inside  bool
	}{
		{"outside", math3d.Point(0, 0, -5), 4, math3d.Point(0, 0, -1), math3d.Vector(0, 0, -1), false},
		{"inside", math3d.Point(0, 0, 0), 1, math3d.Point(0, 0, 1), math3d.Vector(0, 0, -1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRay(tc.origin, math3d.Vector(0, 0, 1))
			s := NewSphere()
			comps, err := PrepareComputations(NewIntersection(tc.t, s), r)
			if err != nil {
				t.Fatalf("PrepareComputations failed: %v", err)
			}
			if comps.T != tc.t || comps.Object != s {
				t.Errorf("comps should carry t and object, got t=%v", comps.T)
			}
			if !tupleNear(comps.Point, tc.point) {
				t.Errorf("Point = %v, want %v", comps.Point, tc.point)
			}
			if !tupleNear(comps.EyeV, math3d.Vector(0, 0, -1)) {
				t.Errorf("EyeV = %v, want (0,0,-1)", comps.EyeV)
			}
			if !tupleNear(comps.NormalV, tc.normalv) {
				t.Errorf("NormalV = %v, want %v", comps.NormalV, tc.normalv)
			}
			if comps.Inside != tc.inside {
				t.Errorf("Inside = %v, want %v", comps.Inside, tc.inside)
			}
		})
	}
}

func TestPrepareComputationsWithoutObject(t *testing.T) {
	r := NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))
	_, err := PrepareComputations(Intersection{T: 4}, r)
	if !errors.Is(err, ErrNoObject) {
		t.Errorf("expected ErrNoObject, got %v", err)
	}
}
