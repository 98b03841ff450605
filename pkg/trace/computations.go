package trace

import (
	"errors"
	"fmt"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

// ErrNoObject is returned when preparing an intersection without an object.
var ErrNoObject = errors.New("intersection has no object")

// Computations is the local shading state for a hit.
type Computations struct {
	T       float64
	Object  *Sphere
	Point   math3d.Tuple4
	EyeV    math3d.Tuple4
	NormalV math3d.Tuple4
	Inside  bool // ray origin is inside Object; NormalV has been flipped
}

// PrepareComputations derives the point, eye vector and normal for hit.
// When the normal faces away from the eye the ray started inside the object:
// the normal is flipped and Inside is set.
func PrepareComputations(hit Intersection, r Ray) (Computations, error) {
	if hit.Object == nil {
		return Computations{}, fmt.Errorf("prepare computations: %w", ErrNoObject)
	}
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  r.Position(hit.T),
		EyeV:   r.Direction.Negate(),
	}
	normal, err := hit.Object.NormalAt(comps.Point)
	if err != nil {
		return Computations{}, fmt.Errorf("prepare computations: %w", err)
	}
	comps.NormalV = normal
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	return comps, nil
}
