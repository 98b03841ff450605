// Package trace intersects rays with transformed unit spheres and shades
// the visible hit with the Phong model.
package trace

import "github.com/taigrr/spheretrace/pkg/math3d"

// Ray is a half-line starting at Origin (a point) along Direction (a vector).
type Ray struct {
	Origin    math3d.Tuple4
	Direction math3d.Tuple4
}

// NewRay creates a new Ray.
func NewRay(origin, direction math3d.Tuple4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns origin + direction*t.
func (r Ray) Position(t float64) math3d.Tuple4 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform maps both origin and direction through m.
func (r Ray) Transform(m math3d.Mat4) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
