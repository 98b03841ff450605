// Package math3d provides the homogeneous tuple, color and matrix algebra
// used by the sphere tracer.
package math3d

import "math"

// Tuple4 represents a homogeneous 3D tuple.
// W == 1 marks a point, W == 0 marks a vector (a direction that is not
// affected by translation).
type Tuple4 struct {
	X, Y, Z, W float64
}

// T4 creates a new Tuple4 with an explicit W.
func T4(x, y, z, w float64) Tuple4 {
	return Tuple4{x, y, z, w}
}

// Point creates a point (w=1).
func Point(x, y, z float64) Tuple4 {
	return Tuple4{x, y, z, 1}
}

// Vector creates a vector (w=0).
func Vector(x, y, z float64) Tuple4 {
	return Tuple4{x, y, z, 0}
}

// Origin returns the point (0, 0, 0).
func Origin() Tuple4 {
	return Tuple4{0, 0, 0, 1}
}

// IsPoint reports whether w is exactly 1.
func (a Tuple4) IsPoint() bool {
	return a.W == 1
}

// IsVector reports whether w is exactly 0.
func (a Tuple4) IsVector() bool {
	return a.W == 0
}

// Add returns a + b. Point + vector is a point, vector + vector a vector.
func (a Tuple4) Add(b Tuple4) Tuple4 {
	return Tuple4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns a - b. Point - point is the vector between them.
func (a Tuple4) Sub(b Tuple4) Tuple4 {
	return Tuple4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Negate returns -a, all four components included.
func (a Tuple4) Negate() Tuple4 {
	return Tuple4{-a.X, -a.Y, -a.Z, -a.W}
}

// Scale returns the scalar product a * s.
func (a Tuple4) Scale(s float64) Tuple4 {
	return Tuple4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div returns the scalar division a / s.
func (a Tuple4) Div(s float64) Tuple4 {
	return a.Scale(1 / s)
}

// Dot returns the dot product over all four components.
func (a Tuple4) Dot(b Tuple4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the 3D cross product a × b as a vector.
func (a Tuple4) Cross(b Tuple4) Tuple4 {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Magnitude returns the length of the xyz part.
func (a Tuple4) Magnitude() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalize returns the unit tuple.
// The zero tuple is returned unchanged.
func (a Tuple4) Normalize() Tuple4 {
	l := a.Magnitude()
	if l == 0 {
		return a
	}
	return a.Div(l)
}

// Reflect reflects a around the normal n: a - 2*(a·n)*n.
func (a Tuple4) Reflect(n Tuple4) Tuple4 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// ApproxEqual reports whether every component is within Epsilon.
func (a Tuple4) ApproxEqual(b Tuple4) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y) &&
		ApproxEqual(a.Z, b.Z) && ApproxEqual(a.W, b.W)
}
