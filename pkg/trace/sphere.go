package trace

import (
	"fmt"
	"math"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

// Sphere is the unit sphere at the origin placed in the world by an affine
// transform. Spheres are compared by pointer: an Intersection records which
// *Sphere it hit.
type Sphere struct {
	transform math3d.Mat4
	inverse   math3d.Mat4
	invErr    error
	material  Material
}

// NewSphere creates a sphere with the identity transform and the default material.
func NewSphere() *Sphere {
	return &Sphere{
		transform: math3d.Identity(),
		inverse:   math3d.Identity(),
		material:  DefaultMaterial(),
	}
}

// Transform returns the object-to-world transform.
func (s *Sphere) Transform() math3d.Mat4 {
	return s.transform
}

// SetTransform replaces the object-to-world transform. A singular transform
// is accepted here; Intersect and NormalAt report it.
func (s *Sphere) SetTransform(m math3d.Mat4) {
	s.transform = m
	s.inverse, s.invErr = m.Inverse()
}

// Material returns the surface material.
func (s *Sphere) Material() Material {
	return s.material
}

// SetMaterial replaces the surface material.
func (s *Sphere) SetMaterial(m Material) {
	s.material = m
}

// Intersect returns the two points where r crosses the sphere, in
// ascending t, or none when it misses. Both intersections are returned even
// when they lie behind the ray origin.
func (s *Sphere) Intersect(r Ray) (Intersections, error) {
	if s.invErr != nil {
		return nil, fmt.Errorf("intersect sphere: %w", s.invErr)
	}
	local := r.Transform(s.inverse)

	sphereToRay := local.Origin.Sub(math3d.Origin())
	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1
	discriminant := b*b - 4*a*c

	// a zero direction gives 0/0 for both roots
	if a == 0 || math.IsNaN(discriminant) {
		return nil, fmt.Errorf("intersect sphere: %w", ErrNaNIntersection)
	}
	if discriminant < 0 {
		return nil, nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	return Intersections{
		{T: (-b - sqrtDisc) / (2 * a), Object: s},
		{T: (-b + sqrtDisc) / (2 * a), Object: s},
	}, nil
}

// NormalAt returns the unit surface normal at a world-space point.
func (s *Sphere) NormalAt(worldPoint math3d.Tuple4) (math3d.Tuple4, error) {
	if s.invErr != nil {
		return math3d.Tuple4{}, fmt.Errorf("sphere normal: %w", s.invErr)
	}
	objectPoint := s.inverse.MulTuple(worldPoint)
	objectNormal := objectPoint.Sub(math3d.Origin())
	worldNormal := s.inverse.Transpose().MulTuple(objectNormal)
	// the transposed inverse can leak translation into w
	worldNormal.W = 0
	return worldNormal.Normalize(), nil
}
