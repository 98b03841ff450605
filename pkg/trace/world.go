package trace

import (
	"fmt"
	"slices"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

// Background is the color of rays that hit nothing.
var Background = math3d.Black

// World is a set of spheres lit by at most one point light.
// Mutate a World only between renders; tracing reads it without locking.
type World struct {
	objects []*Sphere
	light   *PointLight
}

// NewWorld creates an empty world with no light.
func NewWorld() *World {
	return &World{}
}

// DefaultWorld creates the reference scene: a light at (-10, 10, -10), a
// unit sphere with a green-tinted material and a half-size sphere inside it.
func DefaultWorld() *World {
	outer := NewSphere()
	m := DefaultMaterial()
	m.Color = math3d.RGB(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := NewSphere()
	inner.SetTransform(math3d.ScaleUniform(0.5))

	w := NewWorld()
	w.AddObject(outer, inner)
	w.SetLight(NewPointLight(math3d.Point(-10, 10, -10), math3d.White))
	return w
}

// Objects returns a copy of the sphere list in insertion order. The spheres
// themselves are shared.
func (w *World) Objects() []*Sphere {
	return slices.Clone(w.objects)
}

// AddObject appends spheres to the world.
func (w *World) AddObject(objects ...*Sphere) {
	w.objects = append(w.objects, objects...)
}

// Light returns the light and whether one is set.
func (w *World) Light() (PointLight, bool) {
	if w.light == nil {
		return PointLight{}, false
	}
	return *w.light, true
}

// SetLight sets the world's light, replacing any existing one.
func (w *World) SetLight(l PointLight) {
	w.light = &l
}

// ClearLight removes the light.
func (w *World) ClearLight() {
	w.light = nil
}

// Intersect intersects r with every object and returns the merged set
// sorted by ascending t.
func (w *World) Intersect(r Ray) (Intersections, error) {
	var xs Intersections
	for i, obj := range w.objects {
		hits, err := obj.Intersect(r)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		xs = xs.Append(hits)
	}
	if err := xs.Sort(); err != nil {
		return nil, err
	}
	return xs, nil
}

// ShadeHit returns the color at the prepared hit. It reports false when the
// world has no light.
func (w *World) ShadeHit(comps Computations) (math3d.Color, bool) {
	light, ok := w.Light()
	if !ok {
		return math3d.Color{}, false
	}
	return comps.Object.Material().Lighting(light, comps.Point, comps.EyeV, comps.NormalV), true
}

// ColorAt traces r into the world. Misses and unlit worlds give Background.
func (w *World) ColorAt(r Ray) (math3d.Color, error) {
	xs, err := w.Intersect(r)
	if err != nil {
		return math3d.Color{}, err
	}
	hit, err := xs.Hit()
	if err != nil {
		return math3d.Color{}, err
	}
	if hit == nil {
		return Background, nil
	}
	comps, err := PrepareComputations(*hit, r)
	if err != nil {
		return math3d.Color{}, err
	}
	c, ok := w.ShadeHit(comps)
	if !ok {
		return Background, nil
	}
	return c, nil
}
