package trace

import (
	"cmp"
	"errors"
	"math"
	"slices"
)

// ErrNaNIntersection is returned when an intersection distance is NaN and
// the set can therefore not be ordered.
var ErrNaNIntersection = errors.New("intersection t is NaN")

// Intersection records where along a ray an object was hit.
type Intersection struct {
	T      float64
	Object *Sphere
}

// NewIntersection creates a new Intersection.
func NewIntersection(t float64, object *Sphere) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is an ordered set of intersections for a single ray.
type Intersections []Intersection

// Len returns the number of intersections.
func (xs Intersections) Len() int {
	return len(xs)
}

// At returns the i-th intersection. It panics when i is out of range.
func (xs Intersections) At(i int) Intersection {
	return xs[i]
}

// Append returns xs with others appended. No deduplication is done.
func (xs Intersections) Append(others Intersections) Intersections {
	return append(xs, others...)
}

// Sort orders the set by ascending t, keeping input order for ties.
func (xs Intersections) Sort() error {
	if err := xs.validate(); err != nil {
		return err
	}
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
	return nil
}

// Hit returns the intersection with the lowest non-negative t, or nil when
// every intersection lies behind the ray origin. Ties go to the earlier
// entry. The returned pointer refers into xs.
func (xs Intersections) Hit() (*Intersection, error) {
	if err := xs.validate(); err != nil {
		return nil, err
	}
	var hit *Intersection
	for i := range xs {
		if xs[i].T < 0 {
			continue
		}
		if hit == nil || xs[i].T < hit.T {
			hit = &xs[i]
		}
	}
	return hit, nil
}

func (xs Intersections) validate() error {
	for i := range xs {
		if math.IsNaN(xs[i].T) {
			return ErrNaNIntersection
		}
	}
	return nil
}
