package trace

import (
	"math"
	"testing"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

// mapSink records pixels for inspection.
type mapSink map[[2]int]math3d.Color

func (s mapSink) PutPixel(c math3d.Color, x, y int) {
	s[[2]int{x, y}] = c
}

func TestCameraPixelSize(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(tc.hsize, tc.vsize, math.Pi/2)
			if math.Abs(c.PixelSize()-0.01) > 1e-9 {
				t.Errorf("PixelSize = %v, want 0.01", c.PixelSize())
			}
		})
	}
}

func TestRayForPixel(t *testing.T) {
	h := math.Sqrt2 / 2
	tests := []struct {
		name      string
		transform math3d.Mat4
		px, py    int
		origin    math3d.Tuple4
		direction math3d.Tuple4
	}{
		{"center", math3d.Identity(), 100, 50, math3d.Point(0, 0, 0), math3d.Vector(0, 0, -1)},
		{"corner", math3d.Identity(), 0, 0, math3d.Point(0, 0, 0), math3d.Vector(0.66519, 0.33259, -0.66851)},
		{
			"transformed camera",
			math3d.RotateY(math.Pi / 4).Mul(math3d.Translate(0, -2, 5)),
			100, 50,
			math3d.Point(0, 2, -5),
			math3d.Vector(h, 0, -h),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(201, 101, math.Pi/2)
			if err := c.SetTransform(tc.transform); err != nil {
				t.Fatalf("SetTransform failed: %v", err)
			}
			r := c.RayForPixel(tc.px, tc.py)
			if !tupleNear(r.Origin, tc.origin) {
				t.Errorf("origin = %v, want %v", r.Origin, tc.origin)
			}
			if !tupleNear(r.Direction, tc.direction) {
				t.Errorf("direction = %v, want %v", r.Direction, tc.direction)
			}
		})
	}
}

func TestCameraSingularTransform(t *testing.T) {
	c := NewCamera(10, 10, math.Pi/2)
	if err := c.SetTransform(math3d.Zero()); err == nil {
		t.Error("expected error for singular view transform")
	}
	if c.Transform() != math3d.Identity() {
		t.Error("failed SetTransform must keep the previous transform")
	}
}

func TestCameraRender(t *testing.T) {
	w := DefaultWorld()
	c := NewCamera(11, 11, math.Pi/2)
	view := math3d.ViewTransform(math3d.Point(0, 0, -5), math3d.Point(0, 0, 0), math3d.Vector(0, 1, 0))
	if err := c.SetTransform(view); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	sink := mapSink{}
	if err := c.Render(w, sink); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(sink) != 121 {
		t.Errorf("expected 121 pixels, got %d", len(sink))
	}
	if got, want := sink[[2]int{5, 5}], math3d.RGB(0.38066, 0.47583, 0.2855); !colorNear(got, want) {
		t.Errorf("pixel (5,5) = %v, want %v", got, want)
	}
	if got := sink[[2]int{0, 0}]; got != math3d.Black {
		t.Errorf("corner pixel should miss, got %v", got)
	}
}
