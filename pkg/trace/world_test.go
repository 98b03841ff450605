package trace

import (
	"errors"
	"testing"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

func TestNewWorldIsEmpty(t *testing.T) {
	w := NewWorld()
	if len(w.Objects()) != 0 {
		t.Errorf("new world should have no objects, got %d", len(w.Objects()))
	}
	if _, ok := w.Light(); ok {
		t.Error("new world should have no light")
	}
}

func TestWorldObjectsIsACopy(t *testing.T) {
	w := DefaultWorld()
	objs := w.Objects()
	objs[0] = NewSphere()
	_ = append(objs[:1], NewSphere())

	got := w.Objects()
	if len(got) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(got))
	}
	if got[0] == objs[0] {
		t.Error("replacing an element of the returned slice changed the world")
	}
	if got[1] == objs[1] {
		t.Error("appending to the returned slice changed the world")
	}
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()
	light, ok := w.Light()
	if !ok {
		t.Fatal("default world should have a light")
	}
	if light != NewPointLight(math3d.Point(-10, 10, -10), math3d.White) {
		t.Errorf("light = %+v", light)
	}
	objs := w.Objects()
	if len(objs) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objs))
	}
	m := objs[0].Material()
	if m.Color != math3d.RGB(0.8, 1.0, 0.6) || m.Diffuse != 0.7 || m.Specular != 0.2 {
		t.Errorf("outer material = %+v", m)
	}
	if objs[1].Transform() != math3d.Scale(0.5, 0.5, 0.5) {
		t.Errorf("inner transform = %v", objs[1].Transform())
	}
}

func TestWorldIntersect(t *testing.T) {
	w := DefaultWorld()
	xs, err := w.Intersect(NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1)))
	if err != nil {
		t.Fatalf("Intersect failed: %v", err)
	}
	want := []float64{4, 4.5, 5.5, 6}
	if xs.Len() != len(want) {
		t.Fatalf("got %d intersections, want %d", xs.Len(), len(want))
	}
	for i, v := range want {
		if xs[i].T != v {
			t.Errorf("xs[%d].T = %v, want %v", i, xs[i].T, v)
		}
	}
}

func TestShadeHit(t *testing.T) {
	t.Run("outside", func(t *testing.T) {
		w := DefaultWorld()
		r := NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))
		comps, err := PrepareComputations(NewIntersection(4, w.Objects()[0]), r)
		if err != nil {
			t.Fatalf("PrepareComputations failed: %v", err)
		}
		c, ok := w.ShadeHit(comps)
		if !ok {
			t.Fatal("ShadeHit should produce a color")
		}
		if want := math3d.RGB(0.38066, 0.47583, 0.2855); !colorNear(c, want) {
			t.Errorf("ShadeHit = %v, want %v", c, want)
		}
	})

	t.Run("inside", func(t *testing.T) {
		w := DefaultWorld()
		w.SetLight(NewPointLight(math3d.Point(0, 0.25, 0), math3d.White))
		r := NewRay(math3d.Point(0, 0, 0), math3d.Vector(0, 0, 1))
		comps, err := PrepareComputations(NewIntersection(0.5, w.Objects()[1]), r)
		if err != nil {
			t.Fatalf("PrepareComputations failed: %v", err)
		}
		c, ok := w.ShadeHit(comps)
		if !ok {
			t.Fatal("ShadeHit should produce a color")
		}
		if want := math3d.RGB(0.90498, 0.90498, 0.90498); !colorNear(c, want) {
			t.Errorf("ShadeHit = %v, want %v", c, want)
		}
	})

	t.Run("no light", func(t *testing.T) {
		w := DefaultWorld()
		w.ClearLight()
		r := NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))
		comps, err := PrepareComputations(NewIntersection(4, w.Objects()[0]), r)
		if err != nil {
			t.Fatalf("PrepareComputations failed: %v", err)
		}
		if _, ok := w.ShadeHit(comps); ok {
			t.Error("ShadeHit without a light should report no color")
		}
	})
}

func TestColorAt(t *testing.T) {
	t.Run("miss", func(t *testing.T) {
		w := DefaultWorld()
		c, err := w.ColorAt(NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 1, 0)))
		if err != nil {
			t.Fatalf("ColorAt failed: %v", err)
		}
		if c != math3d.Black {
			t.Errorf("ColorAt = %v, want black", c)
		}
	})

	t.Run("hit", func(t *testing.T) {
		w := DefaultWorld()
		c, err := w.ColorAt(NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1)))
		if err != nil {
			t.Fatalf("ColorAt failed: %v", err)
		}
		if want := math3d.RGB(0.38066, 0.47583, 0.2855); !colorNear(c, want) {
			t.Errorf("ColorAt = %v, want %v", c, want)
		}
	})

	t.Run("intersection behind the ray", func(t *testing.T) {
		w := DefaultWorld()
		outer, inner := w.Objects()[0], w.Objects()[1]
		m := outer.Material()
		m.Ambient = 1
		outer.SetMaterial(m)
		m = inner.Material()
		m.Ambient = 1
		inner.SetMaterial(m)

		c, err := w.ColorAt(NewRay(math3d.Point(0, 0, 0.75), math3d.Vector(0, 0, -1)))
		if err != nil {
			t.Fatalf("ColorAt failed: %v", err)
		}
		if !colorNear(c, inner.Material().Color) {
			t.Errorf("ColorAt = %v, want inner color %v", c, inner.Material().Color)
		}
	})

	t.Run("lightless world renders background", func(t *testing.T) {
		w := DefaultWorld()
		w.ClearLight()
		c, err := w.ColorAt(NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1)))
		if err != nil {
			t.Fatalf("ColorAt failed: %v", err)
		}
		if c != Background {
			t.Errorf("ColorAt = %v, want background", c)
		}
	})

	t.Run("degenerate sphere fails", func(t *testing.T) {
		w := DefaultWorld()
		flat := NewSphere()
		flat.SetTransform(math3d.Scale(1, 0, 1))
		w.AddObject(flat)
		_, err := w.ColorAt(NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1)))
		if !errors.Is(err, math3d.ErrNotInvertible) {
			t.Errorf("expected ErrNotInvertible, got %v", err)
		}
	})
}
