package bsp

import (
	"math"
	"testing"

	"github.com/ggthedev/Euclid/pkg/kernel"
)

func newKernel() *Kernel {
	return New()
}

func TestBoxBoundingBox(t *testing.T) {
	k := newKernel()
	min, max := k.Box(2, 4, 6).BoundingBox()
	if min != [3]float64{-1, -2, -3} || max != [3]float64{1, 2, 3} {
		t.Errorf("bounds = %v..%v", min, max)
	}
}

func TestPrimitivesProduceMeshes(t *testing.T) {
	k := newKernel()
	tests := []struct {
		name  string
		solid kernel.Solid
	}{
		{"box", k.Box(1, 1, 1)},
		{"sphere", k.Sphere(1, 16)},
		{"cylinder", k.Cylinder(2, 1, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := k.ToMesh(tt.solid)
			if err != nil {
				t.Fatalf("ToMesh error: %v", err)
			}
			if m.IsEmpty() || m.TriangleCount() == 0 {
				t.Error("primitive produced an empty mesh")
			}
		})
	}
}

func TestBooleanBounds(t *testing.T) {
	k := newKernel()
	a := k.Box(2, 2, 2)
	b := k.Translate(k.Box(2, 2, 2), 1, 0, 0)

	t.Run("union", func(t *testing.T) {
		min, max := k.Union(a, b).BoundingBox()
		if min != [3]float64{-1, -1, -1} || max != [3]float64{2, 1, 1} {
			t.Errorf("bounds = %v..%v", min, max)
		}
	})
	t.Run("intersection", func(t *testing.T) {
		min, max := k.Intersection(a, b).BoundingBox()
		if math.Abs(min[0]) > 1e-9 || math.Abs(max[0]-1) > 1e-9 {
			t.Errorf("bounds = %v..%v", min, max)
		}
	})
	t.Run("difference", func(t *testing.T) {
		min, max := k.Difference(a, b).BoundingBox()
		if min != [3]float64{-1, -1, -1} || math.Abs(max[0]) > 1e-9 {
			t.Errorf("bounds = %v..%v", min, max)
		}
	})
	t.Run("xor", func(t *testing.T) {
		min, max := k.Xor(a, b).BoundingBox()
		if min != [3]float64{-1, -1, -1} || max != [3]float64{2, 1, 1} {
			t.Errorf("bounds = %v..%v", min, max)
		}
	})
}

func TestRotate(t *testing.T) {
	k := newKernel()
	rot := k.Rotate(k.Box(4, 2, 2), 0, 0, 90)
	min, max := rot.BoundingBox()
	want := func(got, expect float64) bool { return math.Abs(got-expect) < 1e-9 }
	if !want(min[0], -1) || !want(max[0], 1) || !want(min[1], -2) || !want(max[1], 2) {
		t.Errorf("rotated bounds = %v..%v", min, max)
	}
}

func TestClipWithFill(t *testing.T) {
	k := newKernel()
	clipped := k.Clip(k.Box(2, 2, 2), [3]float64{0, 0, 1}, 0, "cap")
	min, max := clipped.BoundingBox()
	if math.Abs(min[2]) > 1e-9 || math.Abs(max[2]-1) > 1e-9 {
		t.Errorf("clipped z range = %v..%v, want 0..1", min[2], max[2])
	}
	m, err := k.ToMesh(clipped)
	if err != nil {
		t.Fatalf("ToMesh error: %v", err)
	}
	if m.TriangleCount() == 0 {
		t.Error("clipped solid lost its mesh")
	}
}

func TestStencilKeepsShape(t *testing.T) {
	k := newKernel()
	base := k.Box(2, 2, 2)
	brush := k.WithMaterial(k.Translate(k.Box(2, 2, 2), 1, 0, 0), "red")
	st := k.Stencil(base, brush)
	min, max := st.BoundingBox()
	if min != [3]float64{-1, -1, -1} || max != [3]float64{1, 1, 1} {
		t.Errorf("stencil bounds = %v..%v, want the base box", min, max)
	}
}
