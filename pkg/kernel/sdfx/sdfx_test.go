package sdfx

import (
	"math"
	"testing"
)

func TestBoxBoundingBox(t *testing.T) {
	k := New()
	min, max := k.Box(2, 4, 6).BoundingBox()
	if min != [3]float64{-1, -2, -3} || max != [3]float64{1, 2, 3} {
		t.Errorf("bounds = %v..%v", min, max)
	}
}

func TestTranslateBoundingBox(t *testing.T) {
	k := New()
	min, max := k.Translate(k.Box(2, 2, 2), 5, 0, 0).BoundingBox()
	if math.Abs(min[0]-4) > 1e-9 || math.Abs(max[0]-6) > 1e-9 {
		t.Errorf("translated x range = %v..%v, want 4..6", min[0], max[0])
	}
}

func TestUnionBoundingBox(t *testing.T) {
	k := New()
	u := k.Union(k.Box(2, 2, 2), k.Translate(k.Box(2, 2, 2), 2, 0, 0))
	min, max := u.BoundingBox()
	if min[0] > -1+1e-9 || max[0] < 3-1e-9 {
		t.Errorf("union x range = %v..%v, want to cover -1..3", min[0], max[0])
	}
}

func TestSphereToMesh(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes is slow")
	}
	k := New()
	m, err := k.ToMesh(k.Sphere(1, 16))
	if err != nil {
		t.Fatalf("ToMesh error: %v", err)
	}
	if m.IsEmpty() || m.TriangleCount() == 0 {
		t.Fatal("sphere produced an empty mesh")
	}
	min, max := m.BoundingBox()
	for i := 0; i < 3; i++ {
		if min[i] < -1.1 || max[i] > 1.1 {
			t.Errorf("mesh bounds axis %d = %v..%v, expected within ±1.1", i, min[i], max[i])
		}
	}
}
