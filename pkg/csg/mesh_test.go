package csg

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ggthedev/Euclid/pkg/geom"
)

func TestMeshBounds(t *testing.T) {
	cube := NewBox(v3.Vec{X: 2, Y: 4, Z: 6}, nil)
	b := cube.Bounds()
	if !geom.ApproxEqual(b.Min, v3.Vec{X: -1, Y: -2, Z: -3}) ||
		!geom.ApproxEqual(b.Max, v3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("bounds = %+v", b)
	}

	if !NewMesh(nil).Bounds().IsEmpty() {
		t.Error("empty mesh should have empty bounds")
	}
}

func TestMeshVolume(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
		want float64
		tol  float64
	}{
		{"unit cube", NewBox(v3.Vec{X: 1, Y: 1, Z: 1}, nil), 1, 1e-9},
		{"box", NewBox(v3.Vec{X: 2, Y: 3, Z: 4}, nil), 24, 1e-9},
		// A 32x16 sphere underestimates the ball slightly; stay loose.
		{"sphere", NewSphere(1, 32, 16, nil), 4 * math.Pi / 3, 0.1},
		{"cylinder", NewCylinder(2, 1, 64, nil), 2 * math.Pi, 0.05},
		{"empty", NewMesh(nil), 0, 1e-12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.Volume(); math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Volume() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("inverted volume is negative", func(t *testing.T) {
		cube := NewBox(v3.Vec{X: 2, Y: 2, Z: 2}, nil)
		if got := cube.Inverted().Volume(); math.Abs(got+8) > 1e-9 {
			t.Errorf("inverted cube volume = %v, want -8", got)
		}
	})
}

func TestMeshInverted(t *testing.T) {
	cube := unitCube(t)
	inv := cube.Inverted()
	if len(inv.Polygons()) != len(cube.Polygons()) {
		t.Fatal("inversion must preserve polygon count")
	}
	back := inv.Inverted()
	if math.Abs(back.Volume()-cube.Volume()) > 1e-9 {
		t.Error("double inversion should restore the volume")
	}
}

func TestMeshTranslated(t *testing.T) {
	cube := unitCube(t).Translated(v3.Vec{X: 10, Y: -2})
	b := cube.Bounds()
	if !geom.ApproxEqual(b.Min, v3.Vec{X: 9, Y: -3, Z: -1}) ||
		!geom.ApproxEqual(b.Max, v3.Vec{X: 11, Y: -1, Z: 1}) {
		t.Errorf("translated bounds = %+v", b)
	}
	if math.Abs(cube.Volume()-8) > 1e-9 {
		t.Errorf("translation changed the volume: %v", cube.Volume())
	}
}

func TestMeshScaled(t *testing.T) {
	cube := unitCube(t).Scaled(2)
	if math.Abs(cube.Volume()-64) > 1e-9 {
		t.Errorf("scaled volume = %v, want 64", cube.Volume())
	}
}

func TestMeshRotated(t *testing.T) {
	box := NewBox(v3.Vec{X: 4, Y: 2, Z: 2}, nil)
	q := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	rot := box.Rotated(q)

	if math.Abs(rot.Volume()-16) > 1e-9 {
		t.Errorf("rotation changed the volume: %v", rot.Volume())
	}
	b := rot.Bounds()
	if !geom.ApproxEqual(b.Min, v3.Vec{X: -1, Y: -2, Z: -1}) ||
		!geom.ApproxEqual(b.Max, v3.Vec{X: 1, Y: 2, Z: 1}) {
		t.Errorf("rotated bounds = %+v", b)
	}
}

func TestMeshMergedPolygons(t *testing.T) {
	// Splitting a cube and merging the halves' fragments restores the
	// original surface area with no more polygons than the original.
	cube := unitCube(t)
	front, back := cube.Split(geom.NewPlane(v3.Vec{Z: 1}, v3.Vec{}))
	if front == nil || back == nil {
		t.Fatal("split should produce both halves")
	}
	combined := NewMesh(concat(front.Polygons(), back.Polygons()))
	merged := combined.MergedPolygons()

	if got, want := polygonArea(merged.Polygons()), polygonArea(cube.Polygons()); math.Abs(got-want) > 1e-9 {
		t.Errorf("merged area = %v, want %v", got, want)
	}
	if len(merged.Polygons()) >= len(combined.Polygons()) {
		t.Errorf("merging did not reduce polygon count (%d -> %d)",
			len(combined.Polygons()), len(merged.Polygons()))
	}
}
