package csg

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ggthedev/Euclid/pkg/geom"
)

// cubeAt builds a 2x2x2 cube centered at the given point.
func cubeAt(center v3.Vec, material Material) *Mesh {
	return NewBox(v3.Vec{X: 2, Y: 2, Z: 2}, material).Translated(center)
}

func TestUnionWithSelf(t *testing.T) {
	cube := unitCube(t)
	u := cube.Union(cube)
	if math.Abs(u.Volume()-8) > 1e-9 {
		t.Errorf("A∪A volume = %v, want 8", u.Volume())
	}
	if got, want := polygonArea(u.Polygons()), 24.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("A∪A area = %v, want %v (boundary kept exactly once)", got, want)
	}
}

func TestSubtractSelf(t *testing.T) {
	cube := unitCube(t)
	d := cube.Subtract(cube)
	if math.Abs(d.Volume()) > 1e-9 {
		t.Errorf("A−A volume = %v, want 0", d.Volume())
	}
}

func TestSubtractEmpty(t *testing.T) {
	cube := unitCube(t)
	d := cube.Subtract(NewMesh(nil))
	if math.Abs(d.Volume()-8) > 1e-9 {
		t.Errorf("A−∅ volume = %v, want 8", d.Volume())
	}
}

func TestBinaryOpsOverlappingCubes(t *testing.T) {
	a := cubeAt(v3.Vec{}, nil)            // [-1,1]^3
	b := cubeAt(v3.Vec{X: 1}, nil)        // [0,2]x[-1,1]^2
	// Overlap is [0,1]x[-1,1]^2, volume 4.
	tests := []struct {
		name string
		got  *Mesh
		want float64
	}{
		{"union", a.Union(b), 12},
		{"subtract", a.Subtract(b), 4},
		{"intersect", a.Intersect(b), 4},
		{"xor", a.Xor(b), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := tt.got.Volume(); math.Abs(v-tt.want) > 1e-9 {
				t.Errorf("volume = %v, want %v", v, tt.want)
			}
		})
	}

	t.Run("union commutes", func(t *testing.T) {
		ab, ba := a.Union(b), b.Union(a)
		if math.Abs(ab.Volume()-ba.Volume()) > 1e-9 {
			t.Errorf("A∪B volume %v != B∪A volume %v", ab.Volume(), ba.Volume())
		}
		abb, bab := ab.Bounds(), ba.Bounds()
		if !geom.ApproxEqual(abb.Min, bab.Min) || !geom.ApproxEqual(abb.Max, bab.Max) {
			t.Error("A∪B and B∪A bounds differ")
		}
	})

	t.Run("xor equals union minus intersection", func(t *testing.T) {
		lhs := a.Xor(b).Volume()
		rhs := a.Union(b).Subtract(a.Intersect(b)).Volume()
		if math.Abs(lhs-rhs) > 1e-9 {
			t.Errorf("xor volume %v != union−intersection volume %v", lhs, rhs)
		}
	})

	t.Run("intersection is contained in both", func(t *testing.T) {
		in := a.Intersect(b)
		ba, bb := a.Bounds(), b.Bounds()
		for _, p := range in.Polygons() {
			for _, v := range p.Vertices() {
				if !ba.Contains(v.Position) || !bb.Contains(v.Position) {
					t.Fatalf("intersection vertex %v escapes an operand", v.Position)
				}
			}
		}
	})
}

func TestIntersectSelf(t *testing.T) {
	// S3: A∩A keeps A's bounds and volume.
	cube := unitCube(t)
	in := cube.Intersect(cube)
	if math.Abs(in.Volume()-8) > 1e-9 {
		t.Errorf("A∩A volume = %v, want 8", in.Volume())
	}
	b, want := in.Bounds(), cube.Bounds()
	if !geom.ApproxEqual(b.Min, want.Min) || !geom.ApproxEqual(b.Max, want.Max) {
		t.Errorf("A∩A bounds = %+v, want %+v", b, want)
	}
}

func TestIntersectDisjoint(t *testing.T) {
	a := cubeAt(v3.Vec{}, nil)
	b := cubeAt(v3.Vec{X: 10}, nil)
	if got := a.Intersect(b); !got.IsEmpty() {
		t.Errorf("disjoint intersection has %d polygons, want none", len(got.Polygons()))
	}
}

func TestSubtractSphereFromCube(t *testing.T) {
	// S1: cube [-1,1]^3 minus the radius-0.9 ball carves an internal
	// cavity without touching the outer surface.
	cube := cubeAt(v3.Vec{}, nil)
	sphere := NewSphere(0.9, 16, 8, nil)
	result := cube.Subtract(sphere)

	if result.IsEmpty() {
		t.Fatal("result should not be empty")
	}

	b := result.Bounds()
	if !geom.ApproxEqual(b.Min, v3.Vec{X: -1, Y: -1, Z: -1}) ||
		!geom.ApproxEqual(b.Max, v3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Errorf("bounds = %+v, want the original cube", b)
	}

	// Every vertex lies on the cube surface or on the carved cavity. The
	// cavity is the polygonized sphere, whose faces dip below the
	// nominal radius by the chordal factor.
	minRadius := 0.9*math.Cos(math.Pi/16)*math.Cos(math.Pi/8) - 1e-9
	for _, p := range result.Polygons() {
		for _, v := range p.Vertices() {
			pos := v.Position
			onCube := math.Max(math.Abs(pos.X), math.Max(math.Abs(pos.Y), math.Abs(pos.Z))) >= 1-1e-9
			onCavity := pos.Length() >= minRadius
			if !onCube && !onCavity {
				t.Fatalf("vertex %v is on neither the cube surface nor the cavity", pos)
			}
		}
	}

	wantVolume := 8 - sphere.Volume()
	if got := result.Volume(); math.Abs(got-wantVolume) > 1e-6 {
		t.Errorf("volume = %v, want %v", got, wantVolume)
	}
}

func TestStencil(t *testing.T) {
	a := cubeAt(v3.Vec{}, "base")
	b := cubeAt(v3.Vec{X: 1}, "paint")
	st := a.Stencil(b)

	// Stencil keeps A's shape...
	if math.Abs(st.Volume()-8) > 1e-9 {
		t.Errorf("stencil volume = %v, want 8", st.Volume())
	}
	// ...with the overlapped region repainted.
	var painted, base float64
	for _, p := range st.Polygons() {
		switch p.Material() {
		case "paint":
			painted += polygonArea([]Polygon{p})
			for _, v := range p.Vertices() {
				if v.Position.X < -geom.Epsilon {
					t.Fatalf("painted fragment outside the overlap at %v", v.Position)
				}
			}
		case "base":
			base += polygonArea([]Polygon{p})
		default:
			t.Fatalf("unexpected material %v", p.Material())
		}
	}
	if painted == 0 || base == 0 {
		t.Fatal("stencil should contain both painted and untouched surface")
	}
	if math.Abs(painted+base-24) > 1e-9 {
		t.Errorf("total area = %v, want 24", painted+base)
	}

	t.Run("unpainted when B has no material", func(t *testing.T) {
		st := a.Stencil(cubeAt(v3.Vec{X: 1}, nil))
		for _, p := range st.Polygons() {
			if p.Material() != "base" {
				t.Fatal("stencil against a material-less mesh must keep materials")
			}
		}
	})
}

func TestMeshSplit(t *testing.T) {
	// S4: split the 2x2x2 cube at z=0.
	cube := unitCube(t)
	front, back := cube.Split(geom.NewPlane(v3.Vec{Z: 1}, v3.Vec{}))
	if front == nil || back == nil {
		t.Fatal("both halves should be non-empty")
	}

	fb := front.Bounds()
	if !geom.ApproxEqual(fb.Min, v3.Vec{X: -1, Y: -1, Z: 0}) ||
		!geom.ApproxEqual(fb.Max, v3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Errorf("front bounds = %+v", fb)
	}
	bb := back.Bounds()
	if !geom.ApproxEqual(bb.Min, v3.Vec{X: -1, Y: -1, Z: -1}) ||
		!geom.ApproxEqual(bb.Max, v3.Vec{X: 1, Y: 1, Z: 0}) {
		t.Errorf("back bounds = %+v", bb)
	}

	if got := len(front.Polygons()) + len(back.Polygons()); got < len(cube.Polygons()) {
		t.Errorf("combined polygon count %d < original %d", got, len(cube.Polygons()))
	}
	total := polygonArea(front.Polygons()) + polygonArea(back.Polygons())
	if math.Abs(total-24) > 1e-9 {
		t.Errorf("combined area = %v, want 24 (no surface lost)", total)
	}

	t.Run("plane misses the mesh", func(t *testing.T) {
		f, b := cube.Split(geom.NewPlane(v3.Vec{Z: 1}, v3.Vec{Z: 5}))
		if f != nil || b == nil {
			t.Error("everything should land in the back half")
		}
	})
}

func TestMeshClipWithFill(t *testing.T) {
	// S5: clip the cube at z=0.5, capping with a filled face.
	cube := unitCube(t)
	plane := geom.NewPlane(v3.Vec{Z: 1}, v3.Vec{Z: 0.5})
	clipped := cube.Clip(plane, "cap")

	var capArea float64
	for _, p := range clipped.Polygons() {
		if p.Material() != "cap" {
			continue
		}
		if !geom.ApproxEqual(p.Plane().Normal, v3.Vec{Z: -1}) {
			t.Errorf("cap normal = %v, want -z", p.Plane().Normal)
		}
		for _, v := range p.Vertices() {
			if math.Abs(v.Position.Z-0.5) > geom.Epsilon {
				t.Errorf("cap vertex off the plane: %v", v.Position)
			}
		}
		capArea += polygonArea([]Polygon{p})
	}
	if math.Abs(capArea-4) > 1e-6 {
		t.Errorf("cap area = %v, want 4", capArea)
	}

	// The capped half is watertight: volume of the slab above z=0.5.
	if got := clipped.Volume(); math.Abs(got-2) > 1e-6 {
		t.Errorf("clipped volume = %v, want 2", got)
	}

	t.Run("no fill leaves the cut open", func(t *testing.T) {
		open := cube.Clip(plane, nil)
		for _, p := range open.Polygons() {
			for _, v := range p.Vertices() {
				if v.Position.Z < 0.5-geom.Epsilon {
					t.Fatalf("vertex below the clip plane: %v", v.Position)
				}
			}
		}
	})

	t.Run("plane behind the mesh clips everything", func(t *testing.T) {
		gone := cube.Clip(geom.NewPlane(v3.Vec{Z: 1}, v3.Vec{Z: 5}), nil)
		if !gone.IsEmpty() {
			t.Error("clip plane above the cube should leave nothing")
		}
	})
}
