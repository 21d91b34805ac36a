package csg

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ggthedev/Euclid/pkg/geom"
)

func TestUnionAllDisjoint(t *testing.T) {
	// S2: disjoint operands are concatenated, not clipped.
	a := cubeAt(v3.Vec{}, nil)
	b := cubeAt(v3.Vec{X: 10}, nil)
	u := UnionAll([]*Mesh{a, b})

	if got, want := len(u.Polygons()), len(a.Polygons())+len(b.Polygons()); got != want {
		t.Errorf("polygon count = %d, want %d (no CSG work on disjoint bounds)", got, want)
	}
	bounds := u.Bounds()
	wantBounds := a.Bounds().Union(b.Bounds())
	if !geom.ApproxEqual(bounds.Min, wantBounds.Min) || !geom.ApproxEqual(bounds.Max, wantBounds.Max) {
		t.Errorf("bounds = %+v, want %+v", bounds, wantBounds)
	}
	if math.Abs(u.Volume()-16) > 1e-9 {
		t.Errorf("volume = %v, want 16", u.Volume())
	}
}

func TestUnionAllChained(t *testing.T) {
	// Three cubes in a row: the middle one bridges the outer two, so all
	// three fold into one accumulator.
	meshes := []*Mesh{
		cubeAt(v3.Vec{}, nil),
		cubeAt(v3.Vec{X: 3}, nil),   // disjoint from the first...
		cubeAt(v3.Vec{X: 1.5}, nil), // ...but bridged by this one
	}
	u := UnionAll(meshes)
	// Row from x=-1 to x=4 of cross-section 4: volume 5*4 = 20.
	if math.Abs(u.Volume()-20) > 1e-9 {
		t.Errorf("volume = %v, want 20", u.Volume())
	}
}

func TestUnionAllEdgeCases(t *testing.T) {
	if !UnionAll(nil).IsEmpty() {
		t.Error("union of nothing should be empty")
	}
	single := cubeAt(v3.Vec{}, nil)
	if got := UnionAll([]*Mesh{single}); got != single {
		t.Error("union of one mesh should be that mesh")
	}
	withEmpty := UnionAll([]*Mesh{single, NewMesh(nil)})
	if math.Abs(withEmpty.Volume()-8) > 1e-9 {
		t.Errorf("union with empty = %v, want 8", withEmpty.Volume())
	}
}

func TestXorAllDisjoint(t *testing.T) {
	a := cubeAt(v3.Vec{}, nil)
	b := cubeAt(v3.Vec{X: 10}, nil)
	x := XorAll([]*Mesh{a, b})
	if math.Abs(x.Volume()-16) > 1e-9 {
		t.Errorf("volume = %v, want 16", x.Volume())
	}
}

func TestDifferenceAll(t *testing.T) {
	a := cubeAt(v3.Vec{}, nil)
	b := cubeAt(v3.Vec{X: 1.5}, nil)  // removes [0.5,1]
	c := cubeAt(v3.Vec{X: -10}, nil)  // disjoint, no effect
	d := DifferenceAll([]*Mesh{a, b, c})
	// Remaining slab: [-1,0.5]x[-1,1]^2, volume 1.5*4 = 6.
	if math.Abs(d.Volume()-6) > 1e-9 {
		t.Errorf("volume = %v, want 6", d.Volume())
	}
}

func TestIntersectionAll(t *testing.T) {
	a := cubeAt(v3.Vec{}, nil)
	b := cubeAt(v3.Vec{X: 1}, nil)
	c := cubeAt(v3.Vec{Y: 1}, nil)
	in := IntersectionAll([]*Mesh{a, b, c})
	// [0,1]x[0,1]x[-1,1], volume 2.
	if math.Abs(in.Volume()-2) > 1e-9 {
		t.Errorf("volume = %v, want 2", in.Volume())
	}

	t.Run("disjoint operand empties the result", func(t *testing.T) {
		far := cubeAt(v3.Vec{X: 100}, nil)
		if got := IntersectionAll([]*Mesh{a, b, far}); !got.IsEmpty() {
			t.Error("intersection with a disjoint mesh should be empty")
		}
	})
}

func TestStencilAll(t *testing.T) {
	a := cubeAt(v3.Vec{}, "base")
	b := cubeAt(v3.Vec{X: 1}, "red")
	c := cubeAt(v3.Vec{Y: 1}, "blue")
	st := StencilAll([]*Mesh{a, b, c})

	if math.Abs(st.Volume()-8) > 1e-9 {
		t.Errorf("stencil volume = %v, want 8 (shape preserved)", st.Volume())
	}
	seen := map[Material]bool{}
	for _, p := range st.Polygons() {
		seen[p.Material()] = true
	}
	for _, m := range []Material{"base", "red", "blue"} {
		if !seen[m] {
			t.Errorf("material %v missing from stencil result", m)
		}
	}
}
