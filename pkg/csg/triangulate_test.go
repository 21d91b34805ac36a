package csg

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ggthedev/Euclid/pkg/geom"
)

// bracket builds a concave 7-vertex polygon on z=0 (an L-shaped bracket
// with a single reflex corner), wound anticlockwise about +z.
func bracket(t *testing.T) Polygon {
	t.Helper()
	pts := []v3.Vec{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 2, Y: 1},
		{X: 2, Y: 2}, {X: 1, Y: 3}, {X: 0, Y: 3},
	}
	verts := make([]geom.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = geom.NewVertex(p, v3.Vec{Z: 1}, v3.Vec{})
	}
	poly, ok := NewPolygon(verts, "steel")
	if !ok {
		t.Fatal("bracket polygon invalid")
	}
	if poly.IsConvex() {
		t.Fatal("bracket polygon should be concave")
	}
	return poly
}

func TestTriangulateConcave(t *testing.T) {
	p := bracket(t)
	tris := p.Triangulate()

	if len(tris) != 5 {
		t.Fatalf("triangulated into %d triangles, want 5", len(tris))
	}
	for i, tri := range tris {
		if len(tri.Vertices()) != 3 {
			t.Fatalf("piece %d has %d vertices", i, len(tri.Vertices()))
		}
		positions := []v3.Vec{
			tri.Vertices()[0].Position,
			tri.Vertices()[1].Position,
			tri.Vertices()[2].Position,
		}
		n := geom.FaceNormal(positions)
		if n.Length() < geom.Epsilon {
			t.Fatalf("piece %d is degenerate", i)
		}
		if n.Dot(p.Plane().Normal) <= 0 {
			t.Errorf("piece %d winds against the polygon normal", i)
		}
		if tri.Material() != "steel" {
			t.Errorf("piece %d lost the material", i)
		}
	}

	// Union of the triangles covers the polygon exactly.
	want := polygonArea([]Polygon{p})
	if got := polygonArea(tris); math.Abs(got-want) > 1e-9 {
		t.Errorf("triangle area = %v, want %v", got, want)
	}
}

func TestTriangulateConvexFan(t *testing.T) {
	hexVerts := make([]geom.Vertex, 6)
	for i := range hexVerts {
		a := 2 * math.Pi * float64(i) / 6
		hexVerts[i] = geom.NewVertex(v3.Vec{X: math.Cos(a), Y: math.Sin(a)}, v3.Vec{Z: 1}, v3.Vec{})
	}
	hex, ok := NewPolygon(hexVerts, nil)
	if !ok {
		t.Fatal("hexagon invalid")
	}
	tris := hex.Triangulate()
	if len(tris) != 4 {
		t.Fatalf("hexagon fanned into %d triangles, want 4", len(tris))
	}
	if got, want := polygonArea(tris), polygonArea([]Polygon{hex}); math.Abs(got-want) > 1e-9 {
		t.Errorf("fan area = %v, want %v", got, want)
	}
}

func TestTriangulateRedundantVertex(t *testing.T) {
	// A square with an extra vertex in the middle of the bottom edge.
	pts := []v3.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	}
	verts := make([]geom.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = geom.NewVertex(p, v3.Vec{Z: 1}, v3.Vec{})
	}
	poly, ok := NewPolygon(verts, nil)
	if !ok {
		t.Fatal("polygon invalid")
	}
	tris := poly.Triangulate()
	if got := polygonArea(tris); math.Abs(got-4) > 1e-9 {
		t.Errorf("area = %v, want 4", got)
	}
}

func TestTessellate(t *testing.T) {
	p := bracket(t)
	pieces := p.Tessellate()

	if len(pieces) >= len(p.Triangulate()) {
		t.Errorf("tessellation (%d pieces) should rejoin some triangles", len(pieces))
	}
	for i, piece := range pieces {
		if !piece.IsConvex() {
			t.Errorf("piece %d is not convex", i)
		}
	}
	want := polygonArea([]Polygon{p})
	if got := polygonArea(pieces); math.Abs(got-want) > 1e-9 {
		t.Errorf("tessellation area = %v, want %v", got, want)
	}

	t.Run("convex passthrough", func(t *testing.T) {
		q := quadXY(t, 2, nil)
		pieces := q.Tessellate()
		if len(pieces) != 1 {
			t.Errorf("convex polygon tessellated into %d pieces", len(pieces))
		}
	})
}

func TestMergeSplitSiblings(t *testing.T) {
	p := quadXY(t, 2, "oak")
	var coplanar, front, back []Polygon
	id := 0
	p.Split(geom.NewPlane(v3.Vec{X: 1}, v3.Vec{}), &coplanar, &front, &back, &id)
	if len(front) != 1 || len(back) != 1 {
		t.Fatal("expected two fragments")
	}

	merged, ok := back[0].Merge(front[0])
	if !ok {
		t.Fatal("sibling fragments should merge")
	}
	if got := polygonArea([]Polygon{merged}); math.Abs(got-4) > 1e-9 {
		t.Errorf("merged area = %v, want 4", got)
	}
	if got := len(merged.Vertices()); got != 4 {
		t.Errorf("merged polygon has %d vertices, want 4 (join vertices removed)", got)
	}
}

func TestMergeRejections(t *testing.T) {
	a := quadXY(t, 2, "oak")

	t.Run("different materials", func(t *testing.T) {
		b, _ := NewPolygon(translateVerts(quadXY(t, 2, nil).Vertices(), v3.Vec{X: 2}), "pine")
		if _, ok := a.Merge(b); ok {
			t.Error("merge across materials should fail")
		}
	})

	t.Run("different planes", func(t *testing.T) {
		lifted, _ := NewPolygon(translateVerts(quadXY(t, 2, nil).Vertices(), v3.Vec{X: 2, Z: 1}), "oak")
		if _, ok := a.Merge(lifted); ok {
			t.Error("merge across planes should fail")
		}
	})

	t.Run("no shared edge", func(t *testing.T) {
		far, _ := NewPolygon(translateVerts(quadXY(t, 2, nil).Vertices(), v3.Vec{X: 5}), "oak")
		if _, ok := a.Merge(far); ok {
			t.Error("merge without a shared edge should fail")
		}
	})

	t.Run("mismatched ids", func(t *testing.T) {
		var cp, f1, b1, f2, b2 []Polygon
		id := 0
		plane := geom.NewPlane(v3.Vec{X: 1}, v3.Vec{})
		a.Split(plane, &cp, &f1, &b1, &id)
		quadXY(t, 2, "oak").Split(plane, &cp, &f2, &b2, &id)
		if _, ok := f1[0].Merge(b2[0]); ok {
			t.Error("fragments of different splits should not merge")
		}
	})
}

func TestJoinSharedEdge(t *testing.T) {
	// Two unit triangles sharing the diagonal of a unit square.
	v := func(x, y float64) geom.Vertex {
		return geom.NewVertex(v3.Vec{X: x, Y: y}, v3.Vec{Z: 1}, v3.Vec{})
	}
	t1, ok1 := NewPolygon([]geom.Vertex{v(0, 0), v(1, 0), v(1, 1)}, nil)
	t2, ok2 := NewPolygon([]geom.Vertex{v(0, 0), v(1, 1), v(0, 1)}, nil)
	if !ok1 || !ok2 {
		t.Fatal("triangles invalid")
	}
	joined, ok := t1.Merge(t2)
	if !ok {
		t.Fatal("triangles sharing an edge should merge")
	}
	if len(joined.Vertices()) != 4 {
		t.Errorf("joined polygon has %d vertices, want 4", len(joined.Vertices()))
	}
	if !joined.IsConvex() {
		t.Error("joined square should be convex")
	}
	if got := polygonArea([]Polygon{joined}); math.Abs(got-1) > 1e-9 {
		t.Errorf("joined area = %v, want 1", got)
	}
}
