package csg

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ggthedev/Euclid/pkg/geom"
)

// quadXY builds a square polygon on the z=0 plane facing +z.
func quadXY(t *testing.T, size float64, material Material) Polygon {
	t.Helper()
	h := size / 2
	verts := []geom.Vertex{
		geom.NewVertex(v3.Vec{X: -h, Y: -h}, v3.Vec{Z: 1}, v3.Vec{}),
		geom.NewVertex(v3.Vec{X: h, Y: -h}, v3.Vec{Z: 1}, v3.Vec{X: 1}),
		geom.NewVertex(v3.Vec{X: h, Y: h}, v3.Vec{Z: 1}, v3.Vec{X: 1, Y: 1}),
		geom.NewVertex(v3.Vec{X: -h, Y: h}, v3.Vec{Z: 1}, v3.Vec{Y: 1}),
	}
	p, ok := NewPolygon(verts, material)
	if !ok {
		t.Fatal("failed to build test quad")
	}
	return p
}

// polygonArea sums the enclosed area of a polygon list.
func polygonArea(polys []Polygon) float64 {
	var area float64
	for _, p := range polys {
		positions := make([]v3.Vec, len(p.Vertices()))
		for i, v := range p.Vertices() {
			positions[i] = v.Position
		}
		area += geom.FaceNormal(positions).Length() / 2
	}
	return area
}

func TestNewPolygonValidation(t *testing.T) {
	v := func(x, y, z float64) geom.Vertex {
		return geom.NewVertex(v3.Vec{X: x, Y: y, Z: z}, v3.Vec{Z: 1}, v3.Vec{})
	}
	tests := []struct {
		name  string
		verts []geom.Vertex
		ok    bool
	}{
		{"triangle", []geom.Vertex{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)}, true},
		{"too few", []geom.Vertex{v(0, 0, 0), v(1, 0, 0)}, false},
		{"colinear", []geom.Vertex{v(0, 0, 0), v(1, 0, 0), v(2, 0, 0)}, false},
		{"duplicate adjacent", []geom.Vertex{v(0, 0, 0), v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)}, false},
		{"non-coplanar", []geom.Vertex{v(0, 0, 0), v(1, 0, 0), v(1, 1, 1), v(0, 1, 0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := NewPolygon(tt.verts, nil); ok != tt.ok {
				t.Errorf("NewPolygon ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestPolygonPlaneAndConvexity(t *testing.T) {
	p := quadXY(t, 2, nil)
	if !p.IsConvex() {
		t.Error("square should be convex")
	}
	if !geom.ApproxEqual(p.Plane().Normal, v3.Vec{Z: 1}) {
		t.Errorf("plane normal = %v, want +z", p.Plane().Normal)
	}

	// Arrow head: one reflex corner.
	verts := []geom.Vertex{
		geom.NewVertex(v3.Vec{X: -1, Y: -1}, v3.Vec{Z: 1}, v3.Vec{}),
		geom.NewVertex(v3.Vec{X: 0, Y: 0}, v3.Vec{Z: 1}, v3.Vec{}),
		geom.NewVertex(v3.Vec{X: 1, Y: -1}, v3.Vec{Z: 1}, v3.Vec{}),
		geom.NewVertex(v3.Vec{X: 0, Y: 2}, v3.Vec{Z: 1}, v3.Vec{}),
	}
	concave, ok := NewPolygon(verts, nil)
	if !ok {
		t.Fatal("arrow head should be a valid polygon")
	}
	if concave.IsConvex() {
		t.Error("arrow head should be concave")
	}
}

func TestPolygonCompare(t *testing.T) {
	p := quadXY(t, 2, nil)
	tests := []struct {
		name  string
		plane geom.Plane
		want  geom.PlaneRelation
	}{
		{"own plane", p.Plane(), geom.Coplanar},
		{"below", geom.NewPlane(v3.Vec{Z: 1}, v3.Vec{Z: -1}), geom.Front},
		{"above", geom.NewPlane(v3.Vec{Z: 1}, v3.Vec{Z: 1}), geom.Back},
		{"cutting", geom.NewPlane(v3.Vec{X: 1}, v3.Vec{}), geom.Spanning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Compare(tt.plane); got != tt.want {
				t.Errorf("Compare = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonSplitSpanning(t *testing.T) {
	p := quadXY(t, 2, "mat")
	plane := geom.NewPlane(v3.Vec{X: 1}, v3.Vec{})

	var coplanar, front, back []Polygon
	id := 0
	p.Split(plane, &coplanar, &front, &back, &id)

	if len(coplanar) != 0 || len(front) != 1 || len(back) != 1 {
		t.Fatalf("split produced %d/%d/%d polygons", len(coplanar), len(front), len(back))
	}
	if id == 0 {
		t.Error("split should have advanced the id counter")
	}
	if front[0].id == 0 || front[0].id != back[0].id {
		t.Error("fragments should share a fresh nonzero id")
	}
	if front[0].Material() != "mat" || back[0].Material() != "mat" {
		t.Error("fragments should inherit the material")
	}

	// Fragments have disjoint interiors and union to the original.
	total := polygonArea(front) + polygonArea(back)
	if math.Abs(total-4) > 1e-9 {
		t.Errorf("fragment area = %v, want 4", total)
	}
	for _, f := range front {
		for _, v := range f.Vertices() {
			if v.Position.X < -geom.Epsilon {
				t.Errorf("front fragment vertex on wrong side: %v", v.Position)
			}
		}
	}
	for _, b := range back {
		for _, v := range b.Vertices() {
			if v.Position.X > geom.Epsilon {
				t.Errorf("back fragment vertex on wrong side: %v", v.Position)
			}
		}
	}
}

func TestPolygonSplitNonSpanning(t *testing.T) {
	p := quadXY(t, 2, nil)

	t.Run("wholly in front", func(t *testing.T) {
		var coplanar, front, back []Polygon
		id := 0
		p.Split(geom.NewPlane(v3.Vec{Z: 1}, v3.Vec{Z: -5}), &coplanar, &front, &back, &id)
		if len(front) != 1 || len(back) != 0 || len(coplanar) != 0 {
			t.Fatalf("split produced %d/%d/%d", len(coplanar), len(front), len(back))
		}
		if front[0].id != 0 || id != 0 {
			t.Error("unsplit polygons must keep id zero")
		}
	})

	t.Run("coplanar collected", func(t *testing.T) {
		var coplanar, front, back []Polygon
		id := 0
		p.Split(p.Plane(), &coplanar, &front, &back, &id)
		if len(coplanar) != 1 {
			t.Fatal("polygon should land in the coplanar list")
		}
	})

	t.Run("coplanar routed by facing", func(t *testing.T) {
		var front, back []Polygon
		id := 0
		p.Split(p.Plane(), nil, &front, &back, &id)
		if len(front) != 1 || len(back) != 0 {
			t.Error("same-facing coplanar polygon should route to front")
		}
		front = front[:0]
		p.Split(p.Plane().Inverted(), nil, &front, &back, &id)
		if len(back) != 1 {
			t.Error("anti-facing coplanar polygon should route to back")
		}
	})
}

func TestPolygonInverted(t *testing.T) {
	p := quadXY(t, 2, "m")
	inv := p.Inverted()
	if !geom.ApproxEqual(inv.Plane().Normal, v3.Vec{Z: -1}) {
		t.Errorf("inverted plane normal = %v", inv.Plane().Normal)
	}
	for _, v := range inv.Vertices() {
		if !geom.ApproxEqual(v.Normal, v3.Vec{Z: -1}) {
			t.Errorf("inverted vertex normal = %v", v.Normal)
		}
	}
	if inv.Material() != "m" || !inv.IsConvex() {
		t.Error("inversion must preserve material and convexity")
	}

	back := inv.Inverted()
	for i, v := range back.Vertices() {
		if !v.ApproxEquals(p.Vertices()[i]) {
			t.Fatalf("vertex %d differs after double inversion", i)
		}
	}
	if !back.Plane().ApproxEquals(p.Plane()) {
		t.Error("plane differs after double inversion")
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	p := quadXY(t, 2, nil)
	tests := []struct {
		name string
		pt   v3.Vec
		want bool
	}{
		{"center", v3.Vec{}, true},
		{"inside", v3.Vec{X: 0.9, Y: -0.9}, true},
		{"outside in plane", v3.Vec{X: 2}, false},
		{"off plane", v3.Vec{Z: 0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ContainsPoint(tt.pt); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}

	// The edge-plane formulation must agree on a convex polygon.
	t.Run("edge planes agree", func(t *testing.T) {
		samples := []v3.Vec{{}, {X: 0.5, Y: 0.5}, {X: 1.5}, {X: -0.7, Y: 0.2}}
		planes := p.EdgePlanes()
		if len(planes) != 4 {
			t.Fatalf("EdgePlanes() returned %d planes", len(planes))
		}
		for _, pt := range samples {
			inBack := true
			for _, ep := range planes {
				if ep.Distance(pt) > geom.Epsilon {
					inBack = false
					break
				}
			}
			if got := p.ContainsPoint(pt); got != inBack {
				t.Errorf("point %v: crossing test %v, edge planes %v", pt, got, inBack)
			}
		}
	})
}

func TestPolygonWithMaterial(t *testing.T) {
	p := quadXY(t, 2, "old")
	q := p.WithMaterial("new")
	if p.Material() != "old" {
		t.Error("WithMaterial mutated the original")
	}
	if q.Material() != "new" {
		t.Error("copy did not take the new material")
	}
}

func TestPolygonClipConvex(t *testing.T) {
	clipper := quadXY(t, 2, nil)

	t.Run("fully inside", func(t *testing.T) {
		var inside, outside []Polygon
		id := 0
		clipper.Clip(quadXY(t, 1, nil), &inside, &outside, &id)
		if len(inside) != 1 || len(outside) != 0 {
			t.Fatalf("inside/outside = %d/%d", len(inside), len(outside))
		}
	})

	t.Run("partial overlap", func(t *testing.T) {
		big := quadXY(t, 2, nil)
		shifted, ok := NewPolygon(translateVerts(big.Vertices(), v3.Vec{X: 1.5}), nil)
		if !ok {
			t.Fatal("shifted quad invalid")
		}
		var inside, outside []Polygon
		id := 0
		clipper.Clip(shifted, &inside, &outside, &id)
		if math.Abs(polygonArea(inside)-1) > 1e-9 {
			t.Errorf("inside area = %v, want 1", polygonArea(inside))
		}
		if math.Abs(polygonArea(outside)-3) > 1e-9 {
			t.Errorf("outside area = %v, want 3", polygonArea(outside))
		}
	})

	t.Run("disjoint", func(t *testing.T) {
		far, ok := NewPolygon(translateVerts(quadXY(t, 1, nil).Vertices(), v3.Vec{X: 10}), nil)
		if !ok {
			t.Fatal("far quad invalid")
		}
		var inside, outside []Polygon
		id := 0
		clipper.Clip(far, &inside, &outside, &id)
		if len(inside) != 0 || polygonArea(outside) < 1-1e-9 {
			t.Error("disjoint polygon should stay outside whole")
		}
	})
}

func TestPolygonClipTo(t *testing.T) {
	subject := quadXY(t, 2, nil)
	left, ok := NewPolygon(translateVerts(quadXY(t, 2, nil).Vertices(), v3.Vec{X: -1}), nil)
	if !ok {
		t.Fatal("left clipper invalid")
	}
	right, ok := NewPolygon(translateVerts(quadXY(t, 2, nil).Vertices(), v3.Vec{X: 1}), nil)
	if !ok {
		t.Fatal("right clipper invalid")
	}

	var inside, outside []Polygon
	id := 0
	subject.ClipTo([]Polygon{left, right}, &inside, &outside, &id)
	if math.Abs(polygonArea(inside)-4) > 1e-9 {
		t.Errorf("inside area = %v, want 4 (both halves covered)", polygonArea(inside))
	}
	if len(outside) != 0 {
		t.Errorf("outside fragments = %d, want 0", len(outside))
	}
}

func translateVerts(verts []geom.Vertex, offset v3.Vec) []geom.Vertex {
	out := make([]geom.Vertex, len(verts))
	for i, v := range verts {
		v.Position = v.Position.Add(offset)
		out[i] = v
	}
	return out
}
