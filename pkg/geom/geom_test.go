package geom

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b v3.Vec
		t    float64
		want v3.Vec
	}{
		{"start", v3.Vec{X: 1}, v3.Vec{X: 3}, 0, v3.Vec{X: 1}},
		{"end", v3.Vec{X: 1}, v3.Vec{X: 3}, 1, v3.Vec{X: 3}},
		{"midpoint", v3.Vec{X: 2, Y: -2}, v3.Vec{X: 4, Y: 2}, 0.5, v3.Vec{X: 3, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); !ApproxEqual(got, tt.want) {
				t.Errorf("Lerp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFaceNormal(t *testing.T) {
	square := []v3.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}}
	n := FaceNormal(square)
	if !ApproxEqual(n.Normalize(), v3.Vec{Z: 1}) {
		t.Errorf("normal = %v, want +z", n.Normalize())
	}
	// Length is twice the enclosed area.
	if got := n.Length(); math.Abs(got-8) > Epsilon {
		t.Errorf("normal length = %v, want 8", got)
	}

	degenerate := []v3.Vec{{}, {X: 1}, {X: 2}}
	if got := FaceNormal(degenerate).Length(); got > Epsilon {
		t.Errorf("colinear ring normal length = %v, want ~0", got)
	}
}

func TestDominantAxis(t *testing.T) {
	tests := []struct {
		v    v3.Vec
		want int
	}{
		{v3.Vec{X: 1, Y: 0.5}, 0},
		{v3.Vec{X: -3, Y: 2, Z: 1}, 0},
		{v3.Vec{Y: -1}, 1},
		{v3.Vec{Y: 0.1, Z: 0.9}, 2},
	}
	for _, tt := range tests {
		if got := DominantAxis(tt.v); got != tt.want {
			t.Errorf("DominantAxis(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestPlaneRelationLattice(t *testing.T) {
	if Front.Union(Back) != Spanning {
		t.Error("front|back should be spanning")
	}
	if Coplanar.Union(Front) != Front {
		t.Error("coplanar|front should be front")
	}
	if Spanning.Union(Coplanar) != Spanning {
		t.Error("spanning|coplanar should be spanning")
	}
}

func TestPlaneRelation(t *testing.T) {
	p := NewPlane(v3.Vec{Z: 1}, v3.Vec{Z: 2})
	tests := []struct {
		name string
		pt   v3.Vec
		want PlaneRelation
	}{
		{"above", v3.Vec{Z: 3}, Front},
		{"below", v3.Vec{Z: 1}, Back},
		{"on", v3.Vec{X: 5, Y: -5, Z: 2}, Coplanar},
		{"within epsilon", v3.Vec{Z: 2 + Epsilon/2}, Coplanar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Relation(tt.pt); got != tt.want {
				t.Errorf("Relation(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPlaneFromPoints(t *testing.T) {
	p, ok := PlaneFromPoints(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1})
	if !ok {
		t.Fatal("expected a valid plane")
	}
	if !ApproxEqual(p.Normal, v3.Vec{Z: 1}) || math.Abs(p.W) > Epsilon {
		t.Errorf("plane = %+v, want z=0 facing +z", p)
	}

	if _, ok := PlaneFromPoints(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{X: 2}); ok {
		t.Error("colinear points should not form a plane")
	}
}

func TestPlaneInverted(t *testing.T) {
	p := NewPlane(v3.Vec{Y: 1}, v3.Vec{Y: 4})
	inv := p.Inverted()
	if !ApproxEqual(inv.Normal, v3.Vec{Y: -1}) || math.Abs(inv.W+4) > Epsilon {
		t.Errorf("Inverted() = %+v", inv)
	}
	if !inv.Inverted().ApproxEquals(p) {
		t.Error("double inversion should restore the plane")
	}
	if d := p.Distance(v3.Vec{Y: 6}); math.Abs(d-2) > Epsilon {
		t.Errorf("Distance = %v, want 2", d)
	}
	if d := inv.Distance(v3.Vec{Y: 6}); math.Abs(d+2) > Epsilon {
		t.Errorf("inverted Distance = %v, want -2", d)
	}
}

func TestBounds(t *testing.T) {
	b := BoundsFromPoints([]v3.Vec{{X: -1, Y: 2, Z: 0}, {X: 3, Y: -2, Z: 5}})
	if b.IsEmpty() {
		t.Fatal("bounds should not be empty")
	}
	if !ApproxEqual(b.Min, v3.Vec{X: -1, Y: -2, Z: 0}) || !ApproxEqual(b.Max, v3.Vec{X: 3, Y: 2, Z: 5}) {
		t.Errorf("bounds = %+v", b)
	}
	if !ApproxEqual(b.Center(), v3.Vec{X: 1, Y: 0, Z: 2.5}) {
		t.Errorf("Center() = %v", b.Center())
	}
	if len(b.Corners()) != 8 {
		t.Errorf("Corners() returned %d points", len(b.Corners()))
	}

	t.Run("empty", func(t *testing.T) {
		e := EmptyBounds()
		if !e.IsEmpty() {
			t.Error("EmptyBounds should be empty")
		}
		if e.Intersects(b) || b.Intersects(e) {
			t.Error("empty bounds intersect nothing")
		}
		if got := e.Union(b); !ApproxEqual(got.Min, b.Min) || !ApproxEqual(got.Max, b.Max) {
			t.Error("union with empty should be identity")
		}
	})

	t.Run("intersects", func(t *testing.T) {
		tests := []struct {
			name string
			o    Bounds
			want bool
		}{
			{"overlapping", Bounds{Min: v3.Vec{X: 2, Y: -1, Z: 1}, Max: v3.Vec{X: 9, Y: 9, Z: 9}}, true},
			{"touching face", Bounds{Min: v3.Vec{X: 3, Y: -2, Z: 0}, Max: v3.Vec{X: 6, Y: 2, Z: 5}}, true},
			{"disjoint", Bounds{Min: v3.Vec{X: 10, Y: 10, Z: 10}, Max: v3.Vec{X: 11, Y: 11, Z: 11}}, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := b.Intersects(tt.o); got != tt.want {
					t.Errorf("Intersects = %v, want %v", got, tt.want)
				}
			})
		}
	})

	t.Run("rect", func(t *testing.T) {
		if _, err := b.Rect(); err != nil {
			t.Fatalf("Rect() error: %v", err)
		}
		flat := BoundsFromPoints([]v3.Vec{{X: 1, Y: 1, Z: 1}})
		if _, err := flat.Rect(); err != nil {
			t.Fatalf("flat Rect() error: %v", err)
		}
	})
}

func TestVertexLerp(t *testing.T) {
	a := NewVertex(v3.Vec{}, v3.Vec{Z: 1}, v3.Vec{})
	b := NewVertex(v3.Vec{X: 2}, v3.Vec{Z: 1}, v3.Vec{X: 1, Y: 1})
	mid := a.Lerp(b, 0.5)
	if !ApproxEqual(mid.Position, v3.Vec{X: 1}) {
		t.Errorf("position = %v", mid.Position)
	}
	if !ApproxEqual(mid.TexCoord, v3.Vec{X: 0.5, Y: 0.5}) {
		t.Errorf("texcoord = %v", mid.TexCoord)
	}
}

func TestVertexInverted(t *testing.T) {
	v := NewVertex(v3.Vec{X: 1}, v3.Vec{Z: 1}, v3.Vec{X: 0.25})
	inv := v.Inverted()
	if !ApproxEqual(inv.Normal, v3.Vec{Z: -1}) {
		t.Errorf("inverted normal = %v", inv.Normal)
	}
	if !ApproxEqual(inv.Position, v.Position) || !ApproxEqual(inv.TexCoord, v.TexCoord) {
		t.Error("inversion must only flip the normal")
	}
	if !inv.Inverted().ApproxEquals(v) {
		t.Error("double inversion should restore the vertex")
	}
}

func TestVertexApproxEquals(t *testing.T) {
	a := NewVertex(v3.Vec{X: 1}, v3.Vec{Z: 1}, v3.Vec{})
	b := NewVertex(v3.Vec{X: 1 + Epsilon/2}, v3.Vec{Z: 1}, v3.Vec{})
	c := NewVertex(v3.Vec{X: 1}, v3.Vec{Z: -1}, v3.Vec{})
	if !a.ApproxEquals(b) {
		t.Error("vertices within epsilon should be equal")
	}
	if a.ApproxEquals(c) {
		t.Error("vertices with opposite normals should differ")
	}
}
