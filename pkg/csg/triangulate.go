package csg

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ggthedev/Euclid/pkg/geom"
)

// Triangulate decomposes the polygon into triangles. Convex polygons are
// fanned from the first vertex; concave polygons are ear-clipped. The
// ear clipper is best-effort: if two full revolutions pass without
// finding an ear the triangles collected so far are returned.
func (p Polygon) Triangulate() []Polygon {
	if len(p.vertices) == 3 {
		return []Polygon{p}
	}
	if p.convex {
		out := make([]Polygon, 0, len(p.vertices)-2)
		for i := 1; i+1 < len(p.vertices); i++ {
			if tri, ok := p.triangle(p.vertices[0], p.vertices[i], p.vertices[i+1]); ok {
				out = append(out, tri)
			}
		}
		return out
	}
	return p.earClip()
}

// Tessellate returns the smallest convex decomposition reachable by
// triangulating and then greedily rejoining adjacent triangles whose
// union stays convex.
func (p Polygon) Tessellate() []Polygon {
	if p.convex {
		return []Polygon{p}
	}
	polys := p.Triangulate()
	for merged := true; merged; {
		merged = false
	scan:
		for i := 0; i < len(polys); i++ {
			for j := i + 1; j < len(polys); j++ {
				if joined, ok := polys[i].join(polys[j], true); ok {
					polys[i] = joined
					polys = append(polys[:j], polys[j+1:]...)
					merged = true
					break scan
				}
			}
		}
	}
	return polys
}

// Merge combines two polygons that share an edge. It is permitted when
// both are unsplit (id zero) with equal materials and coincident planes,
// or when both carry the same nonzero id (sibling fragments of an
// earlier split). ok is false when merging does not apply or the shared
// edge structure is wrong.
func (p Polygon) Merge(other Polygon) (Polygon, bool) {
	switch {
	case p.id == 0 && other.id == 0:
		if !materialsEqual(p.material, other.material) || !p.plane.ApproxEquals(other.plane) {
			return Polygon{}, false
		}
	case p.id != other.id:
		return Polygon{}, false
	}
	return p.join(other, false)
}

// join splices two polygons along their shared edge. The polygons must
// share exactly two vertices (position, normal and texture coordinate
// within tolerance) forming a directed edge in one and its reverse in
// the other. Join vertices whose adjacent edges become colinear are
// removed. ok is false when the shared-edge structure is absent or the
// result degenerates (or is concave, when ensureConvex is set).
func (p Polygon) join(other Polygon, ensureConvex bool) (Polygon, bool) {
	type match struct{ pi, oi int }
	var matches []match
	for i, v := range p.vertices {
		for j, w := range other.vertices {
			if v.ApproxEquals(w) {
				matches = append(matches, match{i, j})
				break
			}
		}
	}
	if len(matches) != 2 {
		return Polygon{}, false
	}

	np, no := len(p.vertices), len(other.vertices)
	m0, m1 := matches[0], matches[1]
	var ai, bi int // directed shared edge a->b in p
	switch {
	case (m0.pi+1)%np == m1.pi:
		ai, bi = m0.pi, m1.pi
	case (m1.pi+1)%np == m0.pi:
		ai, bi = m1.pi, m0.pi
	default:
		return Polygon{}, false
	}
	aj, bj := m0.oi, m1.oi
	if ai != m0.pi {
		aj, bj = m1.oi, m0.oi
	}
	// other must walk the edge the opposite way: ..., b, a, ...
	if (bj+1)%no != aj {
		return Polygon{}, false
	}

	// Ring: all of p starting at b, then other's run strictly between a
	// and b.
	ring := make([]geom.Vertex, 0, np+no-2)
	for i := 0; i < np; i++ {
		ring = append(ring, p.vertices[(bi+i)%np])
	}
	for i := (aj + 1) % no; i != bj; i = (i + 1) % no {
		ring = append(ring, other.vertices[i])
	}

	// Drop the join vertices where the splice leaves the edges colinear.
	// a sits at index np-1, b at index 0.
	ring = dropIfColinear(ring, np-1)
	ring = dropIfColinear(ring, 0)

	verts := sanitizeVertices(ring)
	if verts == nil {
		return Polygon{}, false
	}
	convex := verticesAreConvex(verts, p.plane.Normal)
	if ensureConvex && !convex {
		return Polygon{}, false
	}
	return newPolygon(verts, p.plane, convex, p.material, p.id), true
}

// dropIfColinear removes ring[i] when its two adjacent edges point the
// same way within tolerance.
func dropIfColinear(ring []geom.Vertex, i int) []geom.Vertex {
	n := len(ring)
	if n < 4 {
		return ring
	}
	prev := ring[(i+n-1)%n].Position
	cur := ring[i].Position
	next := ring[(i+1)%n].Position
	e1 := cur.Sub(prev)
	e2 := next.Sub(cur)
	if e1.Length() < geom.Epsilon || e2.Length() < geom.Epsilon {
		return ring
	}
	if e1.Normalize().Dot(e2.Normalize()) > 1-geom.Epsilon {
		return append(ring[:i:i], ring[i+1:]...)
	}
	return ring
}

// earClip triangulates a simple, possibly concave ring.
func (p Polygon) earClip() []Polygon {
	verts := append([]geom.Vertex(nil), p.vertices...)
	var out []Polygon
	i, attempts := 0, 0
	for len(verts) > 3 {
		n := len(verts)
		if attempts >= 2*n {
			// No ear found in two full revolutions; return what we have.
			return out
		}
		v0 := verts[i%n]
		v1 := verts[(i+1)%n]
		v2 := verts[(i+2)%n]
		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v1.Position)
		cross := e1.Cross(e2)
		switch {
		case cross.Length() < geom.Epsilon:
			if e1.Dot(e2) > 0 {
				// v1 sits between its neighbours; drop it.
				verts = removeVertex(verts, (i+1)%n)
				attempts = 0
			} else {
				i++
				attempts++
			}
		case cross.Dot(p.plane.Normal) <= 0:
			// Reflex corner, not an ear.
			i++
			attempts++
		case anyVertexStrictlyInside(verts, i%n, (i+1)%n, (i+2)%n, p.plane.Normal):
			i++
			attempts++
		default:
			if tri, ok := p.triangle(v0, v1, v2); ok {
				out = append(out, tri)
			}
			verts = removeVertex(verts, (i+1)%n)
			attempts = 0
		}
	}
	if tri, ok := p.triangle(verts[0], verts[1], verts[2]); ok {
		out = append(out, tri)
	}
	return out
}

// triangle builds a triangle inheriting the polygon's plane, material
// and split id. ok is false for colinear corners.
func (p Polygon) triangle(a, b, c geom.Vertex) (Polygon, bool) {
	n := b.Position.Sub(a.Position).Cross(c.Position.Sub(b.Position))
	if n.Length() < geom.Epsilon {
		return Polygon{}, false
	}
	return newPolygon([]geom.Vertex{a, b, c}, p.plane, true, p.material, p.id), true
}

// anyVertexStrictlyInside reports whether any ring vertex other than the
// candidate ear corners lies strictly inside the ear triangle.
func anyVertexStrictlyInside(verts []geom.Vertex, i0, i1, i2 int, normal v3.Vec) bool {
	a := verts[i0].Position
	b := verts[i1].Position
	c := verts[i2].Position
	for i, v := range verts {
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		if pointStrictlyInTriangle(v.Position, a, b, c, normal) {
			return true
		}
	}
	return false
}

// pointStrictlyInTriangle tests the point against the triangle's edge
// planes; strictly inside means strictly behind all three.
func pointStrictlyInTriangle(pt, a, b, c, normal v3.Vec) bool {
	edges := [3][2]v3.Vec{{a, b}, {b, c}, {c, a}}
	for _, e := range edges {
		en := e[1].Sub(e[0]).Cross(normal)
		if en.Length() < geom.Epsilon {
			return false
		}
		if en.Normalize().Dot(pt.Sub(e[0])) > -geom.Epsilon {
			return false
		}
	}
	return true
}

func removeVertex(verts []geom.Vertex, i int) []geom.Vertex {
	return append(verts[:i:i], verts[i+1:]...)
}
