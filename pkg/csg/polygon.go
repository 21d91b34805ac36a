// Package csg implements constructive solid geometry on closed polygonal
// surface meshes: polygon splitting and tessellation, BSP-based interior
// classification, and the boolean volume operations built on both.
package csg

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ggthedev/Euclid/pkg/geom"
)

// Material is an opaque surface token. The engine only compares materials
// for equality and copies them, so any comparable value works; nil means
// "no material".
type Material any

// Polygon is a planar face with three or more vertices, wound
// anticlockwise as seen from the front of its plane. Polygons are value
// types; the vertex slice is shared between copies and must not be
// mutated.
type Polygon struct {
	vertices []geom.Vertex
	plane    geom.Plane
	convex   bool
	material Material
	id       int
}

// NewPolygon validates the vertex ring and builds a polygon. ok is false
// when there are fewer than three vertices, the ring is degenerate, or
// the vertices are not coplanar within tolerance.
func NewPolygon(vertices []geom.Vertex, material Material) (Polygon, bool) {
	if len(vertices) < 3 {
		return Polygon{}, false
	}
	positions := make([]v3.Vec, len(vertices))
	for i, v := range vertices {
		positions[i] = v.Position
	}
	for i, p := range positions {
		if geom.ApproxEqual(p, positions[(i+1)%len(positions)]) {
			return Polygon{}, false
		}
	}
	normal := geom.FaceNormal(positions)
	if normal.Length() < geom.Epsilon {
		return Polygon{}, false
	}
	plane := geom.NewPlane(normal, geom.Centroid(positions))
	for _, p := range positions {
		if plane.Relation(p) != geom.Coplanar {
			return Polygon{}, false
		}
	}
	return Polygon{
		vertices: append([]geom.Vertex(nil), vertices...),
		plane:    plane,
		convex:   verticesAreConvex(vertices, plane.Normal),
		material: material,
	}, true
}

// newPolygon is the unchecked constructor used on split and merge paths,
// where the inputs are already known to be valid.
func newPolygon(vertices []geom.Vertex, plane geom.Plane, convex bool, material Material, id int) Polygon {
	return Polygon{vertices: vertices, plane: plane, convex: convex, material: material, id: id}
}

// Vertices returns the vertex ring. The slice is shared; treat it as
// read-only.
func (p Polygon) Vertices() []geom.Vertex { return p.vertices }

// Plane returns the polygon's cached plane.
func (p Polygon) Plane() geom.Plane { return p.plane }

// IsConvex reports the cached convexity flag.
func (p Polygon) IsConvex() bool { return p.convex }

// Material returns the polygon's material token.
func (p Polygon) Material() Material { return p.material }

// WithMaterial returns a copy of the polygon carrying the given material.
// The vertex storage is shared; the original polygon is unaffected.
func (p Polygon) WithMaterial(m Material) Polygon {
	p.material = m
	return p
}

// Compare classifies the polygon against a plane by folding the
// per-vertex relations, short-circuiting once it spans.
func (p Polygon) Compare(plane geom.Plane) geom.PlaneRelation {
	var r geom.PlaneRelation
	for _, v := range p.vertices {
		r = r.Union(plane.Relation(v.Position))
		if r == geom.Spanning {
			break
		}
	}
	return r
}

// Split divides the polygon by a plane, appending the pieces to the
// caller's lists. Non-spanning polygons are appended whole. When the
// coplanar list is nil, coplanar polygons are instead routed to front or
// back by normal agreement with the splitting plane.
//
// Spanning polygons receive a fresh nonzero id from the counter (when
// they do not already carry one) so sibling fragments can be re-merged
// later; non-convex polygons are tessellated before splitting.
func (p Polygon) Split(plane geom.Plane, coplanar, front, back *[]Polygon, id *int) {
	switch p.Compare(plane) {
	case geom.Coplanar:
		switch {
		case coplanar != nil:
			*coplanar = append(*coplanar, p)
		case p.plane.Normal.Dot(plane.Normal) > 0:
			*front = append(*front, p)
		default:
			*back = append(*back, p)
		}
		return
	case geom.Front:
		*front = append(*front, p)
		return
	case geom.Back:
		*back = append(*back, p)
		return
	}

	poly := p
	if poly.id == 0 && id != nil {
		*id++
		poly.id = *id
	}
	if !poly.convex {
		for _, piece := range poly.Tessellate() {
			piece.Split(plane, coplanar, front, back, id)
		}
		return
	}

	var fverts, bverts []geom.Vertex
	n := len(poly.vertices)
	for i := 0; i < n; i++ {
		vi := poly.vertices[i]
		vj := poly.vertices[(i+1)%n]
		ri := plane.Relation(vi.Position)
		rj := plane.Relation(vj.Position)
		if ri != geom.Back {
			fverts = append(fverts, vi)
		}
		if ri != geom.Front {
			bverts = append(bverts, vi)
		}
		if (ri == geom.Front && rj == geom.Back) || (ri == geom.Back && rj == geom.Front) {
			dir := vj.Position.Sub(vi.Position)
			t := (plane.W - plane.Normal.Dot(vi.Position)) / plane.Normal.Dot(dir)
			mid := vi.Lerp(vj, t)
			fverts = append(fverts, mid)
			bverts = append(bverts, mid)
		}
	}
	if fv := sanitizeVertices(fverts); fv != nil {
		*front = append(*front, newPolygon(fv, poly.plane, true, poly.material, poly.id))
	}
	if bv := sanitizeVertices(bverts); bv != nil {
		*back = append(*back, newPolygon(bv, poly.plane, true, poly.material, poly.id))
	}
}

// Inverted returns the polygon facing the other way: reversed winding,
// flipped vertex normals, inverted plane.
func (p Polygon) Inverted() Polygon {
	verts := make([]geom.Vertex, len(p.vertices))
	for i, v := range p.vertices {
		verts[len(verts)-1-i] = v.Inverted()
	}
	return newPolygon(verts, p.plane.Inverted(), p.convex, p.material, p.id)
}

// ContainsPoint reports whether the point lies on the polygon. The
// polygon and point are flattened onto the axis-aligned plane closest to
// the polygon normal and tested with the crossing-number rule.
func (p Polygon) ContainsPoint(pt v3.Vec) bool {
	if p.plane.Relation(pt) != geom.Coplanar {
		return false
	}
	axis := geom.DominantAxis(p.plane.Normal)
	px, py := geom.Flatten(pt, axis)
	inside := false
	n := len(p.vertices)
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := geom.Flatten(p.vertices[i].Position, axis)
		xj, yj := geom.Flatten(p.vertices[j].Position, axis)
		if (yi > py) != (yj > py) {
			x := xi + (py-yi)*(xj-xi)/(yj-yi)
			if px < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// EdgePlanes returns, for each directed edge, the plane through the edge
// perpendicular to the polygon. A point is on or inside a convex polygon
// exactly when it is in the back half-space of every edge plane.
func (p Polygon) EdgePlanes() []geom.Plane {
	planes := make([]geom.Plane, 0, len(p.vertices))
	for i, v := range p.vertices {
		next := p.vertices[(i+1)%len(p.vertices)]
		edge := next.Position.Sub(v.Position)
		n := edge.Cross(p.plane.Normal)
		if n.Length() < geom.Epsilon {
			continue
		}
		planes = append(planes, geom.NewPlane(n, v.Position))
	}
	return planes
}

// Clip splits q by the edge planes of p. Fragments of q inside p are
// appended to inside, the rest to outside. Non-convex operands are
// tessellated first.
func (p Polygon) Clip(q Polygon, inside, outside *[]Polygon, id *int) {
	if !p.convex {
		q.ClipTo(p.Tessellate(), inside, outside, id)
		return
	}
	if !q.convex {
		for _, piece := range q.Tessellate() {
			p.Clip(piece, inside, outside, id)
		}
		return
	}
	poly := q
	for _, ep := range p.EdgePlanes() {
		var coplanar, front, back []Polygon
		poly.Split(ep, &coplanar, &front, &back, id)
		*outside = append(*outside, front...)
		back = append(back, coplanar...)
		if len(back) == 0 {
			return
		}
		poly = back[0]
	}
	*inside = append(*inside, poly)
}

// ClipTo threads the polygon through a sequence of convex clippers. The
// fragments left outside one clipper become the working set for the
// next; whatever survives every clipper is appended to outside.
func (p Polygon) ClipTo(clippers []Polygon, inside, outside *[]Polygon, id *int) {
	work := []Polygon{p}
	if !p.convex {
		work = p.Tessellate()
	}
	for _, clipper := range clippers {
		var next []Polygon
		for _, poly := range work {
			clipper.Clip(poly, inside, &next, id)
		}
		work = next
		if len(work) == 0 {
			break
		}
	}
	*outside = append(*outside, work...)
}

// verticesAreConvex walks the ring checking that no turn opposes the
// polygon normal.
func verticesAreConvex(verts []geom.Vertex, normal v3.Vec) bool {
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i].Position
		b := verts[(i+1)%n].Position
		c := verts[(i+2)%n].Position
		if b.Sub(a).Cross(c.Sub(b)).Dot(normal) < -geom.Epsilon {
			return false
		}
	}
	return true
}

// sanitizeVertices collapses coincident neighbours and rejects rings
// that are too small or enclose no area. Returns nil for degenerate
// rings.
func sanitizeVertices(verts []geom.Vertex) []geom.Vertex {
	out := make([]geom.Vertex, 0, len(verts))
	for _, v := range verts {
		if len(out) > 0 && geom.ApproxEqual(out[len(out)-1].Position, v.Position) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && geom.ApproxEqual(out[0].Position, out[len(out)-1].Position) {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil
	}
	positions := make([]v3.Vec, len(out))
	for i, v := range out {
		positions[i] = v.Position
	}
	if geom.FaceNormal(positions).Length() < geom.Epsilon {
		return nil
	}
	return out
}

// materialsEqual compares two material tokens. Materials must be
// comparable values.
func materialsEqual(a, b Material) bool {
	return a == b
}
