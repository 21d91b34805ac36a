package csg

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ggthedev/Euclid/pkg/geom"
)

// Union returns the volume covered by either mesh. Meshes with disjoint
// bounds are concatenated without any clipping.
func (m *Mesh) Union(other *Mesh) *Mesh {
	if m.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return m
	}
	if !m.Bounds().Intersects(other.Bounds()) {
		return NewMesh(concat(m.polygons, other.polygons))
	}
	var id int
	bspA := NewBSP(m.polygons, &id)
	bspB := NewBSP(other.polygons, &id)
	aOut := bspB.Clip(m.polygons, GreaterThan, &id)
	bOut := bspA.Clip(other.polygons, GreaterThanEqual, &id)
	return NewMesh(concat(aOut, bOut))
}

// Subtract returns the volume of m not covered by other.
func (m *Mesh) Subtract(other *Mesh) *Mesh {
	if m.IsEmpty() || other.IsEmpty() || !m.Bounds().Intersects(other.Bounds()) {
		return m
	}
	var id int
	bspA := NewBSP(m.polygons, &id)
	bspB := NewBSP(other.polygons, &id)
	aOut := bspB.Clip(m.polygons, GreaterThan, &id)
	bIn := bspA.Clip(other.polygons, LessThan, &id)
	return NewMesh(concat(aOut, invert(bIn)))
}

// Intersect returns the volume covered by both meshes.
func (m *Mesh) Intersect(other *Mesh) *Mesh {
	if m.IsEmpty() || other.IsEmpty() || !m.Bounds().Intersects(other.Bounds()) {
		return NewMesh(nil)
	}
	var id int
	bspA := NewBSP(m.polygons, &id)
	bspB := NewBSP(other.polygons, &id)
	aIn := bspB.Clip(m.polygons, LessThan, &id)
	bIn := bspA.Clip(other.polygons, LessThanEqual, &id)
	return NewMesh(concat(aIn, bIn))
}

// Xor returns the volume covered by exactly one of the meshes,
// assembled as A-outside, inverted B-inside, inverted A-inside,
// B-outside.
func (m *Mesh) Xor(other *Mesh) *Mesh {
	if m.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return m
	}
	if !m.Bounds().Intersects(other.Bounds()) {
		return NewMesh(concat(m.polygons, other.polygons))
	}
	var id int
	bspA := NewBSP(m.polygons, &id)
	bspB := NewBSP(other.polygons, &id)
	aOut := bspB.Clip(m.polygons, GreaterThan, &id)
	aIn := bspB.Clip(m.polygons, LessThan, &id)
	bOut := bspA.Clip(other.polygons, GreaterThan, &id)
	bIn := bspA.Clip(other.polygons, LessThan, &id)
	result := concat(aOut, invert(bIn))
	result = append(result, invert(aIn)...)
	result = append(result, bOut...)
	return NewMesh(result)
}

// Stencil returns m's shape with the region inside other repainted with
// other's material. The paint material is the first polygon's; when
// other carries no material the painted fragments keep their own.
func (m *Mesh) Stencil(other *Mesh) *Mesh {
	if m.IsEmpty() || other.IsEmpty() || !m.Bounds().Intersects(other.Bounds()) {
		return m
	}
	var id int
	bspB := NewBSP(other.polygons, &id)
	outside := bspB.Clip(m.polygons, GreaterThan, &id)
	inside := bspB.Clip(m.polygons, LessThanEqual, &id)
	paint := other.polygons[0].material
	if paint != nil {
		for i := range inside {
			inside[i] = inside[i].WithMaterial(paint)
		}
	}
	return NewMesh(concat(outside, inside))
}

// Split divides the mesh by a plane. Polygons coplanar with the plane go
// to the front half exactly when their normal agrees with the plane
// normal. A side with no polygons is returned as nil.
func (m *Mesh) Split(plane geom.Plane) (front, back *Mesh) {
	var id int
	var f, b []Polygon
	for _, p := range m.polygons {
		p.Split(plane, nil, &f, &b, &id)
	}
	if len(f) > 0 {
		front = NewMesh(f)
	}
	if len(b) > 0 {
		back = NewMesh(b)
	}
	return front, back
}

// Clip removes everything behind the plane. With a non-nil fill
// material the cut is capped: an oversized square on the plane, facing
// backward, is clipped to the solid's interior and appended.
func (m *Mesh) Clip(plane geom.Plane, fill Material) *Mesh {
	front, _ := m.Split(plane)
	if front == nil {
		return NewMesh(nil)
	}
	if fill == nil {
		return front
	}

	// Conservative cap radius: every point of the front half lies within
	// r of the plane's center point, so its projection does too.
	center := plane.Normal.MulScalar(plane.W)
	var r float64
	for _, c := range front.Bounds().Corners() {
		r = math.Max(r, c.Sub(center).Length())
	}
	square := capSquare(plane, center, r, fill)

	var id int
	caps := NewBSP(m.polygons, &id).Clip([]Polygon{square}, LessThan, &id)
	return NewMesh(concat(front.polygons, caps))
}

// capSquare builds a square of half-extent r on the plane, facing
// against the plane normal so it closes the back side of a clipped
// solid.
func capSquare(plane geom.Plane, center v3.Vec, r float64, fill Material) Polygon {
	u, v := planeBasis(plane.Normal)
	corners := []v3.Vec{
		center.Add(u.MulScalar(r)),
		center.Sub(v.MulScalar(r)),
		center.Sub(u.MulScalar(r)),
		center.Add(v.MulScalar(r)),
	}
	normal := plane.Normal.Neg()
	uvs := []v3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	verts := make([]geom.Vertex, 4)
	for i, c := range corners {
		verts[i] = geom.NewVertex(c, normal, uvs[i])
	}
	return newPolygon(verts, geom.Plane{Normal: normal, W: -plane.W}, true, fill, 0)
}

// planeBasis returns two orthonormal vectors spanning the plane with
// normal n, such that u cross v equals n.
func planeBasis(n v3.Vec) (u, v v3.Vec) {
	ref := v3.Vec{X: 1}
	if math.Abs(n.X) > 0.9 {
		ref = v3.Vec{Y: 1}
	}
	u = n.Cross(ref).Normalize()
	v = n.Cross(u)
	return u, v
}

func concat(a, b []Polygon) []Polygon {
	out := make([]Polygon, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
