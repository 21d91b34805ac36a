package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// PlaneRelation describes where geometry sits relative to a plane. It is
// a two-bit lattice: Spanning is the bitwise union of Front and Back, so
// per-vertex relations can be folded with Union.
type PlaneRelation uint8

const (
	Coplanar PlaneRelation = 0
	Front    PlaneRelation = 1
	Back     PlaneRelation = 2
	Spanning PlaneRelation = Front | Back
)

// Union folds two relations together.
func (r PlaneRelation) Union(o PlaneRelation) PlaneRelation {
	return r | o
}

// String returns the relation name for diagnostics.
func (r PlaneRelation) String() string {
	switch r {
	case Coplanar:
		return "coplanar"
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "spanning"
	}
}

// Plane is a directed plane with unit normal n and offset w such that the
// plane is the point set {p : n·p = w}.
type Plane struct {
	Normal v3.Vec
	W      float64
}

// NewPlane builds a plane from a normal (normalized here) and a point on
// the plane.
func NewPlane(normal, point v3.Vec) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, W: n.Dot(point)}
}

// PlaneFromPoints derives the plane through three points, oriented so the
// points wind anticlockwise as seen from the front. ok is false when the
// points are colinear.
func PlaneFromPoints(a, b, c v3.Vec) (Plane, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() < Epsilon {
		return Plane{}, false
	}
	return NewPlane(n, a), true
}

// Inverted returns the same plane facing the other way.
func (p Plane) Inverted() Plane {
	return Plane{Normal: p.Normal.Neg(), W: -p.W}
}

// Distance returns the signed distance from the point to the plane,
// positive on the front side.
func (p Plane) Distance(v v3.Vec) float64 {
	return p.Normal.Dot(v) - p.W
}

// Relation classifies a point against the plane with Epsilon tolerance.
// Points within Epsilon of the plane are Coplanar.
func (p Plane) Relation(v v3.Vec) PlaneRelation {
	d := p.Distance(v)
	switch {
	case math.Abs(d) <= Epsilon:
		return Coplanar
	case d > 0:
		return Front
	default:
		return Back
	}
}

// ApproxEquals reports whether two planes coincide, including direction,
// within Epsilon.
func (p Plane) ApproxEquals(o Plane) bool {
	return p.Normal.Equals(o.Normal, Epsilon) && math.Abs(p.W-o.W) <= Epsilon
}
