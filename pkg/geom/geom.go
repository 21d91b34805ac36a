// Package geom provides the geometric primitives the CSG engine is built
// on: planes, bounds, attributed vertices, and tolerance-based comparison
// helpers over the sdfx vector types.
package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Epsilon is the module-wide tolerance for geometric comparisons.
// All distance, dot and cross comparisons in the engine go through it.
const Epsilon = 1e-8

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b v3.Vec, t float64) v3.Vec {
	return a.Add(b.Sub(a).MulScalar(t))
}

// ApproxEqual reports whether two points coincide within Epsilon.
func ApproxEqual(a, b v3.Vec) bool {
	return a.Equals(b, Epsilon)
}

// FaceNormal computes the (unnormalized) normal of a closed vertex ring
// using Newell's method. The result is robust for non-convex rings and
// has length proportional to twice the enclosed area; a near-zero length
// means the ring is degenerate.
func FaceNormal(points []v3.Vec) v3.Vec {
	var n v3.Vec
	for i, a := range points {
		b := points[(i+1)%len(points)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// Centroid returns the arithmetic mean of the given points.
func Centroid(points []v3.Vec) v3.Vec {
	var c v3.Vec
	for _, p := range points {
		c = c.Add(p)
	}
	return c.DivScalar(float64(len(points)))
}

// DominantAxis returns the index (0=X, 1=Y, 2=Z) of the axis along which
// the vector has the largest magnitude. It selects the axis-aligned plane
// a polygon is flattened onto for 2D point tests.
func DominantAxis(v v3.Vec) int {
	x, y, z := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case x >= y && x >= z:
		return 0
	case y >= z:
		return 1
	default:
		return 2
	}
}

// Flatten projects a point to 2D by dropping the given axis. The
// remaining two coordinates keep their relative order, so winding is
// preserved up to a fixed sign per axis.
func Flatten(v v3.Vec, axis int) (float64, float64) {
	switch axis {
	case 0:
		return v.Y, v.Z
	case 1:
		return v.Z, v.X
	default:
		return v.X, v.Y
	}
}
