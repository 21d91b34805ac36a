package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/dhconnelly/rtreego"
)

// Bounds is an axis-aligned bounding box. The zero value is the empty
// box: Min components above Max components, absorbed by Union.
type Bounds struct {
	Min, Max v3.Vec
}

// EmptyBounds returns a box that contains nothing.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: v3.Vec{X: inf, Y: inf, Z: inf},
		Max: v3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// BoundsFromPoints returns the smallest box containing all points.
func BoundsFromPoints(points []v3.Vec) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b = b.Including(p)
	}
	return b
}

// IsEmpty reports whether the box contains no points.
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Including extends the box to contain the point.
func (b Bounds) Including(p v3.Vec) Bounds {
	return Bounds{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box containing both boxes.
func (b Bounds) Union(o Bounds) Bounds {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Bounds{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Intersects reports whether the two closed boxes share any point.
// Touching faces count as intersecting.
func (b Bounds) Intersects(o Bounds) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Contains reports whether the point is inside or on the box.
func (b Bounds) Contains(p v3.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Size returns the box extent along each axis.
func (b Bounds) Size() v3.Vec {
	if b.IsEmpty() {
		return v3.Vec{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b Bounds) Center() v3.Vec {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Corners returns the eight corner points of the box.
func (b Bounds) Corners() []v3.Vec {
	return []v3.Vec{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// Rect converts the box to an rtreego rectangle for spatial indexing.
// rtreego requires strictly positive extents, so flat boxes are padded
// by Epsilon per axis; the padding only widens candidate lookups.
func (b Bounds) Rect() (rtreego.Rect, error) {
	size := b.Size()
	lengths := []float64{
		math.Max(size.X, Epsilon),
		math.Max(size.Y, Epsilon),
		math.Max(size.Z, Epsilon),
	}
	return rtreego.NewRect(rtreego.Point{b.Min.X, b.Min.Y, b.Min.Z}, lengths)
}
