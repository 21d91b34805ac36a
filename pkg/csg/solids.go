package csg

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ggthedev/Euclid/pkg/geom"
)

// NewBox returns a closed box mesh with the given edge lengths, centered
// at the origin, faces wound outward.
func NewBox(size v3.Vec, material Material) *Mesh {
	h := size.MulScalar(0.5)
	type face struct {
		normal  v3.Vec
		corners [4]v3.Vec
	}
	faces := []face{
		{v3.Vec{X: 1}, [4]v3.Vec{
			{X: h.X, Y: -h.Y, Z: -h.Z}, {X: h.X, Y: h.Y, Z: -h.Z},
			{X: h.X, Y: h.Y, Z: h.Z}, {X: h.X, Y: -h.Y, Z: h.Z}}},
		{v3.Vec{X: -1}, [4]v3.Vec{
			{X: -h.X, Y: -h.Y, Z: -h.Z}, {X: -h.X, Y: -h.Y, Z: h.Z},
			{X: -h.X, Y: h.Y, Z: h.Z}, {X: -h.X, Y: h.Y, Z: -h.Z}}},
		{v3.Vec{Y: 1}, [4]v3.Vec{
			{X: -h.X, Y: h.Y, Z: -h.Z}, {X: -h.X, Y: h.Y, Z: h.Z},
			{X: h.X, Y: h.Y, Z: h.Z}, {X: h.X, Y: h.Y, Z: -h.Z}}},
		{v3.Vec{Y: -1}, [4]v3.Vec{
			{X: -h.X, Y: -h.Y, Z: -h.Z}, {X: h.X, Y: -h.Y, Z: -h.Z},
			{X: h.X, Y: -h.Y, Z: h.Z}, {X: -h.X, Y: -h.Y, Z: h.Z}}},
		{v3.Vec{Z: 1}, [4]v3.Vec{
			{X: -h.X, Y: -h.Y, Z: h.Z}, {X: h.X, Y: -h.Y, Z: h.Z},
			{X: h.X, Y: h.Y, Z: h.Z}, {X: -h.X, Y: h.Y, Z: h.Z}}},
		{v3.Vec{Z: -1}, [4]v3.Vec{
			{X: -h.X, Y: -h.Y, Z: -h.Z}, {X: -h.X, Y: h.Y, Z: -h.Z},
			{X: h.X, Y: h.Y, Z: -h.Z}, {X: h.X, Y: -h.Y, Z: -h.Z}}},
	}
	uvs := [4]v3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	polys := make([]Polygon, 0, 6)
	for _, f := range faces {
		verts := make([]geom.Vertex, 4)
		for i, c := range f.corners {
			verts[i] = geom.NewVertex(c, f.normal, uvs[i])
		}
		if p, ok := NewPolygon(verts, material); ok {
			polys = append(polys, p)
		}
	}
	return NewMesh(polys)
}

// NewSphere returns a latitude/longitude sphere mesh centered at the
// origin with smooth vertex normals. slices is the segment count around
// the equator, stacks the band count pole to pole; both are clamped to
// sane minimums.
func NewSphere(radius float64, slices, stacks int, material Material) *Mesh {
	slices = max(slices, 3)
	stacks = max(stacks, 2)
	point := func(slice, stack int) v3.Vec {
		theta := 2 * math.Pi * float64(slice) / float64(slices)
		phi := math.Pi*float64(stack)/float64(stacks) - math.Pi/2
		return v3.Vec{
			X: radius * math.Cos(phi) * math.Cos(theta),
			Y: radius * math.Cos(phi) * math.Sin(theta),
			Z: radius * math.Sin(phi),
		}
	}
	vertex := func(slice, stack int) geom.Vertex {
		p := point(slice, stack)
		uv := v3.Vec{
			X: float64(slice) / float64(slices),
			Y: float64(stack) / float64(stacks),
		}
		return geom.NewVertex(p, p, uv)
	}
	var polys []Polygon
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			var ring []geom.Vertex
			switch stack {
			case 0: // bottom cap triangles
				ring = []geom.Vertex{
					vertex(slice, 0),
					vertex(slice+1, 1),
					vertex(slice, 1),
				}
			case stacks - 1: // top cap triangles
				ring = []geom.Vertex{
					vertex(slice, stack),
					vertex(slice+1, stack),
					vertex(slice, stacks),
				}
			default:
				ring = []geom.Vertex{
					vertex(slice, stack),
					vertex(slice+1, stack),
					vertex(slice+1, stack+1),
					vertex(slice, stack+1),
				}
			}
			if p, ok := NewPolygon(ring, material); ok {
				polys = append(polys, p)
			}
		}
	}
	return NewMesh(polys)
}

// NewCylinder returns a closed cylinder mesh along the Z axis, centered
// at the origin, with radial side normals and flat caps.
func NewCylinder(height, radius float64, segments int, material Material) *Mesh {
	segments = max(segments, 3)
	hz := height / 2
	rim := func(i int) (v3.Vec, v3.Vec) {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		radial := v3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
		return radial.MulScalar(radius), radial
	}
	var polys []Polygon
	var top, bottom []geom.Vertex
	for i := 0; i < segments; i++ {
		p0, n0 := rim(i)
		p1, n1 := rim(i + 1)
		u0 := float64(i) / float64(segments)
		u1 := float64(i+1) / float64(segments)
		side := []geom.Vertex{
			geom.NewVertex(v3.Vec{X: p0.X, Y: p0.Y, Z: -hz}, n0, v3.Vec{X: u0, Y: 0}),
			geom.NewVertex(v3.Vec{X: p1.X, Y: p1.Y, Z: -hz}, n1, v3.Vec{X: u1, Y: 0}),
			geom.NewVertex(v3.Vec{X: p1.X, Y: p1.Y, Z: hz}, n1, v3.Vec{X: u1, Y: 1}),
			geom.NewVertex(v3.Vec{X: p0.X, Y: p0.Y, Z: hz}, n0, v3.Vec{X: u0, Y: 1}),
		}
		if p, ok := NewPolygon(side, material); ok {
			polys = append(polys, p)
		}
		uv := v3.Vec{X: (n0.X + 1) / 2, Y: (n0.Y + 1) / 2}
		top = append(top, geom.NewVertex(v3.Vec{X: p0.X, Y: p0.Y, Z: hz}, v3.Vec{Z: 1}, uv))
		bottom = append(bottom, geom.NewVertex(v3.Vec{X: p0.X, Y: p0.Y, Z: -hz}, v3.Vec{Z: -1}, uv))
	}
	if p, ok := NewPolygon(top, material); ok {
		polys = append(polys, p)
	}
	// reverse the bottom rim so the cap faces down
	for i, j := 0, len(bottom)-1; i < j; i, j = i+1, j-1 {
		bottom[i], bottom[j] = bottom[j], bottom[i]
	}
	if p, ok := NewPolygon(bottom, material); ok {
		polys = append(polys, p)
	}
	return NewMesh(polys)
}
