package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vertex is a polygon corner: a position with a shading normal and a
// texture coordinate. All attributes interpolate linearly when edges are
// split.
type Vertex struct {
	Position v3.Vec
	Normal   v3.Vec
	TexCoord v3.Vec
}

// NewVertex builds a vertex, normalizing the shading normal. A zero
// normal is kept as-is for callers that do not carry shading data.
func NewVertex(position, normal, texcoord v3.Vec) Vertex {
	if normal.Length() > 0 {
		normal = normal.Normalize()
	}
	return Vertex{Position: position, Normal: normal, TexCoord: texcoord}
}

// Lerp interpolates position, normal and texture coordinate by t.
func (v Vertex) Lerp(o Vertex, t float64) Vertex {
	return Vertex{
		Position: Lerp(v.Position, o.Position, t),
		Normal:   Lerp(v.Normal, o.Normal, t),
		TexCoord: Lerp(v.TexCoord, o.TexCoord, t),
	}
}

// Inverted returns the vertex with its shading normal flipped.
func (v Vertex) Inverted() Vertex {
	return Vertex{Position: v.Position, Normal: v.Normal.Neg(), TexCoord: v.TexCoord}
}

// ApproxEquals compares position, normal and texture coordinate with
// Epsilon tolerance.
func (v Vertex) ApproxEquals(o Vertex) bool {
	return ApproxEqual(v.Position, o.Position) &&
		ApproxEqual(v.Normal, o.Normal) &&
		ApproxEqual(v.TexCoord, o.TexCoord)
}
