package csg

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ggthedev/Euclid/pkg/geom"
)

// Mesh is an unordered collection of polygons describing a closed
// surface, with lazily computed bounds. Meshes are immutable: every
// operation returns a new mesh.
type Mesh struct {
	polygons []Polygon
	bounds   *geom.Bounds
}

// NewMesh wraps a polygon list in a mesh. The slice is taken over by the
// mesh.
func NewMesh(polygons []Polygon) *Mesh {
	return &Mesh{polygons: polygons}
}

// Polygons returns the mesh's polygon list. Treat it as read-only.
func (m *Mesh) Polygons() []Polygon { return m.polygons }

// IsEmpty reports whether the mesh has no polygons.
func (m *Mesh) IsEmpty() bool { return len(m.polygons) == 0 }

// Bounds returns the axis-aligned bounding box over all vertex
// positions, computing and caching it on first use.
func (m *Mesh) Bounds() geom.Bounds {
	if m.bounds == nil {
		b := geom.EmptyBounds()
		for _, p := range m.polygons {
			for _, v := range p.Vertices() {
				b = b.Including(v.Position)
			}
		}
		m.bounds = &b
	}
	return *m.bounds
}

// Inverted returns the mesh turned inside out.
func (m *Mesh) Inverted() *Mesh {
	return NewMesh(invert(m.polygons))
}

// Translated returns the mesh moved by the offset.
func (m *Mesh) Translated(offset v3.Vec) *Mesh {
	return m.mapVertices(func(v geom.Vertex) geom.Vertex {
		v.Position = v.Position.Add(offset)
		return v
	})
}

// Scaled returns the mesh scaled uniformly about the origin.
func (m *Mesh) Scaled(factor float64) *Mesh {
	return m.mapVertices(func(v geom.Vertex) geom.Vertex {
		v.Position = v.Position.MulScalar(factor)
		return v
	})
}

// Rotated returns the mesh rotated about the origin by the quaternion.
func (m *Mesh) Rotated(q mgl64.Quat) *Mesh {
	return m.mapVertices(func(v geom.Vertex) geom.Vertex {
		v.Position = rotateVec(q, v.Position)
		v.Normal = rotateVec(q, v.Normal)
		return v
	})
}

func rotateVec(q mgl64.Quat, v v3.Vec) v3.Vec {
	r := q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return v3.Vec{X: r.X(), Y: r.Y(), Z: r.Z()}
}

// mapVertices rebuilds every polygon through the vertex transform. The
// transform must preserve planarity and winding.
func (m *Mesh) mapVertices(f func(geom.Vertex) geom.Vertex) *Mesh {
	polys := make([]Polygon, 0, len(m.polygons))
	for _, p := range m.polygons {
		verts := make([]geom.Vertex, len(p.vertices))
		for i, v := range p.vertices {
			verts[i] = f(v)
		}
		positions := make([]v3.Vec, len(verts))
		for i, v := range verts {
			positions[i] = v.Position
		}
		n := geom.FaceNormal(positions)
		if n.Length() < geom.Epsilon {
			continue
		}
		plane := geom.NewPlane(n, geom.Centroid(positions))
		polys = append(polys, newPolygon(verts, plane, p.convex, p.material, p.id))
	}
	return NewMesh(polys)
}

// MergedPolygons returns the mesh with sibling split fragments and
// mergeable coplanar neighbours greedily rejoined. The surface is
// unchanged; only the polygon count drops.
func (m *Mesh) MergedPolygons() *Mesh {
	polys := append([]Polygon(nil), m.polygons...)
	for merged := true; merged; {
		merged = false
	scan:
		for i := 0; i < len(polys); i++ {
			for j := i + 1; j < len(polys); j++ {
				if joined, ok := polys[i].Merge(polys[j]); ok {
					polys[i] = joined
					polys = append(polys[:j], polys[j+1:]...)
					merged = true
					break scan
				}
			}
		}
	}
	return NewMesh(polys)
}

// Volume returns the signed volume enclosed by the mesh, computed by
// the divergence theorem over the triangulated surface. Outward-facing
// closed meshes have positive volume.
func (m *Mesh) Volume() float64 {
	var total float64
	for _, p := range m.polygons {
		for _, tri := range p.Triangulate() {
			a := tri.vertices[0].Position
			b := tri.vertices[1].Position
			c := tri.vertices[2].Position
			total += a.Dot(b.Cross(c))
		}
	}
	return total / 6
}

// invert maps a polygon list through Polygon.Inverted.
func invert(polygons []Polygon) []Polygon {
	out := make([]Polygon, len(polygons))
	for i, p := range polygons {
		out[i] = p.Inverted()
	}
	return out
}
