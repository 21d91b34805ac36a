// Package bsp implements the kernel.Kernel interface on the polygon CSG
// engine in pkg/csg. Solids are closed polygon meshes; booleans are
// exact BSP clips, so the output carries no sampling artifacts and
// keeps per-face materials.
package bsp

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ggthedev/Euclid/pkg/csg"
	"github.com/ggthedev/Euclid/pkg/geom"
	"github.com/ggthedev/Euclid/pkg/kernel"
)

// Compile-time interface checks.
var (
	_ kernel.Kernel         = (*Kernel)(nil)
	_ kernel.XorKernel      = (*Kernel)(nil)
	_ kernel.StencilKernel  = (*Kernel)(nil)
	_ kernel.ClipKernel     = (*Kernel)(nil)
	_ kernel.MaterialKernel = (*Kernel)(nil)
	_ kernel.Solid          = (*bspSolid)(nil)
)

// bspSolid wraps a csg.Mesh to implement kernel.Solid.
type bspSolid struct {
	mesh *csg.Mesh
}

// BoundingBox returns the axis-aligned bounding box.
func (s *bspSolid) BoundingBox() (min, max [3]float64) {
	b := s.mesh.Bounds()
	if b.IsEmpty() {
		return min, max
	}
	min = [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	max = [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	return min, max
}

// Kernel implements kernel.Kernel using polygon BSP booleans.
type Kernel struct{}

// New returns a new BSP kernel.
func New() *Kernel {
	return &Kernel{}
}

func unwrap(s kernel.Solid) *csg.Mesh {
	return s.(*bspSolid).mesh
}

func wrap(m *csg.Mesh) kernel.Solid {
	return &bspSolid{mesh: m}
}

// Box creates a box with the given edge lengths, centered at the
// origin.
func (k *Kernel) Box(x, y, z float64) kernel.Solid {
	return wrap(csg.NewBox(v3.Vec{X: x, Y: y, Z: z}, nil))
}

// Sphere creates a sphere with the given equatorial segment count.
func (k *Kernel) Sphere(radius float64, segments int) kernel.Solid {
	return wrap(csg.NewSphere(radius, segments, max(segments/2, 2), nil))
}

// Cylinder creates a Z-axis cylinder centered at the origin.
func (k *Kernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	return wrap(csg.NewCylinder(height, radius, segments, nil))
}

// Union returns the union of two solids.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(unwrap(a).Union(unwrap(b)))
}

// Difference returns a minus b.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(unwrap(a).Subtract(unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(unwrap(a).Intersect(unwrap(b)))
}

// Xor returns the symmetric difference of two solids.
func (k *Kernel) Xor(a, b kernel.Solid) kernel.Solid {
	return wrap(unwrap(a).Xor(unwrap(b)))
}

// Stencil returns a's shape with the region inside b repainted with
// b's material.
func (k *Kernel) Stencil(a, b kernel.Solid) kernel.Solid {
	return wrap(unwrap(a).Stencil(unwrap(b)))
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return wrap(unwrap(s).Translated(v3.Vec{X: x, Y: y, Z: z}))
}

// Rotate rotates a solid by Euler angles (degrees) around X, then Y,
// then Z.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	qx := mgl64.QuatRotate(x*math.Pi/180, mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(y*math.Pi/180, mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(z*math.Pi/180, mgl64.Vec3{0, 0, 1})
	return wrap(unwrap(s).Rotated(qz.Mul(qy).Mul(qx)))
}

// Clip cuts the solid at the plane {p : normal·p = offset}, keeping the
// front side. A non-empty fill material caps the cut.
func (k *Kernel) Clip(s kernel.Solid, normal [3]float64, offset float64, fill string) kernel.Solid {
	raw := v3.Vec{X: normal[0], Y: normal[1], Z: normal[2]}
	length := raw.Length()
	plane := geom.Plane{Normal: raw.DivScalar(length), W: offset / length}
	var material csg.Material
	if fill != "" {
		material = fill
	}
	return wrap(unwrap(s).Clip(plane, material))
}

// WithMaterial returns the solid with every face carrying the material.
func (k *Kernel) WithMaterial(s kernel.Solid, material string) kernel.Solid {
	polys := unwrap(s).Polygons()
	out := make([]csg.Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.WithMaterial(material)
	}
	return wrap(csg.NewMesh(out))
}

// ToMesh triangulates the solid's polygons into a flat mesh, keeping
// the smooth per-vertex normals.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	out := &kernel.Mesh{}
	for _, p := range unwrap(s).Polygons() {
		for _, tri := range p.Triangulate() {
			verts := tri.Vertices()
			var idx [3]uint32
			for i := 0; i < 3; i++ {
				pos := verts[i].Position
				n := verts[i].Normal
				if n.Length() == 0 {
					n = tri.Plane().Normal
				}
				idx[i] = out.AppendVertex(pos.X, pos.Y, pos.Z, n.X, n.Y, n.Z)
			}
			out.AppendTriangle(idx[0], idx[1], idx[2])
		}
	}
	return out, nil
}
