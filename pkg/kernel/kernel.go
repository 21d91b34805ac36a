// Package kernel defines the abstract geometry kernel interface.
// Implementations (bsp, sdfx) provide solid modeling and boolean
// operations behind this interface, so the evaluation pipeline can swap
// backends without changing.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. All primitives are
// centered at the origin. Segment counts control surface resolution on
// polygonal backends and are advisory on implicit-surface backends.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Sphere(radius float64, segments int) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees, applied X then Y then Z

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}

// XorKernel is implemented by kernels that support symmetric
// difference.
type XorKernel interface {
	Xor(a, b Solid) Solid
}

// StencilKernel is implemented by kernels that support the stencil op:
// a's shape with the region inside b repainted with b's material.
type StencilKernel interface {
	Stencil(a, b Solid) Solid
}

// ClipKernel is implemented by kernels that can cut a solid at a
// plane, keeping the front side. The plane is {p : normal·p = offset}.
// A non-empty fill material caps the cut with a matching face.
type ClipKernel interface {
	Clip(s Solid, normal [3]float64, offset float64, fill string) Solid
}

// MaterialKernel is implemented by kernels that track surface
// materials.
type MaterialKernel interface {
	WithMaterial(s Solid, material string) Solid
}
