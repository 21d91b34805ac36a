package kernel

// Mesh is a flat triangle mesh, the kernel-independent output format.
// vertices and normals carry 3 floats per vertex, indices 3 entries per
// triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`     // which design root this came from
}

// AppendVertex adds one vertex with its shading normal and returns its
// index.
func (m *Mesh) AppendVertex(x, y, z, nx, ny, nz float64) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, float32(x), float32(y), float32(z))
	m.Normals = append(m.Normals, float32(nx), float32(ny), float32(nz))
	return idx
}

// AppendTriangle adds one triangle by vertex indices.
func (m *Mesh) AppendTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// BoundingBox returns the axis-aligned bounds over all vertices. Empty
// meshes return two zero corners.
func (m *Mesh) BoundingBox() (min, max [3]float64) {
	if m.IsEmpty() {
		return min, max
	}
	for i := 0; i < 3; i++ {
		min[i] = float64(m.Vertices[i])
		max[i] = float64(m.Vertices[i])
	}
	for v := 1; v < m.VertexCount(); v++ {
		for i := 0; i < 3; i++ {
			c := float64(m.Vertices[v*3+i])
			if c < min[i] {
				min[i] = c
			}
			if c > max[i] {
				max[i] = c
			}
		}
	}
	return min, max
}
