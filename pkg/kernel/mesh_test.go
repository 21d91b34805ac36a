package kernel

import "testing"

func TestMeshAppend(t *testing.T) {
	m := &Mesh{}
	a := m.AppendVertex(0, 0, 0, 0, 0, 1)
	b := m.AppendVertex(1, 0, 0, 0, 0, 1)
	c := m.AppendVertex(0, 1, 0, 0, 0, 1)
	m.AppendTriangle(a, b, c)

	if got := m.VertexCount(); got != 3 {
		t.Errorf("VertexCount() = %d, want 3", got)
	}
	if got := m.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount() = %d, want 1", got)
	}
	if m.IsEmpty() {
		t.Error("mesh with vertices should not be empty")
	}
}

func TestMeshCounts(t *testing.T) {
	tests := []struct {
		name      string
		vertices  []float32
		indices   []uint32
		wantVerts int
		wantTris  int
	}{
		{"empty", nil, nil, 0, 0},
		{"one vertex", []float32{1, 2, 3}, nil, 1, 0},
		{"quad", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, []uint32{0, 1, 2, 2, 3, 0}, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices, Indices: tt.indices}
			if got := m.VertexCount(); got != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVerts)
			}
			if got := m.TriangleCount(); got != tt.wantTris {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.wantTris)
			}
		})
	}
}

func TestMeshBoundingBox(t *testing.T) {
	m := &Mesh{Vertices: []float32{-1, 2, 0, 3, -2, 5, 0, 0, 1}}
	min, max := m.BoundingBox()
	if min != [3]float64{-1, -2, 0} {
		t.Errorf("min = %v", min)
	}
	if max != [3]float64{3, 2, 5} {
		t.Errorf("max = %v", max)
	}

	t.Run("empty", func(t *testing.T) {
		min, max := (&Mesh{}).BoundingBox()
		if min != max {
			t.Error("empty mesh bounds should collapse to a point")
		}
	})
}
