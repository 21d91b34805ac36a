package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ggthedev/Euclid/pkg/kernel"
)

// oneTriangle builds a mesh with a single +z-facing triangle.
func oneTriangle() *kernel.Mesh {
	m := &kernel.Mesh{}
	a := m.AppendVertex(0, 0, 0, 0, 0, 1)
	b := m.AppendVertex(1, 0, 0, 0, 0, 1)
	c := m.AppendVertex(0, 1, 0, 0, 0, 1)
	m.AppendTriangle(a, b, c)
	return m
}

func TestWriteLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []*kernel.Mesh{oneTriangle()}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	data := buf.Bytes()

	if got, want := len(data), 80+4+50; got != want {
		t.Fatalf("file size = %d, want %d", got, want)
	}
	if count := binary.LittleEndian.Uint32(data[80:]); count != 1 {
		t.Errorf("triangle count = %d, want 1", count)
	}

	// Face normal of the triangle is +z.
	nz := math.Float32frombits(binary.LittleEndian.Uint32(data[84+8:]))
	if math.Abs(float64(nz)-1) > 1e-6 {
		t.Errorf("normal z = %v, want 1", nz)
	}
	// First vertex is the origin.
	for i := 0; i < 3; i++ {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data[84+12+i*4:]))
		if v != 0 {
			t.Errorf("vertex component %d = %v, want 0", i, v)
		}
	}
	// Attribute word is zero.
	if data[132] != 0 || data[133] != 0 {
		t.Error("attribute byte count should be zero")
	}
}

func TestWriteMultipleMeshes(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []*kernel.Mesh{oneTriangle(), oneTriangle()}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if count := binary.LittleEndian.Uint32(buf.Bytes()[80:]); count != 2 {
		t.Errorf("triangle count = %d, want 2", count)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.stl")
	if err := WriteFile(path, []*kernel.Mesh{oneTriangle()}); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 80+4+50 {
		t.Errorf("file size = %d", info.Size())
	}
}
