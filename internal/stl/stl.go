// Package stl writes kernel meshes as binary STL. The format is the
// little-endian layout every slicer reads: an 80-byte header, a uint32
// triangle count, then 50 bytes per triangle (normal, three vertices, a
// zero attribute word).
package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ggthedev/Euclid/pkg/kernel"
)

// Write streams the meshes to w as one binary STL body.
func Write(w io.Writer, meshes []*kernel.Mesh) error {
	var header [80]byte
	copy(header[:], "Euclid binary STL")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: header: %w", err)
	}

	var count uint32
	for _, m := range meshes {
		count += uint32(m.TriangleCount())
	}
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("stl: triangle count: %w", err)
	}

	var record [50]byte
	for _, m := range meshes {
		for t := 0; t < m.TriangleCount(); t++ {
			i0 := m.Indices[t*3]
			i1 := m.Indices[t*3+1]
			i2 := m.Indices[t*3+2]
			n := faceNormal(m, i0, i1, i2)

			off := 0
			for _, f := range n {
				binary.LittleEndian.PutUint32(record[off:], math.Float32bits(f))
				off += 4
			}
			for _, idx := range []uint32{i0, i1, i2} {
				for c := 0; c < 3; c++ {
					binary.LittleEndian.PutUint32(record[off:], math.Float32bits(m.Vertices[idx*3+uint32(c)]))
					off += 4
				}
			}
			record[48], record[49] = 0, 0
			if _, err := w.Write(record[:]); err != nil {
				return fmt.Errorf("stl: triangle %d: %w", t, err)
			}
		}
	}
	return nil
}

// WriteFile writes the meshes to a new file at path.
func WriteFile(path string, meshes []*kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	if err := Write(f, meshes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// faceNormal computes the normalized cross product of a triangle's
// edges. Degenerate triangles get a zero normal, which readers accept.
func faceNormal(m *kernel.Mesh, i0, i1, i2 uint32) [3]float32 {
	var a, b, c [3]float64
	for i := 0; i < 3; i++ {
		a[i] = float64(m.Vertices[i0*3+uint32(i)])
		b[i] = float64(m.Vertices[i1*3+uint32(i)])
		c[i] = float64(m.Vertices[i2*3+uint32(i)])
	}
	u := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
	length := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
	if length == 0 {
		return [3]float32{}
	}
	inv := 1 / math.Sqrt(length)
	return [3]float32{float32(n[0] * inv), float32(n[1] * inv), float32(n[2] * inv)}
}
