package csg

import (
	"github.com/dhconnelly/rtreego"
)

// UnionAll unions any number of meshes. Bounds-disjoint groups are
// concatenated without CSG work.
func UnionAll(meshes []*Mesh) *Mesh {
	return multimerge(meshes, (*Mesh).Union)
}

// XorAll folds any number of meshes with Xor. Like UnionAll it skips
// CSG work on bounds-disjoint groups; xor and union agree on disjoint
// operands.
func XorAll(meshes []*Mesh) *Mesh {
	return multimerge(meshes, (*Mesh).Xor)
}

// DifferenceAll subtracts every following mesh from the first.
func DifferenceAll(meshes []*Mesh) *Mesh {
	return reduce(meshes, (*Mesh).Subtract)
}

// IntersectionAll intersects all meshes left to right.
func IntersectionAll(meshes []*Mesh) *Mesh {
	return reduce(meshes, (*Mesh).Intersect)
}

// StencilAll applies Stencil left to right: the first mesh's shape,
// repainted by each following mesh in turn.
func StencilAll(meshes []*Mesh) *Mesh {
	return reduce(meshes, (*Mesh).Stencil)
}

// reduce left-folds the meshes with a binary op. The binary ops
// short-circuit on disjoint bounds themselves, so no bounds bookkeeping
// happens here.
func reduce(meshes []*Mesh, op func(*Mesh, *Mesh) *Mesh) *Mesh {
	if len(meshes) == 0 {
		return NewMesh(nil)
	}
	acc := meshes[0]
	for _, m := range meshes[1:] {
		acc = op(acc, m)
	}
	return acc
}

// meshEntry is the spatial-index handle for one input mesh.
type meshEntry struct {
	index int
	rect  rtreego.Rect
}

func (e *meshEntry) Bounds() rtreego.Rect { return e.rect }

// multimerge folds meshes with a commutative, associative op while
// skipping op calls between bounds-disjoint operands. Each accumulator
// repeatedly absorbs the lowest-indexed remaining mesh whose bounds
// intersect it; when none are left its polygons are committed to the
// output and the next unconsumed mesh starts a new accumulator. An
// R-tree over the mesh bounds serves the intersection lookups.
func multimerge(meshes []*Mesh, op func(*Mesh, *Mesh) *Mesh) *Mesh {
	switch len(meshes) {
	case 0:
		return NewMesh(nil)
	case 1:
		return meshes[0]
	}

	tree := rtreego.NewTree(3, 2, 8)
	entries := make([]*meshEntry, len(meshes))
	for i, m := range meshes {
		if m.IsEmpty() {
			continue
		}
		rect, err := m.Bounds().Rect()
		if err != nil {
			continue
		}
		entries[i] = &meshEntry{index: i, rect: rect}
		tree.Insert(entries[i])
	}

	consumed := make([]bool, len(meshes))
	var out []Polygon
	for i, acc := range meshes {
		if consumed[i] || acc.IsEmpty() {
			continue
		}
		consumed[i] = true
		if entries[i] != nil {
			tree.Delete(entries[i])
		}
		for !acc.IsEmpty() {
			rect, err := acc.Bounds().Rect()
			if err != nil {
				break
			}
			next := -1
			for _, hit := range tree.SearchIntersect(rect) {
				e := hit.(*meshEntry)
				if !consumed[e.index] && (next == -1 || e.index < next) {
					next = e.index
				}
			}
			if next == -1 {
				break
			}
			consumed[next] = true
			tree.Delete(entries[next])
			acc = op(acc, meshes[next])
		}
		out = append(out, acc.polygons...)
	}
	return NewMesh(out)
}
