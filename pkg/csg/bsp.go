package csg

import (
	"github.com/ggthedev/Euclid/pkg/geom"
)

// ClipMode selects which parts of the clipped polygons survive a BSP
// clip, and how polygons coplanar with a tree plane are treated.
type ClipMode int

const (
	// GreaterThan keeps parts strictly outside the solid.
	GreaterThan ClipMode = iota
	// GreaterThanEqual keeps parts outside or on the boundary.
	GreaterThanEqual
	// LessThan keeps parts strictly inside the solid.
	LessThan
	// LessThanEqual keeps parts inside or on the boundary.
	LessThanEqual
)

func (m ClipMode) keepsFront() bool {
	return m == GreaterThan || m == GreaterThanEqual
}

// String returns the comparison symbol for diagnostics.
func (m ClipMode) String() string {
	switch m {
	case GreaterThan:
		return ">"
	case GreaterThanEqual:
		return ">="
	case LessThan:
		return "<"
	default:
		return "<="
	}
}

// BSP is a binary space partition over a polygon soup describing a
// closed solid. The interior of the solid is the region behind every
// plane on some root-to-leaf path; an absent back child marks interior
// space, an absent front child exterior space.
type BSP struct {
	root *bspNode
}

type bspNode struct {
	plane    geom.Plane
	polygons []Polygon // polygons coplanar with plane
	front    *bspNode
	back     *bspNode
}

// NewBSP partitions the polygons into a tree. Each node's plane is the
// plane of the first polygon routed to it; coplanar polygons attach to
// the node, spanning polygons are split with the shared id counter.
func NewBSP(polygons []Polygon, id *int) BSP {
	if len(polygons) == 0 {
		return BSP{}
	}
	var root *bspNode
	type task struct {
		slot  **bspNode
		polys []Polygon
	}
	stack := []task{{&root, polygons}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &bspNode{plane: t.polys[0].Plane()}
		var front, back []Polygon
		for _, p := range t.polys {
			switch p.Compare(n.plane) {
			case geom.Coplanar:
				n.polygons = append(n.polygons, p)
			case geom.Front:
				front = append(front, p)
			case geom.Back:
				back = append(back, p)
			default:
				p.Split(n.plane, &n.polygons, &front, &back, id)
			}
		}
		*t.slot = n
		if len(front) > 0 {
			stack = append(stack, task{&n.front, front})
		}
		if len(back) > 0 {
			stack = append(stack, task{&n.back, back})
		}
	}
	return BSP{root: root}
}

// Clip returns the parts of the polygons that satisfy the mode's
// positional predicate against the tree's solid. Outside modes keep
// fragments that reach exterior space, inside modes fragments that reach
// interior space. Polygons coplanar with a tree plane are routed by the
// mode: the inclusive-outside and strict-inside modes send same-facing
// polygons toward the exterior, the strict-outside and inclusive-inside
// modes toward the interior, so a boolean op keeps each shared boundary
// face exactly once.
func (t BSP) Clip(polygons []Polygon, mode ClipMode, id *int) []Polygon {
	if t.root == nil {
		// No solid: everything is outside.
		if mode.keepsFront() {
			return append([]Polygon(nil), polygons...)
		}
		return nil
	}
	return t.root.clip(polygons, mode, id)
}

func (n *bspNode) clip(polygons []Polygon, mode ClipMode, id *int) []Polygon {
	var coplanar, front, back []Polygon
	for _, p := range polygons {
		switch p.Compare(n.plane) {
		case geom.Coplanar:
			coplanar = append(coplanar, p)
		case geom.Front:
			front = append(front, p)
		case geom.Back:
			back = append(back, p)
		default:
			p.Split(n.plane, &coplanar, &front, &back, id)
		}
	}
	for _, p := range coplanar {
		sameFacing := p.Plane().Normal.Dot(n.plane.Normal) > 0
		var toFront bool
		switch mode {
		case GreaterThanEqual, LessThan:
			toFront = sameFacing
		default: // GreaterThan, LessThanEqual
			toFront = !sameFacing
		}
		if toFront {
			front = append(front, p)
		} else {
			back = append(back, p)
		}
	}

	var result []Polygon
	switch {
	case n.front != nil:
		result = n.front.clip(front, mode, id)
	case mode.keepsFront():
		result = front
	}
	switch {
	case n.back != nil:
		result = append(result, n.back.clip(back, mode, id)...)
	case !mode.keepsFront():
		result = append(result, back...)
	}
	return result
}
