// Package tessellate evaluates a design graph into triangle meshes
// through a geometry kernel. One mesh is produced per design root. The
// tessellator is read-only and never mutates the graph.
package tessellate

import (
	"fmt"

	"github.com/ggthedev/Euclid/pkg/graph"
	"github.com/ggthedev/Euclid/pkg/kernel"
)

// DefaultSegments is the surface resolution used for spheres and
// cylinders when the caller does not override it.
const DefaultSegments = 32

// Options tune graph evaluation.
type Options struct {
	// Segments is the sphere/cylinder resolution; zero means
	// DefaultSegments.
	Segments int
}

func (o Options) segments() int {
	if o.Segments <= 0 {
		return DefaultSegments
	}
	return o.Segments
}

// Tessellate evaluates every root of the design graph through the
// kernel and returns one named mesh per root.
func Tessellate(g *graph.DesignGraph, k kernel.Kernel, opts Options) ([]*kernel.Mesh, error) {
	if g == nil {
		return nil, nil
	}
	ev := &evaluator{graph: g, kernel: k, opts: opts, memo: make(map[graph.NodeID]kernel.Solid)}

	var meshes []*kernel.Mesh
	for _, rootID := range g.Roots {
		root := g.Get(rootID)
		if root == nil {
			return nil, fmt.Errorf("tessellate: unknown root %s", rootID.Short())
		}
		solid, err := ev.eval(root)
		if err != nil {
			return nil, fmt.Errorf("tessellate: root %s: %w", rootID.Short(), err)
		}
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: meshing root %s: %w", rootID.Short(), err)
		}
		if root.Name != "" {
			mesh.Name = root.Name
		} else {
			mesh.Name = rootID.Short()
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// evaluator folds graph nodes into kernel solids. Shared subtrees are
// evaluated once; kernels hand out immutable solids, so memoized
// results are safe to reuse.
type evaluator struct {
	graph  *graph.DesignGraph
	kernel kernel.Kernel
	opts   Options
	memo   map[graph.NodeID]kernel.Solid
}

func (ev *evaluator) eval(n *graph.Node) (kernel.Solid, error) {
	if n == nil {
		return nil, fmt.Errorf("missing node")
	}
	if s, ok := ev.memo[n.ID]; ok {
		return s, nil
	}
	s, err := ev.evalUncached(n)
	if err != nil {
		return nil, err
	}
	ev.memo[n.ID] = s
	return s, nil
}

func (ev *evaluator) evalUncached(n *graph.Node) (kernel.Solid, error) {
	switch n.Kind {
	case graph.NodePrimitive:
		return ev.evalPrimitive(n)
	case graph.NodeTransform:
		return ev.evalTransform(n)
	case graph.NodeBoolean:
		return ev.evalBoolean(n)
	case graph.NodeClip:
		return ev.evalClip(n)
	case graph.NodeGroup:
		return ev.foldChildren(n, ev.kernel.Union)
	default:
		return nil, fmt.Errorf("node %s: unknown kind %v", n.ID.Short(), n.Kind)
	}
}

func (ev *evaluator) evalPrimitive(n *graph.Node) (kernel.Solid, error) {
	var solid kernel.Solid
	var material string
	switch d := n.Data.(type) {
	case graph.BoxData:
		solid = ev.kernel.Box(d.Size.X, d.Size.Y, d.Size.Z)
		material = d.Material
	case graph.SphereData:
		solid = ev.kernel.Sphere(d.Radius, ev.opts.segments())
		material = d.Material
	case graph.CylinderData:
		solid = ev.kernel.Cylinder(d.Height, d.Radius, ev.opts.segments())
		material = d.Material
	default:
		return nil, fmt.Errorf("node %s: unsupported primitive payload %T", n.ID.Short(), n.Data)
	}
	if material != "" {
		// Material tracking is optional; kernels without it render the
		// shape and drop the paint.
		if mk, ok := ev.kernel.(kernel.MaterialKernel); ok {
			solid = mk.WithMaterial(solid, material)
		}
	}
	return solid, nil
}

func (ev *evaluator) evalTransform(n *graph.Node) (kernel.Solid, error) {
	td, ok := n.Data.(graph.TransformData)
	if !ok {
		return nil, fmt.Errorf("node %s: unsupported transform payload %T", n.ID.Short(), n.Data)
	}
	solid, err := ev.foldChildren(n, ev.kernel.Union)
	if err != nil {
		return nil, err
	}
	if td.Rotation != nil && !td.Rotation.IsZero() {
		solid = ev.kernel.Rotate(solid, td.Rotation.X, td.Rotation.Y, td.Rotation.Z)
	}
	if td.Translation != nil && !td.Translation.IsZero() {
		solid = ev.kernel.Translate(solid, td.Translation.X, td.Translation.Y, td.Translation.Z)
	}
	return solid, nil
}

func (ev *evaluator) evalBoolean(n *graph.Node) (kernel.Solid, error) {
	bd, ok := n.Data.(graph.BooleanData)
	if !ok {
		return nil, fmt.Errorf("node %s: unsupported boolean payload %T", n.ID.Short(), n.Data)
	}
	op, err := ev.booleanOp(n, bd.Op)
	if err != nil {
		return nil, err
	}
	return ev.foldChildren(n, op)
}

// booleanOp resolves a BoolOp to a kernel operation. Xor and stencil
// are optional capabilities; a backend without them is a configuration
// error surfaced to the caller.
func (ev *evaluator) booleanOp(n *graph.Node, op graph.BoolOp) (func(a, b kernel.Solid) kernel.Solid, error) {
	switch op {
	case graph.OpUnion:
		return ev.kernel.Union, nil
	case graph.OpDifference:
		return ev.kernel.Difference, nil
	case graph.OpIntersection:
		return ev.kernel.Intersection, nil
	case graph.OpXor:
		if xk, ok := ev.kernel.(kernel.XorKernel); ok {
			return xk.Xor, nil
		}
		return nil, fmt.Errorf("node %s: kernel %T does not support xor", n.ID.Short(), ev.kernel)
	case graph.OpStencil:
		if sk, ok := ev.kernel.(kernel.StencilKernel); ok {
			return sk.Stencil, nil
		}
		return nil, fmt.Errorf("node %s: kernel %T does not support stencil", n.ID.Short(), ev.kernel)
	}
	return nil, fmt.Errorf("node %s: unknown boolean op %v", n.ID.Short(), op)
}

func (ev *evaluator) evalClip(n *graph.Node) (kernel.Solid, error) {
	cd, ok := n.Data.(graph.ClipData)
	if !ok {
		return nil, fmt.Errorf("node %s: unsupported clip payload %T", n.ID.Short(), n.Data)
	}
	ck, ok := ev.kernel.(kernel.ClipKernel)
	if !ok {
		return nil, fmt.Errorf("node %s: kernel %T does not support clipping", n.ID.Short(), ev.kernel)
	}
	solid, err := ev.foldChildren(n, ev.kernel.Union)
	if err != nil {
		return nil, err
	}
	normal := [3]float64{cd.Normal.X, cd.Normal.Y, cd.Normal.Z}
	return ck.Clip(solid, normal, cd.Offset, cd.Fill), nil
}

// foldChildren evaluates a node's children and folds them left to
// right with the op.
func (ev *evaluator) foldChildren(n *graph.Node, op func(a, b kernel.Solid) kernel.Solid) (kernel.Solid, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("node %s: no children", n.ID.Short())
	}
	var acc kernel.Solid
	for i, id := range n.Children {
		child := ev.graph.Get(id)
		if child == nil {
			return nil, fmt.Errorf("node %s: unknown child %s", n.ID.Short(), id.Short())
		}
		s, err := ev.eval(child)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			acc = s
		} else {
			acc = op(acc, s)
		}
	}
	return acc, nil
}
