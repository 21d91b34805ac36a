package tessellate_test

import (
	"math"
	"strings"
	"testing"

	"github.com/ggthedev/Euclid/pkg/engine"
	"github.com/ggthedev/Euclid/pkg/graph"
	"github.com/ggthedev/Euclid/pkg/kernel"
	"github.com/ggthedev/Euclid/pkg/kernel/bsp"
	"github.com/ggthedev/Euclid/pkg/tessellate"
)

// newKernel returns a fresh bsp kernel for testing.
func newKernel() kernel.Kernel {
	return bsp.New()
}

// evalGraph runs design source through the engine.
func evalGraph(t *testing.T, source string) *graph.DesignGraph {
	t.Helper()
	g, evalErrs, err := engine.NewEngine().Evaluate(source)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("evaluation failed: %v %v", evalErrs, err)
	}
	return g
}

func TestTessellateNilGraph(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil, newKernel(), tessellate.Options{})
	if err != nil || meshes != nil {
		t.Errorf("nil graph should produce nothing, got %v, %v", meshes, err)
	}
}

func TestTessellateSimpleBox(t *testing.T) {
	g := evalGraph(t, `(design "slab" (box 4 2 1))`)
	meshes, err := tessellate.Tessellate(g, newKernel(), tessellate.Options{})
	if err != nil {
		t.Fatalf("Tessellate error: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("mesh count = %d, want 1", len(meshes))
	}
	m := meshes[0]
	if m.Name != "slab" {
		t.Errorf("mesh name = %q, want slab", m.Name)
	}
	if m.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", m.TriangleCount())
	}
	min, max := m.BoundingBox()
	if min != [3]float64{-2, -1, -0.5} || max != [3]float64{2, 1, 0.5} {
		t.Errorf("bounds = %v..%v", min, max)
	}
}

func TestTessellateBooleanPipeline(t *testing.T) {
	g := evalGraph(t, `
(defsolid "plate" (box 4 4 1))
(design "pierced"
  (difference (part "plate")
              (translate (cylinder 3 1) :by (vec3 0 0 0))))
`)
	meshes, err := tessellate.Tessellate(g, newKernel(), tessellate.Options{Segments: 16})
	if err != nil {
		t.Fatalf("Tessellate error: %v", err)
	}
	if len(meshes) != 1 || meshes[0].IsEmpty() {
		t.Fatal("expected one non-empty mesh")
	}
	min, max := meshes[0].BoundingBox()
	if math.Abs(min[0]+2) > 1e-9 || math.Abs(max[0]-2) > 1e-9 {
		t.Errorf("x bounds = %v..%v, want -2..2", min[0], max[0])
	}
}

func TestTessellateMultipleRoots(t *testing.T) {
	g := evalGraph(t, `
(design "a" (box 1 1 1))
(design "b" (sphere 1))
`)
	meshes, err := tessellate.Tessellate(g, newKernel(), tessellate.Options{Segments: 12})
	if err != nil {
		t.Fatalf("Tessellate error: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("mesh count = %d, want 2", len(meshes))
	}
	names := []string{meshes[0].Name, meshes[1].Name}
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("mesh names = %v", names)
	}
}

func TestTessellateSharedSubtree(t *testing.T) {
	// The same named solid appears twice; evaluation must succeed and
	// both uses must contribute geometry.
	g := evalGraph(t, `
(defsolid "peg" (box 1 1 3))
(design "pegs"
  (union (translate (part "peg") :by (vec3 -2 0 0))
         (translate (part "peg") :by (vec3 2 0 0))))
`)
	meshes, err := tessellate.Tessellate(g, newKernel(), tessellate.Options{})
	if err != nil {
		t.Fatalf("Tessellate error: %v", err)
	}
	min, max := meshes[0].BoundingBox()
	if math.Abs(min[0]+2.5) > 1e-9 || math.Abs(max[0]-2.5) > 1e-9 {
		t.Errorf("x bounds = %v..%v, want -2.5..2.5", min[0], max[0])
	}
}

func TestTessellateClip(t *testing.T) {
	g := evalGraph(t, `(design "half" (clip (sphere 1) :normal (vec3 0 0 1) :offset 0 :fill "flat"))`)
	meshes, err := tessellate.Tessellate(g, newKernel(), tessellate.Options{Segments: 16})
	if err != nil {
		t.Fatalf("Tessellate error: %v", err)
	}
	min, max := meshes[0].BoundingBox()
	if min[2] < -1e-9 {
		t.Errorf("clipped mesh dips below the plane: %v", min[2])
	}
	if math.Abs(max[2]-1) > 1e-6 {
		t.Errorf("top of hemisphere = %v, want 1", max[2])
	}
}

func TestTessellateUnknownRoot(t *testing.T) {
	g := graph.New()
	g.AddRoot("ghost")
	if _, err := tessellate.Tessellate(g, newKernel(), tessellate.Options{}); err == nil {
		t.Error("expected an error for an unknown root")
	}
}

func TestTessellateCapabilityErrors(t *testing.T) {
	g := evalGraph(t, `(design "d" (xor (box 1 1 1) (sphere 1)))`)
	_, err := tessellate.Tessellate(g, plainKernel{newKernel()}, tessellate.Options{})
	if err == nil || !strings.Contains(err.Error(), "does not support xor") {
		t.Errorf("err = %v, want an xor capability error", err)
	}
}

// plainKernel hides the optional capabilities of the wrapped kernel.
type plainKernel struct {
	k kernel.Kernel
}

func (p plainKernel) Box(x, y, z float64) kernel.Solid     { return p.k.Box(x, y, z) }
func (p plainKernel) Sphere(r float64, s int) kernel.Solid { return p.k.Sphere(r, s) }
func (p plainKernel) Cylinder(h, r float64, s int) kernel.Solid {
	return p.k.Cylinder(h, r, s)
}
func (p plainKernel) Union(a, b kernel.Solid) kernel.Solid        { return p.k.Union(a, b) }
func (p plainKernel) Difference(a, b kernel.Solid) kernel.Solid   { return p.k.Difference(a, b) }
func (p plainKernel) Intersection(a, b kernel.Solid) kernel.Solid { return p.k.Intersection(a, b) }
func (p plainKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return p.k.Translate(s, x, y, z)
}
func (p plainKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return p.k.Rotate(s, x, y, z)
}
func (p plainKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) { return p.k.ToMesh(s) }
