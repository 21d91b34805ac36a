package engine

import (
	"strings"
	"testing"

	"github.com/ggthedev/Euclid/pkg/graph"
)

func evalOK(t *testing.T, source string) *graph.DesignGraph {
	t.Helper()
	g, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal evaluation error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if g == nil {
		t.Fatal("nil graph")
	}
	return g
}

func evalFails(t *testing.T, source string) []EvalError {
	t.Helper()
	g, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal evaluation error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatalf("expected eval errors, got graph %+v", g)
	}
	return evalErrs
}

func TestEvaluateEmptySource(t *testing.T) {
	g := evalOK(t, "")
	if !g.IsEmpty() || len(g.Nodes) != 0 {
		t.Errorf("empty source should produce an empty graph, got %d nodes", len(g.Nodes))
	}
}

func TestEvaluateSimpleDesign(t *testing.T) {
	g := evalOK(t, `
; a plate with a drilled hole
(defsolid "plate" (box 40 20 4 :material "oak"))
(defsolid "drill" (cylinder 10 3))
(design "bracket"
  (difference (part "plate")
              (translate (part "drill") :by (vec3 10 0 0))))
`)

	if len(g.Roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(g.Roots))
	}
	root := g.Get(g.Roots[0])
	if root == nil || root.Kind != graph.NodeGroup || root.Name != "bracket" {
		t.Fatalf("root = %+v", root)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}

	diff := g.Get(root.Children[0])
	if diff.Kind != graph.NodeBoolean || diff.Data.(graph.BooleanData).Op != graph.OpDifference {
		t.Fatalf("expected difference node, got %+v", diff)
	}
	if len(diff.Children) != 2 {
		t.Fatalf("difference children = %d, want 2", len(diff.Children))
	}

	plate := g.Lookup("plate")
	if plate == nil {
		t.Fatal("plate not in name index")
	}
	bd, ok := plate.Data.(graph.BoxData)
	if !ok {
		t.Fatalf("plate payload = %T", plate.Data)
	}
	if bd.Size != (graph.Vec3{X: 40, Y: 20, Z: 4}) || bd.Material != "oak" {
		t.Errorf("plate data = %+v", bd)
	}
	if diff.Children[0] != plate.ID {
		t.Error("first difference operand should be the plate")
	}

	move := g.Get(diff.Children[1])
	if move.Kind != graph.NodeTransform {
		t.Fatalf("expected transform node, got %+v", move)
	}
	td := move.Data.(graph.TransformData)
	if td.Translation == nil || *td.Translation != (graph.Vec3{X: 10}) || td.Rotation != nil {
		t.Errorf("transform data = %+v", td)
	}

	if errs := graph.Validate(g); len(errs) != 0 {
		t.Errorf("evaluated graph fails validation: %v", errs)
	}
}

func TestEvaluateAllBooleans(t *testing.T) {
	ops := []string{"union", "difference", "intersection", "xor", "stencil"}
	for _, op := range ops {
		t.Run(op, func(t *testing.T) {
			g := evalOK(t, `(design "d" (`+op+` (box 1 1 1) (sphere 1)))`)
			root := g.Get(g.Roots[0])
			n := g.Get(root.Children[0])
			if n.Kind != graph.NodeBoolean {
				t.Fatalf("node kind = %v", n.Kind)
			}
			if got := n.Data.(graph.BooleanData).Op.String(); got != op {
				t.Errorf("op = %s, want %s", got, op)
			}
		})
	}
}

func TestEvaluateClip(t *testing.T) {
	g := evalOK(t, `(design "d" (clip (box 2 2 2) :normal (vec3 0 0 1) :offset 0.5 :fill "cap"))`)
	root := g.Get(g.Roots[0])
	n := g.Get(root.Children[0])
	cd, ok := n.Data.(graph.ClipData)
	if !ok {
		t.Fatalf("payload = %T", n.Data)
	}
	if cd.Normal != (graph.Vec3{Z: 1}) || cd.Offset != 0.5 || cd.Fill != "cap" {
		t.Errorf("clip data = %+v", cd)
	}
}

func TestEvaluateRotation(t *testing.T) {
	g := evalOK(t, `(design "d" (rotate (box 4 2 2) :by (vec3 0 0 90)))`)
	root := g.Get(g.Roots[0])
	n := g.Get(root.Children[0])
	td := n.Data.(graph.TransformData)
	if td.Rotation == nil || *td.Rotation != (graph.Vec3{Z: 90}) || td.Translation != nil {
		t.Errorf("transform data = %+v", td)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantSub string
	}{
		{"unbalanced parens", `(design "d" (box 1 1 1)`, ""},
		{"unknown part", `(design "d" (part "ghost") (box 1 1 1))`, "no solid named"},
		{"box arity", `(design "d" (box 1 1))`, "box requires 3 dimensions"},
		{"boolean arity", `(design "d" (union (box 1 1 1)))`, "at least two operands"},
		{"translate without by", `(design "d" (translate (box 1 1 1)))`, ":by"},
		{"clip without normal", `(design "d" (clip (box 1 1 1)))`, ":normal"},
		{"bad operand type", `(design "d" (union (box 1 1 1) "nope"))`, "expected a solid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := evalFails(t, tt.source)
			if tt.wantSub == "" {
				return
			}
			for _, e := range errs {
				if strings.Contains(e.Message, tt.wantSub) {
					return
				}
			}
			t.Errorf("no error mentions %q: %v", tt.wantSub, errs)
		})
	}
}

func TestEvaluateIsolation(t *testing.T) {
	// Each evaluation starts from a fresh sandbox: names defined in one
	// run must not leak into the next.
	e := NewEngine()
	if _, errs, err := e.Evaluate(`(defsolid "plate" (box 1 1 1))`); err != nil || len(errs) > 0 {
		t.Fatalf("first evaluation failed: %v %v", errs, err)
	}
	_, errs, err := e.Evaluate(`(design "d" (part "plate") (box 1 1 1))`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(errs) == 0 {
		t.Error("second evaluation should not see the first run's names")
	}
}

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keyword", `(box 1 1 1 :material "oak")`, `(box 1 1 1 "__kw_material" "oak")`},
		{"keyword in string untouched", `"a :material b"`, `"a :material b"`},
		{"comment", "(box 1 1 1) ; trailing\n(sphere 1)", "(box 1 1 1) // trailing\n(sphere 1)"},
		{"assignment preserved", `(x := 5)`, `(x := 5)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
