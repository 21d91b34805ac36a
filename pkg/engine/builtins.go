package engine

import (
	"fmt"
	"strings"
	"sync/atomic"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/ggthedev/Euclid/pkg/graph"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms design source before it reaches zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal).
//     This avoids registering keyword symbols as globals, which would
//     conflict with user-defined variables of the same name.
//
//  2. ; line comments become // comments, which is what zygomys parses.
//
// Both transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword", preserving := assignment.
		if b[i] == ':' && i+1 < len(b) && b[i+1] != '=' && isLetter(b[i+1]) {
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			result = append(result, '"')
			result = append(result, []byte(kwPrefix)...)
			result = append(result, b[i+1:j]...)
			result = append(result, '"')
			i = j
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpNodeRef wraps a graph.NodeID so shape expressions can be passed
// between builtins.
type sexpNodeRef struct {
	id   graph.NodeID
	name string // human-readable name for error messages
}

func (n *sexpNodeRef) SexpString(ps *zygo.PrintState) string {
	if n.name != "" {
		return fmt.Sprintf("(solid %q)", n.name)
	}
	return fmt.Sprintf("(solid %s)", n.id.Short())
}
func (n *sexpNodeRef) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a graph.Vec3.
type sexpVec3 struct {
	vec graph.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.1f %.1f %.1f)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string, returning the
// bare keyword name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds a parsed mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toNodeRef extracts a NodeID from a sexpNodeRef.
func toNodeRef(s zygo.Sexp) (graph.NodeID, error) {
	if ref, ok := s.(*sexpNodeRef); ok {
		return ref.id, nil
	}
	return graph.ZeroID, fmt.Errorf("expected a solid expression, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a Vec3 from a sexpVec3.
func toVec3(s zygo.Sexp) (graph.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return graph.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// refsFromArgs extracts all positional args as node refs.
func refsFromArgs(name string, args []zygo.Sexp) ([]graph.NodeID, error) {
	refs := make([]graph.NodeID, 0, len(args))
	for i, a := range args {
		id, err := toNodeRef(a)
		if err != nil {
			return nil, fmt.Errorf("%s: operand %d: %w", name, i+1, err)
		}
		refs = append(refs, id)
	}
	return refs, nil
}

// ---------------------------------------------------------------------------
// Node ID generation
// ---------------------------------------------------------------------------

// nodeCounter provides unique suffixes for anonymous nodes.
var nodeCounter uint64

func nextNodeSuffix() string {
	n := atomic.AddUint64(&nodeCounter, 1)
	return fmt.Sprintf("_anon_%d", n)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the design DSL into a zygomys environment.
// The builtins populate the provided DesignGraph during evaluation.
// Source must be preprocessed with preprocessSource first so :keyword
// tokens arrive as recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, g *graph.DesignGraph) {

	addPrimitive := func(kind string, data graph.NodeData) zygo.Sexp {
		id := graph.NewNodeID(kind + "/" + nextNodeSuffix())
		g.AddNode(&graph.Node{ID: id, Kind: graph.NodePrimitive, Data: data})
		return &sexpNodeRef{id: id}
	}

	materialArg := func(pa kwArgs, context string) (string, error) {
		v, ok := pa.kw["material"]
		if !ok {
			return "", nil
		}
		m, err := toString(v)
		if err != nil {
			return "", fmt.Errorf("%s: material: %w", context, err)
		}
		return m, nil
	}

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var c [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: component %d: %w", i+1, err)
			}
			c[i] = f
		}
		return &sexpVec3{vec: graph.Vec3{X: c[0], Y: c[1], Z: c[2]}}, nil
	})

	// -----------------------------------------------------------------------
	// (box 40 20 4 :material "oak")
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 3 {
			return zygo.SexpNull, fmt.Errorf("box requires 3 dimensions, got %d", len(pa.positional))
		}
		var size [3]float64
		for i, a := range pa.positional {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box: dimension %d: %w", i+1, err)
			}
			size[i] = f
		}
		m, err := materialArg(pa, "box")
		if err != nil {
			return zygo.SexpNull, err
		}
		return addPrimitive("box", graph.BoxData{
			Size:     graph.Vec3{X: size[0], Y: size[1], Z: size[2]},
			Material: m,
		}), nil
	})

	// -----------------------------------------------------------------------
	// (sphere 5 :material "steel")
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("sphere requires a radius, got %d arguments", len(pa.positional))
		}
		r, err := toFloat64(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: radius: %w", err)
		}
		m, err := materialArg(pa, "sphere")
		if err != nil {
			return zygo.SexpNull, err
		}
		return addPrimitive("sphere", graph.SphereData{Radius: r, Material: m}), nil
	})

	// -----------------------------------------------------------------------
	// (cylinder 30 4 :material "brass")  ; height radius
	// -----------------------------------------------------------------------
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("cylinder requires height and radius, got %d arguments", len(pa.positional))
		}
		h, err := toFloat64(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: height: %w", err)
		}
		r, err := toFloat64(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: radius: %w", err)
		}
		m, err := materialArg(pa, "cylinder")
		if err != nil {
			return zygo.SexpNull, err
		}
		return addPrimitive("cylinder", graph.CylinderData{Height: h, Radius: r, Material: m}), nil
	})

	// -----------------------------------------------------------------------
	// (translate solid :by (vec3 10 0 0))
	// (rotate solid :by (vec3 0 0 90))   ; degrees
	// -----------------------------------------------------------------------
	transform := func(kind string, rotation bool) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			if len(pa.positional) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires one solid, got %d", kind, len(pa.positional))
			}
			child, err := toNodeRef(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", kind, err)
			}
			v, ok := pa.kw["by"]
			if !ok {
				return zygo.SexpNull, fmt.Errorf("%s requires :by (vec3 ...)", kind)
			}
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: by: %w", kind, err)
			}
			td := graph.TransformData{}
			if rotation {
				td.Rotation = &vec
			} else {
				td.Translation = &vec
			}
			id := graph.NewNodeID(kind + "/" + nextNodeSuffix())
			g.AddNode(&graph.Node{
				ID:       id,
				Kind:     graph.NodeTransform,
				Children: []graph.NodeID{child},
				Data:     td,
			})
			return &sexpNodeRef{id: id}, nil
		}
	}
	env.AddFunction("translate", transform("translate", false))
	env.AddFunction("rotate", transform("rotate", true))

	// -----------------------------------------------------------------------
	// (union a b ...) (difference a b ...) (intersection a b ...)
	// (xor a b ...) (stencil a b ...)
	// -----------------------------------------------------------------------
	boolean := func(op graph.BoolOp) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			refs, err := refsFromArgs(op.String(), args)
			if err != nil {
				return zygo.SexpNull, err
			}
			if len(refs) < 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires at least two operands, got %d", op, len(refs))
			}
			id := graph.NewNodeID(op.String() + "/" + nextNodeSuffix())
			g.AddNode(&graph.Node{
				ID:       id,
				Kind:     graph.NodeBoolean,
				Children: refs,
				Data:     graph.BooleanData{Op: op},
			})
			return &sexpNodeRef{id: id}, nil
		}
	}
	env.AddFunction("union", boolean(graph.OpUnion))
	env.AddFunction("difference", boolean(graph.OpDifference))
	env.AddFunction("intersection", boolean(graph.OpIntersection))
	env.AddFunction("xor", boolean(graph.OpXor))
	env.AddFunction("stencil", boolean(graph.OpStencil))

	// -----------------------------------------------------------------------
	// (clip solid :normal (vec3 0 0 1) :offset 2 :fill "oak")
	// -----------------------------------------------------------------------
	env.AddFunction("clip", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("clip requires one solid, got %d", len(pa.positional))
		}
		child, err := toNodeRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("clip: %w", err)
		}
		cd := graph.ClipData{}
		v, ok := pa.kw["normal"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("clip requires :normal (vec3 ...)")
		}
		if cd.Normal, err = toVec3(v); err != nil {
			return zygo.SexpNull, fmt.Errorf("clip: normal: %w", err)
		}
		if v, ok := pa.kw["offset"]; ok {
			if cd.Offset, err = toFloat64(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("clip: offset: %w", err)
			}
		}
		if v, ok := pa.kw["fill"]; ok {
			if cd.Fill, err = toString(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("clip: fill: %w", err)
			}
		}
		id := graph.NewNodeID("clip/" + nextNodeSuffix())
		g.AddNode(&graph.Node{
			ID:       id,
			Kind:     graph.NodeClip,
			Children: []graph.NodeID{child},
			Data:     cd,
		})
		return &sexpNodeRef{id: id}, nil
	})

	// -----------------------------------------------------------------------
	// (defsolid "name" solid)
	// -----------------------------------------------------------------------
	env.AddFunction("defsolid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defsolid requires a name and a solid expression")
		}
		solidName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: name: %w", err)
		}
		id, err := toNodeRef(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: %w", err)
		}
		node := g.Get(id)
		if node == nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: unknown node %s", id.Short())
		}
		node.Name = solidName
		g.AddNode(node) // reindex under the new name
		return &sexpNodeRef{id: id, name: solidName}, nil
	})

	// -----------------------------------------------------------------------
	// (part "name")
	// -----------------------------------------------------------------------
	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("part requires a name argument")
		}
		partName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part: name: %w", err)
		}
		n := g.Lookup(partName)
		if n == nil {
			return zygo.SexpNull, fmt.Errorf("part: no solid named %q", partName)
		}
		return &sexpNodeRef{id: n.ID, name: partName}, nil
	})

	// -----------------------------------------------------------------------
	// (design "name" solid ...)
	// -----------------------------------------------------------------------
	env.AddFunction("design", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("design requires a name and at least one solid")
		}
		designName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("design: name: %w", err)
		}
		refs, err := refsFromArgs("design", args[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		id := graph.NewNodeID(designName)
		g.AddNode(&graph.Node{
			ID:       id,
			Kind:     graph.NodeGroup,
			Name:     designName,
			Children: refs,
			Data:     graph.GroupData{},
		})
		g.AddRoot(id)
		return &sexpNodeRef{id: id, name: designName}, nil
	})
}
