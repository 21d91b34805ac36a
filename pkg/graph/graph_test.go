package graph

import "testing"

func box(name string, x, y, z float64) *Node {
	return &Node{
		ID:   NewNodeID("box/" + name),
		Kind: NodePrimitive,
		Name: name,
		Data: BoxData{Size: Vec3{X: x, Y: y, Z: z}},
	}
}

func TestAddAndLookup(t *testing.T) {
	g := New()
	n := box("plate", 10, 10, 1)
	g.AddNode(n)

	if got := g.Get(n.ID); got != n {
		t.Error("Get did not return the added node")
	}
	if got := g.Lookup("plate"); got != n {
		t.Error("Lookup by name failed")
	}
	if got := g.Lookup("missing"); got != nil {
		t.Error("Lookup of unknown name should be nil")
	}
}

func TestChildren(t *testing.T) {
	g := New()
	a := box("a", 1, 1, 1)
	b := box("b", 2, 2, 2)
	g.AddNode(a)
	g.AddNode(b)
	u := &Node{
		ID:       NewNodeID("union/ab"),
		Kind:     NodeBoolean,
		Children: []NodeID{a.ID, b.ID, "missing"},
		Data:     BooleanData{Op: OpUnion},
	}
	g.AddNode(u)

	kids := g.Children(u)
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != nil {
		t.Errorf("Children() = %v", kids)
	}
}

func TestNodeIDDeterminism(t *testing.T) {
	if NewNodeID("x") != NewNodeID("x") {
		t.Error("IDs should be deterministic")
	}
	if NewNodeID("x") == NewNodeID("y") {
		t.Error("different paths should yield different IDs")
	}
	if got := len(NewNodeID("anything")); got != 16 {
		t.Errorf("ID length = %d, want 16 hex chars", got)
	}
}

func TestValidateHappyPath(t *testing.T) {
	g := New()
	a := box("a", 1, 1, 1)
	b := &Node{ID: NewNodeID("sphere/b"), Kind: NodePrimitive, Data: SphereData{Radius: 2}}
	g.AddNode(a)
	g.AddNode(b)
	u := &Node{
		ID:       NewNodeID("union/u"),
		Kind:     NodeBoolean,
		Children: []NodeID{a.ID, b.ID},
		Data:     BooleanData{Op: OpUnion},
	}
	g.AddNode(u)
	g.AddRoot(u.ID)

	if errs := Validate(g); len(errs) != 0 {
		t.Errorf("valid graph reported errors: %v", errs)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name  string
		build func(g *DesignGraph)
	}{
		{"dangling child", func(g *DesignGraph) {
			g.AddNode(&Node{
				ID: "n1", Kind: NodeBoolean,
				Children: []NodeID{"ghost", "ghost2"},
				Data:     BooleanData{Op: OpUnion},
			})
		}},
		{"bad box size", func(g *DesignGraph) {
			g.AddNode(&Node{ID: "n1", Kind: NodePrimitive, Data: BoxData{Size: Vec3{X: -1, Y: 1, Z: 1}}})
		}},
		{"bad sphere radius", func(g *DesignGraph) {
			g.AddNode(&Node{ID: "n1", Kind: NodePrimitive, Data: SphereData{}})
		}},
		{"boolean with one operand", func(g *DesignGraph) {
			a := box("a", 1, 1, 1)
			g.AddNode(a)
			g.AddNode(&Node{
				ID: "n1", Kind: NodeBoolean,
				Children: []NodeID{a.ID},
				Data:     BooleanData{Op: OpDifference},
			})
		}},
		{"clip without normal", func(g *DesignGraph) {
			a := box("a", 1, 1, 1)
			g.AddNode(a)
			g.AddNode(&Node{
				ID: "n1", Kind: NodeClip,
				Children: []NodeID{a.ID},
				Data:     ClipData{},
			})
		}},
		{"primitive with children", func(g *DesignGraph) {
			a := box("a", 1, 1, 1)
			g.AddNode(a)
			b := box("b", 1, 1, 1)
			b.Children = []NodeID{a.ID}
			g.AddNode(b)
		}},
		{"unknown root", func(g *DesignGraph) {
			g.AddRoot("ghost")
		}},
		{"cycle", func(g *DesignGraph) {
			g.AddNode(&Node{ID: "n1", Kind: NodeGroup, Children: []NodeID{"n2"}, Data: GroupData{}})
			g.AddNode(&Node{ID: "n2", Kind: NodeGroup, Children: []NodeID{"n1"}, Data: GroupData{}})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			tt.build(g)
			if errs := Validate(g); len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
		})
	}
}
