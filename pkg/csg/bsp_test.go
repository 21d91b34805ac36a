package csg

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func unitCube(t *testing.T) *Mesh {
	t.Helper()
	return NewBox(v3.Vec{X: 2, Y: 2, Z: 2}, nil)
}

func TestBSPClipModesOnBoundary(t *testing.T) {
	cube := unitCube(t)
	var id int
	tree := NewBSP(cube.Polygons(), &id)

	// The cube's own faces are all boundary surface: strict modes drop
	// them, inclusive modes keep them.
	tests := []struct {
		mode     ClipMode
		wantArea float64
	}{
		{GreaterThan, 0},
		{GreaterThanEqual, 24},
		{LessThan, 0},
		{LessThanEqual, 24},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := polygonArea(tree.Clip(cube.Polygons(), tt.mode, &id))
			if math.Abs(got-tt.wantArea) > 1e-9 {
				t.Errorf("clip(%v) kept area %v, want %v", tt.mode, got, tt.wantArea)
			}
		})
	}
}

func TestBSPClipInteriorAndExterior(t *testing.T) {
	cube := unitCube(t)
	var id int
	tree := NewBSP(cube.Polygons(), &id)

	interior := quadXY(t, 1, nil) // z=0 square inside the cube
	farAway, ok := NewPolygon(translateVerts(quadXY(t, 1, nil).Vertices(), v3.Vec{X: 10}), nil)
	if !ok {
		t.Fatal("exterior polygon invalid")
	}

	tests := []struct {
		name string
		poly Polygon
		mode ClipMode
		want float64
	}{
		{"interior kept inside", interior, LessThan, 1},
		{"interior dropped outside", interior, GreaterThan, 0},
		{"exterior kept outside", farAway, GreaterThan, 1},
		{"exterior dropped inside", farAway, LessThan, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := polygonArea(tree.Clip([]Polygon{tt.poly}, tt.mode, &id))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("kept area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBSPClipSpanningPolygon(t *testing.T) {
	cube := unitCube(t)
	var id int
	tree := NewBSP(cube.Polygons(), &id)

	// A 4x4 square on z=0 spans the cube: 2x2 inside, the rest outside.
	wide := quadXY(t, 4, nil)
	in := tree.Clip([]Polygon{wide}, LessThan, &id)
	out := tree.Clip([]Polygon{wide}, GreaterThan, &id)

	if got := polygonArea(in); math.Abs(got-4) > 1e-9 {
		t.Errorf("inside area = %v, want 4", got)
	}
	if got := polygonArea(out); math.Abs(got-12) > 1e-9 {
		t.Errorf("outside area = %v, want 12", got)
	}
	if got := polygonArea(in) + polygonArea(out); math.Abs(got-16) > 1e-9 {
		t.Errorf("total area = %v, want 16", got)
	}
}

func TestBSPEmptyTree(t *testing.T) {
	var id int
	tree := NewBSP(nil, &id)
	poly := []Polygon{quadXY(t, 1, nil)}

	if got := len(tree.Clip(poly, GreaterThan, &id)); got != 1 {
		t.Errorf("outside clip against empty tree kept %d, want 1", got)
	}
	if got := len(tree.Clip(poly, LessThan, &id)); got != 0 {
		t.Errorf("inside clip against empty tree kept %d, want 0", got)
	}
}
