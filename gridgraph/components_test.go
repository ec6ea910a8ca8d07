package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// connectLine opens and flatly links the cells (x0..x1, y) on the ground layer.
func connectLine(t *testing.T, gg *gridgraph.GridGraph, y, x0, x1 int) {
	t.Helper()
	for x := x0; x <= x1; x++ {
		ref, _ := gg.CellAt(x, y, 0)
		if err := gg.Open(ref); err != nil {
			t.Fatal(err)
		}
		if x < x1 {
			if _, err := gg.Connect(ref, gridgraph.Right, gridgraph.Flat); err != nil {
				t.Fatal(err)
			}
		}
	}
}

// TestComponents_TwoCorridors builds two disjoint corridors on a 4×3 grid:
//
//	# # # .
//	. . . .
//	. # # .
//
// Expected: 2 components of sizes 3 and 2.
func TestComponents_TwoCorridors(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph(4, 3)
	connectLine(t, gg, 0, 0, 2)
	connectLine(t, gg, 2, 1, 2)

	comps := gg.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	if len(comps[0]) != 3 || len(comps[1]) != 2 {
		t.Errorf("component sizes = %d,%d; want 3,2", len(comps[0]), len(comps[1]))
	}
	if gg.OpenCount() != 5 || gg.EdgeCount() != 3 {
		t.Errorf("OpenCount=%d EdgeCount=%d; want 5,3", gg.OpenCount(), gg.EdgeCount())
	}
	if err := gg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

// TestComponents_Bridge checks that a bridge deck joins both ground ends into
// one component and is counted as a bridge.
func TestComponents_Bridge(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph(3, 1)
	west, _ := gg.CellAt(0, 0, 0)
	east, _ := gg.CellAt(2, 0, 0)
	deck, err := gg.Connect(west, gridgraph.Right, gridgraph.VerticalUp)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = gg.Connect(deck, gridgraph.Right, gridgraph.VerticalDown); err != nil {
		t.Fatal(err)
	}
	for _, ref := range []int{west, deck, east} {
		_ = gg.Open(ref)
	}

	comps := gg.Components()
	if len(comps) != 1 || len(comps[0]) != 3 {
		t.Fatalf("components = %v; want one of size 3", comps)
	}
	if gg.BridgeCount() != 1 {
		t.Errorf("BridgeCount = %d; want 1", gg.BridgeCount())
	}
	if err := gg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

// TestValidate_ClosedEndpoint reports connections touching closed cells.
func TestValidate_ClosedEndpoint(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph(2, 1)
	a, _ := gg.CellAt(0, 0, 0)
	if _, err := gg.Connect(a, gridgraph.Right, gridgraph.Flat); err != nil {
		t.Fatal(err)
	}
	_ = gg.Open(a)

	if err := gg.Validate(); !errors.Is(err, gridgraph.ErrAsymmetricConnection) {
		t.Errorf("Validate error = %v; want ErrAsymmetricConnection", err)
	}
}
