package maze_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/bfs"
	"github.com/katalvlaran/mazegraph/cycles"
	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/maze"
)

// generate grows a w×h maze with the given draws and seed.
func generate(t *testing.T, w, h int, seed int64, p maze.Probabilities, opts ...maze.Option) (*gridgraph.GridGraph, int) {
	t.Helper()
	g, err := gridgraph.NewGridGraph(w, h)
	require.NoError(t, err)
	start, err := maze.Generate(g, maze.NewRand(seed), p, opts...)
	require.NoError(t, err)
	return g, start
}

var mixes = []struct {
	name string
	p    maze.Probabilities
}{
	{"Sparse", maze.Probabilities{Branch: 0.1, Loop: 0, Bridge: 0.8}},
	{"Loopy", maze.Probabilities{Branch: 0.3, Loop: 0.2, Bridge: 0.5}},
	{"Flood", maze.Probabilities{Branch: 1, Loop: 0.05, Bridge: 1}},
	{"Bare", maze.Probabilities{}},
}

// TestGenerate_Invariants checks symmetry and connectivity over several
// probability mixes and seeds.
func TestGenerate_Invariants(t *testing.T) {
	for _, mix := range mixes {
		t.Run(mix.name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				g, start := generate(t, 30, 20, seed, mix.p)
				require.True(t, g.IsOpen(start))
				require.NoError(t, g.Validate(), "seed %d", seed)

				dist, err := bfs.Distances(g, start)
				require.NoError(t, err)
				for ref := 0; ref < g.Len(); ref++ {
					assert.Equal(t, g.IsOpen(ref), dist[ref] >= 0,
						"seed %d cell %d: open=%v reached=%v", seed, ref, g.IsOpen(ref), dist[ref] >= 0)
				}
			}
		})
	}
}

// TestGenerate_SpanningTreeWithoutLoops verifies that without loop draws the
// maze is a tree, bridges included, and no cycles are reported.
func TestGenerate_SpanningTreeWithoutLoops(t *testing.T) {
	for _, bridge := range []float64{0, 1} {
		for seed := int64(1); seed <= 5; seed++ {
			g, start := generate(t, 30, 20, seed, maze.Probabilities{Branch: 0.4, Bridge: bridge})
			assert.Equal(t, g.OpenCount()-1, g.EdgeCount(), "bridge %v seed %d", bridge, seed)

			cs, err := cycles.Detect(g, start)
			require.NoError(t, err)
			assert.Empty(t, cs)
		}
	}
}

// TestGenerate_FloodFiveByFive fills a 5×5 single-layer maze: with every
// thread extended until it dead-ends and no loops or bridges, all 25 cells
// open into a spanning tree of 24 edges.
func TestGenerate_FloodFiveByFive(t *testing.T) {
	// Branch 0 only grows two walks from the start and rarely opens all 25 cells.
	for seed := int64(1); seed <= 10; seed++ {
		g, start := generate(t, 5, 5, seed, maze.Probabilities{Branch: 1}, maze.WithEdgeMargin(2))

		x, y, layer := g.Coordinate(start)
		assert.Equal(t, [3]int{2, 2, 0}, [3]int{x, y, layer}, "margin 2 pins the start to the center")
		assert.Equal(t, 25, g.OpenCount())
		assert.Equal(t, 24, g.EdgeCount())
		assert.Zero(t, g.BridgeCount())

		cs, err := cycles.Detect(g, start)
		require.NoError(t, err)
		assert.Empty(t, cs)
	}
}

// TestGenerate_NoBranching still yields a tree from two growth passes.
func TestGenerate_NoBranching(t *testing.T) {
	g, _ := generate(t, 5, 5, 3, maze.Probabilities{}, maze.WithEdgeMargin(0))
	assert.GreaterOrEqual(t, g.OpenCount(), 2)
	assert.Equal(t, g.OpenCount()-1, g.EdgeCount())
	assert.Len(t, g.Components(), 1)
}

// TestGenerate_Bridges checks the geometry of every bridge deck: two ramps
// on opposite sides, both leading down, over a corridor cell that runs
// across the deck and was never joined to it.
func TestGenerate_Bridges(t *testing.T) {
	total := 0
	for seed := int64(1); seed <= 20; seed++ {
		g, _ := generate(t, 40, 30, seed, maze.Probabilities{Branch: 0.3, Loop: 0.1, Bridge: 1})
		total += g.BridgeCount()

		for ref := 0; ref < g.Len(); ref++ {
			c := g.Cell(ref)
			if c.Layer == 0 || !c.Open {
				continue
			}
			require.Equal(t, 2, c.Connections.Count(), "deck %d", ref)
			var axis gridgraph.Direction
			if c.Connections.Has(gridgraph.Up) {
				axis = gridgraph.Up
			}
			require.True(t, c.Connections.Has(axis) && c.Connections.Has(axis.Opposite()), "deck %d is not straight", ref)
			assert.Equal(t, gridgraph.VerticalDown, c.Vertical[axis])
			assert.Equal(t, gridgraph.VerticalDown, c.Vertical[axis.Opposite()])

			below, _ := g.CellAt(c.X, c.Y, 0)
			assert.Equal(t, axis.Perpendicular(), g.Connections(below), "corridor under deck %d", ref)
		}
	}
	assert.Positive(t, total, "no bridges built across 20 seeds")
}

// TestGenerate_Deterministic compares two runs with identical inputs.
func TestGenerate_Deterministic(t *testing.T) {
	p := maze.Probabilities{Branch: 0.3, Loop: 0.1, Bridge: 0.7}
	a, startA := generate(t, 25, 25, 42, p)
	b, startB := generate(t, 25, 25, 42, p)

	require.Equal(t, startA, startB)
	for ref := 0; ref < a.Len(); ref++ {
		require.Equal(t, a.Cell(ref), b.Cell(ref), "cell %d", ref)
	}

	c, _ := generate(t, 25, 25, 43, p)
	differs := false
	for ref := 0; ref < a.Len() && !differs; ref++ {
		differs = a.Cell(ref) != c.Cell(ref)
	}
	assert.True(t, differs, "different seeds produced identical mazes")
}

// TestGenerate_Errors covers configuration errors.
func TestGenerate_Errors(t *testing.T) {
	g, err := gridgraph.NewGridGraph(10, 10)
	require.NoError(t, err)

	_, err = maze.Generate(g, nil, maze.Probabilities{})
	assert.ErrorIs(t, err, maze.ErrNilRNG)

	for _, p := range []maze.Probabilities{{Branch: -0.1}, {Loop: 1.5}, {Bridge: math.NaN()}} {
		_, err = maze.Generate(g, maze.NewRand(1), p)
		assert.ErrorIs(t, err, maze.ErrInvalidProbability, "%+v", p)
	}

	_, err = maze.Generate(g, maze.NewRand(1), maze.Probabilities{})
	assert.ErrorIs(t, err, maze.ErrGridTooSmall, "10 cells leave no room inside a margin of 5")
	assert.Zero(t, g.OpenCount())

	_, err = maze.Generate(g, maze.NewRand(1), maze.Probabilities{}, maze.WithEdgeMargin(4))
	assert.NoError(t, err)
}
