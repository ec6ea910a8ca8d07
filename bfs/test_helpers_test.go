package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// ref returns the ground-layer reference of (x, y).
func ref(t testing.TB, g *gridgraph.GridGraph, x, y int) int {
	t.Helper()
	r, ok := g.CellAt(x, y, 0)
	require.True(t, ok, "cell (%d,%d) off grid", x, y)
	return r
}

// link opens (x, y) and its neighbor in direction d and connects them flatly.
func link(t testing.TB, g *gridgraph.GridGraph, x, y int, d gridgraph.Direction) {
	t.Helper()
	from := ref(t, g, x, y)
	to, err := g.Connect(from, d, gridgraph.Flat)
	require.NoError(t, err)
	require.NoError(t, g.Open(from))
	require.NoError(t, g.Open(to))
}

// fullGrid connects every pair of adjacent ground cells of a w×h grid.
func fullGrid(t testing.TB, w, h int) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.NewGridGraph(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				link(t, g, x, y, gridgraph.Right)
			}
			if y+1 < h {
				link(t, g, x, y, gridgraph.Down)
			}
		}
	}
	return g
}

// chain builds a single corridor of n cells along the top row.
func chain(t testing.TB, n int) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.NewGridGraph(n, 1)
	require.NoError(t, err)
	for x := 0; x+1 < n; x++ {
		link(t, g, x, 0, gridgraph.Right)
	}
	return g
}
