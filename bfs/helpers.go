package bfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// Distances returns the hop distance of every cell from start, indexed by
// cell reference; unreached cells hold -1.
// Complexity: O(W×H×L).
func Distances(g *gridgraph.GridGraph, start int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start == gridgraph.NoCell {
		first, ok := g.FirstOpen()
		if !ok {
			return nil, ErrNoOpenCells
		}
		start = first
	}
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	hooks := HookFuncs{
		Edge: func(from, to int) error {
			if g.State(to) == gridgraph.Undiscovered {
				dist[to] = dist[from] + 1
			}
			return nil
		},
	}
	if g.Contains(start) {
		dist[start] = 0
	}
	if err := BreadthFirst(g, start, hooks); err != nil {
		return nil, err
	}
	return dist, nil
}

// errFound stops a traversal early once the target was seen.
type errFound struct{}

func (errFound) Error() string { return "bfs: target found" }

// Reachable reports whether to can be reached from from by following
// connections. It stops as soon as to is seen.
func Reachable(g *gridgraph.GridGraph, from, to int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if from == to && g.Contains(from) {
		return true, nil
	}
	hooks := HookFuncs{
		Edge: func(_, next int) error {
			if next == to {
				return errFound{}
			}
			return nil
		},
	}
	err := BreadthFirst(g, from, hooks)
	switch {
	case err == nil:
		return false, nil
	case errors.Cause(err) == errFound{}:
		return true, nil
	default:
		return false, err
	}
}
