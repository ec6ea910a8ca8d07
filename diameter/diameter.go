package diameter

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/bfs"
	"github.com/katalvlaran/mazegraph/gridgraph"
)

// ErrPredecessorCycle indicates a predecessor chain that loops instead of
// terminating at the search origin.
var ErrPredecessorCycle = errors.New("diameter: predecessor chain does not terminate")

// lastFinished records the most recent cell whose OnFinish fired and,
// optionally, a BFS-tree predecessor for every newly discovered cell.
type lastFinished struct {
	g    *gridgraph.GridGraph
	last int
	prev []int // nil when predecessors are not needed
}

func (h *lastFinished) OnEdge(from, to int) error {
	if h.prev != nil && h.g.State(to) == gridgraph.Undiscovered {
		h.prev[to] = from
	}
	return nil
}

func (h *lastFinished) OnFinish(cell int) error {
	h.last = cell
	return nil
}

// Farthest returns a cell at maximal hop distance from start: the last cell
// finished by a BFS pass, since cells finish in non-decreasing distance.
func Farthest(g *gridgraph.GridGraph, start int) (int, error) {
	h := &lastFinished{g: g, last: gridgraph.NoCell}
	if err := bfs.BreadthFirst(g, start, h); err != nil {
		return gridgraph.NoCell, err
	}
	return h.last, nil
}

// Solve returns a long shortest path of g found by two BFS passes from start.
// The path runs from the far endpoint B (index 0) back to A (last index),
// both inclusive; consecutive cells are connected and no cell repeats.
func Solve(g *gridgraph.GridGraph, start int) ([]int, error) {
	a, err := Farthest(g, start)
	if err != nil {
		return nil, err
	}

	prev := make([]int, g.Len())
	for i := range prev {
		prev[i] = gridgraph.NoCell
	}
	h := &lastFinished{g: g, last: gridgraph.NoCell, prev: prev}
	if err = bfs.BreadthFirst(g, a, h); err != nil {
		return nil, err
	}

	return walk(prev, h.last)
}

// walk follows predecessor links from end until a cell without one.
func walk(prev []int, end int) ([]int, error) {
	var path []int
	for at := end; at != gridgraph.NoCell; at = prev[at] {
		if len(path) == len(prev) {
			return nil, errors.Wrapf(ErrPredecessorCycle, "walk from %d exceeded %d steps", end, len(prev))
		}
		path = append(path, at)
	}
	return path, nil
}
