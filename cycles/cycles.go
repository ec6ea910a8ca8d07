package cycles

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/bfs"
	"github.com/katalvlaran/mazegraph/gridgraph"
)

// ErrChainsDisjoint indicates two predecessor chains that never met within
// |V| steps, which means the BFS tree was corrupted.
var ErrChainsDisjoint = errors.New("cycles: predecessor chains do not meet")

// Cycle is a closed sequence of cell references: the first and last entries
// are the same cell and each consecutive pair is connected.
type Cycle []int

// Len returns the number of connections in the cycle.
func (c Cycle) Len() int {
	if len(c) == 0 {
		return 0
	}
	return len(c) - 1
}

// detector holds the per-pass tables; it implements bfs.Hooks.
type detector struct {
	g      *gridgraph.GridGraph
	prev   []int
	dist   []int
	cycles []Cycle
}

// Detect runs one BFS pass from start and returns one cycle per non-tree
// connection of the reached component, in the order the closing connections
// were observed. A tree yields no cycles.
// Errors from bfs.BreadthFirst are propagated; ErrChainsDisjoint signals a
// corrupted predecessor table.
func Detect(g *gridgraph.GridGraph, start int) ([]Cycle, error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	d := &detector{
		g:    g,
		prev: make([]int, g.Len()),
		dist: make([]int, g.Len()),
	}
	for i := range d.prev {
		d.prev[i] = gridgraph.NoCell
	}
	if err := bfs.BreadthFirst(g, start, d); err != nil {
		return nil, err
	}
	return d.cycles, nil
}

// OnEdge classifies p->c as a tree edge, the edge back to p's parent, a
// same-shell edge reported later from the other side, or a closing edge.
func (d *detector) OnEdge(p, c int) error {
	if c == d.prev[p] {
		return nil
	}
	switch d.g.State(c) {
	case gridgraph.Discovered:
		return nil
	case gridgraph.Processed:
		cycle, err := d.reconstruct(p, c)
		if err != nil {
			return err
		}
		d.cycles = append(d.cycles, cycle)
		return nil
	default:
		d.prev[c] = p
		d.dist[c] = d.dist[p] + 1
		return nil
	}
}

func (d *detector) OnFinish(int) error { return nil }

// reconstruct closes the cycle formed by the non-tree edge p->c: p's chain
// up to the common ancestor, then c's chain back down, then p again.
func (d *detector) reconstruct(p, c int) (Cycle, error) {
	var (
		pSide = []int{}
		cSide = []int{}
		limit = len(d.prev)
	)
	for steps := 0; p != c; steps++ {
		if steps > limit || p == gridgraph.NoCell || c == gridgraph.NoCell {
			return nil, errors.Wrapf(ErrChainsDisjoint, "after %d steps", steps)
		}
		switch {
		case d.dist[p] > d.dist[c]:
			pSide = append(pSide, p)
			p = d.prev[p]
		case d.dist[c] > d.dist[p]:
			cSide = append(cSide, c)
			c = d.prev[c]
		default:
			pSide = append(pSide, p)
			cSide = append(cSide, c)
			p, c = d.prev[p], d.prev[c]
		}
	}
	if p == gridgraph.NoCell {
		return nil, errors.Wrap(ErrChainsDisjoint, "chains met above the root")
	}

	cycle := make(Cycle, 0, len(pSide)+len(cSide)+2)
	cycle = append(cycle, pSide...)
	cycle = append(cycle, p)
	for i := len(cSide) - 1; i >= 0; i-- {
		cycle = append(cycle, cSide[i])
	}
	cycle = append(cycle, cycle[0])

	return cycle, nil
}
