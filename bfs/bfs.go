// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// driving caller-supplied hooks on every edge and every finished cell.
package bfs

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *gridgraph.GridGraph
	hooks   Hooks
	dequeue func(int)
	queue   *linkedlistqueue.Queue
}

// BreadthFirst runs breadth-first search on g from start, invoking hooks.
// If start is gridgraph.NoCell the lowest-indexed open cell is used.
// The graph's traversal state is reset first; after the call every reached
// cell is Processed.
// Returns ErrGraphNil, ErrStartOutOfRange or ErrNoOpenCells for invalid input,
// ErrBrokenConnection for a broken symmetry invariant, or a wrapped hook error.
func BreadthFirst(g *gridgraph.GridGraph, start int, hooks Hooks) error {
	if g == nil {
		return ErrGraphNil
	}
	if hooks == nil {
		hooks = HookFuncs{}
	}
	g.ResetTraversalState()

	if start == gridgraph.NoCell {
		first, ok := g.FirstOpen()
		if !ok {
			return ErrNoOpenCells
		}
		start = first
	}
	if !g.Contains(start) {
		return errors.Wrapf(ErrStartOutOfRange, "start %d", start)
	}

	w := &walker{
		graph: g,
		hooks: hooks,
		queue: linkedlistqueue.New(),
	}
	if d, ok := hooks.(Dequeuer); ok {
		w.dequeue = d.OnDequeue
	}

	g.SetState(start, gridgraph.Discovered)
	w.queue.Enqueue(start)

	return w.loop()
}

// loop processes the frontier until it is empty or a hook fails.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		cell := v.(int)
		if w.dequeue != nil {
			w.dequeue(cell)
		}
		if err := w.visitEdges(cell); err != nil {
			return err
		}
		w.graph.SetState(cell, gridgraph.Processed)
		if err := w.hooks.OnFinish(cell); err != nil {
			return errors.Wrapf(err, "bfs: OnFinish error at %d", cell)
		}
	}
	return nil
}

// visitEdges fires OnEdge for each connection of cell and enqueues every
// target that is still undiscovered after the hook ran.
func (w *walker) visitEdges(cell int) error {
	conns := w.graph.Connections(cell)
	for _, d := range gridgraph.Directions {
		if !conns.Has(d) {
			continue
		}
		next, ok := w.graph.Follow(cell, d)
		if !ok {
			return errors.Wrapf(ErrBrokenConnection, "cell %d direction %s offset %s",
				cell, d, w.graph.VerticalOffset(cell, d))
		}

		if err := w.hooks.OnEdge(cell, next); err != nil {
			return errors.Wrapf(err, "bfs: OnEdge error at %d->%d", cell, next)
		}
		if w.graph.State(next) == gridgraph.Undiscovered {
			w.graph.SetState(next, gridgraph.Discovered)
			w.queue.Enqueue(next)
		}
	}
	return nil
}
