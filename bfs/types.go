// Package bfs defines the traversal hooks and error definitions
// for breadth-first search over a gridgraph.GridGraph.
package bfs

import "github.com/pkg/errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start reference is not a cell.
	ErrStartOutOfRange = errors.New("bfs: start cell out of range")

	// ErrNoOpenCells is returned when no start is given and nothing is open.
	ErrNoOpenCells = errors.New("bfs: no open cells to start search")

	// ErrBrokenConnection is returned when a recorded connection cannot be
	// followed. It means the symmetry invariant of the graph was broken.
	ErrBrokenConnection = errors.New("bfs: followed bad connection")
)

// Hooks receives traversal events from BreadthFirst.
// Returning an error from either method aborts the traversal.
type Hooks interface {
	// OnEdge is called for every set connection from -> to, before to is
	// marked Discovered.
	OnEdge(from, to int) error
	// OnFinish is called after all connections of cell were examined and
	// cell was marked Processed.
	OnFinish(cell int) error
}

// Dequeuer is an optional extension of Hooks, called when a cell leaves the
// frontier and before its connections are examined.
type Dequeuer interface {
	OnDequeue(cell int)
}

// HookFuncs adapts plain functions to Hooks and Dequeuer.
// Nil fields are no-ops.
type HookFuncs struct {
	Dequeue func(cell int)
	Edge    func(from, to int) error
	Finish  func(cell int) error
}

// OnDequeue implements Dequeuer.
func (h HookFuncs) OnDequeue(cell int) {
	if h.Dequeue != nil {
		h.Dequeue(cell)
	}
}

// OnEdge implements Hooks.
func (h HookFuncs) OnEdge(from, to int) error {
	if h.Edge == nil {
		return nil
	}
	return h.Edge(from, to)
}

// OnFinish implements Hooks.
func (h HookFuncs) OnFinish(cell int) error {
	if h.Finish == nil {
		return nil
	}
	return h.Finish(cell)
}
