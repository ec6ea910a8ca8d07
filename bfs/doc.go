// Package bfs provides the breadth-first traversal engine over a
// gridgraph.GridGraph on which every maze analysis is built.
//
// What
//
//   - Explore open cells in non-decreasing hop distance from a start cell,
//     following each recorded connection through its vertical offset.
//   - Expose the traversal through a small hook interface:
//   - OnDequeue (optional, via Dequeuer): a cell leaves the frontier
//   - OnEdge: fired for every set connection of the current cell, before the
//     target is marked Discovered, so hooks can test the target's state
//   - OnFinish: fired once all edges of a cell were examined
//   - Helpers for callers without hooks of their own: Distances and Reachable.
//
// Why
//
//   - Diameter placement and cycle detection differ only in their hooks.
//   - Game layers can run connectivity checks without the engine knowing
//     their types.
//
// Determinism
//
//	Connections are examined in direction order (right, up, left, down) and
//	the frontier is FIFO, so the visit sequence is fully reproducible.
//
// Traversal state
//
//	BreadthFirst resets and then writes the graph's TraversalState scratch.
//	Passes must therefore run one at a time; hooks observe the state of the
//	pass that invoked them.
//
// Complexity (V = open cells reached, E = their connections)
//
//   - Time:   O(W×H×L + V + E) (the reset touches every cell)
//   - Memory: O(V) for the frontier
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if the start reference is not a cell.
//   - ErrNoOpenCells      if no start is given and no cell is open.
//   - ErrBrokenConnection if a recorded connection leads off the grid.
//   - Wrapped hook errors from OnEdge or OnFinish.
package bfs
