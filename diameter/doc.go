// Package diameter places the two ends of a maze far apart by approximating
// the graph diameter with the double-BFS heuristic.
//
// What:
//
//   - Pass 1: BFS from a seed cell; the last cell to finish is a farthest cell A.
//   - Pass 2: BFS from A recording one shortest-path predecessor per newly
//     discovered cell; the last cell to finish is B.
//   - The path is rebuilt by walking predecessors from B back to A.
//
// Accuracy:
//
//	The result is the exact diameter for trees only. Loops and bridges can make
//	the true longest shortest path longer; this is an accepted approximation.
//
// Complexity:
//
//   - Time:   O(W×H×L) for two passes and the walk.
//   - Memory: O(W×H×L) for the predecessor table.
//
// Errors:
//
//   - ErrPredecessorCycle: the predecessor walk did not end within |V| steps.
//   - Errors from bfs.BreadthFirst are propagated unchanged.
package diameter
