// Package gridgraph treats a layered rectangular grid of cells as a graph whose
// edges are explicit per-cell connections, the substrate for maze generation
// and maze analysis.
//
// What:
//
//   - GridGraph owns a fixed Width×Height×Layers arena of cells (Layers = 2).
//   - Each cell carries an open flag, a 4-bit connection set (Right, Up, Left, Down)
//     and, per direction, a vertical offset (down/flat/up) used to realize bridges.
//   - Cells are referenced by stable int indices: x + Width*y + Width*Height*layer.
//   - Connect writes both half-edges at once, so every connection is symmetric.
//   - A per-cell TraversalState is kept as scratch for traversal passes.
//
// Why:
//
//   - Mazes: corridors, loops and grade-separated crossings in one structure.
//   - Analysis: BFS-based diameter and cycle detection over the finished maze.
//   - Game layers: O(1) cell lookup, connection bits and neighbor resolution.
//
// Complexity:
//
//   - CellAt, Neighbor, Connect: O(1).
//   - ResetTraversalState, OpenCount, EdgeCount, Validate: O(W×H×L).
//   - Components: O(W×H×L), Memory: O(W×H×L).
//
// Concurrency:
//
//	GridGraph is not safe for concurrent use. Generation must complete before
//	any traversal starts, and traversal passes must run one at a time because
//	they share the TraversalState scratch.
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is smaller than one cell.
//   - ErrCellOutOfRange: a cell reference does not address the arena.
//   - ErrNoNeighbor: Connect targeted a position outside the grid.
//   - ErrAlreadyConnected: Connect would overwrite an existing half-edge.
//   - ErrAsymmetricConnection: Validate found a one-sided or dangling connection.
package gridgraph
