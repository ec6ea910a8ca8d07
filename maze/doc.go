// Package maze grows a connected, layered maze inside a gridgraph.GridGraph
// and places its start and end points at the approximate graph diameter.
//
// What:
//
//   - Generate: randomized growth from a start cell kept away from the grid
//     edges. Growth threads are processed in FIFO order; each thread keeps
//     extending while a branch draw succeeds. Extending into a closed cell
//     opens it and spawns a new thread; extending into an open cell may build
//     a bridge over a straight corridor (via the upper layer) or, failing
//     that, close a loop.
//   - Build: allocate the grid, seed the RNG, run Generate, then solve the
//     diameter path. The path's ends become the maze's start and end.
//   - Config: named parameters with YAML tags and validation.
//
// Determinism:
//
//	All randomness flows from the *rand.Rand passed to Generate (Build derives
//	it from Config.Seed). The same seed, dimensions and probabilities always
//	produce identical connections and vertical offsets.
//
// Probabilities:
//
//   - Branch: chance to extend the same thread again after a success.
//     Branch = 1 extends every thread until it dead-ends, which floods the
//     whole grid.
//   - Loop: chance to connect into an already open cell.
//   - Bridge: chance to cross an eligible corridor on the upper layer.
//
// Errors:
//
//   - ErrNilRNG, ErrInvalidProbability, ErrGridTooSmall: caller configuration.
//   - ErrInvalidConfig: Config failed validation.
//   - Errors from gridgraph, bfs and diameter are propagated.
package maze
