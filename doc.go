// Package mazegraph builds layered grid mazes as graphs and analyzes them:
// randomized growth with loops and bridges, diameter-based placement of the
// start and end points, and fundamental-cycle detection.
//
// What is mazegraph?
//
//	A deterministic, single-threaded toolkit that brings together:
//		• gridgraph/ — the cell arena: connections, vertical offsets, lookup
//		• maze/      — randomized growth, configuration and the Build facade
//		• bfs/       — the hooked breadth-first traversal engine
//		• diameter/  — double-BFS placement of the maze's two ends
//		• cycles/    — one reconstructed cycle per loop of the maze
//		• cmd/mazestat — command-line report of a generated maze
//
// Bridges:
//
//	Two corridors may cross without meeting. The crossing corridor ramps up
//	onto the upper layer above the crossed cell and ramps down again on the
//	far side, while the crossed corridor runs straight through underneath.
//
// Quick start:
//
//	m, err := maze.Build(maze.DefaultConfig())
//	if err != nil {
//		// maze.ErrInvalidConfig, maze.ErrGridTooSmall, ...
//	}
//	fmt.Println(m.Start(), m.End(), len(m.Solution))
//	loops, _ := m.Cycles()
//
//	go get github.com/katalvlaran/mazegraph
package mazegraph
