package maze

import (
	"github.com/katalvlaran/mazegraph/cycles"
	"github.com/katalvlaran/mazegraph/diameter"
	"github.com/katalvlaran/mazegraph/gridgraph"
)

// Maze is a generated grid together with its placed endpoints.
type Maze struct {
	Graph *gridgraph.GridGraph
	// Origin is the cell growth started from.
	Origin int
	// Solution is the diameter path from Start to End, both inclusive.
	Solution []int
}

// Build generates a maze from cfg and places its start and end at the ends
// of the approximate diameter path. The logger and margin options override
// cfg only when given explicitly.
func Build(cfg Config, opts ...Option) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := gridgraph.NewGridGraph(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	all := append([]Option{WithEdgeMargin(cfg.EdgeMargin)}, opts...)
	origin, err := Generate(g, NewRand(cfg.Seed), cfg.Probabilities(), all...)
	if err != nil {
		return nil, err
	}
	path, err := diameter.Solve(g, origin)
	if err != nil {
		return nil, err
	}

	return &Maze{Graph: g, Origin: origin, Solution: path}, nil
}

// Start returns the first cell of the solution path.
func (m *Maze) Start() int {
	if len(m.Solution) == 0 {
		return gridgraph.NoCell
	}
	return m.Solution[0]
}

// End returns the last cell of the solution path.
func (m *Maze) End() int {
	if len(m.Solution) == 0 {
		return gridgraph.NoCell
	}
	return m.Solution[len(m.Solution)-1]
}

// Cycles returns the fundamental cycles of the maze, detected from Start.
// It overwrites the graph's traversal state.
func (m *Maze) Cycles() ([]cycles.Cycle, error) {
	return cycles.Detect(m.Graph, m.Start())
}
