// Package gridgraph provides the layered cell arena that maze generation
// mutates and maze analysis traverses. It supports:
//
//   - Bounds-checked lookup by (x, y, layer) and by index
//   - Directional neighbor resolution with an optional layer change
//   - Symmetric connection writes and symmetry validation
//   - Per-pass traversal state shared by the bfs package
package gridgraph

import "github.com/pkg/errors"

// NewGridGraph allocates a blank width×height×Layers grid: every cell closed,
// unconnected and Undiscovered.
// Returns ErrEmptyGrid if either dimension is smaller than one.
// Complexity: O(W×H×L) time and memory.
func NewGridGraph(width, height int) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrEmptyGrid, "got %d×%d", width, height)
	}
	n := width * height * Layers

	return &GridGraph{
		Width:  width,
		Height: height,
		cells:  make([]cell, n),
		state:  make([]TraversalState, n),
	}, nil
}

// Len returns the number of cells in the arena, |V| including closed cells.
func (gg *GridGraph) Len() int {
	return len(gg.cells)
}

// InBounds reports whether (x, y, layer) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y, layer int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height && layer >= 0 && layer < Layers
}

// Contains reports whether ref addresses a cell of the arena.
func (gg *GridGraph) Contains(ref int) bool {
	return ref >= 0 && ref < len(gg.cells)
}

// CellAt returns the reference of (x, y, layer), or (NoCell, false) when any
// coordinate is off the grid. Absence is an expected outcome at grid edges.
// Complexity: O(1).
func (gg *GridGraph) CellAt(x, y, layer int) (int, bool) {
	if !gg.InBounds(x, y, layer) {
		return NoCell, false
	}
	return gg.index(x, y, layer), true
}

// Neighbor steps from ref in direction d, shifting the layer by v, and
// returns the resulting cell if it exists.
// Complexity: O(1).
func (gg *GridGraph) Neighbor(ref int, d Direction, v Vertical) (int, bool) {
	if !gg.Contains(ref) || !d.Valid() {
		return NoCell, false
	}
	x, y, layer := gg.Coordinate(ref)
	dx, dy := d.Delta()

	return gg.CellAt(x+dx, y+dy, layer+int(v))
}

// Coordinate converts a reference back to (x, y, layer).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(ref int) (x, y, layer int) {
	plane := gg.Width * gg.Height
	layer = ref / plane
	rem := ref % plane

	return rem % gg.Width, rem / gg.Width, layer
}

// Cell returns a snapshot of the cell at ref. The zero Cell is returned for
// references outside the arena.
func (gg *GridGraph) Cell(ref int) Cell {
	if !gg.Contains(ref) {
		return Cell{}
	}
	x, y, layer := gg.Coordinate(ref)
	c := gg.cells[ref]

	return Cell{
		X: x, Y: y, Layer: layer,
		Open:        c.open,
		Connections: c.conns,
		Vertical:    c.vertical,
	}
}

// IsOpen reports whether ref is part of the maze.
func (gg *GridGraph) IsOpen(ref int) bool {
	return gg.Contains(ref) && gg.cells[ref].open
}

// Connections returns the connection set of ref (empty when out of range).
func (gg *GridGraph) Connections(ref int) ConnSet {
	if !gg.Contains(ref) {
		return 0
	}
	return gg.cells[ref].conns
}

// VerticalOffset returns the layer change recorded for direction d of ref.
func (gg *GridGraph) VerticalOffset(ref int, d Direction) Vertical {
	if !gg.Contains(ref) || !d.Valid() {
		return Flat
	}
	return gg.cells[ref].vertical[d]
}

// Follow resolves the connection of ref in direction d through its recorded
// vertical offset. It returns false if ref has no such connection or if the
// recorded target does not exist.
func (gg *GridGraph) Follow(ref int, d Direction) (int, bool) {
	if !gg.Connections(ref).Has(d) {
		return NoCell, false
	}
	return gg.Neighbor(ref, d, gg.cells[ref].vertical[d])
}

// Open marks ref as part of the maze.
func (gg *GridGraph) Open(ref int) error {
	if !gg.Contains(ref) {
		return errors.Wrapf(ErrCellOutOfRange, "open %d", ref)
	}
	gg.cells[ref].open = true
	return nil
}

// Connect links ref in direction d, shifting layer by v, and writes the
// mirrored half-edge (d.Opposite(), v.Inverse()) on the target. It returns the
// target reference. Neither endpoint is opened.
// Returns ErrNoNeighbor if the target is off the grid and ErrAlreadyConnected
// if either half-edge already exists.
func (gg *GridGraph) Connect(ref int, d Direction, v Vertical) (int, error) {
	to, ok := gg.Neighbor(ref, d, v)
	if !ok {
		return NoCell, errors.Wrapf(ErrNoNeighbor, "cell %d %s/%s", ref, d, v)
	}
	back := d.Opposite()
	if gg.cells[ref].conns.Has(d) || gg.cells[to].conns.Has(back) {
		return NoCell, errors.Wrapf(ErrAlreadyConnected, "cell %d %s to %d", ref, d, to)
	}
	gg.cells[ref].conns = gg.cells[ref].conns.With(d)
	gg.cells[ref].vertical[d] = v
	gg.cells[to].conns = gg.cells[to].conns.With(back)
	gg.cells[to].vertical[back] = v.Inverse()

	return to, nil
}

// ResetTraversalState marks every cell Undiscovered.
// Complexity: O(W×H×L).
func (gg *GridGraph) ResetTraversalState() {
	for i := range gg.state {
		gg.state[i] = Undiscovered
	}
}

// State returns the traversal mark of ref.
func (gg *GridGraph) State(ref int) TraversalState {
	return gg.state[ref]
}

// SetState sets the traversal mark of ref.
func (gg *GridGraph) SetState(ref int, s TraversalState) {
	gg.state[ref] = s
}

// FirstOpen returns the lowest-indexed open cell.
func (gg *GridGraph) FirstOpen() (int, bool) {
	for i := range gg.cells {
		if gg.cells[i].open {
			return i, true
		}
	}
	return NoCell, false
}

// index maps (x, y, layer) to x + Width*y + Width*Height*layer.
// Complexity: O(1).
func (gg *GridGraph) index(x, y, layer int) int {
	return x + gg.Width*y + gg.Width*gg.Height*layer
}
