package gridgraph

import "github.com/pkg/errors"

var (
	// ErrEmptyGrid indicates a grid dimension smaller than one cell.
	ErrEmptyGrid = errors.New("gridgraph: grid must be at least one cell wide and high")
	// ErrCellOutOfRange indicates a cell reference outside the arena.
	ErrCellOutOfRange = errors.New("gridgraph: cell reference out of range")
	// ErrNoNeighbor indicates a connection target outside the grid.
	ErrNoNeighbor = errors.New("gridgraph: no neighbor in that direction")
	// ErrAlreadyConnected indicates a half-edge that is already set.
	ErrAlreadyConnected = errors.New("gridgraph: direction already connected")
	// ErrAsymmetricConnection indicates a broken symmetry invariant.
	ErrAsymmetricConnection = errors.New("gridgraph: asymmetric connection")
)
