// Package gridgraph defines directions, vertical offsets, connection sets
// and the cell arena used by every maze algorithm in this module.
package gridgraph

// Layers is the number of vertical layers in every grid: the ground floor and
// one bridge deck above it.
const Layers = 2

// NoCell is the reference returned wherever a cell is absent.
const NoCell = -1

// Direction is one of the four compass directions, numbered counter-clockwise
// starting from Right. The numbering doubles as the bit index in ConnSet.
type Direction int

const (
	// Right increases x.
	Right Direction = iota
	// Up decreases y.
	Up
	// Left decreases x.
	Left
	// Down increases y.
	Down
)

// Directions lists every direction in bit order.
var Directions = [4]Direction{Right, Up, Left, Down}

var directionDeltas = [4][2]int{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}

var directionNames = [4]string{"right", "up", "left", "down"}

// Opposite returns the direction pointing back, (d+2) mod 4.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the (dx, dy) step of d.
func (d Direction) Delta() (dx, dy int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Perpendicular returns the two directions at right angles to d.
func (d Direction) Perpendicular() ConnSet {
	return ConnSet(0).With((d + 1) % 4).With((d + 3) % 4)
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= Right && d <= Down
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// Vertical records whether following a connection also changes layer.
type Vertical int

const (
	// VerticalDown moves one layer down.
	VerticalDown Vertical = -1
	// Flat stays on the same layer.
	Flat Vertical = 0
	// VerticalUp moves one layer up.
	VerticalUp Vertical = 1
)

// Inverse returns the offset seen from the other end of the connection.
func (v Vertical) Inverse() Vertical {
	return -v
}

func (v Vertical) String() string {
	switch v {
	case VerticalDown:
		return "down"
	case Flat:
		return "flat"
	case VerticalUp:
		return "up"
	}
	return "invalid"
}

// ConnSet is a 4-bit set of directions; bit d is set when a connection leaves
// the cell in direction d.
type ConnSet uint8

// Has reports whether d is in the set.
func (s ConnSet) Has(d Direction) bool {
	return s&(1<<uint(d)) != 0
}

// With returns the set with d added.
func (s ConnSet) With(d Direction) ConnSet {
	return s | 1<<uint(d)
}

// Count returns the number of directions in the set.
func (s ConnSet) Count() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// TraversalState is the per-pass visitation mark of a cell.
type TraversalState uint8

const (
	// Undiscovered: not yet seen in the current pass.
	Undiscovered TraversalState = iota
	// Discovered: queued, edges not yet examined.
	Discovered
	// Processed: all edges examined.
	Processed
)

// Cell is a read-only snapshot of one grid position.
type Cell struct {
	X, Y, Layer int         // Coordinates within the grid
	Open        bool        // Incorporated into the maze
	Connections ConnSet     // Outgoing connections
	Vertical    [4]Vertical // Layer change per direction
}

// cell is the arena record; coordinates are derived from its index.
type cell struct {
	open     bool
	conns    ConnSet
	vertical [4]Vertical
}

// GridGraph is a fixed-size Width×Height×Layers arena of cells.
// It is mutated only through Open and Connect; traversal state is scratch.
type GridGraph struct {
	Width, Height int
	cells         []cell
	state         []TraversalState
}
