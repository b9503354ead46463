package core

// Cell is the state of a single board position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Value returns 1 for Alive and 0 for Dead so neighbor counts can be summed.
func (c Cell) Value() uint8 { return uint8(c) }

// Next applies the B3/S23 rules given the number of alive neighbors.
func (c Cell) Next(alive uint8) Cell {
	switch {
	case c == Alive && (alive == 2 || alive == 3):
		return Alive
	case c == Dead && alive == 3:
		return Alive
	default:
		return Dead
	}
}

// Toggle flips Alive to Dead and vice versa.
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Coords is an unbounded 2D position. Values outside the grid are wrapped by
// the Grid before use.
type Coords struct {
	X, Y int
}

// Add returns the component-wise sum of c and d.
func (c Coords) Add(d Coords) Coords { return Coords{X: c.X + d.X, Y: c.Y + d.Y} }

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Board is the read-only view of a simulation consumed by renderers.
type Board interface {
	Size() Size
	Generation() uint32
	Cells() []Cell
}

// CellWriter is the mutable surface patterns and frontends write through.
type CellWriter interface {
	Size() Size
	SetCell(c Coords, cell Cell)
}
