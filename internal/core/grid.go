package core

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest supported number of columns or rows. Smaller
// tori make a cell count itself or the same neighbor twice.
const MinDimension = 3

// ErrGridTooSmall is returned when a grid dimension is below MinDimension.
var ErrGridTooSmall = errors.New("grid too small")

// Grid maps between linear board indices and toroidal 2D coordinates.
type Grid struct {
	Cols, Rows int
}

// NewGrid validates the dimensions and returns the grid.
func NewGrid(cols, rows int) (Grid, error) {
	if cols < MinDimension || rows < MinDimension {
		return Grid{}, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, cols, rows, MinDimension, MinDimension)
	}
	return Grid{Cols: cols, Rows: rows}, nil
}

// Len returns the number of cells in the grid.
func (g Grid) Len() int { return g.Cols * g.Rows }

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Index converts coords into a slice index, wrapping on both axes.
func (g Grid) Index(c Coords) int { return CoordsToIndex(c, g.Cols, g.Rows) }

// Coords converts a slice index back into coordinates.
func (g Grid) Coords(index int) Coords { return IndexToCoords(index, g.Cols) }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(c Coords) Coords {
	return Coords{X: mod(c.X, g.Cols), Y: mod(c.Y, g.Rows)}
}

// CoordsToIndex returns cols*y + x after wrapping x and y into the grid. On a
// 3x3 grid both (3,3) and (0,0) map to 0 and (-1,-1) maps to 8.
func CoordsToIndex(c Coords, cols, rows int) int {
	return cols*mod(c.Y, rows) + mod(c.X, cols)
}

// IndexToCoords is the inverse of CoordsToIndex for 0 <= index < cols*rows.
func IndexToCoords(index, cols int) Coords {
	return Coords{X: index % cols, Y: index / cols}
}

// mod is the Euclidean modulus: the result is always in [0, n).
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
