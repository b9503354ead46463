// Package life implements Conway's Game of Life (B3/S23) on a torus.
package life

import (
	"fmt"

	"game-of-life/internal/core"
)

// World owns the double-buffered board and the precomputed neighbor table.
type World struct {
	grid       core.Grid
	generation uint32
	cur        []core.Cell
	nxt        []core.Cell
	neighbors  core.NeighborTable
}

// New returns an empty World with the provided dimensions.
func New(cols, rows int) (*World, error) {
	grid, err := core.NewGrid(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	cells := make([]core.Cell, grid.Len())
	return &World{
		grid:      grid,
		cur:       cells,
		nxt:       make([]core.Cell, len(cells)),
		neighbors: core.BuildNeighbors(grid),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Grid returns the coordinate mapper of the board.
func (w *World) Grid() core.Grid { return w.grid }

// Generation returns the number of completed steps.
func (w *World) Generation() uint32 { return w.generation }

// Cells exposes the current board. Callers must treat it as read-only.
func (w *World) Cells() []core.Cell { return w.cur }

// Cell reads the cell at the wrapped coordinates.
func (w *World) Cell(c core.Coords) core.Cell { return w.cur[w.grid.Index(c)] }

// SetCell writes the cell at the wrapped coordinates.
func (w *World) SetCell(c core.Coords, cell core.Cell) { w.cur[w.grid.Index(c)] = cell }

// ToggleCell flips the cell at the wrapped coordinates.
func (w *World) ToggleCell(c core.Coords) {
	i := w.grid.Index(c)
	w.cur[i] = w.cur[i].Toggle()
}

// Clear kills every cell. The generation counter is kept.
func (w *World) Clear() {
	for i := range w.cur {
		w.cur[i] = core.Dead
	}
}

// Population returns the number of alive cells.
func (w *World) Population() int {
	n := 0
	for _, c := range w.cur {
		n += int(c.Value())
	}
	return n
}

// Each calls fn for every cell in row-major order until fn returns false.
func (w *World) Each(fn func(core.Coords, core.Cell) bool) {
	for i, c := range w.cur {
		if !fn(w.grid.Coords(i), c) {
			return
		}
	}
}

// AliveNeighbors counts the alive neighbors of cell i in the current board.
func (w *World) AliveNeighbors(i int) uint8 {
	var n uint8
	for _, j := range w.neighbors.Of(i) {
		n += w.cur[j].Value()
	}
	return n
}

// Step advances the simulation by one generation. Neighbor counts always read
// the current board; results go to the scratch board which is then swapped in.
func (w *World) Step() {
	for i, c := range w.cur {
		w.nxt[i] = c.Next(w.AliveNeighbors(i))
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.generation++
}
