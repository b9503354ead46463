package core

// NeighborCount is the number of cells surrounding any position.
const NeighborCount = 8

// NeighborTable holds the wrapped neighbor indices of every cell in one flat
// slice. The neighbors of cell i live at [i*8, i*8+8) in the order
// NW, N, NE, W, E, SW, S, SE.
type NeighborTable []int

// BuildNeighbors precomputes the neighbor table for g.
func BuildNeighbors(g Grid) NeighborTable {
	table := make(NeighborTable, 0, g.Len()*NeighborCount)
	for i := 0; i < g.Len(); i++ {
		c := g.Coords(i)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				table = append(table, g.Index(Coords{X: c.X + dx, Y: c.Y + dy}))
			}
		}
	}
	return table
}

// Of returns the eight neighbor indices of cell i.
func (t NeighborTable) Of(i int) []int {
	base := i * NeighborCount
	return t[base : base+NeighborCount : base+NeighborCount]
}
