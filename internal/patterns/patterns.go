// Package patterns registers the named starting patterns available to every
// frontend. Import it for its side effects.
package patterns

import "game-of-life/internal/core"

// shape is a list of alive offsets relative to the top-left of its bounding box.
type shape []core.Coords

var (
	glider     = shape{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	blinker    = shape{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	rpentomino = shape{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	acorn      = shape{{X: 1, Y: 0}, {X: 3, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 2}}
	gosper     = parse(
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	)
)

// parse turns rows of 'O' (alive) and '.' (dead) into a shape.
func parse(rows ...string) shape {
	var s shape
	for y, row := range rows {
		for x, r := range row {
			if r == 'O' {
				s = append(s, core.Coords{X: x, Y: y})
			}
		}
	}
	return s
}

// bounds returns the width and height of the shape.
func (s shape) bounds() (int, int) {
	w, h := 0, 0
	for _, c := range s {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// seeder places the shape centered on origin.
func (s shape) seeder() core.Seeder {
	return func(w core.CellWriter, origin core.Coords, _ int64) {
		bw, bh := s.bounds()
		topLeft := core.Coords{X: origin.X - bw/2, Y: origin.Y - bh/2}
		for _, c := range s {
			w.SetCell(topLeft.Add(c), core.Alive)
		}
	}
}

// RandomDensity is the share of cells the random pattern brings to life.
const RandomDensity = 0.3

func random(w core.CellWriter, _ core.Coords, seed int64) {
	core.NewRNG(seed).Scatter(w, RandomDensity)
}

func init() {
	core.Register("glider", glider.seeder())
	core.Register("blinker", blinker.seeder())
	core.Register("rpentomino", rpentomino.seeder())
	core.Register("acorn", acorn.seeder())
	core.Register("gosper", gosper.seeder())
	core.Register("random", random)
}
