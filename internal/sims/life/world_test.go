package life

import (
	"errors"
	"testing"

	"game-of-life/internal/core"
)

func newWorld(t *testing.T, cols, rows int) *World {
	t.Helper()
	w, err := New(cols, rows)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", cols, rows, err)
	}
	return w
}

func expectAlive(t *testing.T, w *World, alive map[core.Coords]bool, when string) {
	t.Helper()
	size := w.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := core.Coords{X: x, Y: y}
			got := w.Cell(c) == core.Alive
			if got != alive[c] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", when, x, y, got, alive[c])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	w := newWorld(t, 5, 5)
	vertical := map[core.Coords]bool{{X: 2, Y: 1}: true, {X: 2, Y: 2}: true, {X: 2, Y: 3}: true}
	horizontal := map[core.Coords]bool{{X: 1, Y: 2}: true, {X: 2, Y: 2}: true, {X: 3, Y: 2}: true}
	for c := range vertical {
		w.SetCell(c, core.Alive)
	}

	w.Step()
	expectAlive(t, w, horizontal, "after first step")

	w.Step()
	expectAlive(t, w, vertical, "after second step")

	if w.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", w.Generation())
	}
}

func TestGliderNeighborCounts(t *testing.T) {
	w := newWorld(t, 4, 4)
	for _, c := range []core.Coords{{X: 2, Y: 0}, {X: 3, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}} {
		w.SetCell(c, core.Alive)
	}
	// . . @ .
	// . . . @
	// . @ @ @
	// . . . .
	want := []uint8{
		1, 1, 1, 2,
		3, 3, 5, 3,
		3, 1, 3, 2,
		2, 3, 4, 3,
	}
	for i, n := range want {
		if got := w.AliveNeighbors(i); got != n {
			t.Fatalf("alive neighbors of %d = %d, want %d", i, got, n)
		}
	}
}

func TestGliderTravelsAcrossTorus(t *testing.T) {
	w := newWorld(t, 8, 8)
	glider := []core.Coords{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	for _, c := range glider {
		w.SetCell(c, core.Alive)
	}
	// A glider moves one cell diagonally every four generations, so after 32
	// generations on an 8x8 torus it is back where it started.
	for i := 0; i < 32; i++ {
		w.Step()
	}
	want := map[core.Coords]bool{}
	for _, c := range glider {
		want[c] = true
	}
	expectAlive(t, w, want, "after 32 steps")
	if w.Population() != 5 {
		t.Fatalf("population = %d, want 5", w.Population())
	}
}

func TestStepIncrementsGeneration(t *testing.T) {
	w := newWorld(t, 3, 3)
	for i := uint32(1); i <= 10; i++ {
		w.Step()
		if w.Generation() != i {
			t.Fatalf("generation = %d, want %d", w.Generation(), i)
		}
	}
}

func TestSetCellWrapsCoords(t *testing.T) {
	w := newWorld(t, 3, 3)
	w.SetCell(core.Coords{X: -1, Y: -1}, core.Alive)
	if w.Cells()[8] != core.Alive {
		t.Fatal("(-1,-1) must map to the last cell")
	}
	if w.Cell(core.Coords{X: 2, Y: 2}) != core.Alive {
		t.Fatal("Cell must read the wrapped position")
	}
	w.ToggleCell(core.Coords{X: 5, Y: 5})
	if w.Cell(core.Coords{X: 2, Y: 2}) != core.Dead {
		t.Fatal("ToggleCell(5,5) must flip (2,2) on a 3x3 board")
	}
	w.ToggleCell(core.Coords{X: 3, Y: 0})
	if w.Cells()[0] != core.Alive {
		t.Fatal("ToggleCell(3,0) must flip (0,0)")
	}
}

func TestClearKeepsGeneration(t *testing.T) {
	w := newWorld(t, 5, 5)
	w.SetCell(core.Coords{X: 1, Y: 1}, core.Alive)
	w.Step()
	w.SetCell(core.Coords{X: 1, Y: 1}, core.Alive)
	w.Clear()
	if w.Population() != 0 {
		t.Fatalf("population after Clear = %d", w.Population())
	}
	if w.Generation() != 1 {
		t.Fatalf("generation after Clear = %d, want 1", w.Generation())
	}
}

func TestEachVisitsRowMajor(t *testing.T) {
	w := newWorld(t, 4, 3)
	w.SetCell(core.Coords{X: 3, Y: 1}, core.Alive)
	i := 0
	w.Each(func(c core.Coords, cell core.Cell) bool {
		if want := (core.Coords{X: i % 4, Y: i / 4}); c != want {
			t.Fatalf("visit %d at %v, want %v", i, c, want)
		}
		if (cell == core.Alive) != (i == 7) {
			t.Fatalf("visit %d cell = %v", i, cell)
		}
		i++
		return true
	})
	if i != 12 {
		t.Fatalf("visited %d cells, want 12", i)
	}
}

func TestNewRejectsDegenerateGrid(t *testing.T) {
	if _, err := New(0, 10); !errors.Is(err, core.ErrGridTooSmall) {
		t.Fatalf("New(0, 10) error = %v", err)
	}
	if _, err := New(2, 2); !errors.Is(err, core.ErrGridTooSmall) {
		t.Fatalf("New(2, 2) error = %v", err)
	}
}
