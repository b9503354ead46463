package patterns

import (
	"slices"
	"testing"

	"game-of-life/internal/core"
	"game-of-life/internal/sims/life"
)

func seed(t *testing.T, name string, cols, rows int, s int64) *life.World {
	t.Helper()
	w, err := life.New(cols, rows)
	if err != nil {
		t.Fatal(err)
	}
	seeder, ok := core.Lookup(name)
	if !ok {
		t.Fatalf("pattern %q not registered", name)
	}
	seeder(w, core.Center(w.Size()), s)
	return w
}

func TestRegisteredPatterns(t *testing.T) {
	want := []string{"acorn", "blinker", "glider", "gosper", "random", "rpentomino"}
	if got := core.Patterns(); !slices.Equal(got, want) {
		t.Fatalf("Patterns() = %v, want %v", got, want)
	}
}

func TestShapePopulation(t *testing.T) {
	cases := map[string]int{
		"glider":     5,
		"blinker":    3,
		"rpentomino": 5,
		"acorn":      7,
		"gosper":     36,
	}
	for name, n := range cases {
		w := seed(t, name, 40, 20, 0)
		if w.Population() != n {
			t.Fatalf("%s population = %d, want %d", name, w.Population(), n)
		}
	}
}

func TestBlinkerIsCentered(t *testing.T) {
	w := seed(t, "blinker", 5, 5, 0)
	for y := 1; y <= 3; y++ {
		if w.Cell(core.Coords{X: 2, Y: y}) != core.Alive {
			t.Fatalf("cell (2,%d) should be alive", y)
		}
	}
}

func TestGosperGunGrows(t *testing.T) {
	w := seed(t, "gosper", 120, 100, 0)
	for i := 0; i < 60; i++ {
		w.Step()
	}
	// Two gun periods release gliders, so the board holds more than the gun.
	if w.Population() <= 36 {
		t.Fatalf("population after two periods = %d, want more than 36", w.Population())
	}
}

func TestRandomIsDeterministic(t *testing.T) {
	a := seed(t, "random", 30, 20, 99)
	b := seed(t, "random", 30, 20, 99)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("random pattern differs for the same seed")
	}
	if a.Population() == 0 || a.Population() == 600 {
		t.Fatalf("random population = %d", a.Population())
	}
}
