package core

import (
	"errors"
	"slices"
	"testing"
)

func TestCoordsToIndexInBounds(t *testing.T) {
	cases := []struct {
		c    Coords
		want int
	}{
		{Coords{0, 0}, 0},
		{Coords{1, 0}, 1},
		{Coords{2, 0}, 2},
		{Coords{0, 1}, 3},
		{Coords{1, 1}, 4},
		{Coords{2, 1}, 5},
		{Coords{0, 2}, 6},
		{Coords{1, 2}, 7},
		{Coords{2, 2}, 8},
	}
	for _, tc := range cases {
		if got := CoordsToIndex(tc.c, 3, 3); got != tc.want {
			t.Fatalf("CoordsToIndex(%v) = %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestCoordsToIndexWraps(t *testing.T) {
	cases := []struct {
		c    Coords
		want int
	}{
		{Coords{3, 3}, 0},
		{Coords{-1, -1}, 8},
		{Coords{-4, 0}, 2},
		{Coords{7, -5}, 1*3 + 1},
		{Coords{-300, 301}, 1 * 3},
	}
	for _, tc := range cases {
		if got := CoordsToIndex(tc.c, 3, 3); got != tc.want {
			t.Fatalf("CoordsToIndex(%v) = %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestWrapMatchesCanonicalCoords(t *testing.T) {
	g, err := NewGrid(7, 5)
	if err != nil {
		t.Fatal(err)
	}
	for y := -12; y <= 12; y++ {
		for x := -15; x <= 15; x++ {
			w := g.Wrap(Coords{x, y})
			if w.X < 0 || w.X >= g.Cols || w.Y < 0 || w.Y >= g.Rows {
				t.Fatalf("Wrap(%d,%d) = %v out of range", x, y, w)
			}
			if g.Index(Coords{x, y}) != g.Index(w) {
				t.Fatalf("index of (%d,%d) differs from its wrapped form %v", x, y, w)
			}
		}
	}
}

func TestIndexToCoords(t *testing.T) {
	cases := []struct {
		index   int
		want    Coords
		wrapped int
	}{
		{0, Coords{0, 0}, 0},
		{4, Coords{1, 1}, 4},
		{8, Coords{2, 2}, 8},
		{9, Coords{0, 3}, 0},
		{13, Coords{1, 4}, 4},
	}
	for _, tc := range cases {
		got := IndexToCoords(tc.index, 3)
		if got != tc.want {
			t.Fatalf("IndexToCoords(%d) = %v, want %v", tc.index, got, tc.want)
		}
		if idx := CoordsToIndex(got, 3, 3); idx != tc.wrapped {
			t.Fatalf("CoordsToIndex(%v) = %d, want %d", got, idx, tc.wrapped)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := NewGrid(11, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g.Len(); i++ {
		if got := g.Index(g.Coords(i)); got != i {
			t.Fatalf("round trip of %d returned %d", i, got)
		}
	}
}

func TestNewGridRejectsSmallDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {1, 1}, {2, 2}, {2, 9}, {-3, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrGridTooSmall) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrGridTooSmall", dims[0], dims[1], err)
		}
	}
	if _, err := NewGrid(3, 3); err != nil {
		t.Fatalf("NewGrid(3, 3) unexpected error: %v", err)
	}
}

//	grid           neighbors(0)
//	c 6 * 4    (1   2   3  4  6  7  8  9)
//	8 9 * 7 => [15, 12, 13, 3, 1, 7, 4, 5]
//	* * * *
//	2 3 * 1
func TestBuildNeighbors(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{15, 12, 13, 3, 1, 7, 4, 5},
		{12, 13, 14, 0, 2, 4, 5, 6},
		{13, 14, 15, 1, 3, 5, 6, 7},
		{14, 15, 12, 2, 0, 6, 7, 4},
		{3, 0, 1, 7, 5, 11, 8, 9},
		{0, 1, 2, 4, 6, 8, 9, 10},
		{1, 2, 3, 5, 7, 9, 10, 11},
		{2, 3, 0, 6, 4, 10, 11, 8},
		{7, 4, 5, 11, 9, 15, 12, 13},
		{4, 5, 6, 8, 10, 12, 13, 14},
		{5, 6, 7, 9, 11, 13, 14, 15},
		{6, 7, 4, 10, 8, 14, 15, 12},
		{11, 8, 9, 15, 13, 3, 0, 1},
		{8, 9, 10, 12, 14, 0, 1, 2},
		{9, 10, 11, 13, 15, 1, 2, 3},
		{10, 11, 8, 14, 12, 2, 3, 0},
	}
	table := BuildNeighbors(g)
	if len(table) != g.Len()*NeighborCount {
		t.Fatalf("table length = %d, want %d", len(table), g.Len()*NeighborCount)
	}
	for i, expected := range want {
		if got := table.Of(i); !slices.Equal(got, expected) {
			t.Fatalf("neighbors of %d = %v, want %v", i, got, expected)
		}
	}
}
