package core

import "testing"

type recorder struct {
	size Size
	set  []Coords
}

func (r *recorder) Size() Size { return r.size }

func (r *recorder) SetCell(c Coords, _ Cell) { r.set = append(r.set, c) }

func TestScatterDensityBounds(t *testing.T) {
	none := &recorder{size: Size{W: 6, H: 4}}
	if n := NewRNG(1).Scatter(none, 0); n != 0 || len(none.set) != 0 {
		t.Fatalf("density 0 set %d cells", n)
	}
	all := &recorder{size: Size{W: 6, H: 4}}
	if n := NewRNG(1).Scatter(all, 1); n != 24 {
		t.Fatalf("density 1 set %d cells, want 24", n)
	}
	if all.set[0] != (Coords{}) || all.set[23] != (Coords{X: 5, Y: 3}) {
		t.Fatalf("cells not visited in row-major order: %v", all.set)
	}
}

func TestScatterDeterministic(t *testing.T) {
	a := &recorder{size: Size{W: 20, H: 20}}
	b := &recorder{size: Size{W: 20, H: 20}}
	NewRNG(7).Scatter(a, 0.5)
	NewRNG(7).Scatter(b, 0.5)
	if len(a.set) != len(b.set) {
		t.Fatalf("same seed produced %d and %d cells", len(a.set), len(b.set))
	}
	for i := range a.set {
		if a.set[i] != b.set[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, a.set[i], b.set[i])
		}
	}
}
