package core

import "math/rand/v2"

// RNG produces the same sequence of decisions for the same seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Scatter brings cells of w to life with probability density, visiting them
// in row-major order. It returns how many cells it set.
func (r *RNG) Scatter(w CellWriter, density float64) int {
	size := w.Size()
	n := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if r.Chance(density) {
				w.SetCell(Coords{X: x, Y: y}, Alive)
				n++
			}
		}
	}
	return n
}
