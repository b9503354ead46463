package core

import "sort"

// Seeder writes a starting pattern around origin. Seeders that need
// randomness derive it from seed so runs are reproducible.
type Seeder func(w CellWriter, origin Coords, seed int64)

var seeders = map[string]Seeder{}

// Register adds a pattern seeder under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Lookup returns the seeder registered under name.
func Lookup(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// Patterns returns the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Center returns the middle cell of a board of the given size.
func Center(s Size) Coords { return Coords{X: s.W / 2, Y: s.H / 2} }
