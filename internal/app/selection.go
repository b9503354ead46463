package app

import (
	"sort"

	"game-of-life/internal/core"
)

// Selection is a set of board coordinates the player can move, rotate and
// toggle as a group. Coordinates are kept unwrapped; the board wraps them
// when cells are written.
type Selection struct {
	coords map[core.Coords]struct{}
}

type bounds struct {
	minX, maxX, minY, maxY int
}

// Clear empties the selection.
func (s *Selection) Clear() { s.coords = nil }

// Len returns the number of selected cells.
func (s *Selection) Len() int { return len(s.coords) }

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool { return len(s.coords) == 0 }

// Contains reports whether c is selected.
func (s *Selection) Contains(c core.Coords) bool {
	_, ok := s.coords[c]
	return ok
}

// Toggle adds c to the selection, or removes it when already present.
func (s *Selection) Toggle(c core.Coords) {
	if s.Contains(c) {
		delete(s.coords, c)
		return
	}
	if s.coords == nil {
		s.coords = map[core.Coords]struct{}{}
	}
	s.coords[c] = struct{}{}
}

// Coords returns the selected coordinates sorted row-major.
func (s *Selection) Coords() []core.Coords {
	out := make([]core.Coords, 0, len(s.coords))
	for c := range s.coords {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// MoveBy shifts every selected cell by delta.
func (s *Selection) MoveBy(delta core.Coords) {
	s.replace(func(c core.Coords) core.Coords { return c.Add(delta) })
}

// Center returns the middle of the selection bounding box.
func (s *Selection) Center() (core.Coords, bool) {
	b, ok := s.bounds()
	if !ok {
		return core.Coords{}, false
	}
	return core.Coords{X: (b.minX + b.maxX) / 2, Y: (b.minY + b.maxY) / 2}, true
}

// RecenterAt moves the selection so its center lands on c.
func (s *Selection) RecenterAt(c core.Coords) {
	center, ok := s.Center()
	if !ok {
		return
	}
	s.MoveBy(core.Coords{X: c.X - center.X, Y: c.Y - center.Y})
}

// RotateRight rotates the selection 90 degrees clockwise inside its bounding box.
func (s *Selection) RotateRight() { s.rotate(true) }

// RotateLeft rotates the selection 90 degrees counter-clockwise inside its
// bounding box.
func (s *Selection) RotateLeft() { s.rotate(false) }

// rotate normalizes to the top-left corner, rotates, then moves the rotated
// shape back so its new top-left matches the old one.
func (s *Selection) rotate(clockwise bool) {
	b, ok := s.bounds()
	if !ok {
		return
	}
	rotated := make([]core.Coords, 0, len(s.coords))
	newMinX, newMinY := 0, 0
	for c := range s.coords {
		x, y := c.X-b.minX, c.Y-b.minY
		r := core.Coords{X: -y, Y: x}
		if clockwise {
			r = core.Coords{X: y, Y: -x}
		}
		if len(rotated) == 0 || r.X < newMinX {
			newMinX = r.X
		}
		if len(rotated) == 0 || r.Y < newMinY {
			newMinY = r.Y
		}
		rotated = append(rotated, r)
	}
	s.coords = make(map[core.Coords]struct{}, len(rotated))
	for _, r := range rotated {
		s.coords[core.Coords{X: r.X + b.minX - newMinX, Y: r.Y + b.minY - newMinY}] = struct{}{}
	}
}

func (s *Selection) replace(fn func(core.Coords) core.Coords) {
	next := make(map[core.Coords]struct{}, len(s.coords))
	for c := range s.coords {
		next[fn(c)] = struct{}{}
	}
	s.coords = next
}

func (s *Selection) bounds() (bounds, bool) {
	first := true
	var b bounds
	for c := range s.coords {
		if first {
			b = bounds{minX: c.X, maxX: c.X, minY: c.Y, maxY: c.Y}
			first = false
			continue
		}
		b.minX = min(b.minX, c.X)
		b.maxX = max(b.maxX, c.X)
		b.minY = min(b.minY, c.Y)
		b.maxY = max(b.maxY, c.Y)
	}
	return b, !first
}
