// Package ui draws the GUI decorations around the board: grid lines, the
// selection highlight and the status bar.
package ui

import (
	"image"

	"game-of-life/internal/core"
)

// StatusBarHeight is the height in pixels of the bar below the board.
const StatusBarHeight = 18

// selectionRects returns the screen rectangle of every selected cell after
// wrapping it onto the board.
func selectionRects(grid core.Grid, coords []core.Coords, scale int) []image.Rectangle {
	rects := make([]image.Rectangle, 0, len(coords))
	for _, c := range coords {
		w := grid.Wrap(c)
		rects = append(rects, image.Rect(w.X*scale, w.Y*scale, (w.X+1)*scale, (w.Y+1)*scale))
	}
	return rects
}

// gridLines returns one 1px wide rectangle per inner column and row boundary.
// Scales below 4 produce no lines, they would cover most of the cells.
func gridLines(size core.Size, scale int) []image.Rectangle {
	if scale < 4 {
		return nil
	}
	w, h := size.W*scale, size.H*scale
	lines := make([]image.Rectangle, 0, size.W+size.H-2)
	for x := 1; x < size.W; x++ {
		lines = append(lines, image.Rect(x*scale, 0, x*scale+1, h))
	}
	for y := 1; y < size.H; y++ {
		lines = append(lines, image.Rect(0, y*scale, w, y*scale+1))
	}
	return lines
}
