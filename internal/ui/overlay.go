//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	gridColor      = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	selectionColor = color.RGBA{R: 230, G: 200, B: 40, A: 160}
)

// Overlay draws grid lines and the selection on top of the board.
type Overlay struct {
	grid  core.Grid
	scale int
	pixel *ebiten.Image
	lines []image.Rectangle
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(grid core.Grid, scale int) *Overlay {
	o := &Overlay{grid: grid, scale: scale, lines: gridLines(grid.Size(), scale)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, selection []core.Coords, showGrid bool) {
	if showGrid {
		for _, r := range o.lines {
			o.fillRect(screen, r, gridColor)
		}
	}
	for _, r := range selectionRects(o.grid, selection, o.scale) {
		o.fillRect(screen, r, selectionColor)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
