//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	statusPadding  = 4
	statusBaseline = 13
)

// StatusBar renders a single line of text below the board.
type StatusBar struct {
	width int
	panel *ebiten.Image
}

// NewStatusBar constructs a status bar of the given width in pixels.
func NewStatusBar(width int) *StatusBar {
	if width <= 0 {
		width = 1
	}
	return &StatusBar{width: width, panel: ebiten.NewImage(width, StatusBarHeight)}
}

// Draw paints line into the bar and places it at offsetY.
func (s *StatusBar) Draw(screen *ebiten.Image, offsetY int, line string) {
	s.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(s.panel, line, basicfont.Face7x13, statusPadding, statusBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(s.panel, op)
}
