//go:build ebiten

package app

import (
	"image/color"
	"time"

	"game-of-life/internal/render"
	"game-of-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session   *Session
	painter   *render.GridPainter
	overlay   *ui.Overlay
	statusbar *ui.StatusBar

	onColor  color.Color
	offColor color.Color

	scale int
	last  time.Time
	chars []rune
}

var specialKeys = map[ebiten.Key]Key{
	ebiten.KeyEscape:    KeyEscape,
	ebiten.KeyEnter:     KeyEnter,
	ebiten.KeyBackspace: KeyBackspace,
	ebiten.KeyUp:        KeyUp,
	ebiten.KeyDown:      KeyDown,
	ebiten.KeyLeft:      KeyLeft,
	ebiten.KeyRight:     KeyRight,
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	size := s.World().Size()
	return &Game{
		session:   s,
		painter:   render.NewGridPainter(size.W, size.H),
		overlay:   ui.NewOverlay(s.World().Grid(), s.cfg.Scale),
		statusbar: ui.NewStatusBar(size.W * s.cfg.Scale),
		onColor:   color.White,
		offColor:  color.Black,
		scale:     s.cfg.Scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for k, key := range specialKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.session.HandleKey(key)
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.session.HandleRune(r)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		size := g.session.World().Size()
		if mx >= 0 && my >= 0 && mx < size.W*g.scale && my < size.H*g.scale {
			shift := ebiten.IsKeyPressed(ebiten.KeyShift)
			g.session.Click(g.session.PixelToCoords(mx, my), shift)
		}
	}

	now := time.Now()
	if !g.last.IsZero() {
		g.session.Update(now.Sub(g.last))
	}
	g.last = now

	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the board, the selection overlay and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.World(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.session.Selection().Coords(), g.session.ShowGrid())
	g.statusbar.Draw(screen, g.session.World().Size().H*g.scale, g.session.Status())
}

// Layout returns the logical screen size: the board plus the status bar.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.session.World().Size()
	return size.W * g.scale, size.H*g.scale + ui.StatusBarHeight
}
