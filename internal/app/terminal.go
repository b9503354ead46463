package app

import (
	"fmt"
	"time"

	"game-of-life/internal/core"
	"game-of-life/internal/render"

	"github.com/gdamore/tcell/v2"
)

// TerminalFPS is how often the terminal frontend redraws.
const TerminalFPS = 30

var (
	styleAlive  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleDead   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleSel    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Terminal draws a session on a tcell screen using the ASCII renderer, one
// character per cell with the status line below the board.
type Terminal struct {
	screen  tcell.Screen
	session *Session
	frame   *render.ASCIIFrame
	buttons tcell.ButtonMask
}

// NewTerminal prepares a frontend for an initialized screen.
func NewTerminal(screen tcell.Screen, s *Session) (*Terminal, error) {
	size := s.World().Size()
	frame, err := render.NewASCIIFrame(size.W, size.H)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	screen.EnableMouse()
	return &Terminal{screen: screen, session: s, frame: frame}, nil
}

// Run polls input, advances the session and redraws until the session is done.
func (t *Terminal) Run() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / TerminalFPS)
	defer ticker.Stop()

	last := time.Now()
	t.Draw()
	for !t.session.Done() {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.Handle(ev)
		case now := <-ticker.C:
			t.session.Update(now.Sub(last))
			last = now
			t.Draw()
		}
	}
	return nil
}

// Handle translates a tcell event into session input.
func (t *Terminal) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			t.session.HandleRune(ev.Rune())
		case tcell.KeyEscape:
			t.session.HandleKey(KeyEscape)
		case tcell.KeyEnter:
			t.session.HandleKey(KeyEnter)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			t.session.HandleKey(KeyBackspace)
		case tcell.KeyUp:
			t.session.HandleKey(KeyUp)
		case tcell.KeyDown:
			t.session.HandleKey(KeyDown)
		case tcell.KeyLeft:
			t.session.HandleKey(KeyLeft)
		case tcell.KeyRight:
			t.session.HandleKey(KeyRight)
		case tcell.KeyCtrlC:
			t.session.apply(Action{Kind: ActQuit})
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
		t.buttons = buttons
		if !pressed {
			return
		}
		x, y := ev.Position()
		size := t.session.World().Size()
		if x >= size.W || y >= size.H {
			return
		}
		t.session.Click(core.Coords{X: x, Y: y}, ev.Modifiers()&tcell.ModShift != 0)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// Draw renders the board and status line and shows them.
func (t *Terminal) Draw() {
	world := t.session.World()
	t.frame.Render(world)
	t.screen.Clear()

	size := world.Size()
	sel := t.session.Selection()
	for y := 0; y < size.H; y++ {
		for x, b := range t.frame.Row(y) {
			style := styleDead
			if b != '.' {
				style = styleAlive
			}
			t.screen.SetContent(x, y, rune(b), nil, style)
		}
	}
	for _, c := range sel.Coords() {
		w := world.Grid().Wrap(c)
		r, _, _, _ := t.screen.GetContent(w.X, w.Y)
		t.screen.SetContent(w.X, w.Y, r, nil, styleSel)
	}
	for x, r := range []rune(t.session.Status()) {
		t.screen.SetContent(x, size.H, r, nil, styleStatus)
	}
	t.screen.Show()
}
