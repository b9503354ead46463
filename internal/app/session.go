package app

import (
	"fmt"
	"time"

	"game-of-life/internal/core"
	"game-of-life/internal/sims/life"
)

// Mode selects how key input is interpreted.
type Mode int

const (
	// ModeNormal binds keys to board and selection actions.
	ModeNormal Mode = iota
	// ModeCommand collects a command line started with ':'.
	ModeCommand
)

// Key is a non-printable key understood by the session.
type Key int

const (
	KeyEscape Key = iota + 1
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Session holds the interactive game state shared by the terminal and GUI
// frontends: the world, the pacing timer, the selection and the command line.
type Session struct {
	cfg      *Config
	world    *life.World
	ticker   *core.FixedStep
	sel      Selection
	mode     Mode
	command  []rune
	message  string
	running  bool
	showGrid bool
	quit     bool
}

// NewSession builds the world described by cfg and seeds its pattern.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	world, err := life.New(cfg.Cols, cfg.Rows)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s := &Session{cfg: cfg, world: world, ticker: core.NewFixedStep(cfg.TPS), showGrid: true}
	if cfg.Pattern != "" {
		s.stamp(cfg.Pattern, core.Center(world.Size()))
	}
	return s, nil
}

// World exposes the simulation.
func (s *Session) World() *life.World { return s.world }

// Selection exposes the current selection.
func (s *Session) Selection() *Selection { return &s.sel }

// Mode returns the active input mode.
func (s *Session) Mode() Mode { return s.mode }

// CommandLine returns the command being typed, including the leading ':'.
func (s *Session) CommandLine() string { return string(s.command) }

// Running reports whether the simulation advances on Update.
func (s *Session) Running() bool { return s.running }

// SetRunning starts or pauses the simulation.
func (s *Session) SetRunning(running bool) { s.running = running }

// ShowGrid reports whether grid lines should be drawn.
func (s *Session) ShowGrid() bool { return s.showGrid }

// TPS returns the simulation speed in ticks per second.
func (s *Session) TPS() int { return s.ticker.TPS() }

// Done reports whether the player quit or the generation limit was reached.
func (s *Session) Done() bool {
	if s.quit {
		return true
	}
	return s.cfg.Generations > 0 && s.world.Generation() >= uint32(s.cfg.Generations)
}

// Update advances the simulation by the ticks due after delta elapsed.
// While paused the elapsed time is discarded.
func (s *Session) Update(delta time.Duration) {
	due := s.ticker.Advance(delta)
	if !s.running {
		return
	}
	for i := 0; i < due && !s.Done(); i++ {
		s.world.Step()
	}
}

// PixelToCoords converts a frontend pixel position into board coordinates.
func (s *Session) PixelToCoords(px, py int) core.Coords {
	return core.Coords{X: px / s.cfg.Scale, Y: py / s.cfg.Scale}
}

// Click handles a primary button press on board coordinates c. Without a
// selection it toggles the cell; with one it moves the selection there.
// Shift-click adds or removes c from the selection.
func (s *Session) Click(c core.Coords, shift bool) {
	switch {
	case shift:
		s.apply(Action{Kind: ActSelectToggle, At: c})
	case s.sel.Empty():
		s.apply(Action{Kind: ActToggleCell, At: c})
	default:
		s.apply(Action{Kind: ActSelectRecenter, At: c})
	}
}

// HandleKey processes a non-printable key.
func (s *Session) HandleKey(k Key) {
	if s.mode == ModeCommand {
		switch k {
		case KeyEscape:
			s.apply(Action{Kind: ActCommandCancel})
		case KeyEnter:
			s.apply(Action{Kind: ActCommandExec})
		case KeyBackspace:
			s.apply(Action{Kind: ActCommandBackspace})
		}
		return
	}
	switch k {
	case KeyEscape:
		s.apply(Action{Kind: ActQuit})
	case KeyUp:
		s.apply(Action{Kind: ActSelectMove, At: core.Coords{Y: -1}})
	case KeyDown:
		s.apply(Action{Kind: ActSelectMove, At: core.Coords{Y: 1}})
	case KeyLeft:
		s.apply(Action{Kind: ActSelectMove, At: core.Coords{X: -1}})
	case KeyRight:
		s.apply(Action{Kind: ActSelectMove, At: core.Coords{X: 1}})
	}
}

// HandleRune processes a printable character.
func (s *Session) HandleRune(r rune) {
	if s.mode == ModeCommand {
		s.apply(Action{Kind: ActCommandInput, Text: string(r)})
		return
	}
	if a, ok := normalBindings[r]; ok {
		s.apply(a)
		return
	}
	if s.sel.Empty() {
		return
	}
	if a, ok := selectionBindings[r]; ok {
		s.apply(a)
	}
}

// Status returns the status line text.
func (s *Session) Status() string {
	if s.mode == ModeCommand {
		return s.CommandLine()
	}
	state := "<PAUSED>"
	if s.running {
		state = "<RUNNING>"
	}
	line := fmt.Sprintf("%s gen %d pop %d tps %d", state, s.world.Generation(), s.world.Population(), s.ticker.TPS())
	if c, ok := s.sel.Center(); ok {
		w := s.world.Grid().Wrap(c)
		line += fmt.Sprintf(" sel %d @ (%d,%d)", s.sel.Len(), w.X, w.Y)
	}
	if s.message != "" {
		line += " | " + s.message
	}
	return line
}

func (s *Session) execute(input string) {
	cmd, err := ParseCommand(input)
	if err != nil {
		s.message = err.Error()
		return
	}
	switch cmd.Kind {
	case CmdBoardClear:
		s.world.Clear()
	case CmdCursor:
		s.sel.Toggle(core.Coords{X: cmd.X, Y: cmd.Y})
	case CmdPattern:
		at, ok := s.sel.Center()
		if !ok {
			at = core.Center(s.world.Size())
		}
		if !s.stamp(cmd.Name, at) {
			s.message = fmt.Sprintf("unknown pattern %q", cmd.Name)
		}
	case CmdQuit:
		s.quit = true
	}
}

func (s *Session) stamp(name string, at core.Coords) bool {
	seeder, ok := core.Lookup(name)
	if !ok {
		return false
	}
	seeder(s.world, at, s.cfg.Seed)
	return true
}
