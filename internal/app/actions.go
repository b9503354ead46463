package app

import "game-of-life/internal/core"

// ActionKind enumerates what a key or click asks the session to do.
type ActionKind int

const (
	ActQuit ActionKind = iota + 1
	ActStartStop
	ActStepOnce
	ActSpeedUp
	ActSpeedDown
	ActToggleGrid
	ActToggleCell
	ActSelectToggle
	ActSelectRecenter
	ActSelectMove
	ActSelectRotateRight
	ActSelectRotateLeft
	ActSelectFlipCells
	ActSelectClear
	ActEnterCommand
	ActCommandInput
	ActCommandBackspace
	ActCommandCancel
	ActCommandExec
)

// Action is a single input translated for the session. At carries board
// coordinates or a movement delta, Text carries typed characters.
type Action struct {
	Kind ActionKind
	At   core.Coords
	Text string
}

var normalBindings = map[rune]Action{
	'q':  {Kind: ActQuit},
	' ':  {Kind: ActStartStop},
	'n':  {Kind: ActStepOnce},
	'+':  {Kind: ActSpeedUp},
	'=':  {Kind: ActSpeedUp},
	'-':  {Kind: ActSpeedDown},
	'\'': {Kind: ActToggleGrid},
	':':  {Kind: ActEnterCommand},
}

// selectionBindings only apply while a selection exists.
var selectionBindings = map[rune]Action{
	'h': {Kind: ActSelectMove, At: core.Coords{X: -1}},
	'j': {Kind: ActSelectMove, At: core.Coords{Y: 1}},
	'k': {Kind: ActSelectMove, At: core.Coords{Y: -1}},
	'l': {Kind: ActSelectMove, At: core.Coords{X: 1}},
	'r': {Kind: ActSelectRotateRight},
	'R': {Kind: ActSelectRotateLeft},
	'T': {Kind: ActSelectFlipCells},
	'x': {Kind: ActSelectClear},
}

func (s *Session) apply(a Action) {
	switch a.Kind {
	case ActQuit:
		s.quit = true
	case ActStartStop:
		s.running = !s.running
	case ActStepOnce:
		s.running = false
		s.world.Step()
	case ActSpeedUp:
		s.ticker.Faster()
	case ActSpeedDown:
		s.ticker.Slower()
	case ActToggleGrid:
		s.showGrid = !s.showGrid
	case ActToggleCell:
		s.world.ToggleCell(a.At)
	case ActSelectToggle:
		s.sel.Toggle(a.At)
	case ActSelectRecenter:
		s.sel.RecenterAt(a.At)
	case ActSelectMove:
		s.sel.MoveBy(a.At)
	case ActSelectRotateRight:
		s.sel.RotateRight()
	case ActSelectRotateLeft:
		s.sel.RotateLeft()
	case ActSelectFlipCells:
		for _, c := range s.sel.Coords() {
			s.world.ToggleCell(c)
		}
	case ActSelectClear:
		s.sel.Clear()
	case ActEnterCommand:
		s.mode = ModeCommand
		s.command = []rune{':'}
		s.message = ""
	case ActCommandInput:
		s.command = append(s.command, []rune(a.Text)...)
	case ActCommandBackspace:
		if len(s.command) > 1 {
			s.command = s.command[:len(s.command)-1]
			return
		}
		s.mode, s.command = ModeNormal, nil
	case ActCommandCancel:
		s.mode, s.command = ModeNormal, nil
	case ActCommandExec:
		input := string(s.command)
		s.mode, s.command = ModeNormal, nil
		s.execute(input)
	}
}
