package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies a command-line instruction.
type CommandKind int

const (
	// CmdBoardClear kills every cell.
	CmdBoardClear CommandKind = iota + 1
	// CmdCursor adds the given cell to the selection.
	CmdCursor
	// CmdPattern stamps a registered pattern.
	CmdPattern
	// CmdQuit terminates the application.
	CmdQuit
)

// Command is a parsed command-line instruction.
type Command struct {
	Kind CommandKind
	X, Y int
	Name string
}

var (
	ErrInvalidCommand  = errors.New("invalid command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ParseCommand translates input such as ":b clear" or ":cur 4 5" into a
// Command. The leading ':' is optional and fields are whitespace separated.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	if len(fields) == 0 {
		return Command{}, ErrInvalidCommand
	}
	args := fields[1:]
	switch fields[0] {
	case "b", "board":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%w: board needs a subcommand", ErrMissingArgument)
		}
		if args[0] != "clear" {
			return Command{}, fmt.Errorf("%w: board %s", ErrInvalidCommand, args[0])
		}
		return Command{Kind: CmdBoardClear}, nil
	case "cur", "cursor":
		if len(args) < 2 {
			return Command{}, fmt.Errorf("%w: cursor needs X and Y", ErrMissingArgument)
		}
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrInvalidArgument, args[0])
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrInvalidArgument, args[1])
		}
		return Command{Kind: CmdCursor, X: x, Y: y}, nil
	case "p", "pattern":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%w: pattern needs a name", ErrMissingArgument)
		}
		return Command{Kind: CmdPattern, Name: args[0]}, nil
	case "q", "quit":
		return Command{Kind: CmdQuit}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrInvalidCommand, fields[0])
	}
}
