package app

import (
	"flag"
	"fmt"
	"strings"

	"game-of-life/internal/core"
	"game-of-life/internal/kitty"
	"game-of-life/internal/render"
)

// Config represents the command-line parameters shared by all binaries.
type Config struct {
	Cols        int
	Rows        int
	Scale       int
	TPS         int
	Pattern     string
	Seed        int64
	Generations int
	FlushEvery  int
	Chunk       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Cols:       80,
		Rows:       25,
		Scale:      10,
		TPS:        30,
		Pattern:    "glider",
		Seed:       42,
		FlushEvery: 30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern ("+strings.Join(core.Patterns(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs forever)")
	fs.IntVar(&c.FlushEvery, "flush-every", c.FlushEvery, "flush terminal output every N generations")
	fs.IntVar(&c.Chunk, "chunk", c.Chunk, "split image payloads into chunks of N bytes (0 disables)")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := core.NewGrid(c.Cols, c.Rows); err != nil {
		return err
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: %d", render.ErrInvalidScale, c.Scale)
	}
	if c.TPS < core.MinTPS || c.TPS > core.MaxTPS {
		return fmt.Errorf("tps %d outside %d..%d", c.TPS, core.MinTPS, core.MaxTPS)
	}
	if c.Pattern != "" {
		if _, ok := core.Lookup(c.Pattern); !ok {
			return fmt.Errorf("unknown pattern %q", c.Pattern)
		}
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	return kitty.ValidateChunk(c.Chunk)
}
