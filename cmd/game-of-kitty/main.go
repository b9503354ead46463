// Command game-of-kitty plays the Game of Life as an inline image in a
// terminal that speaks the kitty graphics protocol.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"game-of-life/internal/app"
	"game-of-life/internal/core"
	"game-of-life/internal/kitty"
	_ "game-of-life/internal/patterns"
	"game-of-life/internal/render"
	"game-of-life/internal/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("game-of-kitty: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, session.World(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run emits one frame per generation to out and steps the world until the
// generation limit is reached or ctx is cancelled. The frame of generation N
// itself is not emitted: the loop ends right after the last step.
func run(ctx context.Context, cfg *app.Config, world *life.World, out io.Writer) (err error) {
	frame, err := render.NewFrame(cfg.Cols, cfg.Rows, cfg.Scale)
	if err != nil {
		return err
	}
	emitter, err := kitty.NewEmitter(out, kitty.Options{FlushEvery: cfg.FlushEvery, Chunk: cfg.Chunk})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := emitter.Close(); err == nil {
			err = cerr
		}
	}()

	ticker := core.NewFixedStep(cfg.TPS)
	limit := uint32(cfg.Generations)
	for limit == 0 || world.Generation() < limit {
		start := time.Now()
		frame.Render(world)
		if err = emitter.Emit(frame); err != nil {
			return err
		}
		world.Step()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(ticker.Remaining(start)):
		}
	}
	return nil
}
