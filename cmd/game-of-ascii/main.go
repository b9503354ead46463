// Command game-of-ascii plays the Game of Life in a text terminal. With
// -plain it streams frames to stdout instead of taking over the screen.
package main

import (
	"bufio"
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
	_ "game-of-life/internal/patterns"
	"game-of-life/internal/render"
	"game-of-life/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("game-of-ascii: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	plain := flag.Bool("plain", false, "write frames to stdout without interactive input")
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := stream(ctx, cfg, session.World(), os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	session.SetRunning(true)
	if err := interactive(session); err != nil {
		log.Fatal(err)
	}
}

func interactive(session *app.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term, err := app.NewTerminal(screen, session)
	if err != nil {
		return err
	}
	return term.Run()
}

// stream writes one full-screen text frame per generation to w until the
// generation limit is reached or ctx is cancelled.
func stream(ctx context.Context, cfg *app.Config, world *life.World, w io.Writer) error {
	frame, err := render.NewASCIIFrame(cfg.Cols, cfg.Rows)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	defer out.Flush()

	ticker := core.NewFixedStep(cfg.TPS)
	limit := uint32(cfg.Generations)
	for limit == 0 || world.Generation() < limit {
		start := time.Now()
		frame.Render(world)
		if _, err := frame.WriteTo(out); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
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
