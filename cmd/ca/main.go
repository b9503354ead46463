//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"game-of-life/internal/app"
	_ "game-of-life/internal/patterns"
	"game-of-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session)
	size := session.World().Size()

	ebiten.SetWindowTitle("game of life - " + session.World().Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.StatusBarHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
