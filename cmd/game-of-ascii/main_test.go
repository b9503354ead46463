package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"game-of-life/internal/app"
)

func TestStreamWritesFramesUntilLimit(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Cols, cfg.Rows = 6, 4
	cfg.TPS = 240
	cfg.Pattern = "blinker"
	cfg.Generations = 3
	session, err := app.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := stream(context.Background(), cfg, session.World(), &out); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if n := strings.Count(got, "\x1b[3J\x1b[H\x1b[2J"); n != 3 {
		t.Fatalf("got %d frames, want 3", n)
	}
	for gen := 0; gen < 3; gen++ {
		if !strings.Contains(got, fmt.Sprintf("Generation: %d\n", gen)) {
			t.Fatalf("missing frame for generation %d", gen)
		}
	}
	if strings.Contains(got, "Generation: 3\n") {
		t.Fatal("frame for generation 3 written after the limit")
	}
	if g := session.World().Generation(); g != 3 {
		t.Fatalf("world stopped at generation %d, want 3", g)
	}
}
