// Command replay plays a scripted input sequence through a match without a
// window and logs what the attacker and the dummy do.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/bellybump/assets"
	"github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/core"
)

func main() {
	scriptPath := flag.String("script", "", "YAML input script to play (required)")
	rate := flag.Int("rate", 0, "ticks per second, 0 runs as fast as possible")
	tuningPath := flag.String("tuning", "", "YAML file overriding the default tuning")
	logTransitions := flag.Bool("log-transitions", false, "log every attacker phase change")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	config.Debug.LogTransitions = *logTransitions

	if *tuningPath != "" {
		t, err := config.Load(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if err := config.Apply(t); err != nil {
			log.Fatalf("Failed to apply tuning: %v", err)
		}
	}

	script, err := LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	arenaPath := script.Arena
	if arenaPath == "" {
		arenaPath = assets.DefaultArena
	}
	arena, err := assets.LoadArena(arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	match, err := core.NewMatch(arena)
	if err != nil {
		log.Fatalf("Failed to create match: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec := &recorder{}
	loop := core.NewGameLoop(match, script.Input(), *rate, rec.observe)
	steps, err := loop.Run(ctx)
	if err != nil {
		log.Printf("Replay interrupted: %v", err)
	}

	final := match.Frame()
	log.Printf("Replayed %d ticks, %d hits", steps, rec.hits)
	for _, a := range final.Actors {
		log.Printf("  %s at (%.1f, %.1f) frame %s", a.Kind, a.Rect.X, a.Rect.Y, a.Frame)
	}
}

// recorder logs phase changes and hits as frames come in.
type recorder struct {
	phase config.PhaseID
	hits  int
}

func (r *recorder) observe(f core.Frame) {
	for _, a := range f.Actors {
		if a.Kind != core.KindAttacker || a.Phase == r.phase {
			continue
		}
		log.Printf("tick %4d: %s -> %s (steps %d)", f.Tick, r.phase, a.Phase, a.Steps)
		r.phase = a.Phase
	}
	for _, h := range f.Hits {
		r.hits++
		log.Printf("tick %4d: hit, launched %s, pausing %d ticks", h.Tick, h.Direction, h.PauseTicks)
	}
}
