package core

import (
	"context"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/bellybump/config"
)

// InputSource yields the snapshot for a tick. Returning false ends the run.
type InputSource func(tick int) (Snapshot, bool)

// GameLoop drives a Match without a window. Every tick advances the
// simulation by the configured tick duration, whatever the real rate is.
type GameLoop struct {
	match    *Match
	input    InputSource
	tickRate int
	onFrame  func(Frame)
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop paced at tickRate ticks per second. A tickRate
// of 0 runs as fast as possible.
func NewGameLoop(match *Match, input InputSource, tickRate int, onFrame func(Frame)) *GameLoop {
	return &GameLoop{
		match:    match,
		input:    input,
		tickRate: tickRate,
		onFrame:  onFrame,
		stopChan: make(chan struct{}),
	}
}

// Run steps the match until the input runs out, Stop is called or ctx is
// done. It returns the number of ticks stepped and ctx's error, if any.
func (g *GameLoop) Run(ctx context.Context) (int, error) {
	var tick <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tick = ticker.C
		log.Printf("Game loop started at %d ticks/second", g.tickRate)
	} else {
		log.Println("Game loop started unthrottled")
	}

	steps := 0
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return steps, ctx.Err()
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return steps, nil
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				return steps, ctx.Err()
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return steps, nil
			default:
			}
		}

		in, ok := g.input(steps)
		if !ok {
			log.Printf("Game loop finished after %d ticks", steps)
			return steps, nil
		}

		frame := g.match.Step(in, cfg.C.TickDuration())
		steps++
		if g.onFrame != nil {
			g.onFrame(frame)
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}
