package components

import (
	"time"

	cfg "github.com/automoto/bellybump/config"
	"github.com/yohamta/donburi"
)

// PhaseClock measures time spent in the current phase.
type PhaseClock struct {
	Elapsed time.Duration
}

func (c *PhaseClock) Reset() {
	c.Elapsed = 0
}

func (c *PhaseClock) Advance(dt time.Duration) {
	c.Elapsed += dt
}

// Expired reports whether at least d has passed since the last Reset.
func (c *PhaseClock) Expired(d time.Duration) bool {
	return c.Elapsed >= d
}

// ActionStateData is the attacker's state machine record.
type ActionStateData struct {
	Phase         cfg.PhaseID
	PreviousPhase cfg.PhaseID
	Clock         PhaseClock

	// Steps counts walk-frame advances toward the facing direction.
	Steps         int
	LastWalkFrame int

	// HitRegistered is scoped to one attack and cleared on PreAttack entry.
	HitRegistered bool
}

var ActionState = donburi.NewComponentType[ActionStateData]()
