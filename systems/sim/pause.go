package sim

import (
	"github.com/automoto/bellybump/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitPause consumes one tick of a pending hit-pause. It must run
// before any system wrapped with WithHitPauseCheck.
func UpdateHitPause(ecs *ecs.ECS) {
	pause := GetOrCreateHitPause(ecs)
	if pause.Remaining > 0 {
		pause.Remaining--
		pause.Frozen = true
		return
	}
	pause.Frozen = false
}

// StartHitPause freezes the simulation for ticks, never shortening a
// pause that is already longer.
func StartHitPause(ecs *ecs.ECS, ticks int) {
	pause := GetOrCreateHitPause(ecs)
	if ticks > pause.Remaining {
		pause.Remaining = ticks
	}
}

// WithHitPauseCheck wraps a system to skip execution while a hit-pause is
// active. The check runs when the system is reached, so a pause started
// earlier in the same tick already applies.
func WithHitPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreateHitPause(e); pause.Active() {
			return
		}
		system(e)
	}
}

// IsHitPaused reports whether the simulation is frozen this tick.
func IsHitPaused(e *ecs.ECS) bool {
	return GetOrCreateHitPause(e).Active()
}

// GetOrCreateHitPause returns the singleton HitPause component, creating if needed.
func GetOrCreateHitPause(ecs *ecs.ECS) *components.HitPauseData {
	entry, ok := components.HitPause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.HitPause))
	}
	return components.HitPause.Get(entry)
}

// GetOrCreateMatch returns the singleton Match component, creating if needed.
func GetOrCreateMatch(ecs *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Match))
	}
	return components.Match.Get(entry)
}
