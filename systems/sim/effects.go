package sim

import (
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ticks the white overlay takes to fade once a flash timer runs out
const flashFadeTicks = 6

// UpdateEffects advances the cosmetic effects. It is never gated by the
// hit-pause, so the shake plays while the simulation is frozen.
func UpdateEffects(ecs *ecs.ECS) {
	updateScreenShake(ecs)
	updateFlashEffects(ecs)
}

// updateScreenShake alternates the offset between -Intensity and +Intensity
// each tick until the shake runs out.
func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}

	shake := components.ScreenShake.Get(entry)
	if shake.Elapsed >= shake.Duration {
		shake.OffsetX = 0
		return
	}

	intensity := shake.Intensity
	if cfg.ScreenShake.Fade && shake.Decay != nil {
		scale, _ := shake.Decay.Update(1)
		intensity *= float64(scale)
	}

	if shake.Elapsed%2 == 0 {
		shake.OffsetX = -intensity
	} else {
		shake.OffsetX = intensity
	}
	shake.Elapsed++
}

// TriggerScreenShake starts a shake, only replacing one that is weaker.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if duration <= 0 || intensity <= 0 {
		return
	}

	shake := getOrCreateScreenShake(ecs)
	if shake.Elapsed < shake.Duration && intensity < shake.Intensity {
		return
	}

	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
	shake.Decay = gween.New(1, 0, float32(duration), ease.OutQuad)
}

// ShakeOffset returns the horizontal render offset for the current tick.
func ShakeOffset(ecs *ecs.ECS) float64 {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0
	}
	return components.ScreenShake.Get(entry).OffsetX
}

// updateFlashEffects holds the overlay at full strength while the body's
// flash timer runs and then fades it out.
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)

		if e.HasComponent(components.Stun) && components.Stun.Get(e).Flashing() {
			flash.Alpha = 1
			flash.Fade = nil
			return
		}
		if flash.Alpha <= 0 {
			return
		}

		if flash.Fade == nil {
			flash.Fade = gween.New(float32(flash.Alpha), 0, flashFadeTicks, ease.OutQuad)
		}
		alpha, done := flash.Fade.Update(1)
		flash.Alpha = float64(alpha)
		if done {
			flash.Alpha = 0
			flash.Fade = nil
		}
	})
}

func getOrCreateScreenShake(ecs *ecs.ECS) *components.ScreenShakeData {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ScreenShake))
	}
	return components.ScreenShake.Get(entry)
}
