package sim

import (
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOpponentVisuals recomputes what the renderers read once the bodies
// have moved: the attacker's hitbox and the opponent's animation. It runs
// during hit-pause too but leaves the animation frozen.
func UpdateOpponentVisuals(ecs *ecs.ECS) {
	dt := GetOrCreateMatch(ecs).DT

	tags.Attacker.Each(ecs.World, func(e *donburi.Entry) {
		state := components.ActionState.Get(e)
		hitbox := components.Hitbox.Get(e)

		if state.Phase != cfg.PhaseActiveAttack {
			hitbox.Active = false
			return
		}
		hitbox.Active = true
		hitbox.Rect = BellyHitbox(components.Body.Get(e))
		syncHitboxObject(ecs, e, hitbox.Rect)
	})

	if IsHitPaused(ecs) {
		return
	}
	tags.Opponent.Each(ecs.World, func(e *donburi.Entry) {
		advanceAnimation(components.Animation.Get(e), dt)
	})
}

// OpponentFrame picks the frame for a free body from its hit timers.
func OpponentFrame(anim *components.AnimationData, stun *components.StunData) string {
	switch {
	case stun.Flashing():
		return cfg.OpponentFrameHit
	case stun.Stunned():
		return cfg.OpponentFrameStunned
	}
	if frame := anim.Frame(); frame != "" {
		return frame
	}
	return cfg.OpponentFrameIdle
}
