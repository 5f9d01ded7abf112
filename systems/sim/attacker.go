package sim

import (
	"log"
	"time"

	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/gamemath"
	"github.com/automoto/bellybump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateAttacker(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := GetOrCreateMatch(ecs).DT

	tags.Attacker.Each(ecs.World, func(e *donburi.Entry) {
		StepAttacker(
			components.ActionState.Get(e),
			components.Body.Get(e),
			components.Animation.Get(e),
			input,
			dt,
		)
	})
}

// StepAttacker runs one tick of the attacker's action state machine. It sets
// the body's horizontal speed but never moves the body.
func StepAttacker(state *components.ActionStateData, body *components.BodyData, anim *components.AnimationData, input *components.InputData, dt time.Duration) {
	move := input.Horizontal()

	if input.Action(cfg.ActionAttack).JustPressed && CanStartAttack(state) {
		enterPhase(state, anim, cfg.PhasePreAttack)
		body.VX = 0
		state.HitRegistered = false
	}

	state.Clock.Advance(dt)

	// A tick without horizontal intent drops the count in every phase.
	if move == cfg.DirectionNone {
		state.Steps = 0
	}

	switch state.Phase {
	case cfg.PhaseIdle:
		body.VX = 0
		if move != body.Facing {
			state.Steps = 0
		}
		if move != cfg.DirectionNone && move != body.Facing && cfg.Attacker.TurnFromIdle {
			body.Facing = move
		}
		if move != cfg.DirectionNone {
			enterPhase(state, anim, cfg.PhaseWalk)
			break
		}
		advanceAnimation(anim, dt)

	case cfg.PhaseWalk:
		if move == cfg.DirectionNone {
			body.VX = 0
			enterPhase(state, anim, cfg.PhaseIdle)
			break
		}

		body.VX = move.Sign() * cfg.Attacker.WalkSpeed
		advanceAnimation(anim, dt)

		if frame := currentIndex(anim); frame != state.LastWalkFrame {
			if move == body.Facing {
				state.Steps++
			}
			state.LastWalkFrame = frame
		}
		if move != body.Facing {
			state.Steps = 0
		}

	case cfg.PhasePreAttack:
		body.VX = 0
		advanceAnimation(anim, dt)
		if animationDone(anim) {
			enterPhase(state, anim, cfg.PhaseActiveAttack)
		}

	case cfg.PhaseActiveAttack:
		body.VX = body.Facing.Sign() * cfg.Attacker.LungeSpeed
		advanceAnimation(anim, dt)
		if animationDone(anim) || (state.HitRegistered && cfg.Combat.EndAttackOnHit) {
			state.Steps = 0
			enterPhase(state, anim, cfg.PhaseRecover)
		}

	case cfg.PhaseRecover:
		body.VX = 0
		advanceAnimation(anim, dt)
		if state.Clock.Expired(cfg.Attacker.RecoverDuration) {
			enterPhase(state, anim, cfg.PhaseIdle)
		}
	}

	state.Steps = gamemath.ClampMin(state.Steps, 0)
}

// CanStartAttack reports whether an attack press would be accepted now.
func CanStartAttack(state *components.ActionStateData) bool {
	if state.Phase != cfg.PhaseIdle && state.Phase != cfg.PhaseWalk {
		return false
	}
	return state.Steps >= cfg.Attacker.StepsToAttack
}

func enterPhase(state *components.ActionStateData, anim *components.AnimationData, phase cfg.PhaseID) {
	if cfg.Debug.LogTransitions {
		log.Printf("attacker %s -> %s (steps %d)", state.Phase, phase, state.Steps)
	}

	state.PreviousPhase = state.Phase
	state.Phase = phase
	state.Clock.Reset()
	anim.SetAnimation(phase)

	if phase == cfg.PhaseWalk {
		state.LastWalkFrame = currentIndex(anim)
	}
}

func advanceAnimation(anim *components.AnimationData, dt time.Duration) {
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update(dt)
	}
}

func animationDone(anim *components.AnimationData) bool {
	return anim.CurrentAnimation == nil || anim.CurrentAnimation.Done()
}

func currentIndex(anim *components.AnimationData) int {
	if anim.CurrentAnimation == nil {
		return 0
	}
	return anim.CurrentAnimation.Index()
}
