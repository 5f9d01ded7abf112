package sim

import (
	"log"

	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/gamemath"
	"github.com/automoto/bellybump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHits tests the belly hitbox of every attacking attacker against the
// opponents. An attack lands at most once.
func UpdateHits(ecs *ecs.ECS) {
	tags.Attacker.Each(ecs.World, func(attacker *donburi.Entry) {
		state := components.ActionState.Get(attacker)
		if state.Phase != cfg.PhaseActiveAttack || state.HitRegistered {
			return
		}

		body := components.Body.Get(attacker)
		hitbox := BellyHitbox(body)
		syncHitboxObject(ecs, attacker, hitbox)

		for _, target := range hitCandidates(ecs, attacker) {
			if !hitbox.Overlaps(components.Body.Get(target).Hurtbox()) {
				continue
			}
			ResolveHit(ecs, attacker, target, hitbox)
			return
		}
	})
}

// BellyHitbox returns the attack rectangle for a body: vertically centred
// and pushed out from the body centre along its facing.
func BellyHitbox(body *components.BodyData) gamemath.Rect {
	w := body.W * cfg.Combat.HitboxWidthRatio
	h := body.H * cfg.Combat.HitboxHeightRatio
	cx, cy := body.Rect().Center()
	offset := body.W * cfg.Combat.HitboxOffsetRatio

	x := cx + offset
	if body.Facing == cfg.DirectionLeft {
		x = cx - offset - w
	}
	return gamemath.Rect{X: x, Y: cy - h/2, W: w, H: h}
}

// ResolveHit applies a landed belly bump: the target is launched away from
// the attacker and the match freezes for the configured hit-pause.
func ResolveHit(ecs *ecs.ECS, attacker, target *donburi.Entry, hitbox gamemath.Rect) {
	state := components.ActionState.Get(attacker)
	dir := components.Body.Get(attacker).Facing

	state.HitRegistered = true
	Launch(components.Body.Get(target), components.Stun.Get(target), dir)

	match := GetOrCreateMatch(ecs)
	cx, cy := hitbox.Center()
	match.Hits = append(match.Hits, components.HitEvent{
		Tick:       match.Tick,
		Direction:  dir,
		PauseTicks: cfg.Combat.HitPauseTicks,
		X:          cx,
		Y:          cy,
	})
	match.TotalHits++

	PlaySFX(ecs, cfg.SoundHit)
	TriggerScreenShake(ecs, cfg.ScreenShake.Intensity, cfg.Combat.HitPauseTicks)
	StartHitPause(ecs, cfg.Combat.HitPauseTicks)

	if cfg.Debug.LogTransitions {
		log.Printf("belly bump hit on tick %d, launching %s", match.Tick, dir)
	}
}

// hitCandidates narrows the opponents down with the collision space. Without
// a space every opponent is a candidate.
func hitCandidates(ecs *ecs.ECS, attacker *donburi.Entry) []*donburi.Entry {
	if obj := hitboxObjectFor(ecs, attacker); obj != nil && obj.Space != nil {
		var found []*donburi.Entry
		if check := obj.Check(0, 0, tags.ResolvOpponent); check != nil {
			for _, o := range check.Objects {
				if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
					found = append(found, entry)
				}
			}
		}
		return found
	}

	var all []*donburi.Entry
	tags.Opponent.Each(ecs.World, func(e *donburi.Entry) {
		all = append(all, e)
	})
	return all
}

func hitboxObjectFor(ecs *ecs.ECS, owner *donburi.Entry) *components.ObjectData {
	var found *components.ObjectData
	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.HitboxObject.Get(e).Owner == owner {
			found = components.Object.Get(e)
		}
	})
	return found
}

func syncHitboxObject(ecs *ecs.ECS, owner *donburi.Entry, r gamemath.Rect) {
	if obj := hitboxObjectFor(ecs, owner); obj != nil {
		obj.SyncRect(r)
	}
}
