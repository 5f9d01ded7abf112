package factory

import (
	"fmt"

	"github.com/automoto/bellybump/archetypes"
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/leveldata"
	"github.com/automoto/bellybump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAttacker spawns the belly bumper at spawn, together with the
// collision object that mirrors its hitbox.
func CreateAttacker(ecs *ecs.ECS, spawn leveldata.SpawnPoint, groundY float64) (*donburi.Entry, error) {
	animData, err := GenerateAttackerAnimations()
	if err != nil {
		return nil, fmt.Errorf("create attacker: %w", err)
	}

	attacker := archetypes.Attacker.Spawn(ecs)

	body := components.BodyData{
		W:       cfg.Attacker.Width,
		H:       cfg.Attacker.Height,
		Facing:  facingOf(spawn),
		GroundY: groundY,
		InsetW:  cfg.Attacker.HurtboxInsetW,
		InsetH:  cfg.Attacker.HurtboxInsetH,
	}
	body.PlaceMidBottom(spawn.X, groundY)
	components.Body.SetValue(attacker, body)

	obj := resolv.NewObject(body.X, body.Y, body.W, body.H, tags.ResolvAttacker)
	obj.SetShape(resolv.NewRectangle(0, 0, body.W, body.H))
	obj.Data = attacker
	components.Object.SetValue(attacker, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.ActionState.SetValue(attacker, components.ActionStateData{
		Phase:         cfg.PhaseIdle,
		PreviousPhase: cfg.PhaseIdle,
	})
	components.Animation.Set(attacker, animData)

	createHitbox(ecs, attacker)
	return attacker, nil
}

func createHitbox(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)
	components.HitboxObject.SetValue(hitbox, components.HitboxObjectData{Owner: owner})

	body := components.Body.Get(owner)
	w := body.W * cfg.Combat.HitboxWidthRatio
	h := body.H * cfg.Combat.HitboxHeightRatio

	obj := resolv.NewObject(body.X, body.Y, w, h, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return hitbox
}

// ResetAttacker puts the attacker back on its spawn in Idle.
func ResetAttacker(attacker *donburi.Entry, spawn leveldata.SpawnPoint) {
	body := components.Body.Get(attacker)
	body.Facing = facingOf(spawn)
	body.PlaceMidBottom(spawn.X, body.GroundY)
	components.Object.Get(attacker).SyncRect(body.Rect())

	components.ActionState.SetValue(attacker, components.ActionStateData{
		Phase:         cfg.PhaseIdle,
		PreviousPhase: cfg.PhaseIdle,
	})
	components.Animation.Get(attacker).SetAnimation(cfg.PhaseIdle)
	components.Hitbox.SetValue(attacker, components.HitboxData{})
}

func facingOf(spawn leveldata.SpawnPoint) cfg.Direction {
	if spawn.Facing < 0 {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}
