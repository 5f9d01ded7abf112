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

// CreateOpponent spawns the launchable dummy at spawn.
func CreateOpponent(ecs *ecs.ECS, spawn leveldata.SpawnPoint, groundY float64) (*donburi.Entry, error) {
	animData, err := GenerateOpponentAnimations()
	if err != nil {
		return nil, fmt.Errorf("create opponent: %w", err)
	}

	opponent := archetypes.Opponent.Spawn(ecs)

	body := components.BodyData{
		W:       cfg.Opponent.Width,
		H:       cfg.Opponent.Height,
		Facing:  facingOf(spawn),
		GroundY: groundY,
		InsetW:  cfg.Opponent.HurtboxInsetW,
		InsetH:  cfg.Opponent.HurtboxInsetH,
	}
	body.PlaceMidBottom(spawn.X, groundY)
	components.Body.SetValue(opponent, body)

	obj := resolv.NewObject(body.X, body.Y, body.W, body.H, tags.ResolvOpponent)
	obj.SetShape(resolv.NewRectangle(0, 0, body.W, body.H))
	obj.Data = opponent
	components.Object.SetValue(opponent, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Animation.Set(opponent, animData)

	return opponent, nil
}

// ResetOpponent puts the dummy back on its spawn at rest.
func ResetOpponent(opponent *donburi.Entry, spawn leveldata.SpawnPoint) {
	body := components.Body.Get(opponent)
	body.Facing = facingOf(spawn)
	body.PlaceMidBottom(spawn.X, body.GroundY)
	components.Object.Get(opponent).SyncRect(body.Rect())

	components.Stun.SetValue(opponent, components.StunData{})
	components.Flash.SetValue(opponent, components.FlashData{})
	components.Animation.Get(opponent).SetAnimation(cfg.PhaseIdle)
}
