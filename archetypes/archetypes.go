package archetypes

import (
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Attacker is the step-gated belly bumper.
	Attacker = newArchetype(
		tags.Attacker,
		components.Body,
		components.Object,
		components.ActionState,
		components.Animation,
		components.Hitbox,
	)
	// Opponent is the launchable dummy.
	Opponent = newArchetype(
		tags.Opponent,
		components.Body,
		components.Object,
		components.Stun,
		components.Animation,
		components.Flash,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.HitboxObject,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Match = newArchetype(
		components.Match,
		components.Input,
		components.HitPause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
