package sim

import (
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/gamemath"
	"github.com/automoto/bellybump/shared/leveldata"
	"github.com/automoto/bellybump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	arena := GetArena(ecs)
	if arena == nil {
		return
	}

	tags.Attacker.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		MoveKinematic(body, arena)
		components.Object.Get(e).SyncRect(body.Rect())
	})

	tags.Opponent.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		IntegrateFreeBody(body, components.Stun.Get(e), arena)
		components.Object.Get(e).SyncRect(body.Rect())
	})
}

// MoveKinematic applies the attacker's own horizontal speed. It never falls
// and never leaves the arena.
func MoveKinematic(body *components.BodyData, arena *leveldata.ArenaData) {
	body.X += body.VX
	body.SetBottom(body.GroundY)

	if body.X < arena.Left {
		body.X = arena.Left
	}
	if body.Right() > arena.Right {
		body.X = arena.Right - body.W
	}
}

// IntegrateFreeBody advances a launched body by one tick: gravity, motion,
// the ground, then the walls, and finally its hit timers.
func IntegrateFreeBody(body *components.BodyData, stun *components.StunData, arena *leveldata.ArenaData) {
	o := cfg.Opponent

	body.VY += o.Gravity
	body.X += body.VX
	body.Y += body.VY

	if body.Bottom() >= body.GroundY {
		body.SetBottom(body.GroundY)
		body.VY = 0
		body.VX = gamemath.Damp(body.VX, o.GroundFriction, o.RestSpeed)
	}

	if body.X < arena.Left {
		body.X = arena.Left
		hitWall(body, stun)
	}
	if body.Right() > arena.Right {
		body.X = arena.Right - body.W
		hitWall(body, stun)
	}

	stun.Stun = gamemath.ClampMin(stun.Stun-o.TimerDecay, 0)
	stun.Flash = gamemath.ClampMin(stun.Flash-o.TimerDecay, 0)
}

func hitWall(body *components.BodyData, stun *components.StunData) {
	body.VX = gamemath.Bounce(body.VX, cfg.Opponent.WallBounce)
	body.VY = -cfg.Opponent.WallPop
	stun.Flash = cfg.Opponent.WallFlash
}

// Launch sends a body flying in dir and starts its stun and flash timers.
func Launch(body *components.BodyData, stun *components.StunData, dir cfg.Direction) {
	body.VX = dir.Sign() * cfg.Combat.LaunchX
	body.VY = -cfg.Combat.LaunchY
	stun.Stun = cfg.Combat.StunDuration
	stun.Flash = cfg.Combat.FlashDuration
}

// GetArena returns the stage the match was built from, or nil.
func GetArena(ecs *ecs.ECS) *leveldata.ArenaData {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(entry).ArenaData
}
