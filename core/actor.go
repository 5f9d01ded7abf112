package core

import (
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/gamemath"
	"github.com/automoto/bellybump/systems/sim"
	"github.com/yohamta/donburi"
)

type ActorKind int

const (
	KindAttacker ActorKind = iota
	KindFreeBody
)

func (k ActorKind) String() string {
	switch k {
	case KindAttacker:
		return "attacker"
	case KindFreeBody:
		return "free_body"
	}
	return "unknown"
}

// ActorView is everything a renderer needs to draw one body for a tick.
type ActorView struct {
	Kind   ActorKind
	Frame  string
	Facing cfg.Direction
	Rect   gamemath.Rect
	VX, VY float64

	// attacker only
	Phase        cfg.PhaseID
	Steps        int
	HitboxActive bool
	Hitbox       gamemath.Rect

	// free body only
	Stunned  bool
	Flashing bool
}

// Actor is one body taking part in the match. Both variants share the Body
// component, the systems step them and View reads the result.
type Actor interface {
	Kind() ActorKind
	Entry() *donburi.Entry
	Body() *components.BodyData
	View() ActorView
}

type attackerActor struct {
	entry *donburi.Entry
}

func (a attackerActor) Kind() ActorKind { return KindAttacker }
func (a attackerActor) Entry() *donburi.Entry { return a.entry }
func (a attackerActor) Body() *components.BodyData { return components.Body.Get(a.entry) }
func (a attackerActor) State() *components.ActionStateData {
	return components.ActionState.Get(a.entry)
}

func (a attackerActor) View() ActorView {
	body := a.Body()
	state := a.State()
	hitbox := components.Hitbox.Get(a.entry)

	return ActorView{
		Kind:         KindAttacker,
		Frame:        components.Animation.Get(a.entry).Frame(),
		Facing:       body.Facing,
		Rect:         body.Rect(),
		VX:           body.VX,
		VY:           body.VY,
		Phase:        state.Phase,
		Steps:        state.Steps,
		HitboxActive: hitbox.Active,
		Hitbox:       hitbox.Rect,
	}
}

type freeBodyActor struct {
	entry *donburi.Entry
}

func (f freeBodyActor) Kind() ActorKind { return KindFreeBody }
func (f freeBodyActor) Entry() *donburi.Entry { return f.entry }
func (f freeBodyActor) Body() *components.BodyData { return components.Body.Get(f.entry) }
func (f freeBodyActor) Stun() *components.StunData { return components.Stun.Get(f.entry) }

func (f freeBodyActor) View() ActorView {
	body := f.Body()
	stun := f.Stun()

	return ActorView{
		Kind:     KindFreeBody,
		Frame:    sim.OpponentFrame(components.Animation.Get(f.entry), stun),
		Facing:   body.Facing,
		Rect:     body.Rect(),
		VX:       body.VX,
		VY:       body.VY,
		Stunned:  stun.Stunned(),
		Flashing: stun.Flashing(),
	}
}
