package components

import (
	"github.com/automoto/bellybump/shared/gamemath"
	"github.com/yohamta/donburi"
)

// HitboxData is the attacker's belly hitbox for the current tick. Rect is
// only meaningful while Active.
type HitboxData struct {
	Active bool
	Rect   gamemath.Rect
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// HitboxObjectData links the attacker to the collision object that mirrors
// its hitbox in the space.
type HitboxObjectData struct {
	Owner *donburi.Entry
}

var HitboxObject = donburi.NewComponentType[HitboxObjectData]()
