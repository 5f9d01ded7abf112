package components

import (
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is a character's rectangle and motion. Position is the top-left
// corner and speeds are pixels per tick.
type BodyData struct {
	X, Y    float64
	W, H    float64
	VX, VY  float64
	Facing  cfg.Direction
	GroundY float64

	// Hurtbox is the body shrunk by these totals
	InsetW, InsetH float64
}

var Body = donburi.NewComponentType[BodyData]()

func (b *BodyData) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

func (b *BodyData) Hurtbox() gamemath.Rect {
	return b.Rect().Inflate(-b.InsetW, -b.InsetH)
}

func (b *BodyData) Bottom() float64 {
	return b.Y + b.H
}

func (b *BodyData) SetBottom(y float64) {
	b.Y = y - b.H
}

func (b *BodyData) Right() float64 {
	return b.X + b.W
}

// PlaceMidBottom moves the body so its bottom edge is centred on (x, y) and
// clears its velocity.
func (b *BodyData) PlaceMidBottom(x, y float64) {
	r := gamemath.RectFromMidBottom(x, y, b.W, b.H)
	b.X, b.Y = r.X, r.Y
	b.VX, b.VY = 0, 0
}
