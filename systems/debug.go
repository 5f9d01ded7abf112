package systems

import (
	"image/color"

	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/gamemath"
	"github.com/automoto/bellybump/systems/sim"
	"github.com/automoto/bellybump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the collision objects, the hurtboxes and the active
// hitbox while the overlay is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !DebugEnabled(ecs) {
		return
	}
	ox := sim.ShakeOffset(ecs)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvHitbox):
				continue
			}
			outline(screen, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, ox, c)
		}
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		outline(screen, components.Body.Get(e).Hurtbox(), ox, cfg.UI.HurtboxColor)
	})

	tags.Attacker.Each(ecs.World, func(e *donburi.Entry) {
		if hitbox := components.Hitbox.Get(e); hitbox.Active {
			outline(screen, hitbox.Rect, ox, cfg.UI.HitboxColor)
		}
	})
}

func outline(screen *ebiten.Image, r gamemath.Rect, ox float64, c color.Color) {
	vector.StrokeRect(screen, float32(r.X+ox), float32(r.Y), float32(r.W), float32(r.H), 2, c, false)
}
