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

// DrawArena renders the background, the ground strip and both walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	arena := sim.GetArena(ecs)
	if arena == nil {
		return
	}
	ox := float32(sim.ShakeOffset(ecs))
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())

	vector.FillRect(screen, ox, float32(arena.GroundY), w, h-float32(arena.GroundY), cfg.UI.GroundColor, false)
	vector.FillRect(screen, ox, 0, float32(arena.Left), h, cfg.UI.WallColor, false)
	vector.FillRect(screen, ox+float32(arena.Right), 0, w-float32(arena.Right), h, cfg.UI.WallColor, false)
}

// DrawActors renders each body as a rectangle coloured by its frame. There
// are no sprites, the frame id only picks the colour.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	ox := sim.ShakeOffset(ecs)

	tags.Attacker.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		frame := components.Animation.Get(e).Frame()
		drawBody(screen, body.Rect(), ox, frameColor(frame, cfg.UI.FrameColors["bigboy/idle"]))
		drawFacing(screen, body, ox)
	})

	tags.Opponent.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		frame := sim.OpponentFrame(components.Animation.Get(e), components.Stun.Get(e))
		drawBody(screen, body.Rect(), ox, frameColor(frame, cfg.UI.OpponentBase))

		if flash := components.Flash.Get(e); flash.Alpha > 0 {
			drawBody(screen, body.Rect(), ox, fade(cfg.UI.FlashColor, flash.Alpha))
		}
		drawFacing(screen, body, ox)
	})
}

func drawBody(screen *ebiten.Image, r gamemath.Rect, ox float64, c color.Color) {
	vector.FillRect(screen, float32(r.X+ox), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawFacing marks the side a body faces with a thin strip.
func drawFacing(screen *ebiten.Image, body *components.BodyData, ox float64) {
	const stripW = 4
	x := body.X + ox
	if body.Facing == cfg.DirectionRight {
		x = body.Right() + ox - stripW
	}
	vector.FillRect(screen, float32(x), float32(body.Y), stripW, float32(body.H), cfg.UI.HUDTextColor, false)
}

func frameColor(frame string, fallback color.RGBA) color.RGBA {
	if c, ok := cfg.UI.FrameColors[frame]; ok {
		return c
	}
	return fallback
}

// fade scales a colour by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
