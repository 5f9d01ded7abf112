package systems

import (
	"fmt"

	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/fonts"
	"github.com/automoto/bellybump/systems/sim"
	"github.com/automoto/bellybump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	hudHint       = "arrows/AD move  space bump  F1 debug  M mute  R reset  Esc quit"
)

// DrawHUD prints the attacker's phase and step count, the opponent's timers
// and the hit counter in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()

	lines := hudLines(ecs)
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLineHeight*(i+1), cfg.UI.HUDTextColor)
	}

	height := screen.Bounds().Dy()
	text.Draw(screen, hudHint, face, hudMargin, height-hudMargin, cfg.UI.HUDTextColor)
}

func hudLines(ecs *ecs.ECS) []string {
	var lines []string

	if entry, ok := tags.Attacker.First(ecs.World); ok {
		state := components.ActionState.Get(entry)
		ready := ""
		if sim.CanStartAttack(state) {
			ready = "  READY"
		}
		lines = append(lines, fmt.Sprintf("phase: %s  steps: %d/%d%s",
			state.Phase, state.Steps, cfg.Attacker.StepsToAttack, ready))
	}

	if entry, ok := tags.Opponent.First(ecs.World); ok {
		stun := components.Stun.Get(entry)
		lines = append(lines, fmt.Sprintf("stun: %v  flash: %v", stun.Stun, stun.Flash))
	}

	match := sim.GetOrCreateMatch(ecs)
	pause := sim.GetOrCreateHitPause(ecs)
	lines = append(lines, fmt.Sprintf("hits: %d  pause: %d", match.TotalHits, pause.Remaining))

	if sim.GetOrCreateAudio(ecs).Muted {
		lines = append(lines, "muted")
	}
	if entry, ok := components.Settings.First(ecs.World); ok && components.Settings.Get(entry).Unsaved {
		lines = append(lines, "settings not saved")
	}
	return lines
}
