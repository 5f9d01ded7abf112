package scenes

import (
	"image/color"
	"log"

	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/core"
	"github.com/automoto/bellybump/shared/leveldata"
	"github.com/automoto/bellybump/systems"
	"github.com/automoto/bellybump/systems/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// ArenaScene is the playable match. It steps a core.Match once per ebiten
// update and adds the systems that draw it, play its sounds and save the
// player's toggles.
type ArenaScene struct {
	match  *core.Match
	tuning <-chan *cfg.Tuning
}

// NewArenaScene builds the match for arena. tuning may be nil; otherwise
// every value received on it is applied between two ticks.
func NewArenaScene(arena *leveldata.ArenaData, saved *systems.SavedSettings, tuning <-chan *cfg.Tuning) (*ArenaScene, error) {
	match, err := core.NewMatch(arena)
	if err != nil {
		return nil, err
	}

	ecs := match.ECS()

	// Shell systems run after the simulation and ignore the hit-pause
	ecs.AddSystem(sim.UpdateEffects)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	systems.ApplySavedSettings(ecs, saved)

	return &ArenaScene{match: match, tuning: tuning}, nil
}

func (as *ArenaScene) Update() error {
	as.applyTuning()

	as.match.Step(systems.PollInput(), cfg.C.TickDuration())

	ecs := as.match.ECS()
	if sim.InputAction(ecs, cfg.ActionQuit).JustPressed {
		return ebiten.Termination
	}
	if sim.InputAction(ecs, cfg.ActionReset).JustPressed {
		as.match.Reset()
	}
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	as.match.ECS().Draw(screen)
}

// applyTuning installs the newest hot-reloaded tuning, if any.
func (as *ArenaScene) applyTuning() {
	select {
	case t := <-as.tuning:
		if err := as.match.ApplyTuning(t); err != nil {
			log.Printf("Warning: keeping previous tuning: %v", err)
			return
		}
		log.Println("Applied new tuning")
	default:
	}
}
