package factory

import (
	"fmt"
	"time"

	"github.com/automoto/bellybump/assets/animations"
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
)

// GenerateAttackerAnimations builds one animation per phase from
// cfg.AttackerAnimations. Timed definitions spread their frames over the
// phase's configured duration.
func GenerateAttackerAnimations() (*components.AnimationData, error) {
	animData := &components.AnimationData{
		Animations: make(map[cfg.PhaseID]*animations.Animation, cfg.PhaseCount),
	}

	for phase := cfg.PhaseIdle; phase < cfg.PhaseCount; phase++ {
		def, ok := cfg.AttackerAnimations[phase]
		if !ok {
			return nil, fmt.Errorf("no animation definition for phase %s: %w", phase, cfg.ErrInvalidTuning)
		}

		anim, err := buildAnimation(def, cfg.Attacker.PhaseDuration(phase))
		if err != nil {
			return nil, fmt.Errorf("phase %s: %w", phase, err)
		}
		animData.Animations[phase] = anim
	}

	animData.SetAnimation(cfg.PhaseIdle)
	return animData, nil
}

// GenerateOpponentAnimations builds the dummy's single looping animation.
// Its hit frames are picked from the stun timers instead.
func GenerateOpponentAnimations() (*components.AnimationData, error) {
	anim, err := buildAnimation(cfg.OpponentAnimation, 0)
	if err != nil {
		return nil, fmt.Errorf("opponent: %w", err)
	}

	animData := &components.AnimationData{
		Animations: map[cfg.PhaseID]*animations.Animation{cfg.PhaseIdle: anim},
	}
	animData.SetAnimation(cfg.PhaseIdle)
	return animData, nil
}

// RebuildAttackerAnimations swaps in animations built from the live tuning.
// The current phase's animation restarts.
func RebuildAttackerAnimations(animData *components.AnimationData) error {
	fresh, err := GenerateAttackerAnimations()
	if err != nil {
		return err
	}

	phase := animData.CurrentPhase
	animData.Animations = fresh.Animations
	animData.SetAnimation(phase)
	return nil
}

func buildAnimation(def cfg.AnimationDef, d time.Duration) (*animations.Animation, error) {
	if def.Timed {
		return animations.ForDuration(def.Frames, d)
	}
	return animations.New(def.Frames, def.FPS, def.Loop)
}
