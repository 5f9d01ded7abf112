package components

import (
	"github.com/automoto/bellybump/assets/animations"
	cfg "github.com/automoto/bellybump/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentPhase     cfg.PhaseID
	Animations       map[cfg.PhaseID]*animations.Animation
}

// SetAnimation switches to the phase's animation, restarting it even when
// the phase is re-entered.
func (a *AnimationData) SetAnimation(phase cfg.PhaseID) {
	a.CurrentPhase = phase
	anim, ok := a.Animations[phase]
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	a.CurrentAnimation.Reset()
}

// Frame returns the current frame id, or "" without an animation.
func (a *AnimationData) Frame() string {
	if a.CurrentAnimation == nil {
		return ""
	}
	frame, _ := a.CurrentAnimation.Frame()
	return frame
}

var Animation = donburi.NewComponentType[AnimationData]()
