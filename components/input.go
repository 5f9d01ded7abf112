package components

import (
	cfg "github.com/automoto/bellybump/config"
	"github.com/yohamta/donburi"
)

// ButtonState represents the temporal state of an action
type ButtonState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Next     [cfg.ActionCount]bool // snapshot queued for the coming tick
}

func (in *InputData) Action(id cfg.ActionID) ButtonState {
	cur, prev := in.Current[id], in.Previous[id]
	return ButtonState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Horizontal returns the movement intent. Left wins when both are held.
func (in *InputData) Horizontal() cfg.Direction {
	switch {
	case in.Current[cfg.ActionMoveLeft]:
		return cfg.DirectionLeft
	case in.Current[cfg.ActionMoveRight]:
		return cfg.DirectionRight
	}
	return cfg.DirectionNone
}

var Input = donburi.NewComponentType[InputData]()
