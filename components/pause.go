package components

import "github.com/yohamta/donburi"

// HitPauseData is the global hitstop countdown (singleton component).
// Frozen marks that the current tick was consumed by the pause.
type HitPauseData struct {
	Remaining int
	Frozen    bool
}

// Active reports whether gated systems should skip this tick.
func (h *HitPauseData) Active() bool {
	return h.Frozen || h.Remaining > 0
}

var HitPause = donburi.NewComponentType[HitPauseData]()
