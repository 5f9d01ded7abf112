package components

import (
	"time"

	cfg "github.com/automoto/bellybump/config"
	"github.com/yohamta/donburi"
)

// HitEvent is published once per successful belly bump.
type HitEvent struct {
	Tick       int
	Direction  cfg.Direction // launch direction
	PauseTicks int
	X, Y       float64 // hitbox centre at impact
}

// MatchData stores the simulation clock and the events raised during the
// current tick. This is a singleton component - only one match exists at a time.
type MatchData struct {
	Tick      int
	DT        time.Duration
	Hits      []HitEvent // raised this tick only
	TotalHits int
}

var Match = donburi.NewComponentType[MatchData]()
