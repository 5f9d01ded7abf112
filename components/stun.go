package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// StunData tracks the timers a hit leaves on a free body. Both only ever
// count down and stop at zero.
type StunData struct {
	Stun  time.Duration
	Flash time.Duration
}

func (s *StunData) Stunned() bool  { return s.Stun > 0 }
func (s *StunData) Flashing() bool { return s.Flash > 0 }

var Stun = donburi.NewComponentType[StunData]()
