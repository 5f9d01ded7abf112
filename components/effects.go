package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the render offset applied while a hit-pause runs
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // total ticks
	Elapsed   int     // its parity picks the shake side
	Decay     *gween.Tween
	OffsetX   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData is the cosmetic white overlay on a struck body. Alpha is 1 while
// the body's flash timer runs and fades out afterwards.
type FlashData struct {
	Alpha float64
	Fade  *gween.Tween
}

var Flash = donburi.NewComponentType[FlashData]()
