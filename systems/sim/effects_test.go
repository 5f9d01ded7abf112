package sim

import (
	"testing"

	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestScreenShakeAlternates(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.Zero(t, ShakeOffset(e))

	TriggerScreenShake(e, 2, 4)

	var offsets []float64
	for i := 0; i < 5; i++ {
		UpdateEffects(e)
		offsets = append(offsets, ShakeOffset(e))
	}
	assert.Equal(t, []float64{-2, 2, -2, 2, 0}, offsets)
}

func TestScreenShakeKeepsStrongerShake(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	TriggerScreenShake(e, 2, 20)
	TriggerScreenShake(e, 1, 5)

	shake := getOrCreateScreenShake(e)
	assert.Equal(t, 2.0, shake.Intensity)
	assert.Equal(t, 20, shake.Duration)

	TriggerScreenShake(e, 3, 5)
	assert.Equal(t, 3.0, shake.Intensity)
	assert.Equal(t, 5, shake.Duration)
}

func TestScreenShakeIgnoresEmptyShake(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	TriggerScreenShake(e, 2, 0)
	_, ok := components.ScreenShake.First(e.World)
	assert.False(t, ok)
}

func TestFlashFadesAfterTimer(t *testing.T) {
	r := newHitRig(t, 600)
	stun := components.Stun.Get(r.opponent)
	flash := components.Flash.Get(r.opponent)

	stun.Flash = cfg.Combat.FlashDuration
	UpdateEffects(r.ecs)
	require.Equal(t, 1.0, flash.Alpha)

	stun.Flash = 0
	UpdateEffects(r.ecs)
	assert.Greater(t, flash.Alpha, 0.0)
	assert.Less(t, flash.Alpha, 1.0)

	for i := 1; i < flashFadeTicks; i++ {
		UpdateEffects(r.ecs)
	}
	assert.Zero(t, flash.Alpha)
	assert.Nil(t, flash.Fade)
}
