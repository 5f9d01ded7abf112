package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestHitPauseSkipsGatedSystems(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	runs := 0
	e.AddSystem(UpdateHitPause)
	e.AddSystem(WithHitPauseCheck(func(*ecs.ECS) { runs++ }))

	e.Update()
	assert.Equal(t, 1, runs)

	StartHitPause(e, 3)
	var paused []bool
	for i := 0; i < 4; i++ {
		e.Update()
		paused = append(paused, IsHitPaused(e))
	}
	assert.Equal(t, []bool{true, true, true, false}, paused)
	assert.Equal(t, 2, runs)
}

func TestHitPauseAppliesOnTheTickItStarts(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	runs := 0
	e.AddSystem(UpdateHitPause)
	e.AddSystem(func(e *ecs.ECS) { StartHitPause(e, 2) })
	e.AddSystem(WithHitPauseCheck(func(*ecs.ECS) { runs++ }))

	e.Update()
	assert.Zero(t, runs)
}

func TestStartHitPauseNeverShortens(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	StartHitPause(e, 5)
	StartHitPause(e, 2)
	assert.Equal(t, 5, GetOrCreateHitPause(e).Remaining)
}
