package core

import (
	"testing"
	"time"

	"github.com/automoto/bellybump/assets"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tickDT = cfg.C.TickDuration()

func newTestMatch(t *testing.T) *Match {
	t.Helper()
	arena, err := assets.LoadArena(assets.DefaultArena)
	require.NoError(t, err)
	m, err := NewMatch(arena)
	require.NoError(t, err)
	return m
}

func held(actions ...cfg.ActionID) Snapshot {
	var s Snapshot
	for _, a := range actions {
		s[a] = true
	}
	return s
}

func attackerState(m *Match) ActorView {
	return m.Attacker().View()
}

// walkUntilArmed walks right until the attacker has two steps.
func walkUntilArmed(t *testing.T, m *Match) {
	t.Helper()
	for i := 0; i < 60; i++ {
		m.Step(held(cfg.ActionMoveRight), tickDT)
		if attackerState(m).Steps >= cfg.Attacker.StepsToAttack {
			return
		}
	}
	t.Fatal("attacker never reached two steps")
}

// stepUntilHit holds right and attack until a hit lands and returns that frame.
func stepUntilHit(t *testing.T, m *Match) Frame {
	t.Helper()
	for i := 0; i < 60; i++ {
		frame := m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
		if len(frame.Hits) > 0 {
			return frame
		}
	}
	t.Fatal("no hit landed")
	return Frame{}
}

// placeInRange moves the attacker so its belly hitbox overlaps the dummy.
func placeInRange(m *Match) {
	body := m.Attacker().Body()
	body.X = m.Opponent().Body().X - 90
}

func TestNewMatchRejectsMissingArena(t *testing.T) {
	_, err := NewMatch(nil)
	assert.ErrorIs(t, err, leveldata.ErrNoArena)

	_, err = NewMatch(&leveldata.ArenaData{Left: 0, Right: 100, GroundY: 50})
	assert.ErrorIs(t, err, leveldata.ErrNoSpawn)
}

func TestMatchStartsAtSpawns(t *testing.T) {
	m := newTestMatch(t)
	frame := m.Frame()

	require.Len(t, frame.Actors, 2)
	attacker, opponent := frame.Actors[0], frame.Actors[1]

	assert.Equal(t, KindAttacker, attacker.Kind)
	assert.Equal(t, cfg.PhaseIdle, attacker.Phase)
	assert.Equal(t, cfg.DirectionRight, attacker.Facing)
	assert.Equal(t, 420.0, attacker.Rect.Bottom())
	assert.Equal(t, 220.0, attacker.Rect.X+attacker.Rect.W/2)

	assert.Equal(t, KindFreeBody, opponent.Kind)
	assert.Equal(t, cfg.DirectionLeft, opponent.Facing)
	assert.Equal(t, 420.0, opponent.Rect.Bottom())
	assert.Equal(t, 520.0, opponent.Rect.X+opponent.Rect.W/2)
	assert.Equal(t, cfg.OpponentFrameIdle, opponent.Frame)
}

func TestAttackRejectedBeforeTwoSteps(t *testing.T) {
	m := newTestMatch(t)

	m.Step(held(cfg.ActionAttack), tickDT)
	assert.Equal(t, cfg.PhaseIdle, attackerState(m).Phase)
	m.Step(held(), tickDT)

	for attackerState(m).Steps < 1 {
		m.Step(held(cfg.ActionMoveRight), tickDT)
	}
	require.Equal(t, 1, attackerState(m).Steps)

	m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
	assert.Equal(t, cfg.PhaseWalk, attackerState(m).Phase)
}

func TestStepsResetWhenIntentStopsOrOpposes(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)

	m.Step(held(), tickDT)
	assert.Equal(t, 0, attackerState(m).Steps)
	assert.Equal(t, cfg.PhaseIdle, attackerState(m).Phase)

	walkUntilArmed(t, m)
	m.Step(held(cfg.ActionMoveLeft), tickDT)
	assert.Equal(t, 0, attackerState(m).Steps)
	assert.Equal(t, -cfg.Attacker.WalkSpeed, attackerState(m).VX)
}

func TestArmedAttackRunsThroughPhases(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)

	m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
	view := attackerState(m)
	require.Equal(t, cfg.PhasePreAttack, view.Phase)
	x := view.Rect.X

	// movement is locked out during the wind-up
	for i := 0; i < 9; i++ {
		m.Step(held(cfg.ActionMoveLeft, cfg.ActionAttack), tickDT)
		require.Equal(t, cfg.PhasePreAttack, attackerState(m).Phase)
	}
	assert.Equal(t, x, attackerState(m).Rect.X)

	m.Step(held(), tickDT)
	view = attackerState(m)
	require.Equal(t, cfg.PhaseActiveAttack, view.Phase)
	assert.True(t, view.HitboxActive)

	m.Step(held(), tickDT)
	assert.Equal(t, cfg.Attacker.LungeSpeed, attackerState(m).VX)
	assert.Equal(t, x+cfg.Attacker.LungeSpeed, attackerState(m).Rect.X)

	for attackerState(m).Phase == cfg.PhaseActiveAttack {
		m.Step(held(), tickDT)
	}
	view = attackerState(m)
	assert.Equal(t, cfg.PhaseRecover, view.Phase)
	assert.False(t, view.HitboxActive)
	assert.Equal(t, 0, view.Steps)

	for i := 0; i < 8; i++ {
		m.Step(held(), tickDT)
	}
	assert.Equal(t, cfg.PhaseIdle, attackerState(m).Phase)
}

func TestHitLaunchesOpponentAway(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)
	placeInRange(m)

	frame := stepUntilHit(t, m)
	require.Len(t, frame.Hits, 1)

	hit := frame.Hits[0]
	assert.Equal(t, cfg.DirectionRight, hit.Direction)
	assert.Equal(t, cfg.Combat.HitPauseTicks, hit.PauseTicks)
	assert.Equal(t, frame.Tick, hit.Tick)
	assert.Equal(t, 20, frame.PauseTicks)

	opp := frame.Actors[1]
	assert.Equal(t, 18.0, opp.VX)
	assert.Equal(t, -14.0, opp.VY)
	assert.True(t, opp.Stunned)
	assert.True(t, opp.Flashing)
	assert.Equal(t, cfg.OpponentFrameHit, opp.Frame)

	stun := m.opponent.Stun()
	assert.Equal(t, 400*time.Millisecond, stun.Stun)
	assert.Equal(t, 120*time.Millisecond, stun.Flash)
}

func TestHitPauseFreezesForConfiguredTicks(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)
	placeInRange(m)

	hitFrame := stepUntilHit(t, m)
	oppAtHit := hitFrame.Actors[1]
	attackerAtHit := hitFrame.Actors[0]

	for i := 0; i < cfg.Combat.HitPauseTicks; i++ {
		frame := m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
		require.True(t, frame.Paused, "tick %d after the hit should be frozen", i+1)
		assert.Equal(t, oppAtHit.Rect, frame.Actors[1].Rect)
		assert.Equal(t, attackerAtHit.Rect, frame.Actors[0].Rect)
		assert.Equal(t, attackerAtHit.Phase, frame.Actors[0].Phase)
		assert.Equal(t, cfg.Combat.HitPauseTicks-i-1, frame.PauseTicks)
	}
	assert.Equal(t, 400*time.Millisecond, m.opponent.Stun().Stun)

	frame := m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
	assert.False(t, frame.Paused)

	opp := frame.Actors[1]
	assert.Equal(t, oppAtHit.Rect.X+18, opp.Rect.X)
	assert.InDelta(t, -14+cfg.Opponent.Gravity, opp.VY, 1e-9)
	assert.InDelta(t, oppAtHit.Rect.Y-14+cfg.Opponent.Gravity, opp.Rect.Y, 1e-9)
	assert.Equal(t, 400*time.Millisecond-cfg.Opponent.TimerDecay, m.opponent.Stun().Stun)

	// the registered hit ends the lunge on the first tick after the pause
	assert.Equal(t, cfg.PhaseRecover, frame.Actors[0].Phase)
}

func TestBodiesHoldForPauseTicksPlusHitTick(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)
	placeInRange(m)
	before := m.Step(held(cfg.ActionMoveRight), tickDT).Actors[1].Rect

	frame := stepUntilHit(t, m)
	require.Equal(t, 18.0, frame.Actors[1].VX)

	// launched on the hit tick, yet it only moves once the pause is over
	still := 0
	for frame.Actors[1].Rect == before {
		still++
		frame = m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
		require.Less(t, still, 100)
	}
	assert.Equal(t, cfg.Combat.HitPauseTicks+1, still)
	assert.Equal(t, before.X+18, frame.Actors[1].Rect.X)
}

func TestHitRegistersOncePerAttack(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)
	placeInRange(m)
	stepUntilHit(t, m)

	saved := cfg.Combat.EndAttackOnHit
	cfg.Combat.EndAttackOnHit = false
	t.Cleanup(func() { cfg.Combat.EndAttackOnHit = saved })

	for i := 0; i < 60; i++ {
		// keep the dummy inside the hitbox the whole time
		body := m.Opponent().Body()
		body.X, body.VX, body.VY = m.Attacker().Body().X+90, 0, 0

		frame := m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
		assert.Empty(t, frame.Hits)
	}
}

func TestHeldAttackDoesNotRetrigger(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)
	placeInRange(m)
	stepUntilHit(t, m)

	// ride out the pause and recovery with attack held, then re-arm
	for attackerState(m).Phase != cfg.PhaseIdle && attackerState(m).Phase != cfg.PhaseWalk {
		m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
	}
	for i := 0; i < 40; i++ {
		m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
		require.False(t, attackerState(m).Phase.Attacking())
	}
	require.GreaterOrEqual(t, attackerState(m).Steps, 2)

	m.Step(held(cfg.ActionMoveRight), tickDT)
	m.Step(held(cfg.ActionMoveRight, cfg.ActionAttack), tickDT)
	assert.Equal(t, cfg.PhasePreAttack, attackerState(m).Phase)
}

func TestOpponentTimersReachZero(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)
	placeInRange(m)
	stepUntilHit(t, m)

	prevStun, prevFlash := m.opponent.Stun().Stun, m.opponent.Stun().Flash
	for i := 0; i < 200; i++ {
		m.Step(held(), tickDT)
		stun := m.opponent.Stun()
		require.GreaterOrEqual(t, stun.Stun, time.Duration(0))
		require.GreaterOrEqual(t, stun.Flash, time.Duration(0))
		require.LessOrEqual(t, stun.Stun, prevStun)
		prevStun = stun.Stun
		if stun.Flash > prevFlash {
			// only a wall bounce may refresh the flash
			require.Equal(t, cfg.Opponent.WallFlash-cfg.Opponent.TimerDecay, stun.Flash)
		}
		prevFlash = stun.Flash
	}
	assert.Zero(t, m.opponent.Stun().Stun)
	assert.Zero(t, m.opponent.Stun().Flash)
}

func TestOpponentStaysInsideArena(t *testing.T) {
	m := newTestMatch(t)
	walkUntilArmed(t, m)
	placeInRange(m)
	stepUntilHit(t, m)

	arena := m.Arena()
	for i := 0; i < 300; i++ {
		frame := m.Step(held(), tickDT)
		opp := frame.Actors[1].Rect
		require.GreaterOrEqual(t, opp.X, arena.Left)
		require.LessOrEqual(t, opp.Right(), arena.Right)
		require.LessOrEqual(t, opp.Bottom(), arena.GroundY)
	}

	// friction eventually settles the dummy on the ground
	view := m.Opponent().View()
	assert.Zero(t, view.VX)
	assert.Zero(t, view.VY)
	assert.Equal(t, arena.GroundY, view.Rect.Bottom())
}

func TestResetReturnsToSpawns(t *testing.T) {
	m := newTestMatch(t)
	start := m.Frame()

	walkUntilArmed(t, m)
	placeInRange(m)
	stepUntilHit(t, m)

	m.Reset()
	frame := m.Frame()
	assert.Equal(t, start.Actors[0].Rect, frame.Actors[0].Rect)
	assert.Equal(t, start.Actors[1].Rect, frame.Actors[1].Rect)
	assert.Equal(t, cfg.PhaseIdle, frame.Actors[0].Phase)
	assert.False(t, frame.Actors[1].Stunned)
	assert.Zero(t, frame.PauseTicks)

	next := m.Step(held(), tickDT)
	assert.False(t, next.Paused)
}

func TestApplyTuningResizesBodies(t *testing.T) {
	saved := cfg.Current()
	t.Cleanup(func() { require.NoError(t, cfg.Apply(saved)) })

	m := newTestMatch(t)
	before := m.Opponent().View().Rect

	tuning := cfg.Current()
	tuning.Opponent.Width = 80
	tuning.Attacker.PreAttackDuration = 50 * time.Millisecond
	require.NoError(t, m.ApplyTuning(tuning))

	after := m.Opponent().View().Rect
	assert.Equal(t, 80.0, after.W)
	assert.Equal(t, before.Bottom(), after.Bottom())
	assert.InDelta(t, before.X+before.W/2, after.X+after.W/2, 1e-9)

	bad := cfg.Current()
	bad.Opponent.WallBounce = 3
	assert.ErrorIs(t, m.ApplyTuning(bad), cfg.ErrInvalidTuning)
}
