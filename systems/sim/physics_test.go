package sim

import (
	"testing"
	"time"

	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/leveldata"
	"github.com/stretchr/testify/assert"
)

func testArena() *leveldata.ArenaData {
	return &leveldata.ArenaData{
		MapWidth:  800,
		MapHeight: 480,
		Left:      60,
		Right:     740,
		GroundY:   420,
	}
}

func dummyBody(x, y, vx, vy float64) *components.BodyData {
	return &components.BodyData{
		X: x, Y: y,
		W: cfg.Opponent.Width, H: cfg.Opponent.Height,
		VX: vx, VY: vy,
		GroundY: 420,
	}
}

func TestIntegrateFreeBody(t *testing.T) {
	tests := []struct {
		name      string
		body      *components.BodyData
		stun      components.StunData
		wantX     float64
		wantY     float64
		wantVX    float64
		wantVY    float64
		wantFlash time.Duration
	}{
		{
			name:   "airborne falls",
			body:   dummyBody(300, 100, 0, -14),
			wantX:  300,
			wantY:  87.2,
			wantVY: -12.8,
		},
		{
			name:      "airborne wall hit bounces and pops",
			body:      dummyBody(670, 100, 18, 0),
			wantX:     680,
			wantY:     101.2,
			wantVX:    -13.5,
			wantVY:    -10,
			wantFlash: 304 * time.Millisecond,
		},
		{
			name:      "grounded wall hit keeps friction",
			body:      dummyBody(670, 310, 18, 0),
			wantX:     680,
			wantY:     310,
			wantVX:    -11.475,
			wantVY:    -10,
			wantFlash: 304 * time.Millisecond,
		},
		{
			name:      "left wall",
			body:      dummyBody(70, 100, -18, 0),
			wantX:     60,
			wantY:     101.2,
			wantVX:    13.5,
			wantVY:    -10,
			wantFlash: 304 * time.Millisecond,
		},
		{
			name:   "landing clamps to ground",
			body:   dummyBody(300, 305, 6, 8),
			wantX:  306,
			wantY:  310,
			wantVX: 5.1,
		},
		{
			name: "slow slide stops",
			body: dummyBody(300, 310, 1.1, 0),
			// 1.1 * 0.85 drops below the rest speed
			wantX: 301.1,
			wantY: 310,
		},
		{
			name:      "timers run down and stop at zero",
			body:      dummyBody(300, 310, 0, 0),
			stun:      components.StunData{Stun: 10 * time.Millisecond, Flash: 100 * time.Millisecond},
			wantX:     300,
			wantY:     310,
			wantFlash: 84 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stun := tt.stun
			IntegrateFreeBody(tt.body, &stun, testArena())

			assert.InDelta(t, tt.wantX, tt.body.X, 1e-9)
			assert.InDelta(t, tt.wantY, tt.body.Y, 1e-9)
			assert.InDelta(t, tt.wantVX, tt.body.VX, 1e-9)
			assert.InDelta(t, tt.wantVY, tt.body.VY, 1e-9)
			assert.Equal(t, tt.wantFlash, stun.Flash)
			assert.GreaterOrEqual(t, stun.Stun, time.Duration(0))
		})
	}
}

func TestFreeBodyComesToRest(t *testing.T) {
	arena := testArena()
	body := dummyBody(300, 310, 0, 0)
	stun := components.StunData{}
	Launch(body, &stun, cfg.DirectionRight)

	for i := 0; i < 600; i++ {
		IntegrateFreeBody(body, &stun, arena)
		assert.GreaterOrEqual(t, body.X, arena.Left)
		assert.LessOrEqual(t, body.Right(), arena.Right)
		assert.LessOrEqual(t, body.Bottom(), body.GroundY)
	}

	assert.Zero(t, body.VX)
	assert.Zero(t, body.VY)
	assert.Equal(t, body.GroundY, body.Bottom())
	assert.False(t, stun.Stunned())
	assert.False(t, stun.Flashing())
}

func TestLaunch(t *testing.T) {
	body := dummyBody(300, 310, 0, 0)
	stun := components.StunData{}

	Launch(body, &stun, cfg.DirectionLeft)
	assert.Equal(t, -cfg.Combat.LaunchX, body.VX)
	assert.Equal(t, -cfg.Combat.LaunchY, body.VY)
	assert.Equal(t, cfg.Combat.StunDuration, stun.Stun)
	assert.Equal(t, cfg.Combat.FlashDuration, stun.Flash)

	Launch(body, &stun, cfg.DirectionRight)
	assert.Equal(t, cfg.Combat.LaunchX, body.VX)
}

func TestMoveKinematicStaysInArena(t *testing.T) {
	arena := testArena()
	body := &components.BodyData{X: 700, Y: 0, W: 96, H: 128, VX: 9, GroundY: 420}

	MoveKinematic(body, arena)
	assert.Equal(t, 644.0, body.X)
	assert.Equal(t, 420.0, body.Bottom())

	body.X, body.VX = 62, -9
	MoveKinematic(body, arena)
	assert.Equal(t, 60.0, body.X)
}
