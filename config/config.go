package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// TickDuration is the simulation step the shell feeds the match.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// AttackerConfig contains the belly-bump fighter's movement and timing.
// Speeds are pixels per tick.
type AttackerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	WalkSpeed  float64 `yaml:"walkSpeed"`
	LungeSpeed float64 `yaml:"lungeSpeed"`

	StepsToAttack int `yaml:"stepsToAttack"`
	// TurnFromIdle lets intent against the facing flip it, but only from Idle.
	// Off, the attacker keeps its spawn facing for the whole match.
	TurnFromIdle bool `yaml:"turnFromIdle"`

	PreAttackDuration time.Duration `yaml:"preAttackDuration"`
	ActiveDuration    time.Duration `yaml:"activeDuration"`
	RecoverDuration   time.Duration `yaml:"recoverDuration"`

	// Hurtbox is the body shrunk by these totals.
	HurtboxInsetW float64 `yaml:"hurtboxInsetW"`
	HurtboxInsetH float64 `yaml:"hurtboxInsetH"`
}

// PhaseDuration returns the configured length of a timed phase.
func (a AttackerConfig) PhaseDuration(p PhaseID) time.Duration {
	switch p {
	case PhasePreAttack:
		return a.PreAttackDuration
	case PhaseActiveAttack:
		return a.ActiveDuration
	case PhaseRecover:
		return a.RecoverDuration
	}
	return 0
}

// OpponentConfig contains the dummy's arcade physics.
type OpponentConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Gravity        float64 `yaml:"gravity"`
	GroundFriction float64 `yaml:"groundFriction"`
	RestSpeed      float64 `yaml:"restSpeed"` // below this |vx| snaps to zero
	WallBounce     float64 `yaml:"wallBounce"`
	WallPop        float64 `yaml:"wallPop"` // upward speed after a wall hit

	WallFlash  time.Duration `yaml:"wallFlash"`
	TimerDecay time.Duration `yaml:"timerDecay"` // stun and flash drain per tick

	HurtboxInsetW float64 `yaml:"hurtboxInsetW"`
	HurtboxInsetH float64 `yaml:"hurtboxInsetH"`
}

// CombatConfig contains hit resolution values
type CombatConfig struct {
	// Belly hitbox, as fractions of the attacker body
	HitboxWidthRatio  float64 `yaml:"hitboxWidthRatio"`
	HitboxHeightRatio float64 `yaml:"hitboxHeightRatio"`
	HitboxOffsetRatio float64 `yaml:"hitboxOffsetRatio"`

	// Launch impulse, pixels per tick
	LaunchX float64 `yaml:"launchX"`
	LaunchY float64 `yaml:"launchY"`

	StunDuration  time.Duration `yaml:"stunDuration"`
	FlashDuration time.Duration `yaml:"flashDuration"`

	HitPauseTicks  int  `yaml:"hitPauseTicks"`
	EndAttackOnHit bool `yaml:"endAttackOnHit"`
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	Intensity float64 `yaml:"intensity"` // pixels
	Fade      bool    `yaml:"fade"`      // ease the offset out over the pause
}

// UIConfig contains colors and sizes used by the renderers.
type UIConfig struct {
	Background   color.RGBA
	WallColor    color.RGBA
	GroundColor  color.RGBA
	OpponentBase color.RGBA
	FlashColor   color.RGBA
	HitboxColor  color.RGBA
	HurtboxColor color.RGBA
	HUDTextColor color.RGBA

	// Placeholder sprite colors keyed by frame id
	FrameColors map[string]color.RGBA

	HUDFontSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay        bool // draw hurtboxes and hitboxes
	LogTransitions bool // log every attacker phase change
}

// Global configuration instances
var C *Config
var Attacker AttackerConfig
var Opponent OpponentConfig
var Combat CombatConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 480,
		TPS:    60,
	}

	Attacker = AttackerConfig{
		Width:  96,
		Height: 128,

		WalkSpeed:  4,
		LungeSpeed: 9,

		StepsToAttack: 2,

		PreAttackDuration: 180 * time.Millisecond,
		ActiveDuration:    120 * time.Millisecond,
		RecoverDuration:   120 * time.Millisecond,

		HurtboxInsetW: 30,
		HurtboxInsetH: 10,
	}

	Opponent = OpponentConfig{
		Width:  60,
		Height: 110,

		Gravity:        1.2,
		GroundFriction: 0.85,
		RestSpeed:      1.0,
		WallBounce:     0.75,
		WallPop:        10,

		WallFlash:  320 * time.Millisecond,
		TimerDecay: 16 * time.Millisecond,
	}

	Combat = CombatConfig{
		HitboxWidthRatio:  0.65,
		HitboxHeightRatio: 0.45,
		HitboxOffsetRatio: 0.15,

		LaunchX: 18,
		LaunchY: 14,

		StunDuration:  400 * time.Millisecond,
		FlashDuration: 120 * time.Millisecond,

		HitPauseTicks:  20,
		EndAttackOnHit: true,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity: 2,
	}

	UI = UIConfig{
		Background:   color.RGBA{R: 24, G: 24, B: 32, A: 255},
		WallColor:    color.RGBA{R: 50, G: 50, B: 50, A: 255},
		GroundColor:  color.RGBA{R: 70, G: 70, B: 80, A: 255},
		OpponentBase: color.RGBA{R: 200, G: 60, B: 60, A: 255},
		FlashColor:   White,
		HitboxColor:  Red,
		HurtboxColor: Green,
		HUDTextColor: White,

		FrameColors: map[string]color.RGBA{
			"bigboy/idle":           {R: 90, G: 140, B: 220, A: 255},
			"bigboy/walk/0":         {R: 80, G: 130, B: 210, A: 255},
			"bigboy/walk/1":         {R: 100, G: 150, B: 230, A: 255},
			"bigboy/pre_belly_bump": {R: 230, G: 180, B: 60, A: 255},
			"bigboy/belly_bump":     {R: 250, G: 120, B: 40, A: 255},
			OpponentFrameStunned:    {R: 170, G: 50, B: 90, A: 255},
		},

		HUDFontSize: 14,
	}
}
