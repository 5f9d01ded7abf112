package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Fields left out of the file keep their current values.
type Tuning struct {
	Attacker    AttackerConfig    `yaml:"attacker"`
	Opponent    OpponentConfig    `yaml:"opponent"`
	Combat      CombatConfig      `yaml:"combat"`
	ScreenShake ScreenShakeConfig `yaml:"screenShake"`
}

// Current returns a copy of the live tuning values.
func Current() *Tuning {
	return &Tuning{
		Attacker:    Attacker,
		Opponent:    Opponent,
		Combat:      Combat,
		ScreenShake: ScreenShake,
	}
}

// Apply validates t and installs it as the live tuning.
// Callers must not run it while a tick is in progress.
func Apply(t *Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	Attacker = t.Attacker
	Opponent = t.Opponent
	Combat = t.Combat
	ScreenShake = t.ScreenShake
	return nil
}

// Load reads a YAML override file on top of the live tuning.
func Load(path string) (*Tuning, error) {
	return LoadOnto(path, Current())
}

// LoadOnto reads a YAML override file on top of base. base is not modified.
func LoadOnto(path string, base *Tuning) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseOnto(data, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML on top of the live tuning and validates the result.
func Parse(data []byte) (*Tuning, error) {
	return ParseOnto(data, Current())
}

func ParseOnto(data []byte, base *Tuning) (*Tuning, error) {
	t := *base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	a := t.Attacker
	check(a.Width > 0 && a.Height > 0, "attacker size %vx%v must be positive", a.Width, a.Height)
	check(a.WalkSpeed >= 0, "attacker walkSpeed %v is negative", a.WalkSpeed)
	check(a.LungeSpeed >= 0, "attacker lungeSpeed %v is negative", a.LungeSpeed)
	check(a.StepsToAttack >= 0, "attacker stepsToAttack %d is negative", a.StepsToAttack)
	check(a.PreAttackDuration > 0, "attacker preAttackDuration %v must be positive", a.PreAttackDuration)
	check(a.ActiveDuration > 0, "attacker activeDuration %v must be positive", a.ActiveDuration)
	check(a.RecoverDuration > 0, "attacker recoverDuration %v must be positive", a.RecoverDuration)
	check(a.HurtboxInsetW < a.Width && a.HurtboxInsetH < a.Height, "attacker hurtbox insets leave no hurtbox")

	o := t.Opponent
	check(o.Width > 0 && o.Height > 0, "opponent size %vx%v must be positive", o.Width, o.Height)
	check(o.Gravity >= 0, "opponent gravity %v is negative", o.Gravity)
	check(o.GroundFriction > 0 && o.GroundFriction <= 1, "opponent groundFriction %v outside (0,1]", o.GroundFriction)
	check(o.RestSpeed >= 0, "opponent restSpeed %v is negative", o.RestSpeed)
	check(o.WallBounce >= 0 && o.WallBounce <= 1, "opponent wallBounce %v outside [0,1]", o.WallBounce)
	check(o.WallFlash >= 0, "opponent wallFlash %v is negative", o.WallFlash)
	check(o.TimerDecay > 0, "opponent timerDecay %v must be positive", o.TimerDecay)
	check(o.HurtboxInsetW < o.Width && o.HurtboxInsetH < o.Height, "opponent hurtbox insets leave no hurtbox")

	c := t.Combat
	check(c.HitboxWidthRatio > 0, "combat hitboxWidthRatio %v must be positive", c.HitboxWidthRatio)
	check(c.HitboxHeightRatio > 0, "combat hitboxHeightRatio %v must be positive", c.HitboxHeightRatio)
	check(c.HitboxOffsetRatio >= 0, "combat hitboxOffsetRatio %v is negative", c.HitboxOffsetRatio)
	check(c.StunDuration >= 0, "combat stunDuration %v is negative", c.StunDuration)
	check(c.FlashDuration >= 0, "combat flashDuration %v is negative", c.FlashDuration)
	check(c.HitPauseTicks >= 0, "combat hitPauseTicks %d is negative", c.HitPauseTicks)

	check(t.ScreenShake.Intensity >= 0, "screenShake intensity %v is negative", t.ScreenShake.Intensity)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidTuning, errors.Join(errs...))
}

// ValidateAnimations checks every animation definition has frames and a rate.
func ValidateAnimations() error {
	for phase := PhaseIdle; phase < PhaseCount; phase++ {
		def, ok := AttackerAnimations[phase]
		if !ok {
			return fmt.Errorf("%w: no animation for phase %s", ErrInvalidTuning, phase)
		}
		if err := def.validate(); err != nil {
			return fmt.Errorf("%w: phase %s: %w", ErrInvalidTuning, phase, err)
		}
	}
	if err := OpponentAnimation.validate(); err != nil {
		return fmt.Errorf("%w: opponent: %w", ErrInvalidTuning, err)
	}
	return nil
}

func (d AnimationDef) validate() error {
	if len(d.Frames) == 0 {
		return errors.New("no frames")
	}
	if !d.Timed && d.FPS <= 0 {
		return fmt.Errorf("fps %v must be positive", d.FPS)
	}
	return nil
}
