// Package core runs one belly-bump match: an attacker driven by input and a
// launchable dummy, stepped one fixed tick at a time with no wall clock.
package core

import (
	"fmt"
	"time"

	"github.com/automoto/bellybump/archetypes"
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/shared/leveldata"
	"github.com/automoto/bellybump/systems/factory"
	"github.com/automoto/bellybump/systems/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Snapshot holds which actions are held for one tick.
type Snapshot = [cfg.ActionCount]bool

// Frame is the render and event output of one tick.
type Frame struct {
	Tick       int
	Actors     []ActorView
	Hits       []components.HitEvent
	PauseTicks int  // hit-pause ticks still to come
	Paused     bool // this tick was frozen
}

type Match struct {
	ecs      *ecs.ECS
	arena    *leveldata.ArenaData
	attacker attackerActor
	opponent freeBodyActor
}

// NewMatch builds the world for arena and registers the simulation systems.
// Callers may add presentation systems to ECS afterwards; they run after the
// simulation on every Step.
func NewMatch(arena *leveldata.ArenaData) (*Match, error) {
	if arena == nil {
		return nil, fmt.Errorf("new match: %w", leveldata.ErrNoArena)
	}
	if err := cfg.Current().Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}

	attackerSpawn, ok := arena.Spawn(leveldata.RoleAttacker)
	if !ok {
		return nil, fmt.Errorf("new match: %q: %w", leveldata.RoleAttacker, leveldata.ErrNoSpawn)
	}
	opponentSpawn, ok := arena.Spawn(leveldata.RoleOpponent)
	if !ok {
		return nil, fmt.Errorf("new match: %q: %w", leveldata.RoleOpponent, leveldata.ErrNoSpawn)
	}

	e := ecs.NewECS(donburi.NewWorld())
	archetypes.Match.Spawn(e)
	factory.CreateArena(e, arena)

	attacker, err := factory.CreateAttacker(e, attackerSpawn, arena.GroundY)
	if err != nil {
		return nil, err
	}
	opponent, err := factory.CreateOpponent(e, opponentSpawn, arena.GroundY)
	if err != nil {
		return nil, err
	}

	e.AddSystem(sim.UpdateInput)
	e.AddSystem(sim.UpdateHitPause)
	e.AddSystem(sim.WithHitPauseCheck(sim.UpdateAttacker))
	e.AddSystem(sim.WithHitPauseCheck(sim.UpdateHits))
	e.AddSystem(sim.WithHitPauseCheck(sim.UpdatePhysics))
	e.AddSystem(sim.UpdateOpponentVisuals)

	return &Match{
		ecs:      e,
		arena:    arena,
		attacker: attackerActor{entry: attacker},
		opponent: freeBodyActor{entry: opponent},
	}, nil
}

func (m *Match) ECS() *ecs.ECS {
	return m.ecs
}

func (m *Match) Arena() *leveldata.ArenaData {
	return m.arena
}

func (m *Match) Attacker() Actor {
	return m.attacker
}

func (m *Match) Opponent() Actor {
	return m.opponent
}

func (m *Match) Tick() int {
	return sim.GetOrCreateMatch(m.ecs).Tick
}

// Step advances the match by one tick of length dt using in as the held
// actions, and returns what happened.
func (m *Match) Step(in Snapshot, dt time.Duration) Frame {
	match := sim.GetOrCreateMatch(m.ecs)
	match.Tick++
	match.DT = dt
	match.Hits = match.Hits[:0]

	audio := sim.GetOrCreateAudio(m.ecs)
	audio.PendingSFX = audio.PendingSFX[:0]

	sim.QueueInput(m.ecs, in)
	m.ecs.Update()

	return m.Frame()
}

// Frame reports the current state without stepping.
func (m *Match) Frame() Frame {
	match := sim.GetOrCreateMatch(m.ecs)
	pause := sim.GetOrCreateHitPause(m.ecs)

	var hits []components.HitEvent
	if len(match.Hits) > 0 {
		hits = append(hits, match.Hits...)
	}

	return Frame{
		Tick:       match.Tick,
		Actors:     []ActorView{m.attacker.View(), m.opponent.View()},
		Hits:       hits,
		PauseTicks: pause.Remaining,
		Paused:     pause.Frozen,
	}
}

// Reset puts both actors back on their spawns and clears any pause. The
// tick counter and held input carry on, so a held attack does not fire.
func (m *Match) Reset() {
	if spawn, ok := m.arena.Spawn(leveldata.RoleAttacker); ok {
		factory.ResetAttacker(m.attacker.entry, spawn)
	}
	if spawn, ok := m.arena.Spawn(leveldata.RoleOpponent); ok {
		factory.ResetOpponent(m.opponent.entry, spawn)
	}

	*sim.GetOrCreateHitPause(m.ecs) = components.HitPauseData{}
	sim.GetOrCreateMatch(m.ecs).Hits = nil
}

// ApplyTuning installs t and resizes both bodies around their bottom centre.
// It must be called between ticks.
func (m *Match) ApplyTuning(t *cfg.Tuning) error {
	if err := cfg.Apply(t); err != nil {
		return err
	}

	resize(m.attacker.entry, cfg.Attacker.Width, cfg.Attacker.Height, cfg.Attacker.HurtboxInsetW, cfg.Attacker.HurtboxInsetH)
	resize(m.opponent.entry, cfg.Opponent.Width, cfg.Opponent.Height, cfg.Opponent.HurtboxInsetW, cfg.Opponent.HurtboxInsetH)

	return factory.RebuildAttackerAnimations(components.Animation.Get(m.attacker.entry))
}

func resize(entry *donburi.Entry, w, h, insetW, insetH float64) {
	body := components.Body.Get(entry)
	if body.W == w && body.H == h && body.InsetW == insetW && body.InsetH == insetH {
		return
	}

	cx, bottom := body.X+body.W/2, body.Bottom()
	body.W, body.H = w, h
	body.InsetW, body.InsetH = insetW, insetH
	body.X = cx - w/2
	body.SetBottom(bottom)

	components.Object.Get(entry).SyncRect(body.Rect())
}
