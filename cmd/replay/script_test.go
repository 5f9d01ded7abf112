package main

import (
	"testing"

	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bumpScript = `
segments:
  - hold: [right]
    ticks: 3
  - ticks: 1
  - hold: [attack, left]
    ticks: 2
`

func TestParseScriptExpandsSegments(t *testing.T) {
	s, err := ParseScript([]byte(bumpScript))
	require.NoError(t, err)
	assert.Empty(t, s.Arena)

	snaps := s.Snapshots()
	require.Len(t, snaps, 6)
	for i := 0; i < 3; i++ {
		assert.True(t, snaps[i][cfg.ActionMoveRight])
		assert.False(t, snaps[i][cfg.ActionAttack])
	}
	assert.Equal(t, core.Snapshot{}, snaps[3])
	assert.True(t, snaps[4][cfg.ActionAttack])
	assert.True(t, snaps[5][cfg.ActionMoveLeft])
}

func TestParseScriptRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no segments", "segments: []"},
		{"zero ticks", "segments:\n  - hold: [right]\n    ticks: 0"},
		{"unknown action", "segments:\n  - hold: [jump]\n    ticks: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}

	_, err := ParseScript([]byte("segments: ["))
	assert.Error(t, err)
}

func TestScriptInputEnds(t *testing.T) {
	s, err := ParseScript([]byte(bumpScript))
	require.NoError(t, err)

	input := s.Input()
	snap, ok := input(0)
	assert.True(t, ok)
	assert.True(t, snap[cfg.ActionMoveRight])

	_, ok = input(6)
	assert.False(t, ok)
}

func TestRecorderCountsPhasesAndHits(t *testing.T) {
	r := &recorder{}
	r.observe(core.Frame{Tick: 1, Actors: []core.ActorView{{Kind: core.KindAttacker, Phase: cfg.PhaseWalk}}})
	assert.Equal(t, cfg.PhaseWalk, r.phase)

	r.observe(core.Frame{Tick: 2, Hits: []components.HitEvent{{Tick: 2}}})
	assert.Equal(t, 1, r.hits)
}
