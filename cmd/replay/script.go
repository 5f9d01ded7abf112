package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/bellybump/core"
	cfg "github.com/automoto/bellybump/config"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScript = errors.New("invalid replay script")

var actionNames = map[string]cfg.ActionID{
	"left":   cfg.ActionMoveLeft,
	"right":  cfg.ActionMoveRight,
	"attack": cfg.ActionAttack,
}

// Segment holds a set of actions for a number of ticks. An empty Hold
// means nothing is pressed.
type Segment struct {
	Hold  []string `yaml:"hold"`
	Ticks int      `yaml:"ticks"`
}

type Script struct {
	Arena    string    `yaml:"arena"`
	Segments []Segment `yaml:"segments"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Segments) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidScript)
	}
	for i, seg := range s.Segments {
		if seg.Ticks <= 0 {
			return nil, fmt.Errorf("%w: segment %d: ticks must be positive", ErrInvalidScript, i)
		}
		for _, name := range seg.Hold {
			if _, ok := actionNames[name]; !ok {
				return nil, fmt.Errorf("%w: segment %d: unknown action %q", ErrInvalidScript, i, name)
			}
		}
	}
	return &s, nil
}

// Snapshots expands the segments into one snapshot per tick.
func (s *Script) Snapshots() []core.Snapshot {
	var out []core.Snapshot
	for _, seg := range s.Segments {
		var snap core.Snapshot
		for _, name := range seg.Hold {
			snap[actionNames[name]] = true
		}
		for i := 0; i < seg.Ticks; i++ {
			out = append(out, snap)
		}
	}
	return out
}

// Input feeds the snapshots to a game loop and ends after the last one.
func (s *Script) Input() core.InputSource {
	snapshots := s.Snapshots()
	return func(tick int) (core.Snapshot, bool) {
		if tick >= len(snapshots) {
			return core.Snapshot{}, false
		}
		return snapshots[tick], true
	}
}
