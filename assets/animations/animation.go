package animations

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoFrames   = errors.New("animation has no frames")
	ErrInvalidFPS = errors.New("animation fps must be positive")
)

// Animation steps an index through a list of frame ids at a fixed rate.
// The zero value is a valid animation that never advances and has no frame.
type Animation struct {
	frames  []string
	period  time.Duration
	loop    bool
	index   int
	elapsed time.Duration
	done    bool
}

// New builds an animation playing frames at fps. A non-looping animation
// stops on its last frame and reports Done until Reset.
func New(frames []string, fps float64, loop bool) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if fps <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFPS, fps)
	}

	return newWithPeriod(frames, time.Duration(float64(time.Second)/fps), loop), nil
}

func newWithPeriod(frames []string, period time.Duration, loop bool) *Animation {
	return &Animation{frames: frames, period: period, loop: loop}
}

// ForDuration builds a one-shot animation whose frames exactly span d.
func ForDuration(frames []string, d time.Duration) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if d <= 0 {
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidFPS, d)
	}
	return newWithPeriod(frames, d/time.Duration(len(frames)), false), nil
}

func (a *Animation) Update(dt time.Duration) {
	if a.done || len(a.frames) == 0 || a.period <= 0 {
		return
	}

	a.elapsed += dt
	for a.elapsed >= a.period {
		a.elapsed -= a.period
		a.index++

		if a.index >= len(a.frames) {
			if a.loop {
				a.index = 0
				continue
			}
			a.index = len(a.frames) - 1
			a.done = true
			return
		}
	}
}

func (a *Animation) Reset() {
	a.index = 0
	a.elapsed = 0
	a.done = false
}

func (a *Animation) Index() int {
	return a.index
}

func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Looping() bool {
	return a.loop
}

// Frame returns the current frame id, or false for an empty animation.
func (a *Animation) Frame() (string, bool) {
	if len(a.frames) == 0 {
		return "", false
	}
	return a.frames[a.index], true
}

func (a *Animation) Len() int {
	return len(a.frames)
}
