package config

// AnimationDef describes one animation. Timed animations ignore FPS and
// spread their frames over the phase's configured duration as a one-shot.
type AnimationDef struct {
	Frames []string
	FPS    float64
	Loop   bool
	Timed  bool
}

// AttackerAnimations maps each phase to the frames it shows.
var AttackerAnimations = map[PhaseID]AnimationDef{
	PhaseIdle:         {Frames: []string{"bigboy/idle"}, FPS: 1, Loop: true},
	PhaseWalk:         {Frames: []string{"bigboy/walk/0", "bigboy/walk/1"}, FPS: 6, Loop: true},
	PhasePreAttack:    {Frames: []string{"bigboy/pre_belly_bump"}, Timed: true},
	PhaseActiveAttack: {Frames: []string{"bigboy/belly_bump"}, Timed: true},
	PhaseRecover:      {Frames: []string{"bigboy/idle"}, Timed: true},
}

// Opponent frames. The dummy has no phases, its frame follows its timers.
const (
	OpponentFrameIdle    = "dummy/idle"
	OpponentFrameHit     = "dummy/hit"
	OpponentFrameStunned = "dummy/stunned"
)

var OpponentAnimation = AnimationDef{
	Frames: []string{OpponentFrameIdle},
	FPS:    1,
	Loop:   true,
}
