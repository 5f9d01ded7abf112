package config

// PhaseID identifies one phase of the attacker's action state machine.
type PhaseID int

const (
	PhaseIdle PhaseID = iota
	PhaseWalk
	PhasePreAttack
	PhaseActiveAttack
	PhaseRecover
	PhaseCount
)

var phaseNames = map[PhaseID]string{
	PhaseIdle:         "idle",
	PhaseWalk:         "walk",
	PhasePreAttack:    "pre_attack",
	PhaseActiveAttack: "active_attack",
	PhaseRecover:      "recover",
}

func (p PhaseID) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Attacking reports whether the phase locks out movement input.
func (p PhaseID) Attacking() bool {
	return p == PhasePreAttack || p == PhaseActiveAttack
}

// Direction is a horizontal facing or intent.
type Direction int

const (
	DirectionNone  Direction = 0
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

func (d Direction) Sign() float64 {
	return float64(d)
}

func (d Direction) Opposite() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}
