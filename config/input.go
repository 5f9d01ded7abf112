package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionAttack
	ActionDebug
	ActionMute
	ActionReset
	ActionQuit
	ActionCount // Must be last - used for array sizing
)
