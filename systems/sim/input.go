package sim

import (
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput promotes the queued snapshot to the current tick. It runs
// during hit-pause too, so a button held through the freeze is not seen as
// a fresh press afterwards.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = input.Next
}

// QueueInput stores the snapshot the next UpdateInput will consume.
func QueueInput(ecs *ecs.ECS, snapshot [cfg.ActionCount]bool) {
	getOrCreateInput(ecs).Next = snapshot
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// InputAction returns the state of an action for the tick just stepped.
func InputAction(ecs *ecs.ECS, id cfg.ActionID) components.ButtonState {
	return getOrCreateInput(ecs).Action(id)
}
