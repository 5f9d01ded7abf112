package systems

import (
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/systems/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay and mute toggles. Every change
// is saved right away.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)

	changed := false
	if sim.InputAction(e, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if sim.InputAction(e, cfg.ActionMute).JustPressed {
		settings.Muted = !settings.Muted
		sim.SetMuted(e, settings.Muted)
		changed = true
	}

	if changed {
		settings.Unsaved = SaveCurrentSettings(settings) != nil
	}
}

// ApplySavedSettings copies loaded settings into the scene. The debug flag
// from the command line wins over a saved "off".
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	settings := GetOrCreateSettings(e)
	if saved != nil {
		settings.Debug = saved.Debug
		settings.Muted = saved.Muted
	}
	settings.Debug = settings.Debug || cfg.Debug.Overlay
	sim.SetMuted(e, settings.Muted)
}

// DebugEnabled reports whether the debug overlay should be drawn.
func DebugEnabled(e *ecs.ECS) bool {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return cfg.Debug.Overlay
	}
	return components.Settings.Get(entry).Debug
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}
