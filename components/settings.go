package components

import "github.com/yohamta/donburi"

// SettingsData holds the user toggles that survive restarts.
type SettingsData struct {
	Debug bool
	Muted bool
	// Unsaved is set when the last toggle could not be written to disk.
	Unsaved bool
}

var Settings = donburi.NewComponentType[SettingsData]()
