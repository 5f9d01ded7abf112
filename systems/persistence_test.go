package systems

import (
	"os"
	"testing"

	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/systems/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// withTempPersistence points gdata at a fresh home directory.
func withTempPersistence(t *testing.T) {
	t.Helper()
	saved := gdataManager
	t.Cleanup(func() { gdataManager = saved })

	t.Setenv("HOME", t.TempDir())
	require.NoError(t, InitPersistence())
}

func pressOnce(e *ecs.ECS, id cfg.ActionID) {
	var snapshot [cfg.ActionCount]bool
	snapshot[id] = true
	sim.QueueInput(e, snapshot)
	sim.UpdateInput(e)
}

func TestSaveSettingsWithoutPersistence(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	t.Cleanup(func() { gdataManager = saved })

	assert.NoError(t, SaveCurrentSettings(&components.SettingsData{Debug: true}))
	loaded, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSaveCurrentSettingsRoundTrip(t *testing.T) {
	withTempPersistence(t)

	require.NoError(t, SaveCurrentSettings(&components.SettingsData{Debug: true, Muted: true}))
	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Debug)
	assert.True(t, loaded.Muted)
}

func TestFailedSaveIsReported(t *testing.T) {
	withTempPersistence(t)
	// a directory where the settings file belongs makes every write fail
	require.NoError(t, os.Mkdir(gdataManager.ItemPath(settingsKey), 0o755))

	assert.Error(t, SaveCurrentSettings(&components.SettingsData{Debug: true}))

	e := ecs.NewECS(donburi.NewWorld())
	pressOnce(e, cfg.ActionDebug)
	UpdateSettings(e)

	settings := GetOrCreateSettings(e)
	assert.True(t, settings.Debug)
	assert.True(t, settings.Unsaved)
	assert.Contains(t, hudLines(e), "settings not saved")
}

func TestSuccessfulSaveClearsUnsaved(t *testing.T) {
	withTempPersistence(t)

	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateSettings(e).Unsaved = true
	pressOnce(e, cfg.ActionMute)
	UpdateSettings(e)

	settings := GetOrCreateSettings(e)
	assert.True(t, settings.Muted)
	assert.False(t, settings.Unsaved)
	assert.NotContains(t, hudLines(e), "settings not saved")
}
