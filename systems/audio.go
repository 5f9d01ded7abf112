package systems

import (
	"log"
	"sync"

	"github.com/automoto/bellybump/assets/sfx"
	"github.com/automoto/bellybump/components"
	cfg "github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/systems/sim"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *sfx.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = sfx.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio plays the sounds the simulation queued during the tick.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := sim.GetOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		playSFX(audioData, soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(audioData *components.AudioData, soundID cfg.SoundID) {
	if audioData.Muted || audioData.SFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	volume := audioData.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}
