package main

import (
	"flag"
	"log"

	"github.com/automoto/bellybump/assets"
	"github.com/automoto/bellybump/config"
	"github.com/automoto/bellybump/fonts"
	"github.com/automoto/bellybump/scenes"
	"github.com/automoto/bellybump/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	arenaPath := flag.String("arena", assets.DefaultArena, "embedded arena map to load")
	tuningPath := flag.String("tuning", "", "YAML file overriding the default tuning, reloaded on change")
	debug := flag.Bool("debug", false, "start with the hitbox overlay on")
	logTransitions := flag.Bool("log-transitions", false, "log every attacker phase change")
	flag.Parse()

	config.Debug.Overlay = *debug
	config.Debug.LogTransitions = *logTransitions

	var tuning <-chan *config.Tuning
	if *tuningPath != "" {
		base := config.Current()
		t, err := config.LoadOnto(*tuningPath, base)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if err := config.Apply(t); err != nil {
			log.Fatalf("Failed to apply tuning: %v", err)
		}

		watcher, err := config.WatchTuning(*tuningPath, base)
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			tuning = watcher.Updates
		}
	}

	arena, err := assets.LoadArena(*arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings() // logged inside, defaults apply

	// Preload sounds so the first hit does not stall a frame
	systems.PreloadAllSFX()

	scene, err := scenes.NewArenaScene(arena, saved, tuning)
	if err != nil {
		log.Fatalf("Failed to create arena: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Belly Bump")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
