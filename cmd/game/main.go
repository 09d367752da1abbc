package main

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/loadscreen/internal/application/game"
	"github.com/younwookim/loadscreen/internal/infrastructure/config"
)

func loadConfig() (*config.AppConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadApp()
}

func main() {
	// Load configuration using embedded filesystem
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Config loaded: %dx%d @ %d TPS, loading for %.1fs",
		cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate, cfg.Loading.Duration)

	g := game.New(cfg)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
