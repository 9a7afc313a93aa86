package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"lifesim/config"
	"lifesim/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (or set "+config.EnvConfigPath+")")
	profilesDir := flag.String("profiles", "profiles", "Directory for FPS drop profiles")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := game.OpenSettingsStore("lifesim")
	if err != nil {
		log.Printf("Warning: %v (settings will not be saved)", err)
	}

	g, err := game.NewGame(cfg, game.Options{
		Settings:    game.NewSettingsManager(store),
		Audio:       audio.NewContext(game.SampleRate),
		ProfilesDir: *profilesDir,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Lifesim")
	ebiten.SetWindowResizable(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(cfg.TPS)

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		log.Printf("Warning: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
