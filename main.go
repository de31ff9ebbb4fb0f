package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/config"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/game"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// An episode wins over a single level file
	var episode *config.EpisodeConfig
	levelPath := cfg.Level.Path
	if cfg.Level.Episode != "" {
		episode = config.MustLoadEpisodeConfig(cfg.Level.Episode)
		levelPath = episode.LevelPath(0)
	}

	lvl, err := level.Load(levelPath)
	if err != nil {
		log.Fatal(err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.GetWindowTitle())
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.GetTicsPerSecond())

	g, err := game.New(cfg, lvl)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()
	if episode != nil {
		g.SetEpisode(episode, 0)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
