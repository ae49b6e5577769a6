package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/necromancer/internal/application/game"
	"github.com/younwookim/necromancer/internal/application/replay"
	"github.com/younwookim/necromancer/internal/application/scene/battle"
	"github.com/younwookim/necromancer/internal/infrastructure/assets"
	"github.com/younwookim/necromancer/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads game.json and a scenario from the embedded configs
func loadConfig(scenario string) (fs.FS, *config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(fsys, ".").LoadAll(scenario)
	if err != nil {
		return nil, nil, err
	}
	return fsys, cfg, nil
}

// loadReplayer opens a replay file; an empty path means no replay
func loadReplayer(path string) (*replay.Replayer, error) {
	if path == "" {
		return nil, nil
	}
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, err
	}
	return replay.NewReplayer(*data), nil
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back input from file (e.g., -replay replay.json)")
	scenarioFlag := flag.String("scenario", "skirmish", "Scenario under configs/scenarios")
	flag.Parse()

	fsys, cfg, err := loadConfig(*scenarioFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	replayer, err := loadReplayer(*replayFlag)
	if err != nil {
		log.Fatalf("Failed to load replay: %v", err)
	}
	if replayer != nil && replayer.Scenario() != cfg.Scenario.Name {
		log.Printf("Replay was recorded on %q, playing on %q", replayer.Scenario(), cfg.Scenario.Name)
	}

	lib, err := assets.Load(fsys, cfg.Settings)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	b, err := battle.New(cfg, lib, *recordFlag, replayer)
	if err != nil {
		log.Fatalf("Failed to create battle: %v", err)
	}

	display := cfg.Settings.Display
	g := game.New(b, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
