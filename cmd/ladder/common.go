package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladder/internal/config"
	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/levels"
	"github.com/vovakirdan/tui-ladder/internal/platform/tui"
	"github.com/vovakirdan/tui-ladder/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score store, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// loadLevels loads the level set named by --levels. Bad level files are
// fatal here so they are reported before the terminal switches screens.
func loadLevels() *levels.Set {
	if flagLevels == "" {
		return levels.Default()
	}
	set, err := levels.LoadFile(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return set
}

// menuOptions builds the main menu from the effective ladder config.
func menuOptions() tui.MenuOptions {
	cfg, err := config.LoadLadder(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.DefaultLadderConfig()
	}
	if p, ok := config.ParsePreset(flagDifficulty); ok && flagDifficulty != "" {
		config.ApplyLadderPreset(&cfg, p)
	}
	if flagSpeed >= 0 {
		cfg.SetSpeed(flagSpeed)
	}
	return tui.MenuOptions{
		GameID: ladder.ID,
		Speeds: cfg.Speed.PlaySpeeds,
		Speed:  cfg.Speed.Default,
	}
}
