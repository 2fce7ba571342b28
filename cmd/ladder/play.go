package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladder/internal/games/ladder"
	"github.com/vovakirdan/tui-ladder/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Ladder",
	Long: `Start a game straight away, skipping the menu.

Controls:
  W/A/S/D or arrows  - Move (any other key stops)
  Space              - Jump
  Esc                - Pause
  Return             - Resume
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slowest speed, 7 Lads
  normal - Speed 1, 5 Lads
  hard   - Speed 3, 3 Lads
  fixed  - No speed-up or extra rocks on later cycles

Examples:
  ladder play
  ladder play --difficulty hard
  ladder play --speed 0 --seed 42
  ladder play --config ./my-ladder.yaml --log ladder.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	loadLevels()

	store := openStore()
	_, err := tui.Run(ladder.New(), store, runtimeConfig())
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
