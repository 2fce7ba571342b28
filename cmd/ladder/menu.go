package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladder/internal/games/ladder"
	"github.com/vovakirdan/tui-ladder/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start Ladder in interactive menu mode.

The menu lets you play, pick the speed, read the instructions and see the
top scores. After a game you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change speed
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  ladder menu
  ladder menu --fps 30
  ladder menu --db postgres://ladder@localhost/ladder?sslmode=disable`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	loadLevels()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	opts := menuOptions()

	for {
		res, err := tui.RunMenu(store, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config
		opts.Speed = res.Speed

		switch {
		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, ladder.ID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		case res.Play:
			game := ladder.New()
			game.SetPlaySpeed(res.Speed)
			goBack, err := tui.Run(game, store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
