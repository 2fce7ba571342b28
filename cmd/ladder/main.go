// ladder is a terminal remake of the classic Ladder maze platformer.
//
// Usage:
//
//	ladder                   - Start with the main menu
//	ladder play              - Play straight away
//	ladder menu              - Main menu: play, speed, scores, instructions
//	ladder levels            - List the levels
//	ladder scores            - Show high scores
//	ladder serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path|dsn>        - Score database path or postgres:// DSN
//	--config <path>        - Ladder config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--speed <n>            - Play speed index (0 = slowest)
//	--levels <path>        - Replace the built-in levels with a YAML file
//	--log <path>           - Write the game log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladder/internal/config"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder"
	"github.com/vovakirdan/tui-ladder/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSpeed      int
	flagLevels     string
	flagLog        string
)

// logFile is closed when the command finishes.
var logFile io.Closer

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Ladder - the classic maze platformer in your terminal",
	Long: `Ladder is a remake of the classic CP/M game. Guide your Lad through
seven levels of floors, ladders and falling Der rocks to the treasure
before the bonus time runs out.

Available commands:
  play     - Start a game directly
  menu     - Main menu (the default)
  levels   - List the levels
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  ladder
  ladder play --difficulty hard
  ladder play --levels ./my-levels.yaml
  ladder scores
  ladder serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: applySettings,
	Run:               runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Scores database path or postgres:// DSN")
	pf.StringVar(&flagConfig, "config", "", "Path to custom ladder config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagSpeed, "speed", -1, "Play speed index, 0 = slowest (default from config)")
	pf.StringVar(&flagLevels, "levels", "", "Path to a levels YAML file")
	pf.StringVar(&flagLog, "log", "", "Write the game log to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// applySettings validates the global flags and hands them to the game
// package before any game is created.
func applySettings(_ *cobra.Command, _ []string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	ladder.SetConfigPath(flagConfig)
	ladder.SetDifficultyPreset(flagDifficulty)
	ladder.SetSpeed(flagSpeed)
	ladder.SetLevelsPath(flagLevels)

	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		ladder.SetLogger(log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "ladder",
			Level:           log.DebugLevel,
		}))
	}
	return nil
}
