package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [number]",
	Short: "List the levels, or draw one",
	Long: `Without an argument, list the levels in play order. With a level
number, draw that level's layout.

Examples:
  ladder levels
  ladder levels 3
  ladder levels --levels ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	set := loadLevels()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > set.Count() {
			return fmt.Errorf("level must be between 1 and %d", set.Count())
		}
		lvl := set.Load(n - 1)
		fmt.Fprintf(out, "Level %d - %s (bonus time %d)\n\n", n, lvl.Name, lvl.BonusTime)
		fmt.Fprintln(out, lvl.Field.String())
		return nil
	}

	fmt.Fprintf(out, "  %-3s  %-20s  %-10s  %s\n", "#", "Name", "Bonus", "Dispensers")
	fmt.Fprintf(out, "  %-3s  %-20s  %-10s  %s\n", "-", "----", "-----", "----------")
	for i := range set.Count() {
		lvl := set.Load(i)
		fmt.Fprintf(out, "  %-3d  %-20s  %-10d  %d\n", i+1, lvl.Name, lvl.BonusTime, len(lvl.Dispensers))
	}
	return nil
}
