package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hoverdash/internal/config"
)

var flagLevelsFile string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the difficulty ladder",
	Long: `Show the tuning table a run climbs through: scroll speed, gate gap,
gate spacing, gates per level and trap odds.

Pass --levels to inspect a custom table before playing it.

Examples:
  hoverdash levels
  hoverdash levels --levels ./my-ladder.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsFile, "levels", "", "Path to custom level table YAML")
}

func runLevels(cmd *cobra.Command, args []string) {
	set, err := config.Load(flagLevelsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level table: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty ladder:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-6s  %-5s  %-8s  %-5s  %-6s  %s\n",
		"Level", "Speed", "Gap", "Spacing", "Gates", "Trap%", "Color")
	fmt.Printf("  %-5s  %-6s  %-5s  %-8s  %-5s  %-6s  %s\n",
		"-----", "-----", "---", "-------", "-----", "-----", "-----")

	// Print tiers
	for i, lvl := range set.Levels {
		fmt.Printf("  %-5d  %-6.1f  %-5.2f  %-8.1f  %-5d  %-6.0f  %s\n",
			i+1, lvl.GameSpeed, lvl.GapHeight, lvl.PipeSpacing,
			lvl.PipeCount, lvl.TrapChance*100, lvl.Color)
	}

	fmt.Println()
	if set.FinalLevel > len(set.Levels) {
		fmt.Printf("Levels %d-%d reuse the last tier's tuning.\n", len(set.Levels)+1, set.FinalLevel)
	}
	fmt.Printf("Clearing level %d wins the run.\n", set.FinalLevel)
}
