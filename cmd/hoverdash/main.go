// hoverdash is a 3D arcade flight game played in the terminal.
//
// Usage:
//
//	hoverdash play               - Fly the gauntlet
//	hoverdash scores             - Show the top runs
//	hoverdash levels             - Print the difficulty ladder
//	hoverdash serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.hoverdash/hoverdash.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoverdash",
	Short: "Hoverdash - 3D arcade flight in your terminal",
	Long: `Hoverdash is a terminal flight game: pilot a hovering craft down a
corridor of gated walls, grab coins that may turn out to be traps, and
climb a difficulty ladder that ends in victory.

Available commands:
  play     - Fly the gauntlet
  scores   - View the top runs
  levels   - Print the difficulty ladder
  serve    - Start SSH server for remote play

Examples:
  hoverdash play
  hoverdash play --seed 42
  hoverdash scores
  hoverdash serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hoverdash/hoverdash.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
}
