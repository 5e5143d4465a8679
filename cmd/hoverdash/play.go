package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hoverdash/internal/audio"
	"hoverdash/internal/config"
	"hoverdash/internal/core"
	"hoverdash/internal/game"
	"hoverdash/internal/platform/tui"
	"hoverdash/internal/storage"
)

var flagLevels string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the gauntlet",
	Long: `Start a run.

Controls:
  Space/Up/W   - Flap
  Left click   - Flap (drag orbits the camera during setup)
  Wheel / +/-  - Zoom
  C            - Adjust camera mid-run (pauses the game)
  P            - Pause
  M / N        - Toggle music / sound effects
  R            - Restart after game over
  Q/Ctrl+C     - Quit

The run starts in camera setup: drag or use +/- to frame the corridor,
then press Enter. Camera and audio preferences persist between runs.

Examples:
  hoverdash play
  hoverdash play --seed 42
  hoverdash play --fps 30
  hoverdash play --levels ./my-ladder.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to custom level table YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// A custom level table that does not parse or validate is the one
	// fatal startup path; the embedded table never fails.
	levels, err := config.Load(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level table: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	set := core.DefaultSettings()
	if store != nil {
		if loaded, loadErr := store.LoadSettings(); loadErr == nil {
			set = loaded
		}
	}

	// Bring up the speaker. Sound is optional: on failure the run is silent.
	player := audio.NewPlayer()
	if initErr := player.Init(); initErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", initErr)
		player = nil
	}

	g := game.New(levels)

	runErr := tui.Run(g, store, player, cfg, set)

	// Release collaborators before potential exit
	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
