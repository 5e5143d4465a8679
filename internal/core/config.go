package core

// RuntimeConfig is passed to the game at initialization.
// The seed drives every random draw in the simulation, so a fixed seed plus
// a fixed input script replays identically.
type RuntimeConfig struct {
	TickRate int   // simulation ticks per second (default 60)
	Seed     int64 // run seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{TickRate: 60, Seed: 0}
}

// GameState is the coarse per-tick status the platform needs for
// bookkeeping (score saving, restart gating). The full render state comes
// from the game's Snapshot instead.
type GameState struct {
	Score    int
	Level    int
	Lives    int
	GameOver bool // terminal: game over or victory
	Victory  bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
