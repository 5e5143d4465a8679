// Package config provides the YAML-based level tuning table: per-level
// speed, gap, spacing, obstacle count, hazard probability and color.
package config

import "fmt"

// LevelConfig holds the tuning parameters for a single level. The table
// is ordered by increasing difficulty and never mutated at runtime.
type LevelConfig struct {
	GameSpeed   float64 `yaml:"game_speed"`   // scroll speed, units/second
	GapHeight   float64 `yaml:"gap_height"`   // vertical opening in each gate
	PipeSpacing float64 `yaml:"pipe_spacing"` // distance between consecutive gates
	PipeCount   int     `yaml:"pipe_count"`   // gates to pass to finish the level
	TrapChance  float64 `yaml:"trap_chance"`  // probability a coin is a trap
	Color       string  `yaml:"color"`        // gate color, hex
}

// LevelSet is the full difficulty ladder plus the level at which the
// game ends. FinalLevel may exceed the table length: tuning clamps to
// the last authored tier while the level counter keeps climbing.
type LevelSet struct {
	Levels     []LevelConfig `yaml:"levels"`
	FinalLevel int           `yaml:"final_level"`
}

// Level returns the tuning for a 1-based level number. Levels past the
// end of the table clamp to the last entry so difficulty plateaus.
func (s LevelSet) Level(n int) LevelConfig {
	if n < 1 {
		n = 1
	}
	if n > len(s.Levels) {
		n = len(s.Levels)
	}
	return s.Levels[n-1]
}

// Validate checks that the set is playable and ordered by increasing
// difficulty. A valid set has at least one level, sane per-level values,
// and monotone progression: speed, count and trap chance never decrease,
// gap and spacing never increase.
func (s LevelSet) Validate() error {
	if len(s.Levels) == 0 {
		return fmt.Errorf("level table is empty")
	}
	if s.FinalLevel < len(s.Levels) {
		return fmt.Errorf("final_level %d is below the table length %d", s.FinalLevel, len(s.Levels))
	}
	for i, lvl := range s.Levels {
		n := i + 1
		if lvl.GameSpeed <= 0 {
			return fmt.Errorf("level %d: game_speed must be positive", n)
		}
		if lvl.GapHeight <= 0 {
			return fmt.Errorf("level %d: gap_height must be positive", n)
		}
		if lvl.PipeSpacing <= 0 {
			return fmt.Errorf("level %d: pipe_spacing must be positive", n)
		}
		if lvl.PipeCount <= 0 {
			return fmt.Errorf("level %d: pipe_count must be positive", n)
		}
		if lvl.TrapChance < 0 || lvl.TrapChance > 1 {
			return fmt.Errorf("level %d: trap_chance must be in [0,1]", n)
		}
		if lvl.Color == "" {
			return fmt.Errorf("level %d: color must be set", n)
		}
		if i == 0 {
			continue
		}
		prev := s.Levels[i-1]
		if lvl.GameSpeed < prev.GameSpeed {
			return fmt.Errorf("level %d: game_speed decreases", n)
		}
		if lvl.GapHeight > prev.GapHeight {
			return fmt.Errorf("level %d: gap_height increases", n)
		}
		if lvl.PipeSpacing > prev.PipeSpacing {
			return fmt.Errorf("level %d: pipe_spacing increases", n)
		}
		if lvl.PipeCount < prev.PipeCount {
			return fmt.Errorf("level %d: pipe_count decreases", n)
		}
		if lvl.TrapChance < prev.TrapChance {
			return fmt.Errorf("level %d: trap_chance decreases", n)
		}
	}
	return nil
}
