package config

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultLevels returns the built-in difficulty ladder. It mirrors the
// embedded YAML and serves as the last-resort fallback if the embedded
// document fails to parse.
func DefaultLevels() LevelSet {
	return LevelSet{
		FinalLevel: 12,
		Levels: []LevelConfig{
			{GameSpeed: 4.0, GapHeight: 3.0, PipeSpacing: 14.0, PipeCount: 10, TrapChance: 0.10, Color: "#43a047"},
			{GameSpeed: 4.5, GapHeight: 2.9, PipeSpacing: 13.5, PipeCount: 12, TrapChance: 0.14, Color: "#7cb342"},
			{GameSpeed: 5.0, GapHeight: 2.8, PipeSpacing: 13.0, PipeCount: 14, TrapChance: 0.18, Color: "#c0ca33"},
			{GameSpeed: 5.5, GapHeight: 2.7, PipeSpacing: 12.5, PipeCount: 16, TrapChance: 0.22, Color: "#fdd835"},
			{GameSpeed: 6.0, GapHeight: 2.6, PipeSpacing: 12.0, PipeCount: 18, TrapChance: 0.26, Color: "#ffb300"},
			{GameSpeed: 6.5, GapHeight: 2.5, PipeSpacing: 11.5, PipeCount: 20, TrapChance: 0.30, Color: "#fb8c00"},
			{GameSpeed: 7.0, GapHeight: 2.4, PipeSpacing: 11.0, PipeCount: 22, TrapChance: 0.34, Color: "#f4511e"},
			{GameSpeed: 7.5, GapHeight: 2.3, PipeSpacing: 10.5, PipeCount: 24, TrapChance: 0.38, Color: "#e53935"},
			{GameSpeed: 8.0, GapHeight: 2.15, PipeSpacing: 10.0, PipeCount: 26, TrapChance: 0.42, Color: "#d81b60"},
			{GameSpeed: 8.5, GapHeight: 2.0, PipeSpacing: 9.5, PipeCount: 28, TrapChance: 0.46, Color: "#ffca28"},
		},
	}
}
