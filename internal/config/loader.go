package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the level table.
// Search order: customPath -> ~/.hoverdash/levels.yaml -> ./configs/levels.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error: the
// player asked for that exact file. The implicit locations fall through
// silently to the embedded table.
func Load(customPath string) (LevelSet, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LevelSet{}, fmt.Errorf("failed to read level table %s: %w", customPath, err)
		}
		set, err := parse(data)
		if err != nil {
			return LevelSet{}, fmt.Errorf("level table %s: %w", customPath, err)
		}
		return set, nil
	}

	if userPath := userConfigPath("levels.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if set, err := parse(data); err == nil {
				return set, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "levels.yaml")); err == nil {
		if set, err := parse(data); err == nil {
			return set, nil
		}
	}

	if set, err := parse(defaultLevelsYAML); err == nil {
		return set, nil
	}
	return DefaultLevels(), nil // Fallback to hardcoded if embed fails
}

// parse unmarshals and validates a level-table document.
func parse(data []byte) (LevelSet, error) {
	var set LevelSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return LevelSet{}, fmt.Errorf("failed to parse level table: %w", err)
	}
	if err := set.Validate(); err != nil {
		return LevelSet{}, err
	}
	return set, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hoverdash", filename)
}
