package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLadder loads Ladder configuration.
// Search order: customPath -> ~/.ladder/configs/ladder.yaml -> ./configs/ladder.yaml -> embedded default
// Files only need to set the keys they change; the rest keep default values.
func LoadLadder(customPath string) (LadderConfig, error) {
	cfg := DefaultLadderConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ladder.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.normalized(), nil
			}
			cfg = DefaultLadderConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "ladder.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.normalized(), nil
		}
		cfg = DefaultLadderConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLadderYAML, &cfg); err != nil {
		return DefaultLadderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ladder", "configs", filename)
}

// normalized replaces unusable values with defaults.
func (c LadderConfig) normalized() LadderConfig {
	def := DefaultLadderConfig()
	if len(c.Speed.PlaySpeeds) == 0 {
		c.Speed.PlaySpeeds = def.Speed.PlaySpeeds
	}
	for i, fps := range c.Speed.PlaySpeeds {
		if fps <= 0 {
			c.Speed.PlaySpeeds[i] = 1
		}
	}
	c.Speed.Default = clampSpeed(c.Speed.Default, len(c.Speed.PlaySpeeds))
	if c.Speed.CycleSpeedup < 0 || c.Speed.CycleSpeedup >= 1 {
		c.Speed.CycleSpeedup = def.Speed.CycleSpeedup
	}
	if c.Lives.Start <= 0 {
		c.Lives.Start = def.Lives.Start
	}
	if c.Rocks.SpawnChance < 0 || c.Rocks.SpawnChance > 1 {
		c.Rocks.SpawnChance = def.Rocks.SpawnChance
	}
	if _, ok := ParsePreset(string(c.Difficulty.Preset)); !ok {
		c.Difficulty.Preset = DifficultyNormal
	}
	return c
}

func clampSpeed(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// ApplyLadderPreset modifies the config based on a difficulty preset.
func ApplyLadderPreset(cfg *LadderConfig, preset DifficultyPreset) {
	def := DefaultLadderConfig()
	cfg.Difficulty.Preset = preset
	cfg.Difficulty.Ratchet = !IsFixedPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Default = 0
		cfg.Lives.Start = 7
	case DifficultyNormal, DifficultyFixed:
		cfg.Speed.Default = def.Speed.Default
	case DifficultyHard:
		cfg.Speed.Default = 3
		cfg.Lives.Start = 3
	}
	cfg.Speed.Default = clampSpeed(cfg.Speed.Default, len(cfg.Speed.PlaySpeeds))
}

// SetSpeed overrides the play speed, clamped to the configured speeds.
func (c *LadderConfig) SetSpeed(idx int) {
	c.Speed.Default = clampSpeed(idx, len(c.Speed.PlaySpeeds))
}
