// Package config provides YAML-based game configuration loading and
// difficulty management for Ladder.
package config

// LadderConfig contains all configuration for Ladder.
type LadderConfig struct {
	Speed      LadderSpeed      `yaml:"speed"`
	Lives      LadderLives      `yaml:"lives"`
	Scoring    LadderScoring    `yaml:"scoring"`
	Rocks      LadderRocks      `yaml:"rocks"`
	Difficulty LadderDifficulty `yaml:"difficulty"`
}

// LadderSpeed defines the move-frame cadence.
type LadderSpeed struct {
	PlaySpeeds   []int   `yaml:"play_speeds"`   // Move frames per second, slowest first
	Default      int     `yaml:"default"`       // Index into PlaySpeeds
	CycleSpeedup float64 `yaml:"cycle_speedup"` // Fraction the move delay shrinks per level cycle
}

// LadderLives defines the life budget.
type LadderLives struct {
	Start          int `yaml:"start"`
	ExtraLifeEvery int `yaml:"extra_life_every"` // Points per extra Lad, 0 disables
}

// LadderScoring defines point values. Statues always award the remaining
// bonus time.
type LadderScoring struct {
	Rock         int `yaml:"rock"`          // Jumping over a rock
	TreasureTick int `yaml:"treasure_tick"` // Per tick of bonus time drained after the treasure
}

// LadderRocks defines how many rocks a level may hold and how often they drop.
type LadderRocks struct {
	BaseMax      int     `yaml:"base_max"`
	PerDispenser int     `yaml:"per_dispenser"`
	PerCycle     int     `yaml:"per_cycle"`
	SpawnChance  float64 `yaml:"spawn_chance"` // Per move frame
}

// LadderDifficulty selects the preset and whether completed level cycles
// make the game harder.
type LadderDifficulty struct {
	Preset  DifficultyPreset `yaml:"preset"`
	Ratchet bool             `yaml:"ratchet"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	}
	return "", false
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
