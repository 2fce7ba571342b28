package config

import (
	_ "embed"
)

//go:embed defaults/ladder.yaml
var defaultLadderYAML []byte

// DefaultLadderConfig returns the default Ladder configuration.
func DefaultLadderConfig() LadderConfig {
	return LadderConfig{
		Speed: LadderSpeed{
			PlaySpeeds:   []int{10, 20, 40, 76, 142},
			Default:      1,
			CycleSpeedup: 0.1,
		},
		Lives: LadderLives{
			Start:          5,
			ExtraLifeEvery: 10000,
		},
		Scoring: LadderScoring{
			Rock:         200,
			TreasureTick: 10,
		},
		Rocks: LadderRocks{
			BaseMax:      5,
			PerDispenser: 1,
			PerCycle:     2,
			SpawnChance:  0.09,
		},
		Difficulty: LadderDifficulty{
			Preset:  DifficultyNormal,
			Ratchet: true,
		},
	}
}
