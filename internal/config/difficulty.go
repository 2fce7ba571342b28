package config

import "time"

// Ratchet derives the speed and rock cap of a level from the play speed and
// the number of completed level cycles (the hidden factor).
type Ratchet struct {
	speed   LadderSpeed
	rocks   LadderRocks
	enabled bool
}

// NewRatchet creates a ratchet for cfg.
func NewRatchet(cfg LadderConfig) *Ratchet {
	return &Ratchet{
		speed:   cfg.Speed,
		rocks:   cfg.Rocks,
		enabled: cfg.Difficulty.Ratchet,
	}
}

// IsEnabled returns whether completed cycles make the game harder.
func (r *Ratchet) IsEnabled() bool {
	return r.enabled
}

func (r *Ratchet) factor(hiddenFactor int) int {
	if !r.enabled || hiddenFactor < 0 {
		return 0
	}
	return hiddenFactor
}

// MoveDelay returns the time between move frames for a speed setting.
// Every level cycle shortens it by CycleSpeedup of the base delay, but it
// never drops below one millisecond.
func (r *Ratchet) MoveDelay(speedIdx, hiddenFactor int) time.Duration {
	speeds := r.speed.PlaySpeeds
	if len(speeds) == 0 {
		speeds = DefaultLadderConfig().Speed.PlaySpeeds
	}
	fps := speeds[clampSpeed(speedIdx, len(speeds))]
	if fps <= 0 {
		fps = 1
	}
	base := 1000.0 / float64(fps)
	hf := float64(r.factor(hiddenFactor))
	ms := int(base - hf*r.speed.CycleSpeedup*base)
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// MaxRocks returns how many rocks a level with the given number of
// dispensers may hold at once.
func (r *Ratchet) MaxRocks(dispensers, hiddenFactor int) int {
	return r.rocks.BaseMax + dispensers*r.rocks.PerDispenser + r.factor(hiddenFactor)*r.rocks.PerCycle
}

// SpawnChance returns the per move frame chance of a new rock.
func (r *Ratchet) SpawnChance() float64 {
	return r.rocks.SpawnChance
}
