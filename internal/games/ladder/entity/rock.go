package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/field"
)

var rockDeathFrames = []rune{'%', ':'}

// Down appears twice so rocks take a ladder half the time.
var ladderChoices = [...]State{Left, Right, Down, Down}

// Rock is Der Rock, an autonomous hazard.
type Rock struct {
	Entity
}

// NewRock spawns a falling rock just below a dispenser.
func NewRock(dispenser core.Point) *Rock {
	return &Rock{Entity: Entity{X: dispenser.X, Y: dispenser.Y + 1, State: Falling}}
}

// Update decides the rock's next move and applies it. It runs on move frames
// only and returns the movement pass count.
func (r *Rock) Update(t Terrain, rng *rand.Rand) int {
	if !r.Alive() {
		return 0
	}

	if r.State == Stopped {
		leftOpen := r.X > 0 && t.EmptySpace(r.X-1, r.Y)
		rightOpen := r.X < field.Cols-1 && t.EmptySpace(r.X+1, r.Y)
		switch {
		case leftOpen && rightOpen:
			if rng.Intn(2) == 0 {
				r.Next = Left
			} else {
				r.Next = Right
			}
		case leftOpen:
			r.Next = Left
		case rightOpen:
			r.Next = Right
		default:
			r.Next = Falling
		}
	}

	if r.X == 0 && r.State == Left {
		r.State = Right
	}
	if r.X == field.Cols-1 && r.State == Right {
		r.State = Left
	}

	if r.State != Falling && !t.OnSolid(r.X, r.Y) {
		if r.State == Stopped {
			r.State = Falling
		} else {
			r.Next = Falling
		}
	}

	if (r.State == Left || r.State == Right) && t.IsLadder(r.X, r.Y+1) {
		r.Next = ladderChoices[rng.Intn(len(ladderChoices))]
	}

	// Eaters swallow rocks whole, no animation.
	if t.IsEater(r.X, r.Y) {
		r.State, r.Next = Dead, None
		return 0
	}

	return ApplyMovement(&r.Entity, t)
}

// Animate advances the death animation. It runs every tick.
func (r *Rock) Animate() {
	r.advanceDeath(len(rockDeathFrames))
}

// Glyph returns the character the rock is drawn with.
func (r *Rock) Glyph() rune {
	if r.State == Dying {
		return rockDeathFrames[min(r.DeathStep, len(rockDeathFrames)-1)]
	}
	return 'o'
}
