package entity

import "github.com/vovakirdan/tui-ladder/internal/core"

// Terrain is the read-only view of the tile grid that movement needs.
// *field.Field satisfies it.
type Terrain interface {
	OnSolid(x, y int) bool
	EmptySpace(x, y int) bool
	BlocksJump(x, y int) bool
	IsLadder(x, y int) bool
	IsEater(x, y int) bool
	CanClimbUp(x, y int) bool
	CanClimbDown(x, y int) bool
}

// Entity is the record shared by every moving actor.
type Entity struct {
	X, Y  int
	State State
	// Next is the queued intention, None when nothing is queued.
	Next      State
	JumpStep  int
	DeathStep int
}

// Pos returns the entity's cell.
func (e *Entity) Pos() core.Point {
	return core.Pt(e.X, e.Y)
}

// Alive reports whether the entity still takes part in the simulation.
func (e *Entity) Alive() bool {
	return e.State != Dying && e.State != Dead
}

// Kill starts the death animation. Entities already dying are left alone.
func (e *Entity) Kill() {
	if !e.Alive() {
		return
	}
	e.State = Dying
	e.DeathStep = 0
	e.Next = None
}

// advanceDeath moves the death animation one frame and ends in Dead after
// frames steps.
func (e *Entity) advanceDeath(frames int) {
	if e.State != Dying {
		return
	}
	e.DeathStep++
	if e.DeathStep >= frames {
		e.State = Dead
	}
}
