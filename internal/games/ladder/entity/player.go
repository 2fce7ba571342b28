package entity

import "github.com/vovakirdan/tui-ladder/internal/core"

var playerDeathFrames = []rune{'p', 'b', 'd', 'q', 'p', 'b', 'd', 'q', '-', '-', '_'}

// Player is the Lad.
type Player struct {
	Entity
}

// NewPlayer creates a standing player at (x, y).
func NewPlayer(x, y int) *Player {
	return &Player{Entity: Entity{X: x, Y: y, State: Stopped, Next: Stopped}}
}

// intentFor maps an input action to a queued intention. Actions that do not
// steer the Lad map to None.
func intentFor(a core.Action) State {
	switch a {
	case core.ActionUp:
		return Up
	case core.ActionDown:
		return Down
	case core.ActionLeft:
		return Left
	case core.ActionRight:
		return Right
	case core.ActionJump:
		return StartJump
	case core.ActionStop:
		return Stopped
	}
	return None
}

// Command queues the intention for a.
func (p *Player) Command(a core.Action) {
	if s := intentFor(a); s != None {
		p.Next = s
	}
}

// Update runs one move frame: it takes at most one buffered action from in
// and then moves. Returns the movement pass count.
func (p *Player) Update(in core.InputSource, t Terrain) int {
	if !p.Alive() {
		return 0
	}
	if in != nil {
		if a := in.LastAction(); intentFor(a) != None {
			p.Command(a)
			in.Consume(false)
		}
	}
	return ApplyMovement(&p.Entity, t)
}

// Animate advances the death animation. It runs every tick.
func (p *Player) Animate() {
	p.advanceDeath(len(playerDeathFrames))
}

// Glyph returns the character the player is drawn with.
func (p *Player) Glyph() rune {
	switch p.State {
	case Right, JumpRight, Up, Down:
		return 'p'
	case Left, JumpLeft:
		return 'q'
	case Falling:
		return 'b'
	case Dying:
		return playerDeathFrames[min(p.DeathStep, len(playerDeathFrames)-1)]
	case Dead:
		return '_'
	}
	return 'g'
}
