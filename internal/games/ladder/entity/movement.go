package entity

import "github.com/vovakirdan/tui-ladder/internal/games/ladder/field"

// maxPasses bounds the re-evaluation done when a walk runs off a ledge.
const maxPasses = 2

// ApplyMovement advances e by one move frame against t and returns the number
// of evaluation passes it took: 1 normally, 2 when a walking entity found
// itself unsupported and started falling in the same frame. Dying and dead
// entities are not moved and report 0.
func ApplyMovement(e *Entity, t Terrain) int {
	if !e.Alive() {
		return 0
	}
	for pass := 1; ; pass++ {
		if !step(e, t) || pass == maxPasses {
			return pass
		}
	}
}

// step runs one evaluation and reports whether it must be repeated.
func step(e *Entity, t Terrain) bool {
	resolveQueued(e)
	resolveRequest(e, t)
	return move(e, t)
}

// resolveQueued lets a compatible intention replace the current state.
func resolveQueued(e *Entity) {
	if e.Next == None {
		return
	}
	switch e.State {
	case Stopped, Left, Right:
		switch e.Next {
		case Left, Right, Stopped:
			e.State, e.Next = e.Next, None
		}
	case Up, Down:
		if e.Next == Left || e.Next == Right {
			e.State, e.Next = e.Next, None
		}
	case JumpLeft, JumpRight, JumpUp:
		// Mid-air steering. Up stays queued for a ladder landing.
		switch e.Next {
		case Right:
			e.State = JumpRight
		case Left:
			e.State = JumpLeft
		case Down:
			e.State, e.Next = Falling, None
		}
	}
}

// resolveRequest handles intentions that depend on terrain: jumping and
// getting on a ladder. Up and Down are honored as soon as a ladder is
// reachable, so they can be pressed early.
func resolveRequest(e *Entity, t Terrain) {
	switch {
	case e.Next == StartJump:
		startJump(e, t)
	case e.Next == Up && t.IsLadder(e.X, e.Y):
		e.State, e.Next = Up, None
	case e.Next == Down && (t.IsLadder(e.X, e.Y) || t.IsLadder(e.X, e.Y+1)):
		e.State, e.Next = Down, None
	}
}

func startJump(e *Entity, t Terrain) {
	if !t.OnSolid(e.X, e.Y) {
		// No jumping in mid-air; keep whatever motion resumes afterwards.
		e.Next = resumeAfter(e.State)
		return
	}
	switch e.State {
	case Stopped, Falling, JumpUp:
		beginJump(e, JumpUp, Stopped)
	case Left, JumpLeft:
		beginJump(e, JumpLeft, Left)
	case Right, JumpRight:
		beginJump(e, JumpRight, Right)
	}
	// On a ladder the request waits until the climb ends.
}

func beginJump(e *Entity, jump, resume State) {
	e.State = jump
	e.JumpStep = 0
	e.Next = resume
}

func resumeAfter(s State) State {
	switch s {
	case Left, JumpLeft:
		return Left
	case Right, JumpRight:
		return Right
	}
	return None
}

// land switches to the queued state, or Stopped when nothing usable is queued.
func land(e *Entity) {
	next := e.Next
	if !next.Valid() || next == Dying || next == Dead {
		next = Stopped
	}
	e.State, e.Next = next, None
}

func move(e *Entity, t Terrain) bool {
	switch e.State {
	case Left, Right:
		dx := 1
		if e.State == Left {
			dx = -1
		}
		if !t.OnSolid(e.X, e.Y) {
			e.State, e.Next = Falling, e.State
			return true
		}
		if t.EmptySpace(e.X+dx, e.Y) {
			e.X += dx
		} else {
			e.State = Stopped
		}

	case Up:
		if t.CanClimbUp(e.X, e.Y-1) {
			e.Y--
		} else {
			e.State = Stopped
		}

	case Down:
		if t.CanClimbDown(e.X, e.Y+1) {
			e.Y++
		} else {
			e.State = Stopped
		}

	case JumpLeft, JumpRight, JumpUp:
		jump(e, t)

	case Falling:
		if t.OnSolid(e.X, e.Y) {
			land(e)
		} else {
			e.Y++
		}
	}
	return false
}

func jump(e *Entity, t Terrain) {
	frames, _ := JumpFrames(e.State)
	if e.JumpStep < 0 || e.JumpStep >= JumpLength {
		land(e)
		return
	}
	off := frames[e.JumpStep]
	tx, ty := e.X+off.DX, e.Y+off.DY

	if tx < 0 || tx >= field.Cols {
		if t.OnSolid(e.X, e.Y) {
			land(e)
		} else {
			e.State, e.Next = Falling, Stopped
		}
		return
	}

	switch {
	case t.BlocksJump(tx, ty):
		if t.OnSolid(e.X, e.Y) {
			land(e)
			return
		}
		switch e.State {
		case JumpRight:
			e.Next = Right
		case JumpLeft:
			e.Next = Left
		case JumpUp:
			e.Next = Up
		}
		e.State = Falling

	case t.IsLadder(tx, ty):
		e.X, e.Y = tx, ty
		if e.Next == Up {
			e.State = Up
		} else {
			e.State = Stopped
		}
		e.Next = None

	default:
		e.X, e.Y = tx, ty
		e.JumpStep++
		if e.JumpStep >= JumpLength {
			land(e)
		}
	}
}
