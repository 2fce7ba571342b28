// Package entity implements the grid-aligned movement state machine shared
// by the Lad and Der Rocks.
package entity

// State is a discrete movement state. Most states double as directions:
// an entity keeps moving the way it was told until something changes it.
type State int

const (
	// None marks an empty intention slot. It is never a valid current state.
	None State = iota
	Stopped
	Up
	Left
	Down
	Right
	Falling
	StartJump // transient request, only ever queued
	JumpLeft
	JumpRight
	JumpUp
	Dying
	Dead

	numStates
)

var stateNames = [...]string{
	None:      "none",
	Stopped:   "stopped",
	Up:        "up",
	Left:      "left",
	Down:      "down",
	Right:     "right",
	Falling:   "falling",
	StartJump: "start_jump",
	JumpLeft:  "jump_left",
	JumpRight: "jump_right",
	JumpUp:    "jump_up",
	Dying:     "dying",
	Dead:      "dead",
}

func (s State) String() string {
	if s < 0 || s >= numStates {
		return "unknown"
	}
	return stateNames[s]
}

// Valid reports whether s may be held as a current state.
func (s State) Valid() bool {
	return s > None && s < numStates && s != StartJump
}

// Jumping reports whether s is one of the airborne jump states.
func (s State) Jumping() bool {
	return s == JumpLeft || s == JumpRight || s == JumpUp
}

// Offset is one step of a jump trajectory.
type Offset struct {
	DX, DY int
}

// JumpLength is the number of move frames a jump lasts.
const JumpLength = 6

// Jump trajectories. The straight-up jump spends one frame less in the air.
var jumpFrames = map[State][JumpLength]Offset{
	JumpRight: {{1, -1}, {1, -1}, {1, 0}, {1, 0}, {1, 1}, {1, 1}},
	JumpLeft:  {{-1, -1}, {-1, -1}, {-1, 0}, {-1, 0}, {-1, 1}, {-1, 1}},
	JumpUp:    {{0, -1}, {0, -1}, {0, 0}, {0, 1}, {0, 1}, {0, 0}},
}

// JumpFrames returns the trajectory for a jump state.
func JumpFrames(s State) ([JumpLength]Offset, bool) {
	f, ok := jumpFrames[s]
	return f, ok
}
