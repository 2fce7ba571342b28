package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - climb / queue climb
	ActionDown           // S, Down arrow - descend / queue descend
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionJump           // Space - jump in the current direction
	ActionStop           // Any unmapped key - stand still
	ActionPause          // Escape, P - pause the session
	ActionResume         // Enter - resume a paused session
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is one raw key press as seen by the game.
// Key is the printable key name ("i", "d", " ", "up"); Action is its mapping.
type KeyEvent struct {
	At     time.Time
	Key    string
	Action Action
}

// InputSource is what the game core needs from the input device layer.
type InputSource interface {
	// LastAction returns the most recent buffered action, or ActionNone.
	LastAction() Action
	// Consume clears the pending buffer, and the rolling history too when
	// clearHistory is set.
	Consume(clearHistory bool)
	// History returns recent key presses, oldest first.
	History() []KeyEvent
}

// InputFrame represents the input collected during one platform tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Keys holds the raw key presses of this frame in arrival order.
	// Games that buffer input or match key sequences read these.
	Keys []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Press records a raw key press and marks its action as triggered.
func (f *InputFrame) Press(key string, a Action) {
	f.Keys = append(f.Keys, KeyEvent{Key: key, Action: a})
	if a != ActionNone {
		f.Set(a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Keys = append([]KeyEvent(nil), f.Keys...)
	return clone
}
