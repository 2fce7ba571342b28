package core

import "time"

// DefaultHistoryWindow is how long key presses stay in a KeyBuffer's history.
const DefaultHistoryWindow = 3 * time.Second

// KeyBuffer is the game-side input buffer. New presses go into a pending
// buffer that game logic consumes, and into a rolling history that only
// keeps the last few seconds (used to match typed key sequences).
type KeyBuffer struct {
	window  time.Duration
	pending []KeyEvent
	history []KeyEvent
}

// NewKeyBuffer creates a key buffer whose history keeps presses for window.
// A non-positive window uses DefaultHistoryWindow.
func NewKeyBuffer(window time.Duration) *KeyBuffer {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &KeyBuffer{window: window}
}

// Push appends a key press to both the pending buffer and the history.
func (b *KeyBuffer) Push(ev KeyEvent) {
	b.pending = append(b.pending, ev)
	b.history = append(b.history, ev)
}

// Prune drops history entries older than the window, relative to now.
func (b *KeyBuffer) Prune(now time.Time) {
	cutoff := now.Add(-b.window)
	keep := b.history[:0]
	for _, ev := range b.history {
		if ev.At.After(cutoff) {
			keep = append(keep, ev)
		}
	}
	b.history = keep
}

// LastAction returns the action of the newest pending press.
func (b *KeyBuffer) LastAction() Action {
	if len(b.pending) == 0 {
		return ActionNone
	}
	return b.pending[len(b.pending)-1].Action
}

// LastKey returns the key name of the newest pending press, or "".
func (b *KeyBuffer) LastKey() string {
	if len(b.pending) == 0 {
		return ""
	}
	return b.pending[len(b.pending)-1].Key
}

// Consume empties the pending buffer. After a key sequence has been acted
// on, clearHistory also empties the history so it does not match again.
func (b *KeyBuffer) Consume(clearHistory bool) {
	b.pending = b.pending[:0]
	if clearHistory {
		b.history = b.history[:0]
	}
}

// History returns a copy of the rolling history, oldest first.
func (b *KeyBuffer) History() []KeyEvent {
	return append([]KeyEvent(nil), b.history...)
}
