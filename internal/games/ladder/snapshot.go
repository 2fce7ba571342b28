package ladder

import "github.com/vovakirdan/tui-ladder/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       int // 1-indexed for display
	LevelName   string
	Cycle       int
	Score       int
	Lives       int
	BonusTime   int
	PlayerX     int
	PlayerY     int
	PlayerState string
	Rocks       []core.Point
	Winning     bool
	Paused      bool
	GameOver    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:     g.tick,
		Level:    s.LevelNumber() + 1,
		Cycle:    s.LevelCycle(),
		Score:    s.Score(),
		Lives:    s.Lives(),
		Paused:   s.Paused(),
		GameOver: s.Over(),
	}
	if f := s.Field(); f != nil {
		p := f.Player()
		snap.LevelName = f.Level().Name
		snap.BonusTime = f.Time()
		snap.PlayerX, snap.PlayerY = p.X, p.Y
		snap.PlayerState = p.State.String()
		snap.Winning = f.Winning()
		for _, r := range f.Rocks() {
			snap.Rocks = append(snap.Rocks, r.Pos())
		}
	}
	return snap
}
