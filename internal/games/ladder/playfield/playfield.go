// Package playfield runs a single play of one level: the player, the rocks,
// the bonus clock and everything they can run into.
package playfield

import (
	"math/rand"

	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/entity"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/field"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/levels"
)

// ScoreKind identifies a scoring event. Point values are decided by the host.
type ScoreKind int

const (
	ScoreRock     ScoreKind = iota + 1 // jumped over or alongside a rock
	ScoreStatue                        // picked up a statue
	ScoreTreasure                      // one tick of the post-treasure bonus drain
)

func (k ScoreKind) String() string {
	switch k {
	case ScoreRock:
		return "rock"
	case ScoreStatue:
		return "statue"
	case ScoreTreasure:
		return "treasure"
	}
	return "unknown"
}

// Host receives the events a playing field raises. LevelComplete and
// PlayerDied are each raised at most once per field.
type Host interface {
	UpdateScore(kind ScoreKind)
	LevelComplete()
	PlayerDied()
}

// Options tune rock spawning for one play.
type Options struct {
	MaxRocks    int
	SpawnChance float64
}

// treasureDrain is how much bonus time each winning tick converts to score.
const treasureDrain = 10

// PlayingField is one level being played.
type PlayingField struct {
	level      *levels.Level
	grid       *field.Field
	dispensers []core.Point
	player     *entity.Player
	rocks      []*entity.Rock
	time       int
	winning    bool
	done       bool

	host  Host
	input core.InputSource
	rng   *rand.Rand
	opts  Options
}

// New starts a play of lvl. The field takes ownership of lvl's grid.
func New(lvl *levels.Level, host Host, in core.InputSource, rng *rand.Rand, opts Options) *PlayingField {
	return &PlayingField{
		level:      lvl,
		grid:       lvl.Field,
		dispensers: lvl.Dispensers,
		player:     entity.NewPlayer(lvl.Start.X, lvl.Start.Y),
		time:       lvl.BonusTime,
		host:       host,
		input:      in,
		rng:        rng,
		opts:       opts,
	}
}

// Update advances the field by one tick. Movement, collisions, pickups and
// spawning only happen on move frames; animations and the post-treasure
// bonus drain run every tick.
func (pf *PlayingField) Update(moveFrame bool) {
	if pf.done {
		return
	}

	if pf.winning {
		pf.host.UpdateScore(ScoreTreasure)
		pf.time -= treasureDrain
		if pf.time < 0 {
			pf.done = true
			pf.host.LevelComplete()
		}
		return
	}

	if moveFrame && pf.time > 0 {
		pf.time--
	}

	pf.player.Animate()
	for _, r := range pf.rocks {
		r.Animate()
	}

	if !moveFrame {
		return
	}

	old := pf.player.Pos()
	pf.player.Update(pf.input, pf.grid)

	// Crumbling floor gives way once it has been stepped off.
	if pf.player.X != old.X && pf.player.Y == old.Y && pf.grid.IsDisappearingFloor(old.X, old.Y+1) {
		pf.grid.Clear(old.X, old.Y+1)
	}

	pf.checkIfPlayerShouldDie()
	for _, r := range pf.rocks {
		r.Update(pf.grid, pf.rng)
	}
	pf.checkIfPlayerShouldDie()

	p := pf.player
	if p.Alive() {
		if pf.grid.IsStatue(p.X, p.Y) {
			pf.grid.Clear(p.X, p.Y)
			pf.host.UpdateScore(ScoreStatue)
		}

		if pf.grid.IsTreasure(p.X, p.Y) {
			pf.winning = true
			return
		}

		if pf.grid.IsTrampoline(p.X, p.Y) {
			pf.bounce()
		}
	}

	pf.collectDeadRocks()
	pf.spawnRock()

	if p.State == entity.Dead {
		pf.done = true
		pf.host.PlayerDied()
	}
}

// checkIfPlayerShouldDie kills the player on fire, when the bonus clock has
// run out, or when sharing a cell with a rock. Rocks one or two cells below
// an airborne player score instead. At most one rock is removed per call.
func (pf *PlayingField) checkIfPlayerShouldDie() {
	p := pf.player
	if !p.Alive() {
		return
	}

	if pf.grid.IsFire(p.X, p.Y) || pf.time <= 0 {
		p.Kill()
	}

	for i := 0; i < len(pf.rocks); i++ {
		r := pf.rocks[i]
		if r.State == entity.Dead || r.X != p.X {
			continue
		}
		switch {
		case p.Y == r.Y:
			p.Kill()
			pf.rocks = append(pf.rocks[:i], pf.rocks[i+1:]...)
			return
		case p.Y == r.Y-1 && pf.grid.EmptySpace(p.X, p.Y+1):
			pf.host.UpdateScore(ScoreRock)
		case p.Y == r.Y-2 && pf.grid.EmptySpace(p.X, p.Y+1) && pf.grid.EmptySpace(p.X, p.Y+2):
			pf.host.UpdateScore(ScoreRock)
		}
	}
}

// bounce launches the player off a trampoline in one of five directions.
func (pf *PlayingField) bounce() {
	p := pf.player
	switch pf.rng.Intn(5) {
	case 0:
		p.State, p.Next = entity.Left, entity.None
	case 1:
		p.State, p.Next = entity.Right, entity.None
	case 2:
		p.State, p.Next, p.JumpStep = entity.JumpUp, entity.None, 0
	case 3:
		p.State, p.Next, p.JumpStep = entity.JumpLeft, entity.Left, 0
	case 4:
		p.State, p.Next, p.JumpStep = entity.JumpRight, entity.Right, 0
	}
}

func (pf *PlayingField) collectDeadRocks() {
	live := pf.rocks[:0]
	for _, r := range pf.rocks {
		if r.State != entity.Dead {
			live = append(live, r)
		}
	}
	for i := len(live); i < len(pf.rocks); i++ {
		pf.rocks[i] = nil
	}
	pf.rocks = live
}

func (pf *PlayingField) spawnRock() {
	if len(pf.dispensers) == 0 || len(pf.rocks) >= pf.opts.MaxRocks {
		return
	}
	if pf.rng.Float64() <= 1-pf.opts.SpawnChance {
		return
	}
	d := pf.dispensers[pf.rng.Intn(len(pf.dispensers))]
	pf.rocks = append(pf.rocks, entity.NewRock(d))
}

// Level returns the level being played.
func (pf *PlayingField) Level() *levels.Level { return pf.level }

// Grid returns the live tile grid. Callers must treat it as read-only.
func (pf *PlayingField) Grid() *field.Field { return pf.grid }

// Layout returns a snapshot of the grid rows.
func (pf *PlayingField) Layout() []string { return pf.grid.Rows() }

// Player returns the player entity.
func (pf *PlayingField) Player() *entity.Player { return pf.player }

// Rocks returns the live rocks. The slice must not be modified.
func (pf *PlayingField) Rocks() []*entity.Rock { return pf.rocks }

// Time returns the remaining bonus time.
func (pf *PlayingField) Time() int { return pf.time }

// MaxRocks returns the rock cap for this play.
func (pf *PlayingField) MaxRocks() int { return pf.opts.MaxRocks }

// Winning reports whether the treasure has been reached.
func (pf *PlayingField) Winning() bool { return pf.winning }

// SetWinning ends the level as if the treasure had been reached.
func (pf *PlayingField) SetWinning(w bool) { pf.winning = w }

// Done reports whether the field has signaled its outcome to the host.
func (pf *PlayingField) Done() bool { return pf.done }
