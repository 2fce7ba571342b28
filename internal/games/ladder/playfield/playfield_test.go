package playfield

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/entity"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/field"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/levels"
)

type recorder struct {
	scores    []ScoreKind
	completed int
	died      int
}

func (r *recorder) UpdateScore(kind ScoreKind) { r.scores = append(r.scores, kind) }
func (r *recorder) LevelComplete()             { r.completed++ }
func (r *recorder) PlayerDied()                { r.died++ }

func (r *recorder) count(kind ScoreKind) int {
	n := 0
	for _, k := range r.scores {
		if k == kind {
			n++
		}
	}
	return n
}

var floor = strings.Repeat("=", field.Cols)

// newField builds a playing field whose row 9 is given and row 10 is solid.
func newField(t *testing.T, row9 string, bonus int, opts Options) (*PlayingField, *recorder, *core.KeyBuffer) {
	t.Helper()
	rows := make([]string, field.Rows)
	rows[0] = strings.Repeat(" ", 40) + "V"
	rows[9] = row9
	rows[10] = floor
	lvl, err := levels.Build(levels.Def{Name: "test", BonusTime: bonus, Layout: rows})
	require.NoError(t, err)

	host := &recorder{}
	keys := core.NewKeyBuffer(0)
	return New(lvl, host, keys, rand.New(rand.NewSource(7)), opts), host, keys
}

func press(keys *core.KeyBuffer, a core.Action) {
	keys.Push(core.KeyEvent{At: time.Unix(0, 0), Key: a.String(), Action: a})
}

func TestTreasureWinsAndDrains(t *testing.T) {
	pf, host, keys := newField(t, "     p$", 2000, Options{})
	press(keys, core.ActionRight)

	pf.Update(true)
	require.True(t, pf.Winning())
	assert.Equal(t, core.Pt(6, 9), pf.Player().Pos())
	assert.Equal(t, 1999, pf.Time())

	press(keys, core.ActionLeft)
	ticks := 0
	for host.completed == 0 && ticks < 1000 {
		before := pf.Time()
		pf.Update(ticks%2 == 0)
		ticks++
		assert.Equal(t, before-10, pf.Time())
		assert.Equal(t, core.Pt(6, 9), pf.Player().Pos(), "simulation is frozen")
	}
	assert.Equal(t, 200, ticks)
	assert.Equal(t, 200, host.count(ScoreTreasure))
	assert.Less(t, pf.Time(), 0)

	for i := 0; i < 5; i++ {
		pf.Update(true)
	}
	assert.Equal(t, 1, host.completed, "level advance is signaled once")
	assert.True(t, pf.Done())
}

func TestNonMoveFramesDoNotMove(t *testing.T) {
	pf, _, keys := newField(t, "     p", 2000, Options{})
	press(keys, core.ActionRight)

	pf.Update(false)
	assert.Equal(t, core.Pt(5, 9), pf.Player().Pos())
	assert.Equal(t, 2000, pf.Time())

	pf.Update(true)
	assert.Equal(t, core.Pt(6, 9), pf.Player().Pos())
	assert.Equal(t, 1999, pf.Time())
}

func TestRockCollisionKillsAndRemovesOneRock(t *testing.T) {
	pf, host, _ := newField(t, "     p", 2000, Options{})
	pf.rocks = []*entity.Rock{
		{Entity: entity.Entity{X: 5, Y: 9, State: entity.Left}},
		{Entity: entity.Entity{X: 5, Y: 9, State: entity.Right}},
	}

	pf.checkIfPlayerShouldDie()
	assert.Equal(t, entity.Dying, pf.Player().State)
	require.Len(t, pf.Rocks(), 1)
	assert.Equal(t, entity.Right, pf.Rocks()[0].State, "the first rock in order is removed")

	pf.checkIfPlayerShouldDie()
	assert.Len(t, pf.Rocks(), 1, "dying players are not checked again")
	assert.Empty(t, host.scores)
}

func TestNearMissScores(t *testing.T) {
	pf, host, _ := newField(t, "     p", 2000, Options{})
	p := pf.Player()

	p.X, p.Y, p.State = 5, 8, entity.JumpRight
	pf.rocks = []*entity.Rock{{Entity: entity.Entity{X: 5, Y: 9, State: entity.Left}}}
	pf.checkIfPlayerShouldDie()
	assert.Equal(t, 1, host.count(ScoreRock), "one above")

	p.Y = 7
	pf.checkIfPlayerShouldDie()
	assert.Equal(t, 2, host.count(ScoreRock), "two above")

	p.Y = 6
	pf.checkIfPlayerShouldDie()
	assert.Equal(t, 2, host.count(ScoreRock), "three above is too far")

	p.X = 6
	p.Y = 8
	pf.checkIfPlayerShouldDie()
	assert.Equal(t, 2, host.count(ScoreRock), "other column")

	assert.True(t, p.Alive())
	assert.Len(t, pf.Rocks(), 1)
}

func TestNearMissNeedsEmptySpaceBetween(t *testing.T) {
	pf, host, _ := newField(t, "     p", 2000, Options{})
	p := pf.Player()
	pf.grid.Set(5, 9, field.Floor)

	p.X, p.Y = 5, 8
	pf.rocks = []*entity.Rock{{Entity: entity.Entity{X: 5, Y: 10, State: entity.Left}}}
	pf.checkIfPlayerShouldDie()
	assert.Empty(t, host.scores)
}

func TestFireKillsThenPlayerDiedOnce(t *testing.T) {
	pf, host, keys := newField(t, "     p^", 2000, Options{})
	press(keys, core.ActionRight)

	pf.Update(true)
	require.Equal(t, entity.Dying, pf.Player().State)

	for i := 0; i < 20; i++ {
		pf.Update(i%3 == 0)
	}
	assert.Equal(t, entity.Dead, pf.Player().State)
	assert.Equal(t, 1, host.died)
	assert.True(t, pf.Done())
}

func TestOutOfTimeKills(t *testing.T) {
	pf, _, _ := newField(t, "     p", 1, Options{})

	pf.Update(true)
	assert.Equal(t, 0, pf.Time())
	assert.Equal(t, entity.Dying, pf.Player().State)
}

func TestStatuePickup(t *testing.T) {
	pf, host, keys := newField(t, "     p&", 2000, Options{})
	press(keys, core.ActionRight)

	pf.Update(true)
	assert.Equal(t, []ScoreKind{ScoreStatue}, host.scores)
	assert.False(t, pf.Grid().IsStatue(6, 9))
}

func TestDisappearingFloorGoesAfterStepOff(t *testing.T) {
	pf, _, keys := newField(t, "     p", 2000, Options{})
	pf.grid.Set(5, 10, field.Disappear)
	press(keys, core.ActionRight)

	pf.Update(false)
	assert.True(t, pf.Grid().IsDisappearingFloor(5, 10), "still there while standing on it")

	pf.Update(true)
	assert.Equal(t, 6, pf.Player().X)
	assert.Equal(t, field.Empty, pf.Grid().At(5, 10))
}

func TestTrampolineLaunches(t *testing.T) {
	seen := map[entity.State]bool{}
	for seed := int64(0); seed < 50; seed++ {
		pf, _, keys := newField(t, "     p.", 2000, Options{})
		pf.rng = rand.New(rand.NewSource(seed))
		press(keys, core.ActionRight)

		pf.Update(true)
		seen[pf.Player().State] = true
	}
	for s := range seen {
		assert.Contains(t, []entity.State{
			entity.Left, entity.Right, entity.JumpUp, entity.JumpLeft, entity.JumpRight,
		}, s)
	}
	assert.Len(t, seen, 5)
}

func TestRockSpawning(t *testing.T) {
	pf, _, _ := newField(t, "     p", 2000, Options{MaxRocks: 2, SpawnChance: 1})

	pf.Update(true)
	require.Len(t, pf.Rocks(), 1)
	assert.Equal(t, core.Pt(40, 1), pf.Rocks()[0].Pos())
	assert.Equal(t, entity.Falling, pf.Rocks()[0].State)

	for i := 0; i < 5; i++ {
		pf.Update(true)
	}
	assert.Len(t, pf.Rocks(), 2, "capped")
	assert.Equal(t, 2, pf.MaxRocks())

	pf.Update(false)
	assert.Len(t, pf.Rocks(), 2, "no spawning off move frames")
}

func TestNoSpawnWithoutChanceOrDispensers(t *testing.T) {
	pf, _, _ := newField(t, "     p", 2000, Options{MaxRocks: 5, SpawnChance: 0})
	for i := 0; i < 50; i++ {
		pf.Update(true)
	}
	assert.Empty(t, pf.Rocks())

	pf, _, _ = newField(t, "     p", 2000, Options{MaxRocks: 5, SpawnChance: 1})
	pf.dispensers = nil
	pf.Update(true)
	assert.Empty(t, pf.Rocks())
}

func TestDeadRocksAreCollected(t *testing.T) {
	pf, _, _ := newField(t, "     p  *", 2000, Options{})
	pf.rocks = []*entity.Rock{
		{Entity: entity.Entity{X: 8, Y: 9, State: entity.Right}},
		{Entity: entity.Entity{X: 20, Y: 9, State: entity.Right}},
	}

	pf.Update(true)
	require.Len(t, pf.Rocks(), 1)
	assert.Equal(t, 21, pf.Rocks()[0].X)
}

func TestSetWinning(t *testing.T) {
	pf, host, _ := newField(t, "     p", 30, Options{})
	pf.SetWinning(true)

	for i := 0; i < 4; i++ {
		pf.Update(false)
	}
	assert.Equal(t, 1, host.completed)
	assert.Equal(t, 4, host.count(ScoreTreasure))
	assert.Equal(t, "treasure", ScoreTreasure.String())
	assert.Len(t, pf.Layout(), field.Rows)
	assert.Equal(t, "test", pf.Level().Name)
}
