package entity

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/field"
)

var fullFloor = strings.Repeat("=", field.Cols)

// layout builds a field from a sparse row map.
func layout(rows map[int]string) *field.Field {
	lines := make([]string, field.Rows)
	for y, r := range rows {
		lines[y] = r
	}
	return field.New(lines)
}

func flat() *field.Field {
	return layout(map[int]string{10: fullFloor})
}

func TestStoppedIsIdempotent(t *testing.T) {
	f := flat()
	e := &Entity{X: 5, Y: 9, State: Stopped}

	for i := 0; i < 5; i++ {
		passes := ApplyMovement(e, f)
		assert.Equal(t, 1, passes)
		assert.Equal(t, core.Pt(5, 9), e.Pos())
		assert.Equal(t, Stopped, e.State)
	}
}

func TestJumpRightTrajectory(t *testing.T) {
	f := flat()
	e := &Entity{X: 10, Y: 9, State: JumpRight, Next: Stopped}

	want := []core.Point{
		{X: 11, Y: 8}, {X: 12, Y: 7}, {X: 13, Y: 7},
		{X: 14, Y: 7}, {X: 15, Y: 8}, {X: 16, Y: 9},
	}
	for i, p := range want {
		require.Equal(t, JumpRight, e.State, "frame %d", i)
		ApplyMovement(e, f)
		assert.Equal(t, p, e.Pos(), "frame %d", i)
	}
	assert.Equal(t, Stopped, e.State)
	assert.Equal(t, None, e.Next)
}

func TestJumpFromWalkResumesWalk(t *testing.T) {
	f := flat()
	e := &Entity{X: 20, Y: 9, State: Left, Next: StartJump}

	ApplyMovement(e, f)
	require.Equal(t, JumpLeft, e.State)
	assert.Equal(t, core.Pt(19, 8), e.Pos())

	for i := 0; i < JumpLength-1; i++ {
		ApplyMovement(e, f)
	}
	assert.Equal(t, core.Pt(14, 9), e.Pos())
	assert.Equal(t, Left, e.State)
}

func TestJumpUpReturnsToStart(t *testing.T) {
	f := flat()
	e := &Entity{X: 30, Y: 9, State: Stopped, Next: StartJump}

	ys := []int{}
	for i := 0; i < JumpLength; i++ {
		ApplyMovement(e, f)
		ys = append(ys, e.Y)
	}
	assert.Equal(t, []int{8, 7, 7, 8, 9, 9}, ys)
	assert.Equal(t, 30, e.X)
	assert.Equal(t, Stopped, e.State)
}

func TestJumpBlockedWhileSupported(t *testing.T) {
	f := layout(map[int]string{
		8:  strings.Repeat(" ", 11) + "=",
		10: fullFloor,
	})
	e := &Entity{X: 10, Y: 9, State: JumpRight, Next: Right}

	ApplyMovement(e, f)
	assert.Equal(t, core.Pt(10, 9), e.Pos())
	assert.Equal(t, Right, e.State)
	assert.Equal(t, None, e.Next)
}

func TestJumpBlockedInAirFalls(t *testing.T) {
	f := layout(map[int]string{
		7:  strings.Repeat(" ", 13) + "|",
		10: fullFloor,
	})
	e := &Entity{X: 12, Y: 7, State: JumpRight, JumpStep: 2, Next: Right}

	ApplyMovement(e, f)
	assert.Equal(t, Falling, e.State)
	assert.Equal(t, Right, e.Next)
	assert.Equal(t, core.Pt(12, 7), e.Pos())
}

func TestJumpLandsOnLadder(t *testing.T) {
	f := layout(map[int]string{
		8:  strings.Repeat(" ", 11) + "H",
		10: fullFloor,
	})

	e := &Entity{X: 10, Y: 9, State: JumpRight, Next: Right}
	ApplyMovement(e, f)
	assert.Equal(t, core.Pt(11, 8), e.Pos())
	assert.Equal(t, Stopped, e.State)
	assert.Equal(t, None, e.Next)

	e = &Entity{X: 10, Y: 9, State: JumpRight, Next: Up}
	ApplyMovement(e, f)
	assert.Equal(t, Up, e.State, "queued climb is honored on a ladder landing")
}

func TestJumpOffGrid(t *testing.T) {
	f := flat()
	e := &Entity{X: field.Cols - 1, Y: 9, State: JumpRight, Next: Right}

	ApplyMovement(e, f)
	assert.Equal(t, Right, e.State, "supported entity lands in place")
	assert.Equal(t, field.Cols-1, e.X)

	e = &Entity{X: 0, Y: 5, State: JumpLeft, JumpStep: 3, Next: Left}
	ApplyMovement(e, f)
	assert.Equal(t, Falling, e.State)
	assert.Equal(t, Stopped, e.Next)
}

func TestMidAirSteering(t *testing.T) {
	f := flat()

	e := &Entity{X: 10, Y: 8, State: JumpUp, JumpStep: 1, Next: Right}
	ApplyMovement(e, f)
	assert.Equal(t, JumpRight, e.State)
	assert.Equal(t, Right, e.Next)

	e = &Entity{X: 10, Y: 7, State: JumpLeft, JumpStep: 2, Next: Down}
	ApplyMovement(e, f)
	assert.Equal(t, Falling, e.State)
	assert.Equal(t, core.Pt(10, 8), e.Pos())
}

func TestJumpRequestInAirIsDropped(t *testing.T) {
	f := flat()
	e := &Entity{X: 10, Y: 3, State: Falling, Next: StartJump}

	ApplyMovement(e, f)
	assert.Equal(t, Falling, e.State)
	assert.Equal(t, None, e.Next)
	assert.Equal(t, 4, e.Y)

	e = &Entity{X: 10, Y: 7, State: JumpRight, JumpStep: 2, Next: StartJump}
	ApplyMovement(e, f)
	assert.Equal(t, Right, e.Next, "resume state is kept")
}

func TestLadderBuffering(t *testing.T) {
	rows := map[int]string{10: strings.Repeat("=", 12) + "H" + strings.Repeat("=", 20)}
	for y := 5; y <= 9; y++ {
		rows[y] = strings.Repeat(" ", 12) + "H"
	}
	f := layout(rows)
	e := &Entity{X: 10, Y: 9, State: Right, Next: Up}

	ApplyMovement(e, f)
	assert.Equal(t, core.Pt(11, 9), e.Pos())
	ApplyMovement(e, f)
	require.Equal(t, core.Pt(12, 9), e.Pos())
	assert.Equal(t, Right, e.State)

	ApplyMovement(e, f)
	assert.Equal(t, Up, e.State, "climbing starts with no stop in between")
	assert.Equal(t, core.Pt(12, 8), e.Pos())
	assert.Equal(t, None, e.Next)

	for i := 0; i < 10; i++ {
		ApplyMovement(e, f)
	}
	assert.Equal(t, core.Pt(12, 5), e.Pos(), "top of the ladder")
	assert.Equal(t, Stopped, e.State)
}

func TestDownIsAcceptedAboveLadder(t *testing.T) {
	f := layout(map[int]string{
		5: strings.Repeat("=", 12) + "H" + strings.Repeat("=", 5),
		6: strings.Repeat(" ", 12) + "H",
		7: fullFloor,
	})
	e := &Entity{X: 12, Y: 4, State: Stopped, Next: Down}

	ApplyMovement(e, f)
	assert.Equal(t, Down, e.State)
	assert.Equal(t, core.Pt(12, 5), e.Pos())
	ApplyMovement(e, f)
	ApplyMovement(e, f)
	assert.Equal(t, core.Pt(12, 6), e.Pos())
	assert.Equal(t, Stopped, e.State)
}

func TestWalkOffLedgeFallsSameFrame(t *testing.T) {
	f := layout(map[int]string{
		10: strings.Repeat("=", 11),
		15: fullFloor,
	})
	e := &Entity{X: 10, Y: 9, State: Right}

	assert.Equal(t, 1, ApplyMovement(e, f))
	assert.Equal(t, core.Pt(11, 9), e.Pos())

	passes := ApplyMovement(e, f)
	assert.Equal(t, 2, passes)
	assert.Equal(t, Falling, e.State)
	assert.Equal(t, Right, e.Next)
	assert.Equal(t, core.Pt(11, 10), e.Pos(), "no motionless frame")

	for i := 0; i < 10 && e.State == Falling; i++ {
		assert.Equal(t, 1, ApplyMovement(e, f))
	}
	assert.Equal(t, Right, e.State)
	assert.Equal(t, 14, e.Y)
}

func TestWalkIntoWallStops(t *testing.T) {
	f := layout(map[int]string{9: "|", 10: fullFloor})
	e := &Entity{X: 1, Y: 9, State: Left}

	ApplyMovement(e, f)
	assert.Equal(t, Stopped, e.State)
	assert.Equal(t, 1, e.X)
}

func TestDeadIsTerminal(t *testing.T) {
	f := flat()
	rng := rand.New(rand.NewSource(1))

	e := &Entity{X: 4, Y: 9, State: Dead, Next: Right}
	assert.Equal(t, 0, ApplyMovement(e, f))
	assert.Equal(t, Dead, e.State)
	assert.Equal(t, core.Pt(4, 9), e.Pos())

	e.Kill()
	assert.Equal(t, Dead, e.State)

	r := &Rock{Entity: Entity{X: 4, Y: 9, State: Dead}}
	r.Update(f, rng)
	r.Animate()
	assert.Equal(t, Dead, r.State)

	p := NewPlayer(4, 9)
	p.State = Dead
	buf := core.NewKeyBuffer(0)
	buf.Push(core.KeyEvent{Key: "d", Action: core.ActionRight})
	p.Update(buf, f)
	p.Animate()
	assert.Equal(t, Dead, p.State)
	assert.Equal(t, core.ActionRight, buf.LastAction(), "dead players read no input")
}

func TestStateStaysInEnum(t *testing.T) {
	rows := map[int]string{
		3:  "   ====H=====   ^  ===-===",
		4:  "       H          .",
		5:  "=======H====-======= H ====",
		6:  "                     H",
		10: fullFloor,
	}
	f := layout(rows)
	rng := rand.New(rand.NewSource(42))
	actions := []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown,
		core.ActionJump, core.ActionStop, core.ActionNone,
	}

	p := NewPlayer(8, 4)
	rocks := []*Rock{NewRock(core.Pt(3, 0)), NewRock(core.Pt(20, 0))}
	for i := 0; i < 500; i++ {
		p.Command(actions[rng.Intn(len(actions))])
		passes := ApplyMovement(&p.Entity, f)
		require.True(t, p.State.Valid(), "player state %v at step %d", p.State, i)
		require.LessOrEqual(t, passes, 2)
		require.True(t, field.InBounds(p.X, p.Y), "player left the grid at step %d", i)

		for _, r := range rocks {
			r.Update(f, rng)
			require.True(t, r.State.Valid(), "rock state %v at step %d", r.State, i)
			require.True(t, field.InBounds(r.X, r.Y))
		}
	}
}

func TestPlayerConsumesOneAction(t *testing.T) {
	f := flat()
	p := NewPlayer(10, 9)
	buf := core.NewKeyBuffer(0)
	now := time.Now()

	buf.Push(core.KeyEvent{At: now, Key: "d", Action: core.ActionRight})
	buf.Push(core.KeyEvent{At: now, Key: "a", Action: core.ActionLeft})
	p.Update(buf, f)

	assert.Equal(t, Left, p.State, "newest action wins")
	assert.Equal(t, 9, p.X)
	assert.Equal(t, core.ActionNone, buf.LastAction())
	assert.Len(t, buf.History(), 2, "history is kept for key sequences")

	buf.Push(core.KeyEvent{At: now, Key: "esc", Action: core.ActionPause})
	p.Update(buf, f)
	assert.Equal(t, core.ActionPause, buf.LastAction(), "non-movement actions are left alone")
	assert.Equal(t, 8, p.X)

	p.Update(nil, f)
	assert.Equal(t, 7, p.X)
}

func TestPlayerDeathAnimation(t *testing.T) {
	p := NewPlayer(3, 3)
	p.Kill()
	require.Equal(t, Dying, p.State)

	var frames []rune
	for p.State == Dying {
		frames = append(frames, p.Glyph())
		p.Animate()
	}
	assert.Equal(t, "pbdqpbdq--_", string(frames))
	assert.Equal(t, Dead, p.State)
	assert.Equal(t, '_', p.Glyph())
}

func TestPlayerGlyph(t *testing.T) {
	p := NewPlayer(0, 0)
	tests := map[State]rune{
		Stopped:  'g',
		Right:    'p',
		Up:       'p',
		Left:     'q',
		JumpLeft: 'q',
		Falling:  'b',
	}
	for s, want := range tests {
		p.State = s
		assert.Equal(t, want, p.Glyph(), s.String())
	}
}

func TestRockSpawnsBelowDispenser(t *testing.T) {
	r := NewRock(core.Pt(5, 2))
	assert.Equal(t, core.Pt(5, 3), r.Pos())
	assert.Equal(t, Falling, r.State)
	assert.Equal(t, 'o', r.Glyph())
}

func TestRockBoundaryReversal(t *testing.T) {
	f := flat()
	rng := rand.New(rand.NewSource(1))

	r := &Rock{Entity: Entity{X: 0, Y: 9, State: Left}}
	r.Update(f, rng)
	assert.Equal(t, Right, r.State)
	assert.Equal(t, 1, r.X)

	r = &Rock{Entity: Entity{X: field.Cols - 1, Y: 9, State: Right}}
	r.Update(f, rng)
	assert.Equal(t, Left, r.State)
	assert.Equal(t, field.Cols-2, r.X)
}

func TestRockPicksOpenSide(t *testing.T) {
	f := layout(map[int]string{9: "    |", 10: fullFloor})
	rng := rand.New(rand.NewSource(1))

	r := &Rock{Entity: Entity{X: 5, Y: 9, State: Stopped}}
	r.Update(f, rng)
	assert.Equal(t, Right, r.State)
	assert.Equal(t, 6, r.X)

	r = &Rock{Entity: Entity{X: 0, Y: 9, State: Stopped}}
	r.Update(f, rng)
	assert.Equal(t, Right, r.State)
}

func TestRockBoxedIn(t *testing.T) {
	f := layout(map[int]string{9: "    | |", 10: fullFloor})
	r := &Rock{Entity: Entity{X: 5, Y: 9, State: Stopped}}

	r.Update(f, rand.New(rand.NewSource(1)))
	assert.Equal(t, Stopped, r.State)
	assert.Equal(t, Falling, r.Next)
	assert.Equal(t, core.Pt(5, 9), r.Pos())
}

func TestRockFallsWhenUnsupported(t *testing.T) {
	f := flat()
	r := &Rock{Entity: Entity{X: 5, Y: 4, State: Stopped}}

	r.Update(f, rand.New(rand.NewSource(1)))
	assert.Equal(t, Falling, r.State)
	assert.Equal(t, 5, r.Y)
}

func TestRockTakesLadders(t *testing.T) {
	rows := map[int]string{
		5:  strings.Repeat("=", 10) + "H" + strings.Repeat("=", 10),
		10: fullFloor,
	}
	for y := 6; y < 10; y++ {
		rows[y] = strings.Repeat(" ", 10) + "H"
	}
	f := layout(rows)

	counts := map[State]int{}
	for seed := int64(0); seed < 200; seed++ {
		r := &Rock{Entity: Entity{X: 10, Y: 4, State: Right}}
		r.Update(f, rand.New(rand.NewSource(seed)))
		counts[r.State]++
	}
	assert.Greater(t, counts[Down], counts[Left])
	assert.Greater(t, counts[Down], counts[Right])
	assert.Equal(t, 200, counts[Down]+counts[Left]+counts[Right])
}

func TestRockEaten(t *testing.T) {
	f := layout(map[int]string{9: "     *", 10: fullFloor})
	r := &Rock{Entity: Entity{X: 5, Y: 9, State: Right}}

	assert.Equal(t, 0, r.Update(f, rand.New(rand.NewSource(1))))
	assert.Equal(t, Dead, r.State, "no death animation")
}

func TestRockDeathAnimation(t *testing.T) {
	r := NewRock(core.Pt(0, 0))
	r.Kill()
	assert.Equal(t, '%', r.Glyph())
	r.Animate()
	assert.Equal(t, ':', r.Glyph())
	r.Animate()
	assert.Equal(t, Dead, r.State)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "jump_right", JumpRight.String())
	assert.Equal(t, "unknown", State(99).String())
	assert.False(t, None.Valid())
	assert.False(t, StartJump.Valid())
	assert.True(t, Dead.Valid())
}
