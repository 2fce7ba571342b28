package ladder

import (
	"fmt"

	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/entity"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/field"
)

// Screen rows used outside the playing field.
const (
	hudRow   = 21
	pauseRow = 23
)

var tileColors = map[rune]core.Color{
	field.Floor:      core.ColorBlue,
	field.Wall:       core.ColorBlue,
	field.Disappear:  core.ColorCyan,
	field.Ladder:     core.ColorYellow,
	field.Fire:       core.ColorRed,
	field.Trampoline: core.ColorMagenta,
	field.Eater:      core.ColorBrightMagenta,
	field.Treasure:   core.ColorBrightYellow,
	field.Statue:     core.ColorBrightGreen,
	field.Dispenser:  core.ColorGray,
}

// Render draws the game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	s := g.session
	offX := max(0, (dst.Width()-field.Cols-1)/2)

	if f := s.Field(); f != nil {
		grid := f.Grid()
		for y := 0; y < field.Rows; y++ {
			for x := 0; x < field.Cols; x++ {
				r := grid.At(x, y)
				dst.SetColored(offX+x, y, r, tileColors[r])
			}
		}
		for _, r := range f.Rocks() {
			if r.State != entity.Dead {
				dst.SetColored(offX+r.X, r.Y, r.Glyph(), core.ColorOrange)
			}
		}
		p := f.Player()
		dst.SetColored(offX+p.X, p.Y, p.Glyph(), core.ColorBrightWhite)
	}

	bonus := ""
	if f := s.Field(); f != nil {
		bonus = fmt.Sprintf("%4d", max(f.Time(), 0))
	}
	hud := fmt.Sprintf("Lads   %2d     Level   %2d      Score   %6d      Bonus time   %s",
		s.Lives(), s.LevelNumber()+1, s.Score(), bonus)
	dst.DrawText(offX, hudRow, hud)

	if s.Paused() {
		dst.DrawText(offX, pauseRow, "Paused - type ESCape or RETURN to continue.")
	}

	if s.Over() {
		g.renderGameOver(dst)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", g.session.Score()),
		fmt.Sprintf("Level: %d", g.session.LevelNumber()+1),
		"",
		"R to play again, Q for menu",
	}
	w, h := 33, len(lines)+2
	box := core.NewRect(0, 0, dst.Width(), field.Rows).Centered(w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		x := box.X + (w-len(line))/2
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}
