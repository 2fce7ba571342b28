package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)
	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	for y := 0; y < s.Height(); y++ {
		assert.Equal(t, strings.Repeat(" ", 80), s.Row(y))
	}
}

func TestScreenSetGetClips(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'H')
	assert.Equal(t, 'H', s.Get(5, 5))

	assert.NotPanics(t, func() {
		s.Set(-1, 0, 'A')
		s.Set(100, 0, 'A')
		s.Set(0, -1, 'A')
		s.Set(0, 100, 'A')
	})
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
	assert.Equal(t, blankCell, s.GetCell(0, 100))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "====")
	s.SetColored(1, 1, '^', ColorRed)

	s.Clear()
	assert.Equal(t, "    \n    ", s.String())
	assert.Equal(t, ColorDefault, s.GetCell(1, 1).Color)
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawText(2, 1, "Lads 5")
	assert.Equal(t, "  Lads 5    ", s.Row(1))

	s.DrawText(9, 0, "clipped")
	assert.Equal(t, "         cli", s.Row(0))

	s.DrawTextCentered(0, "ab")
	assert.Equal(t, "ab", s.Row(0)[5:7])
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(0, 0, 6, 4), 'x')
	s.DrawRect(NewRect(1, 1, 2, 2), ' ')
	assert.Equal(t, "x  xxx", s.Row(1))

	s.Clear()
	s.DrawBox(NewRect(0, 0, 4, 3))
	assert.Equal(t, "┌──┐  \n│  │  \n└──┘  \n      ", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "=H=|")

	s.Resize(6, 3)
	assert.Equal(t, 6, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, "=H=|  ", s.Row(0), "content kept")

	s.Resize(2, 1)
	assert.Equal(t, "=H", s.String())
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	assert.Equal(t, "   ", s.Row(5))
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "$$", ColorBrightYellow)
	s.Set(2, 0, '=')

	assert.Equal(t, Cell{Rune: '$', Color: ColorBrightYellow}, s.GetCell(1, 0))
	assert.Equal(t, Cell{Rune: '=', Color: ColorDefault}, s.GetCell(2, 0))
	assert.Equal(t, "$$=       ", s.String())
}
