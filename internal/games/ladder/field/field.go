// Package field holds the Ladder tile grid and its classification queries.
package field

import "strings"

// Grid dimensions. Layouts are drawn for an 80 column terminal but the last
// column is never used.
const (
	Rows = 20
	Cols = 79
)

// Tile symbols.
const (
	Empty       = ' '
	Floor       = '='
	Wall        = '|'
	Disappear   = '-'
	Ladder      = 'H'
	Fire        = '^'
	Trampoline  = '.'
	Eater       = '*'
	Treasure    = '$'
	Statue      = '&'
	Dispenser   = 'V'
	PlayerStart = 'p'
)

// Field is a Rows x Cols grid of tile symbols.
//
// Reads outside the grid report Wall so every query is total. Only Clear
// mutates the grid.
type Field struct {
	cells [Rows][Cols]rune
}

// New builds a field from layout rows. Short or missing rows are padded with
// Empty, long rows are truncated.
func New(rows []string) *Field {
	f := &Field{}
	for y := 0; y < Rows; y++ {
		var line []rune
		if y < len(rows) {
			line = []rune(rows[y])
		}
		for x := 0; x < Cols; x++ {
			if x < len(line) {
				f.cells[y][x] = line[x]
			} else {
				f.cells[y][x] = Empty
			}
		}
	}
	return f
}

// Clone returns an independent copy.
func (f *Field) Clone() *Field {
	c := *f
	return &c
}

// InBounds reports whether (x, y) is on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// At returns the symbol at (x, y), or Wall off the grid.
func (f *Field) At(x, y int) rune {
	if !InBounds(x, y) {
		return Wall
	}
	return f.cells[y][x]
}

// Set overwrites a cell. Off-grid writes are ignored.
func (f *Field) Set(x, y int, r rune) {
	if InBounds(x, y) {
		f.cells[y][x] = r
	}
}

// Clear blanks a consumed cell (statue pickup, vacated disappearing floor).
func (f *Field) Clear(x, y int) {
	f.Set(x, y, Empty)
}

// OnSolid reports whether an entity at (x, y) is supported.
func (f *Field) OnSolid(x, y int) bool {
	switch f.At(x, y+1) {
	case Floor, Disappear, Ladder, Wall:
		return true
	}
	return f.At(x, y) == Ladder
}

// EmptySpace reports whether an entity may walk into (x, y).
func (f *Field) EmptySpace(x, y int) bool {
	if x < 0 || x >= Cols {
		return false
	}
	switch f.At(x, y) {
	case Wall, Floor:
		return false
	}
	return true
}

// BlocksJump reports whether a jump arc cannot pass through (x, y).
func (f *Field) BlocksJump(x, y int) bool {
	switch f.At(x, y) {
	case Floor, Wall, Disappear:
		return true
	}
	return false
}

func (f *Field) IsLadder(x, y int) bool            { return f.At(x, y) == Ladder }
func (f *Field) IsStatue(x, y int) bool            { return f.At(x, y) == Statue }
func (f *Field) IsTreasure(x, y int) bool          { return f.At(x, y) == Treasure }
func (f *Field) IsTrampoline(x, y int) bool        { return f.At(x, y) == Trampoline }
func (f *Field) IsEater(x, y int) bool             { return f.At(x, y) == Eater }
func (f *Field) IsFire(x, y int) bool              { return f.At(x, y) == Fire }
func (f *Field) IsDisappearingFloor(x, y int) bool { return f.At(x, y) == Disappear }
func (f *Field) IsDispenser(x, y int) bool         { return f.At(x, y) == Dispenser }

// CanClimbUp reports whether an entity may climb into (x, y).
func (f *Field) CanClimbUp(x, y int) bool {
	if y < 0 {
		return false
	}
	switch f.At(x, y) {
	case Ladder, Statue, Treasure:
		return true
	}
	return false
}

// CanClimbDown reports whether an entity may climb down into (x, y).
func (f *Field) CanClimbDown(x, y int) bool {
	switch f.At(x, y) {
	case Ladder, Statue, Treasure, Empty, Fire, Trampoline:
		return true
	}
	return false
}

// Row returns row y as a string.
func (f *Field) Row(y int) string {
	if y < 0 || y >= Rows {
		return ""
	}
	return string(f.cells[y][:])
}

// Rows returns a snapshot of the grid, one string per row.
func (f *Field) Rows() []string {
	out := make([]string, Rows)
	for y := range out {
		out[y] = f.Row(y)
	}
	return out
}

func (f *Field) String() string {
	return strings.Join(f.Rows(), "\n")
}
