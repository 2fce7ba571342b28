// Package levels loads Ladder level definitions.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/field"
)

// DefaultBonusTime is the bonus time budget of a level that does not set one.
const DefaultBonusTime = 2000

//go:embed levels.yaml
var builtinData []byte

// ErrNoLevels is returned when a level file defines no levels.
var ErrNoLevels = errors.New("levels: no levels defined")

// Def is a level as written in a level file.
type Def struct {
	Name      string   `yaml:"name"`
	BonusTime int      `yaml:"bonus_time"`
	Layout    []string `yaml:"layout"`
}

type levelFile struct {
	Levels []Def `yaml:"levels"`
}

// Level is a level ready to be played: a fresh grid plus the positions
// extracted from the raw layout.
type Level struct {
	Number     int
	Name       string
	BonusTime  int
	Field      *field.Field
	Dispensers []core.Point
	Start      core.Point
}

// Build sanitizes a definition into a playable level. The player start
// marker is removed from the grid; dispensers stay in place.
func Build(def Def) (*Level, error) {
	f := field.New(def.Layout)
	lvl := &Level{
		Name:      def.Name,
		BonusTime: def.BonusTime,
		Field:     f,
	}
	if lvl.BonusTime <= 0 {
		lvl.BonusTime = DefaultBonusTime
	}

	found := false
	for y := 0; y < field.Rows; y++ {
		for x := 0; x < field.Cols; x++ {
			switch f.At(x, y) {
			case field.Dispenser:
				lvl.Dispensers = append(lvl.Dispensers, core.Pt(x, y))
			case field.PlayerStart:
				f.Clear(x, y)
				if !found {
					lvl.Start = core.Pt(x, y)
					found = true
				}
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("levels: %q has no player start", def.Name)
	}
	return lvl, nil
}

// Set is an ordered list of level definitions.
type Set struct {
	defs []Def
}

// Parse reads a YAML level file. Every level is validated up front so a bad
// layout fails at startup, not mid-game.
func Parse(data []byte) (*Set, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("levels: parse: %w", err)
	}
	if len(lf.Levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, def := range lf.Levels {
		if def.Name == "" {
			lf.Levels[i].Name = fmt.Sprintf("Level %d", i+1)
		}
		if _, err := Build(lf.Levels[i]); err != nil {
			return nil, err
		}
	}
	return &Set{defs: lf.Levels}, nil
}

// LoadFile reads a level set from disk.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the built-in level set.
func Default() *Set {
	s, err := Parse(builtinData)
	if err != nil {
		panic(fmt.Sprintf("levels: built-in level set is invalid: %v", err))
	}
	return s
}

// Count returns the number of levels in the set.
func (s *Set) Count() int {
	return len(s.defs)
}

// Names returns level names in play order.
func (s *Set) Names() []string {
	names := make([]string, len(s.defs))
	for i, d := range s.defs {
		names[i] = d.Name
	}
	return names
}

// Load builds level n. Level numbers wrap around the set, so playing past
// the last level starts over from the first.
func (s *Set) Load(n int) *Level {
	if s == nil || len(s.defs) == 0 {
		panic(fmt.Sprintf("levels: no such level number: %d", n))
	}
	idx := n % len(s.defs)
	if idx < 0 {
		idx += len(s.defs)
	}
	lvl, err := Build(s.defs[idx])
	if err != nil {
		// Parse validated every definition.
		panic(err)
	}
	lvl.Number = n
	return lvl
}
