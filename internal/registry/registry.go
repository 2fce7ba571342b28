// Package registry maps game IDs to factories. Game packages register in
// init(); the CLI and the TUI look games up by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-ladder/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nothing registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a tick-driven game. It never touches the terminal: the platform
// maps keys to an InputFrame, calls Step at a fixed rate and draws
// whatever Render leaves in the screen buffer.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score table.
	ID() string
	Title() string

	// Reset starts a new game. It is also how a finished game restarts.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick of cfg.TickRate.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen that was cleared beforehand.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates an unstarted game.
type Factory func() Game

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

type entry struct {
	title   string
	factory Factory
}

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{title: f().Title(), factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for id, e := range games {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return result
}

// Info returns the description of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return GameInfo{}, false
	}
	return GameInfo{ID: id, Title: e.title}, true
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
