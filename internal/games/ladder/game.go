// Package ladder adapts the Ladder game core to the terminal platform: it
// feeds platform input into the key buffer, drives the session from a
// virtual clock, and draws the field onto a core.Screen.
package ladder

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ladder/internal/config"
	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/levels"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/session"
	"github.com/vovakirdan/tui-ladder/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "ladder"

// Package-level settings applied on the next Reset, set from CLI flags.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	speedOverride    = -1
	levelsPath       string
	logger           *log.Logger
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty keeps the config's.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetSpeed overrides the play speed index. Negative keeps the config's.
func SetSpeed(idx int) {
	speedOverride = idx
}

// SetLevelsPath replaces the built-in levels with a level file.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetLogger sets the logger games are created with. nil discards logs.
func SetLogger(l *log.Logger) {
	logger = l
}

// inputOrder is the order actions are buffered in when a frame carries
// actions but no raw keys.
var inputOrder = []core.Action{
	core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
	core.ActionJump, core.ActionStop, core.ActionPause, core.ActionResume,
}

// Game implements registry.Game for Ladder.
type Game struct {
	rc      core.RuntimeConfig
	cfg     config.LadderConfig
	set     *levels.Set
	session *session.Session
	keys    *core.KeyBuffer
	log     *log.Logger

	speed   int // per-game speed override, negative when unset
	tick    uint64
	tickDur time.Duration
	clock   time.Time
}

// New creates a Ladder game. Call Reset before use.
func New() *Game {
	return &Game{speed: -1}
}

// SetPlaySpeed overrides the speed index for this game from the next Reset.
func (g *Game) SetPlaySpeed(idx int) {
	g.speed = idx
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ladder"
}

// Reset starts a new session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.log = logger
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	g.cfg = loadConfig(g.log)
	if g.speed >= 0 {
		g.cfg.SetSpeed(g.speed)
	}
	g.set = loadLevels(g.log)

	g.tickDur = time.Second / time.Duration(rc.WithDefaults().TickRate)
	g.clock = time.Unix(0, 0)
	g.tick = 0

	g.keys = core.NewKeyBuffer(core.DefaultHistoryWindow)
	g.session = session.New(session.Options{
		Config: g.cfg,
		Levels: g.set,
		Input:  g.keys,
		Rand:   rand.New(rand.NewSource(rc.Seed)),
		Logger: g.log,
	})
}

func loadConfig(l *log.Logger) config.LadderConfig {
	cfg, err := config.LoadLadder(configPath)
	if err != nil {
		l.Warn("using default config", "err", err)
		cfg = config.DefaultLadderConfig()
	}
	if difficultyPreset != "" {
		if p, ok := config.ParsePreset(string(difficultyPreset)); ok {
			config.ApplyLadderPreset(&cfg, p)
		} else {
			l.Warn("unknown difficulty preset", "preset", difficultyPreset)
		}
	}
	if speedOverride >= 0 {
		cfg.SetSpeed(speedOverride)
	}
	return cfg
}

func loadLevels(l *log.Logger) *levels.Set {
	if levelsPath == "" {
		return levels.Default()
	}
	set, err := levels.LoadFile(levelsPath)
	if err != nil {
		l.Error("using built-in levels", "err", err)
		return levels.Default()
	}
	return set
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Over() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.rc)
		}
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.clock = g.clock.Add(g.tickDur)

	if len(in.Keys) > 0 {
		for _, k := range in.Keys {
			k.At = g.clock
			g.keys.Push(k)
		}
	} else {
		for _, a := range inputOrder {
			if in.Has(a) {
				g.keys.Push(core.KeyEvent{At: g.clock, Action: a})
			}
		}
	}
	g.keys.Prune(g.clock)

	g.session.Update(g.clock)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.LevelNumber() + 1,
		Lives:    g.session.Lives(),
		GameOver: g.session.Over(),
		Paused:   g.session.Paused(),
	}
}

// Session exposes the running session.
func (g *Game) Session() *session.Session {
	return g.session
}
