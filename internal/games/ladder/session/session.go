// Package session tracks a Ladder game across levels: lives, score, level
// progression, move-frame pacing, pausing and cheat codes.
package session

import (
	"io"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ladder/internal/config"
	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/levels"
	"github.com/vovakirdan/tui-ladder/internal/games/ladder/playfield"
)

var levelCheat = regexp.MustCompile(`IDCLEV(\d\d)`)

// Options configure a new session. Zero values fall back to defaults.
type Options struct {
	Config config.LadderConfig
	Levels *levels.Set
	Input  core.InputSource
	Rand   *rand.Rand
	Logger *log.Logger
}

// Session is one game, from the first level until the last Lad is lost.
// A nil field means the current level is (re)built on the next update.
type Session struct {
	cfg     config.LadderConfig
	ratchet *config.Ratchet
	levels  *levels.Set
	input   core.InputSource
	rng     *rand.Rand
	log     *log.Logger

	score       int
	lives       int
	levelNumber int
	levelCycle  int
	nextLife    int
	speed       int

	field    *playfield.PlayingField
	paused   bool
	over     bool
	nextMove time.Time
}

// New creates a session at the first level.
func New(opts Options) *Session {
	cfg := opts.Config
	if len(cfg.Speed.PlaySpeeds) == 0 {
		cfg = config.DefaultLadderConfig()
	}
	set := opts.Levels
	if set == nil {
		set = levels.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	in := opts.Input
	if in == nil {
		in = core.NewKeyBuffer(0)
	}

	s := &Session{
		cfg:        cfg,
		ratchet:    config.NewRatchet(cfg),
		levels:     set,
		input:      in,
		rng:        rng,
		log:        logger,
		lives:      cfg.Lives.Start,
		levelCycle: 1,
		nextLife:   cfg.Lives.ExtraLifeEvery,
		speed:      cfg.Speed.Default,
	}
	s.log.Info("session start", "lives", s.lives, "speed", s.speed, "levels", set.Count())
	return s
}

// Update runs one tick at time now. A tick is a move frame when now has
// reached the scheduled time of the next move.
func (s *Session) Update(now time.Time) {
	if s.over {
		return
	}

	moveFrame := false
	if !now.Before(s.nextMove) {
		moveFrame = true
		s.nextMove = now.Add(s.MoveFrameDelay())
	}

	switch a := s.input.LastAction(); {
	case s.paused && (a == core.ActionPause || a == core.ActionResume):
		s.paused = false
		s.input.Consume(false)
		s.log.Debug("resumed")
	case !s.paused && a == core.ActionPause:
		s.paused = true
		s.input.Consume(false)
		s.log.Debug("paused")
	}
	if s.paused {
		return
	}

	if s.field == nil {
		s.field = s.newField()
	}
	s.field.Update(moveFrame)

	s.handleCheatCodes()
}

func (s *Session) newField() *playfield.PlayingField {
	lvl := s.levels.Load(s.levelNumber)
	hf := s.HiddenFactor()
	opts := playfield.Options{
		MaxRocks:    s.ratchet.MaxRocks(len(lvl.Dispensers), hf),
		SpawnChance: s.ratchet.SpawnChance(),
	}
	s.log.Info("level start",
		"level", s.levelNumber+1,
		"name", lvl.Name,
		"cycle", s.levelCycle,
		"max_rocks", opts.MaxRocks,
		"move_delay", s.MoveFrameDelay(),
	)
	return playfield.New(lvl, s, s.input, s.rng, opts)
}

// RestartLevel throws the current play away; the same level starts over on
// the next update.
func (s *Session) RestartLevel() {
	s.field = nil
}

// StartNextLevel moves on to the next level. Wrapping around the level list
// completes a level cycle.
func (s *Session) StartNextLevel() {
	s.field = nil
	s.levelNumber++
	if s.levelNumber%s.levels.Count() == 0 {
		s.levelCycle++
	}
}

// UpdateScore implements playfield.Host.
func (s *Session) UpdateScore(kind playfield.ScoreKind) {
	switch kind {
	case playfield.ScoreRock:
		s.score += s.cfg.Scoring.Rock
	case playfield.ScoreStatue:
		if s.field != nil {
			s.score += s.field.Time()
		}
	case playfield.ScoreTreasure:
		s.score += s.cfg.Scoring.TreasureTick
	}

	every := s.cfg.Lives.ExtraLifeEvery
	for every > 0 && s.score >= s.nextLife {
		s.lives++
		s.nextLife += every
		s.log.Info("extra life", "lives", s.lives, "score", s.score)
	}
}

// LevelComplete implements playfield.Host.
func (s *Session) LevelComplete() {
	s.log.Info("level complete", "level", s.levelNumber+1, "score", s.score)
	s.StartNextLevel()
}

// PlayerDied implements playfield.Host. Losing the last Lad ends the session.
func (s *Session) PlayerDied() {
	s.lives--
	s.log.Info("player died", "lives", s.lives, "level", s.levelNumber+1)
	if s.lives <= 0 {
		s.over = true
		s.field = nil
		s.log.Info("game over", "score", s.score, "level", s.levelNumber+1)
		return
	}
	s.RestartLevel()
}

// HiddenFactor is the number of completed passes through the level list.
func (s *Session) HiddenFactor() int {
	return s.levelNumber / s.levels.Count()
}

// MoveFrameDelay returns the current time between move frames.
func (s *Session) MoveFrameDelay() time.Duration {
	return s.ratchet.MoveDelay(s.speed, s.HiddenFactor())
}

// handleCheatCodes matches the recent key history against the cheat codes.
// A matched code clears the history so it only fires once.
func (s *Session) handleCheatCodes() {
	var sb strings.Builder
	for _, ev := range s.input.History() {
		sb.WriteString(ev.Key)
	}
	typed := strings.ToUpper(sb.String())

	switch {
	case levelCheat.MatchString(typed):
		m := levelCheat.FindStringSubmatch(typed)
		n, _ := strconv.Atoi(m[1])
		s.input.Consume(true)
		s.levelNumber = n
		s.field = nil
		s.log.Warn("cheat: level jump", "level", n)
	case strings.Contains(typed, "IDDQD"):
		s.input.Consume(true)
		// Recognized but has no effect.
		s.log.Warn("cheat: god mode")
	case strings.Contains(typed, "IDKFA"):
		s.input.Consume(true)
		if s.field != nil {
			s.field.SetWinning(true)
		}
		s.log.Warn("cheat: finish level")
	}
}

// Field returns the level being played, or nil between levels.
func (s *Session) Field() *playfield.PlayingField { return s.field }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining Lads.
func (s *Session) Lives() int { return s.lives }

// LevelNumber returns the zero-based level counter. It keeps counting past
// the end of the level list.
func (s *Session) LevelNumber() int { return s.levelNumber }

// LevelCycle returns the current pass through the level list, starting at 1.
func (s *Session) LevelCycle() int { return s.levelCycle }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Over reports whether every Lad has been lost.
func (s *Session) Over() bool { return s.over }

// Speed returns the play speed index.
func (s *Session) Speed() int { return s.speed }
