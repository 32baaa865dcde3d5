// Package game runs one play session: it owns the level, the stage pipeline
// and the run-state machine, and turns keys into frames.
package game

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/config"
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/data"
	"github.com/progrog/roguelike/internal/input"
	"github.com/progrog/roguelike/internal/mapgen"
	"github.com/progrog/roguelike/internal/rng"
	"github.com/progrog/roguelike/internal/system"
	"github.com/progrog/roguelike/internal/world"
)

// Run states.
const (
	StateWelcome = "welcome"
	StatePlaying = "playing"
	StateDead    = "dead"
)

// State machine events.
const (
	eventStart = "start"
	eventDie   = "die"
)

var welcomeLines = []string{
	`Welcome to "Prog-Rog"`,
	"A Programmable Roguelike",
	"",
	"Press ENTER to Start",
}

var deadLines = []string{
	"You are dead.",
	"Press q to quit",
}

// Session is a single game from the welcome screen to death. It is driven
// from one goroutine only.
type Session struct {
	builder *levelBuilder
	res     *world.Resources
	runner  *coresys.Runner[*world.Resources]
	state   *fsm.FSM
	level   int
	log     *zap.Logger
}

// NewSession builds the first level and waits on the welcome screen.
func NewSession(cfg *config.Config, src rng.Source, mobs *data.MobTable, log *zap.Logger) (*Session, error) {
	policy, err := system.PolicyFromConfig(cfg.Combat)
	if err != nil {
		return nil, err
	}
	s := &Session{
		builder: &levelBuilder{
			cfg:  cfg,
			gens: mapgen.DefaultRegistry(),
			mobs: mobs,
			rng:  src,
			log:  log,
		},
		runner: system.NewPipeline(policy, log),
		log:    log,
	}
	s.state = fsm.NewFSM(
		StateWelcome,
		fsm.Events{
			{Name: eventStart, Src: []string{StateWelcome}, Dst: StatePlaying},
			{Name: eventDie, Src: []string{StatePlaying}, Dst: StateDead},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.log.Info("session state changed",
					zap.String("from", e.Src), zap.String("to", e.Dst), zap.String("event", e.Event))
			},
		},
	)

	res, err := s.builder.build(nil)
	if err != nil {
		return nil, err
	}
	s.res = res
	s.level = 1
	return s, nil
}

// State returns the current run state.
func (s *Session) State() string { return s.state.Current() }

// Level is the 1-based number of the current map.
func (s *Session) Level() int { return s.level }

// Resources exposes the simulation state of the current level.
func (s *Session) Resources() *world.Resources { return s.res }

// Update feeds one key to the session. On the welcome screen only Start is
// accepted; while playing the key drives exactly one tick, except Descend,
// which moves to a new level once the message log is clear; after death only
// message acknowledgement is accepted.
func (s *Session) Update(ctx context.Context, key input.Key) error {
	switch s.state.Current() {
	case StateWelcome:
		if key != input.KeyStart {
			return nil
		}
		if err := s.state.Event(ctx, eventStart); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		s.bootstrap()

	case StatePlaying:
		if key == input.KeyDescend {
			if !s.res.Messages.Empty() {
				return nil
			}
			return s.Regenerate()
		}
		s.res.Key = key
		s.runner.Tick(s.res)
		if s.res.PlayerDied {
			if err := s.state.Event(ctx, eventDie); err != nil {
				return fmt.Errorf("end session: %w", err)
			}
		}

	case StateDead:
		if key == input.KeyPass {
			s.res.Messages.Advance()
		}
	}
	return nil
}

// bootstrap computes the first viewsheds and draw list so the opening frame
// already shows the player's surroundings. Mobs do not act.
func (s *Session) bootstrap() {
	s.runner.TickStage(coresys.StageVisibility, s.res)
	s.runner.TickStage(coresys.StageDraw, s.res)
}

// Regenerate replaces the level with a freshly generated one. The player
// keeps their stats; the message log starts empty.
func (s *Session) Regenerate() error {
	var carry *component.Stats
	if st, ok := s.res.C.Stats.Get(s.res.Player); ok {
		c := *st
		carry = &c
	}
	res, err := s.builder.build(carry)
	if err != nil {
		return fmt.Errorf("regenerate level %d: %w", s.level+1, err)
	}
	s.res = res
	s.level++
	if s.state.Is(StatePlaying) {
		s.bootstrap()
	}
	return nil
}
