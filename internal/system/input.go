package system

import (
	"github.com/progrog/roguelike/internal/core/event"
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/input"
	"github.com/progrog/roguelike/internal/world"
	"go.uber.org/zap"
)

// InputSystem turns the tick's key into at most one player action.
// While messages are queued the only accepted key is Pass, which dismisses
// the head message without spending a turn.
type InputSystem struct {
	log *zap.Logger
}

func NewInputSystem(log *zap.Logger) *InputSystem {
	return &InputSystem{log: log}
}

func (s *InputSystem) Stage() coresys.Stage { return coresys.StageInput }

func (s *InputSystem) Update(res *world.Resources) {
	key := res.Key
	res.Key = input.KeyNone
	if key == input.KeyNone {
		return
	}

	if !res.Messages.Empty() {
		if key == input.KeyPass {
			res.Messages.Advance()
		}
		return
	}

	if key == input.KeyPass {
		res.RunSystems = true
		return
	}

	dx, dy, ok := key.Delta()
	if !ok {
		return
	}
	pos, ok := res.C.Position.Get(res.Player)
	if !ok {
		s.log.Debug("input: player has no position", zap.Stringer("entity", res.Player))
		return
	}
	dest := pos.Add(dx, dy)
	if !res.Map.IsFloor(dest) {
		return
	}

	if target, occupied := res.Map.TopOccupant(dest); occupied {
		event.Emit(res.Events, event.Melee{Source: res.Player, Target: target})
		res.RunSystems = true
		return
	}

	rep := ResolveMoves(res, []world.MoveIntent{{Entity: res.Player, From: *pos, To: dest}})
	if rep.Moved == 1 {
		res.RunSystems = true
	}
}
