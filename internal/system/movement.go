package system

import (
	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/core/event"
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/world"
	"go.uber.org/zap"
)

// Report counts the outcomes of one resolution pass.
type Report struct {
	Moved    int
	Rejected int
	Bumped   int
}

// ResolveMoves is the only code that changes a Position. Intents are
// processed in order:
//   - stale entities (despawned, or without a Position) are skipped;
//   - destinations off the map, on a Wall, or already claimed earlier in the
//     pass are rejected;
//   - an occupied destination is a bump: a mob bumping the player emits a
//     melee event, any other bump is rejected;
//   - everything else moves, updating Position and occupancy together.
func ResolveMoves(res *world.Resources, intents []world.MoveIntent) Report {
	var rep Report
	claimed := make(map[component.Position]struct{}, len(intents))

	for _, in := range intents {
		pos, ok := res.C.Position.Get(in.Entity)
		if !ok || !res.ECS.Alive(in.Entity) {
			rep.Rejected++
			continue
		}
		to := in.To
		if !res.Map.IsFloor(to) {
			rep.Rejected++
			continue
		}
		if _, taken := claimed[to]; taken {
			rep.Rejected++
			continue
		}
		if occupant, occupied := res.Map.TopOccupant(to); occupied {
			if res.IsPlayer(occupant) && res.C.Mob.Has(in.Entity) && res.C.Stats.Has(occupant) {
				event.Emit(res.Events, event.Melee{Source: in.Entity, Target: occupant})
				rep.Bumped++
				continue
			}
			rep.Rejected++
			continue
		}

		if err := res.Map.MoveEntity(*pos, to, in.Entity); err != nil {
			res.Log.Warn("movement: occupancy out of sync",
				zap.Stringer("entity", in.Entity), zap.Error(err))
			rep.Rejected++
			continue
		}
		*pos = to
		claimed[to] = struct{}{}
		rep.Moved++
	}
	return rep
}

// MovementSystem commits the mobs' queued intents.
type MovementSystem struct {
	log *zap.Logger
}

func NewMovementSystem(log *zap.Logger) *MovementSystem {
	return &MovementSystem{log: log}
}

func (s *MovementSystem) Stage() coresys.Stage { return coresys.StageMovement }

func (s *MovementSystem) Update(res *world.Resources) {
	intents := res.Intents.Drain()
	if len(intents) == 0 {
		return
	}
	rep := ResolveMoves(res, intents)
	s.log.Debug("movement resolved",
		zap.Int("intents", len(intents)),
		zap.Int("moved", rep.Moved),
		zap.Int("rejected", rep.Rejected),
		zap.Int("bumped", rep.Bumped),
	)
}
