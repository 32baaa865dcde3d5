// Package system holds the per-tick game systems and wires them into the
// stage runner.
package system

import (
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/world"
	"go.uber.org/zap"
)

// NewPipeline registers every system in tick order. Gated stages run only
// when Resources.RunSystems is set.
func NewPipeline(policy DamagePolicy, log *zap.Logger) *coresys.Runner[*world.Resources] {
	r := coresys.NewRunner(func(res *world.Resources) bool { return res.RunSystems })

	r.Register(NewClearSystem())
	r.Register(NewInputSystem(log))
	r.Register(NewVisibilitySystem())
	r.Register(NewMemorySystem())
	r.Register(NewAISystem())
	r.Register(NewMovementSystem(log))
	r.Register(NewResolveCombatSystem(policy, log))
	r.Register(NewDealDamageSystem(log))
	r.Register(NewDrawSystem())
	r.Register(NewClearRunFlagSystem())
	return r
}
