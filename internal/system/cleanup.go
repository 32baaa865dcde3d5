package system

import (
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/world"
)

// ClearRunFlagSystem closes the gated stages for the next tick and flushes
// anything still waiting in the destroy queue. It runs on every tick.
type ClearRunFlagSystem struct{}

func NewClearRunFlagSystem() *ClearRunFlagSystem { return &ClearRunFlagSystem{} }

func (s *ClearRunFlagSystem) Stage() coresys.Stage { return coresys.StageCleanup }

func (s *ClearRunFlagSystem) Update(res *world.Resources) {
	res.ECS.FlushDestroyQueue()
	res.RunSystems = false
}
