package system

import (
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/world"
)

// ClearSystem drops the previous tick's intents and events so nothing
// carries over into the new tick.
type ClearSystem struct{}

func NewClearSystem() *ClearSystem { return &ClearSystem{} }

func (s *ClearSystem) Stage() coresys.Stage { return coresys.StageClear }

func (s *ClearSystem) Update(res *world.Resources) {
	res.Intents.Clear()
	res.Events.Clear()
}
