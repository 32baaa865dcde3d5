package system

import (
	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/core/ecs"
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/fov"
	"github.com/progrog/roguelike/internal/world"
)

// VisibilitySystem recomputes every viewshed from scratch. The result only
// depends on the map and the viewer's position, so running it twice in a row
// changes nothing.
type VisibilitySystem struct{}

func NewVisibilitySystem() *VisibilitySystem { return &VisibilitySystem{} }

func (s *VisibilitySystem) Stage() coresys.Stage { return coresys.StageVisibility }

func (s *VisibilitySystem) Update(res *world.Resources) {
	ecs.Each2(res.C.Viewshed, res.C.Position, func(_ ecs.EntityID, vs *component.Viewshed, pos *component.Position) {
		vs.Visible = fov.Compute(res.Map, *pos, vs.Range)
	})
}

// MemorySystem marks the walls the player currently sees as remembered.
// Memory is never cleared for the lifetime of a map.
type MemorySystem struct{}

func NewMemorySystem() *MemorySystem { return &MemorySystem{} }

func (s *MemorySystem) Stage() coresys.Stage { return coresys.StageVisibility }

func (s *MemorySystem) Update(res *world.Resources) {
	ecs.Each2(res.C.Player, res.C.Viewshed, func(_ ecs.EntityID, _ *component.Player, vs *component.Viewshed) {
		vs.Visible.Each(func(p component.Position) {
			if res.Map.IsOpaque(p) {
				res.Map.Remember(p)
			}
		})
	})
}
