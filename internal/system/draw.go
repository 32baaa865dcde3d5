package system

import (
	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/core/ecs"
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/world"
)

const (
	glyphWall   = '#'
	glyphFloor  = '.'
	glyphPlayer = '@'
)

// DrawSystem rebuilds the draw list from what the player can see: visible
// terrain and remembered walls first, then visible mobs, then the player.
type DrawSystem struct{}

func NewDrawSystem() *DrawSystem { return &DrawSystem{} }

func (s *DrawSystem) Stage() coresys.Stage { return coresys.StageDraw }

func (s *DrawSystem) Update(res *world.Resources) {
	res.DrawList.Reset()

	pos, ok := res.C.Position.Get(res.Player)
	if !ok {
		return
	}
	vs, ok := res.C.Viewshed.Get(res.Player)
	if !ok {
		res.DrawList.Push(*pos, glyphPlayer, world.PriorityPlayer)
		return
	}

	res.Map.EachRemembered(func(p component.Position) {
		if !vs.Sees(p) {
			res.DrawList.Push(p, glyphWall, world.PriorityTerrain)
		}
	})
	vs.Visible.Each(func(p component.Position) {
		glyph := rune(glyphFloor)
		if res.Map.IsOpaque(p) {
			glyph = glyphWall
		}
		res.DrawList.Push(p, glyph, world.PriorityTerrain)
	})

	ecs.Each2(res.C.Mob, res.C.Position, func(_ ecs.EntityID, mob *component.Mob, p *component.Position) {
		if vs.Sees(*p) {
			res.DrawList.Push(*p, mob.Glyph, world.PriorityMob)
		}
	})
	res.DrawList.Push(*pos, glyphPlayer, world.PriorityPlayer)
}
