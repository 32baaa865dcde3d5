package mapgen

import (
	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/rng"
	"github.com/progrog/roguelike/internal/world"
)

// RectRooms carves every room footprint as a solid rectangle of Floor.
type RectRooms struct{}

func (RectRooms) Name() string { return "rect" }

func (g RectRooms) Generate(width, height int, src rng.Source) (*world.Map, error) {
	return build(g.Name(), width, height, src, func(m *world.Map, room world.Rect) {
		room.Each(func(p component.Position) {
			m.SetTile(p, world.Floor)
		})
	})
}
