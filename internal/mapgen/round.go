package mapgen

import (
	"math"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/rng"
	"github.com/progrog/roguelike/internal/world"
)

// RoundRooms carves a disk inside every room footprint. The radius is half
// the room's shorter side.
type RoundRooms struct{}

func (RoundRooms) Name() string { return "round" }

func (g RoundRooms) Generate(width, height int, src rng.Source) (*world.Map, error) {
	return build(g.Name(), width, height, src, carveDisk)
}

func carveDisk(m *world.Map, room world.Rect) {
	radius := float64(min(room.Width(), room.Height())) / 2
	c := room.Center()
	room.Each(func(p component.Position) {
		if math.Hypot(float64(p.X-c.X), float64(p.Y-c.Y)) <= radius {
			m.SetTile(p, world.Floor)
		}
	})
}
