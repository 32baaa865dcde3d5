package system

import (
	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/core/ecs"
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/world"
)

// wander lists the four steps a mob picks from when it cannot see the player.
var wander = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// AISystem files one move intent per mob. A mob next to the player files a
// move onto the player's tile, which the movement stage turns into a melee
// bump. A mob that sees the player steps toward it; any other mob wanders one
// tile in a random cardinal direction.
type AISystem struct{}

func NewAISystem() *AISystem { return &AISystem{} }

func (s *AISystem) Stage() coresys.Stage { return coresys.StageAI }

func (s *AISystem) Update(res *world.Resources) {
	target, hasTarget := res.C.Position.Get(res.Player)

	ecs.Each3(res.C.Mob, res.C.Position, res.C.Viewshed, func(id ecs.EntityID, _ *component.Mob, pos *component.Position, vs *component.Viewshed) {
		var to component.Position
		switch {
		case hasTarget && pos.IsAdjacent(*target):
			to = *target
		case hasTarget && vs.Sees(*target):
			to = chaseStep(res.Map, *pos, *target)
		default:
			d := wander[res.RNG.Range(len(wander))]
			to = pos.Add(d[0], d[1])
		}
		if to == *pos {
			return
		}
		res.Intents.Set(world.MoveIntent{Entity: id, From: *pos, To: to})
	})
}

// chaseStep returns the next tile from from toward to. The direct step is
// preferred; when it hits a wall the mob slides along the dominant axis and
// then the other one. It returns from when every option is a wall.
func chaseStep(m *world.Map, from, to component.Position) component.Position {
	dxRaw, dyRaw := to.X-from.X, to.Y-from.Y
	stepX, stepY := sign(dxRaw), sign(dyRaw)

	if next := from.Add(stepX, stepY); next != from && m.IsFloor(next) {
		return next
	}

	slides := [][2]int{{stepX, 0}, {0, stepY}}
	if abs(dyRaw) > abs(dxRaw) {
		slides[0], slides[1] = slides[1], slides[0]
	}
	for _, d := range slides {
		if d == [2]int{} {
			continue
		}
		if next := from.Add(d[0], d[1]); m.IsFloor(next) {
			return next
		}
	}
	return from
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
