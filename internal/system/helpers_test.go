package system

import (
	"testing"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/core/ecs"
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/input"
	"github.com/progrog/roguelike/internal/world"
	"go.uber.org/zap/zaptest"
)

// seq replays a fixed list of draws, each reduced into range.
type seq struct {
	vals []int
	i    int
}

func (s *seq) Range(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// roomMap returns a w×h map with a one-tile wall border around open floor.
func roomMap(w, h int) *world.Map {
	m := world.NewMap(w, h)
	world.NewRect(1, 1, w-2, h-2).Each(func(p component.Position) {
		m.SetTile(p, world.Floor)
	})
	return m
}

func createTestResources(t *testing.T, m *world.Map) *world.Resources {
	t.Helper()
	return world.NewResources(m, &seq{vals: []int{0}}, zaptest.NewLogger(t))
}

func spawnPlayer(t *testing.T, res *world.Resources, p component.Position) ecs.EntityID {
	t.Helper()
	id := res.ECS.CreateEntity()
	res.C.Player.Set(id, &component.Player{})
	res.C.Name.Set(id, &component.Name{Text: "you"})
	res.C.Stats.Set(id, component.NewStats(10, 10))
	res.C.Viewshed.Set(id, component.NewViewshed(5))
	if err := res.Place(id, p); err != nil {
		t.Fatalf("place player: %v", err)
	}
	res.Player = id
	return id
}

func spawnMob(t *testing.T, res *world.Resources, p component.Position, name string, hp int) ecs.EntityID {
	t.Helper()
	id := res.ECS.CreateEntity()
	res.C.Mob.Set(id, &component.Mob{Glyph: rune(name[0])})
	res.C.Name.Set(id, &component.Name{Text: name})
	res.C.Stats.Set(id, component.NewStats(hp, 0))
	res.C.Viewshed.Set(id, component.NewViewshed(2))
	if err := res.Place(id, p); err != nil {
		t.Fatalf("place %s: %v", name, err)
	}
	return id
}

func pos(x, y int) component.Position { return component.Position{X: x, Y: y} }

func positionOf(t *testing.T, res *world.Resources, id ecs.EntityID) component.Position {
	t.Helper()
	p, ok := res.C.Position.Get(id)
	if !ok {
		t.Fatalf("entity %s has no position", id)
	}
	return *p
}

// press runs one full tick with key and checks the occupancy invariant.
func press(t *testing.T, r *coresys.Runner[*world.Resources], res *world.Resources, key input.Key) []coresys.Stage {
	t.Helper()
	res.Key = key
	ran := r.Tick(res)
	if err := world.VerifyOccupancy(res); err != nil {
		t.Fatalf("after %v: %v", key, err)
	}
	return ran
}

// acknowledge dismisses every queued message and returns them.
func acknowledge(t *testing.T, r *coresys.Runner[*world.Resources], res *world.Resources) []string {
	t.Helper()
	msgs := res.Messages.All()
	for !res.Messages.Empty() {
		press(t, r, res, input.KeyPass)
	}
	return msgs
}
