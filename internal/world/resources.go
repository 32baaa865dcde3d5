package world

import (
	"fmt"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/core/ecs"
	"github.com/progrog/roguelike/internal/core/event"
	"github.com/progrog/roguelike/internal/input"
	"github.com/progrog/roguelike/internal/rng"
	"go.uber.org/zap"
)

// Components groups the typed stores of every component the game uses. All
// stores are registered with the ECS registry so a destroyed entity loses
// every component at once.
type Components struct {
	Position *ecs.Store[component.Position]
	Stats    *ecs.Store[component.Stats]
	Name     *ecs.Store[component.Name]
	Mob      *ecs.Store[component.Mob]
	Player   *ecs.Store[component.Player]
	Viewshed *ecs.Store[component.Viewshed]
}

func NewComponents(reg *ecs.Registry) *Components {
	return &Components{
		Position: ecs.Register[component.Position](reg),
		Stats:    ecs.Register[component.Stats](reg),
		Name:     ecs.Register[component.Name](reg),
		Mob:      ecs.Register[component.Mob](reg),
		Player:   ecs.Register[component.Player](reg),
		Viewshed: ecs.Register[component.Viewshed](reg),
	}
}

// Resources is the shared state handed to every system by the stage runner.
// Write access per stage:
//
//	clear:      Intents, Events
//	input:      Key, Messages (advance), Position/Map (player move), Events, RunSystems
//	visibility: Viewshed, Map memory
//	ai:         Intents, RNG
//	movement:   Position, Map occupancy, Events
//	combat:     Stats, Messages, Map occupancy + ECS (despawn), PlayerDied
//	draw:       DrawList
//	cleanup:    RunSystems
type Resources struct {
	ECS      *ecs.World
	C        *Components
	Map      *Map
	Messages *Messages
	Intents  *Intents
	Events   *event.Bus
	DrawList *DrawList
	RNG      rng.Source
	Log      *zap.Logger

	// Player is the entity holding the Player marker.
	Player ecs.EntityID

	// Key is the raw key handed to this tick; KeyNone when idle.
	Key input.Key

	// RunSystems opens the gated stages for the current tick.
	RunSystems bool

	// PlayerDied is raised by the combat stage when the player's HP drops
	// below zero.
	PlayerDied bool
}

func NewResources(m *Map, src rng.Source, log *zap.Logger) *Resources {
	w := ecs.NewWorld()
	return &Resources{
		ECS:      w,
		C:        NewComponents(w.Registry()),
		Map:      m,
		Messages: NewMessages(),
		Intents:  NewIntents(),
		Events:   event.NewBus(),
		DrawList: NewDrawList(),
		RNG:      src,
		Log:      log,
	}
}

// Place gives id a Position at p and registers it on the map. It is the only
// way entities enter the occupancy grid.
func (r *Resources) Place(id ecs.EntityID, p component.Position) error {
	if err := r.Map.AddEntity(p, id); err != nil {
		return err
	}
	pos := p
	r.C.Position.Set(id, &pos)
	return nil
}

// Despawn prunes id from the occupancy grid and queues it for destruction.
// The calling stage flushes the ECS destroy queue. Despawning a stale id is
// a no-op.
func (r *Resources) Despawn(id ecs.EntityID) {
	if !r.ECS.Alive(id) {
		return
	}
	if pos, ok := r.C.Position.Get(id); ok {
		if err := r.Map.RemoveEntity(*pos, id); err != nil {
			r.Log.Warn("despawn: occupancy out of sync", zap.Stringer("entity", id), zap.Error(err))
		}
	}
	r.ECS.MarkForDestruction(id)
}

// DisplayName returns the entity's Name, or "something" when it has none.
func (r *Resources) DisplayName(id ecs.EntityID) string {
	if n, ok := r.C.Name.Get(id); ok && n.Text != "" {
		return n.Text
	}
	return "something"
}

// IsPlayer reports whether id holds the Player marker.
func (r *Resources) IsPlayer(id ecs.EntityID) bool {
	return r.C.Player.Has(id)
}

// VerifyOccupancy checks that every occupancy list holds exactly the
// entities whose Position maps to that tile.
func VerifyOccupancy(r *Resources) error {
	expected := 0
	var err error
	r.C.Position.Each(func(id ecs.EntityID, p *component.Position) {
		expected++
		if err != nil {
			return
		}
		found := 0
		for _, other := range r.Map.Occupants(*p) {
			if other == id {
				found++
			}
		}
		if found != 1 {
			err = fmt.Errorf("entity %s at (%d,%d) listed %d times on its tile", id, p.X, p.Y, found)
		}
	})
	if err != nil {
		return err
	}
	if got := r.Map.OccupancyCount(); got != expected {
		return fmt.Errorf("occupancy holds %d entries, %d entities have a position", got, expected)
	}
	return nil
}
