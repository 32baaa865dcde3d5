package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/config"
	"github.com/progrog/roguelike/internal/core/ecs"
	"github.com/progrog/roguelike/internal/data"
	"github.com/progrog/roguelike/internal/mapgen"
	"github.com/progrog/roguelike/internal/rng"
	"github.com/progrog/roguelike/internal/world"
)

var ErrNoSpawnRoom = errors.New("generated map has no room to spawn the player in")

// levelBuilder generates maps and populates them.
type levelBuilder struct {
	cfg  *config.Config
	gens *mapgen.Registry
	mobs *data.MobTable
	rng  rng.Source
	log  *zap.Logger
}

func (b *levelBuilder) generator() (mapgen.Generator, error) {
	if b.cfg.Game.Strategy == "" {
		return b.gens.Pick(b.rng), nil
	}
	g, ok := b.gens.Lookup(b.cfg.Game.Strategy)
	if !ok {
		return nil, fmt.Errorf("unknown map strategy %q", b.cfg.Game.Strategy)
	}
	return g, nil
}

// build generates a fresh map, places the player on the spawn tile and
// scatters mobs over free floor. carry, when non-nil, is the player's stats
// from the previous level.
func (b *levelBuilder) build(carry *component.Stats) (*world.Resources, error) {
	gen, err := b.generator()
	if err != nil {
		return nil, err
	}
	m, err := gen.Generate(b.cfg.Game.MapWidth, b.cfg.Game.MapHeight, b.rng)
	if err != nil {
		return nil, fmt.Errorf("generate level: %w", err)
	}
	if len(m.Rooms()) == 0 {
		return nil, ErrNoSpawnRoom
	}

	res := world.NewResources(m, b.rng, b.log)
	if err := b.spawnPlayer(res, m.Spawn(), carry); err != nil {
		return nil, err
	}
	placed := b.spawnMobs(res)

	b.log.Info("level generated",
		zap.String("strategy", m.Strategy()),
		zap.Int("rooms", len(m.Rooms())),
		zap.Int("floor", m.FloorCount()),
		zap.Int("mobs", placed))
	return res, nil
}

func (b *levelBuilder) spawnPlayer(res *world.Resources, at component.Position, carry *component.Stats) error {
	p := b.cfg.Player
	id := res.ECS.CreateEntity()
	res.C.Player.Set(id, &component.Player{})
	res.C.Name.Set(id, &component.Name{Text: p.Name})
	stats := component.NewStats(p.HP, p.MP)
	if carry != nil {
		c := *carry
		stats = &c
	}
	res.C.Stats.Set(id, stats)
	res.C.Viewshed.Set(id, component.NewViewshed(p.Sight))
	if err := res.Place(id, at); err != nil {
		return fmt.Errorf("place player: %w", err)
	}
	res.Player = id
	return nil
}

// spawnMobs places up to MobCount mobs on distinct unoccupied floor tiles
// drawn from the shared stream. It returns how many were placed.
func (b *levelBuilder) spawnMobs(res *world.Resources) int {
	m := res.Map
	free := make([]component.Position, 0, m.FloorCount())
	for i := 0; i < m.Width()*m.Height(); i++ {
		if p := m.PositionOf(i); m.IsWalkable(p) {
			free = append(free, p)
		}
	}

	placed := 0
	for placed < b.cfg.Game.MobCount && len(free) > 0 {
		i := b.rng.Range(len(free))
		at := free[i]
		free[i] = free[len(free)-1]
		free = free[:len(free)-1]

		tmpl := b.mobs.Pick(b.rng)
		if _, err := spawnMob(res, tmpl, at); err != nil {
			b.log.Warn("spawn mob failed", zap.String("mob", tmpl.Name), zap.Error(err))
			continue
		}
		placed++
	}
	if placed < b.cfg.Game.MobCount {
		b.log.Warn("not enough floor for every mob",
			zap.Int("wanted", b.cfg.Game.MobCount), zap.Int("placed", placed))
	}
	return placed
}

func spawnMob(res *world.Resources, tmpl *data.MobTemplate, at component.Position) (ecs.EntityID, error) {
	id := res.ECS.CreateEntity()
	res.C.Mob.Set(id, &component.Mob{Glyph: tmpl.Rune()})
	res.C.Name.Set(id, &component.Name{Text: tmpl.Name})
	res.C.Stats.Set(id, component.NewStats(tmpl.HP, tmpl.MP))
	res.C.Viewshed.Set(id, component.NewViewshed(tmpl.Sight))
	if err := res.Place(id, at); err != nil {
		res.ECS.MarkForDestruction(id)
		res.ECS.FlushDestroyQueue()
		return 0, err
	}
	return id, nil
}
