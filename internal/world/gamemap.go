package world

import (
	"fmt"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/core/ecs"
)

// TileType is the terrain of one grid cell.
type TileType uint8

const (
	Wall TileType = iota
	Floor
)

func (t TileType) String() string {
	if t == Floor {
		return "floor"
	}
	return "wall"
}

// Map owns the tile grid, the per-tile occupancy lists and the explored
// memory bitmap of one level. It is created by a generator and replaced
// wholesale when a new level is built.
type Map struct {
	width    int
	height   int
	tiles    []TileType
	memory   []bool
	occ      *Occupancy
	spawn    component.Position
	rooms    []Rect
	strategy string
}

// NewMap returns a width×height map with every tile set to Wall.
func NewMap(width, height int) *Map {
	size := width * height
	return &Map{
		width:  width,
		height: height,
		tiles:  make([]TileType, size),
		memory: make([]bool, size),
		occ:    NewOccupancy(size),
	}
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

// Index converts a coordinate to a flat index. The coordinate must be in bounds.
func (m *Map) Index(p component.Position) int {
	return p.Y*m.width + p.X
}

// PositionOf converts a flat index back to a coordinate.
func (m *Map) PositionOf(idx int) component.Position {
	return component.Position{X: idx % m.width, Y: idx / m.width}
}

func (m *Map) InBounds(p component.Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Tile returns the terrain at p; out-of-bounds reads as Wall.
func (m *Map) Tile(p component.Position) TileType {
	if !m.InBounds(p) {
		return Wall
	}
	return m.tiles[m.Index(p)]
}

func (m *Map) SetTile(p component.Position, t TileType) {
	if m.InBounds(p) {
		m.tiles[m.Index(p)] = t
	}
}

// IsOpaque reports whether p blocks sight. Walls and everything outside the
// map are opaque.
func (m *Map) IsOpaque(p component.Position) bool {
	return m.Tile(p) == Wall
}

// IsFloor reports whether p is an in-bounds Floor tile.
func (m *Map) IsFloor(p component.Position) bool {
	return m.InBounds(p) && m.tiles[m.Index(p)] == Floor
}

// IsWalkable reports whether p is Floor and nobody stands on it.
func (m *Map) IsWalkable(p component.Position) bool {
	return m.IsFloor(p) && len(m.occ.At(m.Index(p))) == 0
}

// FloorCount returns the number of Floor tiles.
func (m *Map) FloorCount() int {
	n := 0
	for _, t := range m.tiles {
		if t == Floor {
			n++
		}
	}
	return n
}

// --- explored memory ---

// Remember marks p as explored. Memory only ever grows.
func (m *Map) Remember(p component.Position) {
	if m.InBounds(p) {
		m.memory[m.Index(p)] = true
	}
}

func (m *Map) IsRemembered(p component.Position) bool {
	return m.InBounds(p) && m.memory[m.Index(p)]
}

// EachRemembered visits every explored tile in index order.
func (m *Map) EachRemembered(fn func(component.Position)) {
	for idx, seen := range m.memory {
		if seen {
			fn(m.PositionOf(idx))
		}
	}
}

// --- occupancy ---

// Occupants returns the entities standing on p, bottom first. The slice is
// owned by the map; callers must not modify it.
func (m *Map) Occupants(p component.Position) []ecs.EntityID {
	if !m.InBounds(p) {
		return nil
	}
	return m.occ.At(m.Index(p))
}

// TopOccupant returns the last entity to arrive on p.
func (m *Map) TopOccupant(p component.Position) (ecs.EntityID, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.occ.Top(m.Index(p))
}

func (m *Map) IsOccupied(p component.Position) bool {
	return len(m.Occupants(p)) > 0
}

// AddEntity registers id on tile p. Used when populating a level.
func (m *Map) AddEntity(p component.Position, id ecs.EntityID) error {
	if !m.InBounds(p) {
		return fmt.Errorf("add entity %s at (%d,%d): out of bounds", id, p.X, p.Y)
	}
	m.occ.Add(m.Index(p), id)
	return nil
}

// RemoveEntity takes id off tile p.
func (m *Map) RemoveEntity(p component.Position, id ecs.EntityID) error {
	if !m.InBounds(p) {
		return fmt.Errorf("remove entity %s at (%d,%d): out of bounds", id, p.X, p.Y)
	}
	if err := m.occ.Remove(m.Index(p), id); err != nil {
		return fmt.Errorf("remove entity %s at (%d,%d): %w", id, p.X, p.Y, err)
	}
	return nil
}

// MoveEntity relocates id from one tile's list to another's.
func (m *Map) MoveEntity(from, to component.Position, id ecs.EntityID) error {
	if !m.InBounds(from) || !m.InBounds(to) {
		return fmt.Errorf("move entity %s (%d,%d)->(%d,%d): out of bounds", id, from.X, from.Y, to.X, to.Y)
	}
	if err := m.occ.Move(id, m.Index(from), m.Index(to)); err != nil {
		return fmt.Errorf("move entity %s (%d,%d)->(%d,%d): %w", id, from.X, from.Y, to.X, to.Y, err)
	}
	return nil
}

// OccupancyCount returns the number of occupancy entries on the whole map.
func (m *Map) OccupancyCount() int {
	return m.occ.Count()
}

// --- generation metadata ---

// Spawn is the player start: the centre of the first room.
func (m *Map) Spawn() component.Position     { return m.spawn }
func (m *Map) SetSpawn(p component.Position) { m.spawn = p }
func (m *Map) Rooms() []Rect                 { return m.rooms }
func (m *Map) AddRoom(r Rect)                { m.rooms = append(m.rooms, r) }
func (m *Map) Strategy() string              { return m.strategy }
func (m *Map) SetStrategy(name string)       { m.strategy = name }
