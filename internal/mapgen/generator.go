// Package mapgen builds levels: non-overlapping rooms joined by elbow
// corridors, carved out of a solid wall grid.
package mapgen

import (
	"errors"
	"fmt"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/rng"
	"github.com/progrog/roguelike/internal/world"
)

// Room size bounds. Sizes are drawn from [Min, Max).
const (
	MinRoomWidth  = 3
	MaxRoomWidth  = 15
	MinRoomHeight = 3
	MaxRoomHeight = 12

	RoomCount = 20

	// MaxPlacementAttempts bounds the rejection sampling loop so an
	// unsatisfiable request fails instead of spinning forever.
	MaxPlacementAttempts = 100_000
)

var (
	ErrMapTooSmall        = errors.New("map dimensions must exceed the maximum room size")
	ErrPlacementExhausted = errors.New("could not place every room")
)

// Generator is one room-carving strategy.
type Generator interface {
	Name() string
	Generate(width, height int, src rng.Source) (*world.Map, error)
}

// carveFunc turns one accepted room footprint into Floor tiles.
type carveFunc func(m *world.Map, room world.Rect)

// build runs the shared pipeline: place rooms, carve each with carve, then
// connect consecutive room centres.
func build(name string, width, height int, src rng.Source, carve carveFunc) (*world.Map, error) {
	if width <= MaxRoomWidth || height <= MaxRoomHeight {
		return nil, fmt.Errorf("%s %dx%d: %w", name, width, height, ErrMapTooSmall)
	}
	rooms, err := placeRooms(width, height, src)
	if err != nil {
		return nil, fmt.Errorf("%s %dx%d: %w", name, width, height, err)
	}

	m := world.NewMap(width, height)
	m.SetStrategy(name)
	for i, room := range rooms {
		carve(m, room)
		m.AddRoom(room)
		if i > 0 {
			connect(m, rooms[i-1].Center(), room.Center(), src)
		}
	}
	m.SetSpawn(rooms[0].Center())
	return m, nil
}

// placeRooms samples candidate rects until RoomCount of them are accepted.
// A candidate is accepted only when it intersects none of the earlier ones.
func placeRooms(width, height int, src rng.Source) ([]world.Rect, error) {
	rooms := make([]world.Rect, 0, RoomCount)
	for attempts := 0; len(rooms) < RoomCount; attempts++ {
		if attempts >= MaxPlacementAttempts {
			return nil, fmt.Errorf("%w: %d of %d after %d attempts", ErrPlacementExhausted, len(rooms), RoomCount, attempts)
		}
		x := src.Range(width - MaxRoomWidth)
		y := src.Range(height - MaxRoomHeight)
		w := rng.Between(src, MinRoomWidth, MaxRoomWidth)
		h := rng.Between(src, MinRoomHeight, MaxRoomHeight)
		candidate := world.NewRect(x, y, w, h)

		ok := true
		for _, r := range rooms {
			if candidate.Intersects(r) {
				ok = false
				break
			}
		}
		if ok {
			rooms = append(rooms, candidate)
		}
	}
	return rooms, nil
}

// connect carves an elbow corridor between two points, choosing at random
// between horizontal-first and vertical-first.
func connect(m *world.Map, from, to component.Position, src rng.Source) {
	if src.Range(2) == 0 {
		carveHorizontal(m, from.X, to.X, from.Y)
		carveVertical(m, from.Y, to.Y, to.X)
	} else {
		carveVertical(m, from.Y, to.Y, from.X)
		carveHorizontal(m, from.X, to.X, to.Y)
	}
}

func carveHorizontal(m *world.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(component.Position{X: x, Y: y}, world.Floor)
	}
}

func carveVertical(m *world.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(component.Position{X: x, Y: y}, world.Floor)
	}
}
