package world

import (
	"errors"

	"github.com/progrog/roguelike/internal/core/ecs"
)

// ErrNotOccupant is returned when an entity is moved or removed from a tile
// it is not listed on.
var ErrNotOccupant = errors.New("entity is not on that tile")

// Occupancy tracks which entities stand on which tile. One list per tile,
// indexed like the tile grid; the last entry of a list is the topmost
// occupant. Accessed only from the simulation goroutine; no locks.
type Occupancy struct {
	cells [][]ecs.EntityID
}

func NewOccupancy(size int) *Occupancy {
	return &Occupancy{cells: make([][]ecs.EntityID, size)}
}

// Add places an entity on top of the tile at idx.
func (o *Occupancy) Add(idx int, id ecs.EntityID) {
	o.cells[idx] = append(o.cells[idx], id)
}

// Remove takes an entity off the tile at idx, preserving the order of the rest.
func (o *Occupancy) Remove(idx int, id ecs.EntityID) error {
	cell := o.cells[idx]
	for i, other := range cell {
		if other == id {
			copy(cell[i:], cell[i+1:])
			o.cells[idx] = cell[:len(cell)-1]
			return nil
		}
	}
	return ErrNotOccupant
}

// Move relocates an entity between two tiles. The entity is removed from the
// old tile and appended to the new one before Move returns.
func (o *Occupancy) Move(id ecs.EntityID, oldIdx, newIdx int) error {
	if oldIdx == newIdx {
		return nil
	}
	if err := o.Remove(oldIdx, id); err != nil {
		return err
	}
	o.Add(newIdx, id)
	return nil
}

// At returns the entities on the tile at idx. The slice is owned by the
// occupancy grid; callers must not modify it.
func (o *Occupancy) At(idx int) []ecs.EntityID {
	return o.cells[idx]
}

// Top returns the topmost entity on the tile at idx.
func (o *Occupancy) Top(idx int) (ecs.EntityID, bool) {
	cell := o.cells[idx]
	if len(cell) == 0 {
		return 0, false
	}
	return cell[len(cell)-1], true
}

// Count returns the total number of entries across all tiles.
func (o *Occupancy) Count() int {
	n := 0
	for _, cell := range o.cells {
		n += len(cell)
	}
	return n
}
