package world

import (
	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/core/ecs"
)

// MoveIntent is a one-tick request to move Entity from From to To.
type MoveIntent struct {
	Entity ecs.EntityID
	From   component.Position
	To     component.Position
}

// Intents is the per-tick movement mailbox. It keeps submission order and at
// most one intent per entity; it is emptied at the start of every tick and
// drained by the movement stage.
type Intents struct {
	order []MoveIntent
	index map[ecs.EntityID]int
}

func NewIntents() *Intents {
	return &Intents{
		order: make([]MoveIntent, 0, 16),
		index: make(map[ecs.EntityID]int, 16),
	}
}

// Set records an intent. A second intent from the same entity replaces the
// first but keeps its original slot in the order.
func (q *Intents) Set(in MoveIntent) {
	if i, ok := q.index[in.Entity]; ok {
		q.order[i] = in
		return
	}
	q.index[in.Entity] = len(q.order)
	q.order = append(q.order, in)
}

func (q *Intents) Get(id ecs.EntityID) (MoveIntent, bool) {
	i, ok := q.index[id]
	if !ok {
		return MoveIntent{}, false
	}
	return q.order[i], true
}

func (q *Intents) Len() int { return len(q.order) }

// Drain returns all intents in submission order and empties the mailbox.
func (q *Intents) Drain() []MoveIntent {
	out := make([]MoveIntent, len(q.order))
	copy(out, q.order)
	q.Clear()
	return out
}

func (q *Intents) Clear() {
	q.order = q.order[:0]
	clear(q.index)
}
