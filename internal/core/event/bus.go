package event

import "reflect"

// Bus holds one ordered queue per event type. Events emitted during a tick
// are drained by the consuming stage of the same tick; Clear runs at tick
// start so nothing leaks into the next tick.
// Accessed only from the simulation goroutine; no locks.
type Bus struct {
	queues map[reflect.Type]clearer
	order  []reflect.Type
}

type clearer interface {
	clear()
	len() int
}

type queue[T any] struct {
	items []T
}

func (q *queue[T]) clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.items = q.items[:0]
}

func (q *queue[T]) len() int { return len(q.items) }

func NewBus() *Bus {
	return &Bus{
		queues: make(map[reflect.Type]clearer),
	}
}

func queueFor[T any](b *Bus) *queue[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if q, ok := b.queues[t]; ok {
		return q.(*queue[T])
	}
	q := &queue[T]{items: make([]T, 0, 8)}
	b.queues[t] = q
	b.order = append(b.order, t)
	return q
}

// Emit appends an event to the queue for its type.
func Emit[T any](b *Bus, event T) {
	q := queueFor[T](b)
	q.items = append(q.items, event)
}

// Drain returns every queued event of type T in arrival order and empties the
// queue. Each event is therefore observed by exactly one consumer.
func Drain[T any](b *Bus) []T {
	q := queueFor[T](b)
	if len(q.items) == 0 {
		return nil
	}
	out := make([]T, len(q.items))
	copy(out, q.items)
	q.clear()
	return out
}

// Pending returns the number of queued events of type T.
func Pending[T any](b *Bus) int {
	return queueFor[T](b).len()
}

// Clear drops every queued event of every type.
func (b *Bus) Clear() {
	for _, t := range b.order {
		b.queues[t].clear()
	}
}

// Len returns the total number of queued events across all types.
func (b *Bus) Len() int {
	n := 0
	for _, t := range b.order {
		n += b.queues[t].len()
	}
	return n
}
