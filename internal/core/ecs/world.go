package ecs

// World is the top-level ECS container. It owns the entity pool, the component
// registry, and a deferred destruction queue. Structural removals queued during
// a stage become visible when the owning stage calls FlushDestroyQueue.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
	doomed       map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 16),
		doomed:       make(map[EntityID]struct{}, 16),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

// Alive reports whether id refers to a live entity that is not queued for
// destruction.
func (w *World) Alive(id EntityID) bool {
	if _, ok := w.doomed[id]; ok {
		return false
	}
	return w.pool.Alive(id)
}

// MarkForDestruction queues an entity for the next flush. Queuing the same
// entity twice is harmless.
func (w *World) MarkForDestruction(id EntityID) {
	if !w.Alive(id) {
		return
	}
	w.doomed[id] = struct{}{}
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue destroys all queued entities and clears their components.
// It returns how many entities were destroyed.
func (w *World) FlushDestroyQueue() int {
	n := len(w.destroyQueue)
	for _, id := range w.destroyQueue {
		w.registry.RemoveAll(id)
		w.pool.Destroy(id)
		delete(w.doomed, id)
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}
