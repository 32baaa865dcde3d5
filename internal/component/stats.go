package component

// Pool is a current/maximum pair. Cur may dip below zero for the rest of the
// combat stage before death cleanup runs; Max never changes after creation.
type Pool struct {
	Cur int
	Max int
}

func NewPool(max int) Pool {
	return Pool{Cur: max, Max: max}
}

// Stats stores the combat resources of a creature.
// Pure data; damage is applied by the combat systems.
type Stats struct {
	HP Pool
	MP Pool
}

func NewStats(hp, mp int) *Stats {
	return &Stats{HP: NewPool(hp), MP: NewPool(mp)}
}
