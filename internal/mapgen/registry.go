package mapgen

import "github.com/progrog/roguelike/internal/rng"

// Registry is the table of available strategies, resolved by index.
type Registry struct {
	gens []Generator
}

func NewRegistry(gens ...Generator) *Registry {
	r := &Registry{gens: make([]Generator, 0, len(gens))}
	for _, g := range gens {
		r.Register(g)
	}
	return r
}

// DefaultRegistry holds every built-in strategy.
func DefaultRegistry() *Registry {
	return NewRegistry(RectRooms{}, RoundRooms{})
}

// Register adds a strategy. A strategy registered under an existing name
// replaces the old one in place.
func (r *Registry) Register(g Generator) {
	for i, existing := range r.gens {
		if existing.Name() == g.Name() {
			r.gens[i] = g
			return
		}
	}
	r.gens = append(r.gens, g)
}

// Pick draws a strategy uniformly at random.
func (r *Registry) Pick(src rng.Source) Generator {
	return r.gens[src.Range(len(r.gens))]
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (Generator, bool) {
	for _, g := range r.gens {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.gens))
	for i, g := range r.gens {
		names[i] = g.Name()
	}
	return names
}

func (r *Registry) Len() int { return len(r.gens) }
