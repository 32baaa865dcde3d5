package component

import "github.com/zyedidia/generic/mapset"

// Viewshed is the set of tiles an entity currently sees. Visible is replaced
// wholesale on every visibility pass, never patched.
type Viewshed struct {
	Visible mapset.Set[Position]
	Range   int
}

func NewViewshed(radius int) *Viewshed {
	return &Viewshed{Visible: mapset.New[Position](), Range: radius}
}

// Sees reports whether p is in the current visible set.
func (v *Viewshed) Sees(p Position) bool {
	return v.Visible.Has(p)
}
