package world

import (
	"sort"

	"github.com/progrog/roguelike/internal/component"
)

// Draw priorities: lower is drawn first.
const (
	PriorityTerrain = 0
	PriorityMob     = 1
	PriorityPlayer  = 2
)

// DrawEntry is one glyph the renderer should put at Pos.
type DrawEntry struct {
	Pos      component.Position
	Glyph    rune
	Priority int
}

// DrawList is rebuilt by the draw stage on ticks where the player acted and
// kept as-is otherwise.
type DrawList struct {
	entries []DrawEntry
}

func NewDrawList() *DrawList {
	return &DrawList{entries: make([]DrawEntry, 0, 512)}
}

func (d *DrawList) Reset() {
	d.entries = d.entries[:0]
}

func (d *DrawList) Push(pos component.Position, glyph rune, priority int) {
	d.entries = append(d.entries, DrawEntry{Pos: pos, Glyph: glyph, Priority: priority})
}

func (d *DrawList) Len() int { return len(d.entries) }

// Sorted returns a copy ordered by priority. Entries of equal priority keep
// the order they were pushed in.
func (d *DrawList) Sorted() []DrawEntry {
	out := make([]DrawEntry, len(d.entries))
	copy(out, d.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}
