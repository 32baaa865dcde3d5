// Package fov computes field of view with symmetric shadowcasting over the
// four quadrants around an origin. Floor tiles are lit only when their centre
// lies inside the visible arc, so a floor tile A sees floor tile B exactly
// when B sees A. Walls are lit by any overlap.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/progrog/roguelike/internal/component"
)

// Opacity is the view of a map the caster needs. *world.Map satisfies it.
type Opacity interface {
	InBounds(p component.Position) bool
	IsOpaque(p component.Position) bool
}

// Quadrant transforms: (depth, col) maps to origin + depth*(dx,dy) + col*(cx,cy).
var quadrants = [4]struct{ dx, dy, cx, cy int }{
	{0, -1, 1, 0}, // north
	{1, 0, 0, 1},  // east
	{0, 1, 1, 0},  // south
	{-1, 0, 0, 1}, // west
}

// slope is the exact fraction num/den with den > 0.
type slope struct{ num, den int }

// tileSlope is the slope of the left edge of the tile at (depth, col).
func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

type row struct {
	depth      int
	start, end slope
}

// cols returns the column range the row touches: start rounded half up, end
// rounded half down.
func (r row) cols() (lo, hi int) {
	lo = floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
	hi = ceilDiv(2*r.depth*r.end.num-r.end.den, 2*r.end.den)
	return lo, hi
}

// centred reports whether the centre of column col lies within the row's arc.
func (r row) centred(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

type caster struct {
	m       Opacity
	origin  component.Position
	radius  int
	visible mapset.Set[component.Position]
	q       struct{ dx, dy, cx, cy int }
}

// Compute returns every in-bounds tile visible from origin within radius
// (Euclidean, inclusive). Opaque tiles are visible themselves but hide what
// lies behind them. The origin is always visible, even with a zero radius.
func Compute(m Opacity, origin component.Position, radius int) mapset.Set[component.Position] {
	visible := mapset.New[component.Position]()
	if m.InBounds(origin) {
		visible.Put(origin)
	}
	if radius <= 0 {
		return visible
	}
	c := &caster{m: m, origin: origin, radius: radius, visible: visible}
	for _, q := range quadrants {
		c.q = q
		c.scan(row{depth: 1, start: slope{-1, 1}, end: slope{1, 1}})
	}
	return visible
}

func (c *caster) at(depth, col int) component.Position {
	return component.Position{
		X: c.origin.X + depth*c.q.dx + col*c.q.cx,
		Y: c.origin.Y + depth*c.q.dy + col*c.q.cy,
	}
}

func (c *caster) reveal(p component.Position) {
	dx, dy := p.X-c.origin.X, p.Y-c.origin.Y
	if c.m.InBounds(p) && dx*dx+dy*dy <= c.radius*c.radius {
		c.visible.Put(p)
	}
}

func (c *caster) scan(r row) {
	if r.depth > c.radius {
		return
	}
	lo, hi := r.cols()
	seen, prevWall := false, false
	for col := lo; col <= hi; col++ {
		p := c.at(r.depth, col)
		wall := blocks(c.m, p)
		if wall || r.centred(col) {
			c.reveal(p)
		}
		if seen && prevWall && !wall {
			r.start = tileSlope(r.depth, col)
		}
		if seen && !prevWall && wall {
			n := r.next()
			n.end = tileSlope(r.depth, col)
			c.scan(n)
		}
		seen, prevWall = true, wall
	}
	if seen && !prevWall {
		c.scan(r.next())
	}
}

// blocks treats everything off the map as opaque.
func blocks(m Opacity, p component.Position) bool {
	return !m.InBounds(p) || m.IsOpaque(p)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
