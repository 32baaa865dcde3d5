package component

// Position is a grid coordinate. It is comparable, so it doubles as a map and
// set key for viewsheds and claim tables.
type Position struct {
	X int
	Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// IsAdjacent reports whether other is one of the eight neighbours of p.
func (p Position) IsAdjacent(other Position) bool {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}
