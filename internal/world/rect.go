package world

import "github.com/progrog/roguelike/internal/component"

// Rect is a room footprint covering [X1, X2) × [Y1, Y2).
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rect from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

func (r Rect) Width() int  { return r.X2 - r.X1 }
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Intersects reports whether the two rects overlap or share an edge line.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

func (r Rect) Center() component.Position {
	return component.Position{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p component.Position) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Each visits every point of the rect row by row.
func (r Rect) Each(fn func(component.Position)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(component.Position{X: x, Y: y})
		}
	}
}
