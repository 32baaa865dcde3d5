package render

import "github.com/progrog/roguelike/internal/component"

// Viewport is the screen area the map is drawn into.
type Viewport struct {
	X, Y          int // top-left screen cell
	Width, Height int
}

// NewViewport lays out a map viewport for a screen of the given size,
// leaving a one-cell margin and the bottom rows for the status line.
func NewViewport(screenW, screenH int) Viewport {
	return Viewport{X: 1, Y: 1, Width: max(screenW-3, 1), Height: max(screenH-3, 1)}
}

// Offset returns the map position shown in the viewport's top-left cell so
// focus sits near the centre. The camera never scrolls past the map origin.
func (v Viewport) Offset(focus component.Position) component.Position {
	return component.Position{
		X: max(0, focus.X-v.Width/2),
		Y: max(0, focus.Y-v.Height/2),
	}
}

// ToScreen maps a map position to a screen cell under the given offset. ok
// is false when the position falls outside the viewport.
func (v Viewport) ToScreen(p, offset component.Position) (x, y int, ok bool) {
	rx, ry := p.X-offset.X, p.Y-offset.Y
	if rx < 0 || ry < 0 || rx >= v.Width || ry >= v.Height {
		return 0, 0, false
	}
	return v.X + rx, v.Y + ry, true
}
