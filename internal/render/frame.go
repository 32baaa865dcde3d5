// Package render is the boundary between the simulation and a terminal. It
// receives finished frames and hands back decoded keys; it has no game logic.
package render

import (
	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/world"
)

// Mode selects what a frame shows.
type Mode int

const (
	ModeWelcome Mode = iota
	ModePlaying
	ModeDead
)

func (m Mode) String() string {
	switch m {
	case ModeWelcome:
		return "welcome"
	case ModePlaying:
		return "playing"
	case ModeDead:
		return "dead"
	}
	return "unknown"
}

// Frame is everything the renderer needs for one screen.
type Frame struct {
	Mode Mode

	// Entries are sorted by priority; later entries are drawn over earlier
	// ones on the same tile.
	Entries []world.DrawEntry

	// Status is the bottom line: stats plus the head combat message.
	Status string

	// Focus is the map position the camera follows.
	Focus component.Position

	// Lines are centred text lines shown instead of, or over, the map.
	Lines []string
}
