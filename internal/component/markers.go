package component

// Name is the display string used in combat messages.
type Name struct {
	Text string
}

// Mob tags a non-player creature and the glyph it is drawn with.
type Mob struct {
	Glyph rune
}

// Player tags the single controlled entity.
type Player struct{}
