// Package input defines the discrete key codes the simulation understands.
// Decoding terminal events into these codes belongs to the render layer.
package input

// Key is one discrete key press.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyUpLeft
	KeyUpRight
	KeyDownLeft
	KeyDownRight
	KeyPass  // wait a turn / acknowledge a message
	KeyStart // welcome screen only
	KeyQuit
	KeyDescend // leave for a freshly generated level
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyUpLeft:    "up-left",
	KeyUpRight:   "up-right",
	KeyDownLeft:  "down-left",
	KeyDownRight: "down-right",
	KeyPass:      "pass",
	KeyStart:     "start",
	KeyQuit:      "quit",
	KeyDescend:   "descend",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

var deltas = map[Key][2]int{
	KeyLeft:      {-1, 0},
	KeyRight:     {1, 0},
	KeyUp:        {0, -1},
	KeyDown:      {0, 1},
	KeyUpLeft:    {-1, -1},
	KeyUpRight:   {1, -1},
	KeyDownLeft:  {-1, 1},
	KeyDownRight: {1, 1},
}

// Delta returns the one-tile offset for a direction key. ok is false for
// every non-directional key.
func (k Key) Delta() (dx, dy int, ok bool) {
	d, ok := deltas[k]
	return d[0], d[1], ok
}

// runeKeys holds the printable aliases: vi keys and numeric-pad digits.
var runeKeys = map[rune]Key{
	'h': KeyLeft,
	'l': KeyRight,
	'k': KeyUp,
	'j': KeyDown,
	'y': KeyUpLeft,
	'u': KeyUpRight,
	'b': KeyDownLeft,
	'n': KeyDownRight,
	'4': KeyLeft,
	'6': KeyRight,
	'8': KeyUp,
	'2': KeyDown,
	'7': KeyUpLeft,
	'9': KeyUpRight,
	'1': KeyDownLeft,
	'3': KeyDownRight,
	'5': KeyPass,
	'.': KeyPass,
	' ': KeyPass,
	'q': KeyQuit,
	'>': KeyDescend,
}

// FromRune maps a printable key to a Key, or KeyNone when unbound.
func FromRune(r rune) Key {
	return runeKeys[r]
}
