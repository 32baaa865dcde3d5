package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/progrog/roguelike/internal/input"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyHome:   input.KeyUpLeft,
	tcell.KeyPgUp:   input.KeyUpRight,
	tcell.KeyEnd:    input.KeyDownLeft,
	tcell.KeyPgDn:   input.KeyDownRight,
	tcell.KeyEnter:  input.KeyStart,
	tcell.KeyEscape: input.KeyQuit,
	tcell.KeyCtrlC:  input.KeyQuit,
}

// DecodeKey maps a terminal key event to a game key. Unknown keys decode to
// KeyNone.
func DecodeKey(ev *tcell.EventKey) input.Key {
	return decode(ev.Key(), ev.Rune())
}

func decode(k tcell.Key, r rune) input.Key {
	if k == tcell.KeyRune {
		return input.FromRune(r)
	}
	if key, ok := specialKeys[k]; ok {
		return key
	}
	return input.KeyNone
}
