package game

import (
	"fmt"
	"strings"

	"github.com/progrog/roguelike/internal/render"
)

// Frame assembles what the renderer should show for the current state.
func (s *Session) Frame() render.Frame {
	switch s.state.Current() {
	case StateWelcome:
		return render.Frame{Mode: render.ModeWelcome, Lines: welcomeLines}
	case StateDead:
		f := s.playFrame()
		f.Mode = render.ModeDead
		f.Lines = deadLines
		return f
	}
	return s.playFrame()
}

func (s *Session) playFrame() render.Frame {
	f := render.Frame{
		Mode:    render.ModePlaying,
		Entries: s.res.DrawList.Sorted(),
		Status:  s.StatusLine(),
	}
	if p, ok := s.res.C.Position.Get(s.res.Player); ok {
		f.Focus = *p
	}
	return f
}

// StatusLine renders the player's pools followed by the head of the message
// queue. " -More-" marks that further messages are waiting.
func (s *Session) StatusLine() string {
	var b strings.Builder
	if st, ok := s.res.C.Stats.Get(s.res.Player); ok {
		fmt.Fprintf(&b, "HP:%d/%d MP:%d/%d", st.HP.Cur, st.HP.Max, st.MP.Cur, st.MP.Max)
	}
	if msg, ok := s.res.Messages.Current(); ok {
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(msg)
		if s.res.Messages.Len() > 1 {
			b.WriteString(" -More-")
		}
	}
	return b.String()
}
