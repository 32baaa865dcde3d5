package render

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/progrog/roguelike/internal/config"
	"github.com/progrog/roguelike/internal/input"
	"github.com/progrog/roguelike/internal/world"
)

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleMob     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Terminal draws frames with tcell.
type Terminal struct {
	screen  tcell.Screen
	display config.DisplayConfig
	view    Viewport
	log     *zap.Logger
}

// Open initialises the real terminal screen.
func Open(display config.DisplayConfig, log *zap.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return NewTerminal(screen, display, log)
}

// NewTerminal takes ownership of screen and initialises it. The map viewport
// is laid out for the configured display size, shrunk to fit the screen.
func NewTerminal(screen tcell.Screen, display config.DisplayConfig, log *zap.Logger) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	t := &Terminal{screen: screen, display: display, log: log}
	t.layout()
	return t, nil
}

// area is the part of the screen the game uses.
func (t *Terminal) area() (w, h int) {
	sw, sh := t.screen.Size()
	return min(sw, t.display.Width), min(sh, t.display.Height)
}

func (t *Terminal) layout() {
	w, h := t.screen.Size()
	t.view = NewViewport(t.area())
	t.log.Info("terminal layout",
		zap.Int("screen_width", w), zap.Int("screen_height", h),
		zap.Int("view_width", t.view.Width), zap.Int("view_height", t.view.Height))
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Viewport returns the current map area.
func (t *Terminal) Viewport() Viewport { return t.view }

// Draw renders one frame and shows it.
func (t *Terminal) Draw(f Frame) {
	t.screen.Clear()
	w, h := t.area()

	if f.Mode != ModeWelcome {
		offset := t.view.Offset(f.Focus)
		for _, e := range f.Entries {
			x, y, ok := t.view.ToScreen(e.Pos, offset)
			if !ok {
				continue
			}
			t.screen.SetContent(x, y, e.Glyph, nil, styleFor(e))
		}
	}

	top := (h - len(f.Lines)) / 2
	for i, line := range f.Lines {
		t.putString((w-len([]rune(line)))/2, top+i, line, styleDefault)
	}

	if f.Status != "" {
		t.putString(0, h-1, f.Status, styleStatus)
	}
	t.screen.Show()
}

func (t *Terminal) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func styleFor(e world.DrawEntry) tcell.Style {
	switch e.Priority {
	case world.PriorityPlayer:
		return stylePlayer
	case world.PriorityMob:
		return styleMob
	}
	if e.Glyph == '#' {
		return styleWall
	}
	return styleFloor
}

// Event is one input from the terminal: a decoded key, or a resize.
type Event struct {
	Key    input.Key
	Resize bool
}

// Events forwards terminal input until ctx is cancelled or the screen is
// closed. Keys that decode to nothing are dropped.
func (t *Terminal) Events(ctx context.Context) <-chan Event {
	out := make(chan Event, 16)
	go func() {
		defer close(out)
		for {
			var e Event
			switch ev := t.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				e.Key = DecodeKey(ev)
				if e.Key == input.KeyNone {
					continue
				}
			case *tcell.EventResize:
				e.Resize = true
			default:
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Resize re-lays out the viewport after the terminal changed size.
func (t *Terminal) Resize() {
	t.screen.Sync()
	t.layout()
}
