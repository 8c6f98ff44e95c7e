// Package terminal hosts the simulation on a tcell screen
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/input"
	"github.com/lixenwraith/vi-crawler/render"
)

// cellWriter is the part of tcell.Screen the sink draws through
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// device is the part of tcell.Screen that owns the terminal
type device interface {
	PollEvent() tcell.Event
	Fini()
}

// Screen presents draw batches; implements render.Sink
type Screen struct {
	out     cellWriter
	screen  device // Nil when drawing to a non-tcell writer or after Close
	offsetY int    // Map and actor layers start below the HUD rows
}

// Open initializes the terminal
func Open(hudRows int) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return &Screen{out: s, screen: s, offsetY: hudRows}, nil
}

// Close restores the terminal; later calls are no-ops
func (s *Screen) Close() {
	if s.screen != nil {
		s.screen.Fini()
		s.screen = nil
	}
}

// Present clears and draws layers bottom up
func (s *Screen) Present(b *render.Batch) error {
	s.out.Clear()
	for l := render.LayerMap; l < render.LayerCount; l++ {
		dy := s.offsetY
		if l == render.LayerHUD {
			dy = 0
		}
		for _, cmd := range b.Layer(l) {
			s.draw(cmd, dy)
		}
	}
	s.out.Show()
	return nil
}

func (s *Screen) draw(cmd render.Command, dy int) {
	style := tcell.StyleDefault.Foreground(color(cmd.Fg)).Background(color(cmd.Bg))
	switch cmd.Kind {
	case render.CommandSet:
		s.out.SetContent(cmd.Pos.X, cmd.Pos.Y+dy, cmd.Glyph, nil, style)
	case render.CommandPrint:
		x := cmd.Pos.X
		for _, r := range cmd.Text {
			s.out.SetContent(x, cmd.Pos.Y+dy, r, nil, style)
			x++
		}
	}
}

func color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Events pumps tcell events into a channel until the screen is finalized
func (s *Screen) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 100)
	dev := s.screen
	if dev == nil {
		close(ch)
		return ch
	}
	go func() {
		defer close(ch)
		for {
			ev := dev.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// KeyFor maps a tcell key press onto a simulation key
// Arrows and hjkl move, space or '.' waits, 'g' or Enter picks up, Esc or 'q' quits
func KeyFor(k tcell.Key, r rune) input.Key {
	switch k {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEnter:
		return input.KeyConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyQuit
	case tcell.KeyRune:
		switch r {
		case 'k':
			return input.KeyUp
		case 'j':
			return input.KeyDown
		case 'h':
			return input.KeyLeft
		case 'l':
			return input.KeyRight
		case ' ', '.':
			return input.KeyWait
		case 'g':
			return input.KeyConfirm
		case 'q':
			return input.KeyQuit
		}
	}
	return input.KeyNone
}
