package common

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Panel receives the control actions decoded from the keyboard.
type Panel interface {
	Press(i int)
	Activate()
	Focus(delta int)
	Adjust(steps int)
}

// Action is what the host loop itself has to do for a key.
type Action int

const (
	ActionNone Action = iota
	ActionBack
	ActionQuit
)

// InputMapper turns key presses into panel actions:
//
//	1-9, 0        press control 1-10
//	Tab, Down     focus next (Shift+Tab, Up: previous)
//	Left, Right   adjust the focused slider
//	Return, Space press the focused control
//	Backspace     back to the menu
//	Escape        quit
type InputMapper struct {
	panel Panel
}

func NewInputMapper(panel Panel) *InputMapper {
	return &InputMapper{panel: panel}
}

// HandleKey consumes key down events and ignores everything else.
func (m *InputMapper) HandleKey(ev *sdl.KeyboardEvent) Action {
	if ev.Type != sdl.KEYDOWN {
		return ActionNone
	}
	sym := ev.Keysym.Sym
	switch {
	case sym >= sdl.K_1 && sym <= sdl.K_9:
		m.panel.Press(int(sym - sdl.K_1))
	case sym == sdl.K_0:
		m.panel.Press(9)
	}
	switch sym {
	case sdl.K_TAB:
		if ev.Keysym.Mod&sdl.KMOD_SHIFT != 0 {
			m.panel.Focus(-1)
		} else {
			m.panel.Focus(1)
		}
	case sdl.K_DOWN:
		m.panel.Focus(1)
	case sdl.K_UP:
		m.panel.Focus(-1)
	case sdl.K_RIGHT:
		m.panel.Adjust(1)
	case sdl.K_LEFT:
		m.panel.Adjust(-1)
	case sdl.K_RETURN, sdl.K_SPACE:
		m.panel.Activate()
	case sdl.K_BACKSPACE:
		return ActionBack
	case sdl.K_ESCAPE:
		return ActionQuit
	}
	return ActionNone
}
