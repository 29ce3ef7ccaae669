package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

type panelLog struct {
	pressed  []int
	focus    []int
	adjust   []int
	activate int
}

func (p *panelLog) Press(i int)      { p.pressed = append(p.pressed, i) }
func (p *panelLog) Activate()        { p.activate++ }
func (p *panelLog) Focus(delta int)  { p.focus = append(p.focus, delta) }
func (p *panelLog) Adjust(steps int) { p.adjust = append(p.adjust, steps) }

func key(sym sdl.Keycode, mod uint16) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sym, Mod: mod}}
}

func TestInputMapperDigits(t *testing.T) {
	p := &panelLog{}
	m := NewInputMapper(p)
	m.HandleKey(key(sdl.K_1, 0))
	m.HandleKey(key(sdl.K_3, 0))
	m.HandleKey(key(sdl.K_0, 0))
	assert.Equal(t, []int{0, 2, 9}, p.pressed)
}

func TestInputMapperNavigation(t *testing.T) {
	p := &panelLog{}
	m := NewInputMapper(p)
	m.HandleKey(key(sdl.K_TAB, 0))
	m.HandleKey(key(sdl.K_TAB, sdl.KMOD_LSHIFT))
	m.HandleKey(key(sdl.K_DOWN, 0))
	m.HandleKey(key(sdl.K_UP, 0))
	m.HandleKey(key(sdl.K_RIGHT, 0))
	m.HandleKey(key(sdl.K_LEFT, 0))
	m.HandleKey(key(sdl.K_RETURN, 0))
	m.HandleKey(key(sdl.K_SPACE, 0))

	assert.Equal(t, []int{1, -1, 1, -1}, p.focus)
	assert.Equal(t, []int{1, -1}, p.adjust)
	assert.Equal(t, 2, p.activate)
}

func TestInputMapperHostActions(t *testing.T) {
	p := &panelLog{}
	m := NewInputMapper(p)
	assert.Equal(t, ActionBack, m.HandleKey(key(sdl.K_BACKSPACE, 0)))
	assert.Equal(t, ActionQuit, m.HandleKey(key(sdl.K_ESCAPE, 0)))
	assert.Equal(t, ActionNone, m.HandleKey(key(sdl.K_a, 0)))

	up := key(sdl.K_1, 0)
	up.Type = sdl.KEYUP
	assert.Equal(t, ActionNone, m.HandleKey(up))
	assert.Empty(t, p.pressed)
}
