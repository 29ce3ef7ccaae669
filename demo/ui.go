package demo

import (
	"fmt"
	"strings"
)

// UI is the immediate mode overlay a demo draws its controls with. Controls
// are declared every frame; a control reports its interaction in the call that
// declares it.
type UI interface {
	Button(label string) bool
	Text(format string, args ...any)
	SliderFloat(label string, v *float32, min, max float32) bool
	ColorEdit4(label string, c *[4]float32) bool
}

const sliderSteps = 20

// KeyPanel is a UI driven by discrete key actions instead of a pointer. Controls
// are numbered in declaration order; actions queued between frames are applied
// to the controls of the next frame. The rendered panel is a single line of
// text the host can show in the window title.
type KeyPanel struct {
	lines    []string
	controls int
	last     int
	focus    int

	press  int
	adjust int

	summary string
}

func NewKeyPanel() *KeyPanel {
	return &KeyPanel{press: -1}
}

// Press activates control i (0 based) next frame.
func (p *KeyPanel) Press(i int) {
	p.press = i
}

// Activate presses the focused control.
func (p *KeyPanel) Activate() {
	p.press = p.focus
}

// Focus moves the focus by delta controls, wrapping around.
func (p *KeyPanel) Focus(delta int) {
	if p.last == 0 {
		return
	}
	p.focus = ((p.focus+delta)%p.last + p.last) % p.last
}

// Adjust moves the focused slider by steps twentieths of its range.
func (p *KeyPanel) Adjust(steps int) {
	p.adjust += steps
}

// Begin starts a frame of control declarations.
func (p *KeyPanel) Begin() {
	p.lines = p.lines[:0]
	p.controls = 0
}

// End closes the frame, drops actions no control consumed and renders the
// summary.
func (p *KeyPanel) End() {
	p.last = p.controls
	if p.focus >= p.last {
		p.focus = 0
	}
	p.press = -1
	p.adjust = 0
	p.summary = strings.Join(p.lines, " | ")
}

func (p *KeyPanel) Summary() string {
	return p.summary
}

// Controls is the number of controls declared in the last finished frame.
func (p *KeyPanel) Controls() int {
	return p.last
}

func (p *KeyPanel) FocusIndex() int {
	return p.focus
}

func (p *KeyPanel) control(text string) int {
	i := p.controls
	p.controls++
	mark := ""
	if i == p.focus {
		mark = ">"
	}
	p.lines = append(p.lines, fmt.Sprintf("%s[%d] %s", mark, i+1, text))
	return i
}

func (p *KeyPanel) Button(label string) bool {
	i := p.control(label)
	if p.press == i {
		p.press = -1
		return true
	}
	return false
}

func (p *KeyPanel) Text(format string, args ...any) {
	p.lines = append(p.lines, fmt.Sprintf(format, args...))
}

func (p *KeyPanel) SliderFloat(label string, v *float32, min, max float32) bool {
	i := p.controls
	changed := false
	if i == p.focus && p.adjust != 0 {
		n := *v + float32(p.adjust)*(max-min)/sliderSteps
		n = clamp(n, min, max)
		changed = n != *v
		*v = n
		p.adjust = 0
	}
	p.control(fmt.Sprintf("%s %.2f", label, *v))
	return changed
}

func (p *KeyPanel) ColorEdit4(label string, c *[4]float32) bool {
	changed := false
	for i, ch := range [4]string{"R", "G", "B", "A"} {
		if p.SliderFloat(label+"."+ch, &c[i], 0, 1) {
			changed = true
		}
	}
	return changed
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
