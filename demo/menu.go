package demo

import (
	"errors"
	"fmt"
	"log"
)

var ErrUnknownDemo = errors.New("unknown demo")

// State tells whether the menu itself or a selected demo is current.
type State int

const (
	MenuActive State = iota
	DemoActive
)

func (s State) String() string {
	if s == DemoActive {
		return "demo"
	}
	return "menu"
}

type entry struct {
	name    string
	factory Factory
}

// Menu is the demo registry. It owns the current demo: selecting builds a new
// instance and destroys the previous one, going back destroys it and makes the
// menu current again. Names need not be unique; Select picks the first match
// and SelectIndex reaches every entry.
type Menu struct {
	Base
	entries []entry
	current Demo
	name    string
}

func NewMenu() *Menu {
	return &Menu{}
}

func (m *Menu) Register(name string, factory Factory) {
	log.Printf("Register demo: %s", name)
	m.entries = append(m.entries, entry{name: name, factory: factory})
}

// Names lists the registered names in registration order.
func (m *Menu) Names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.name
	}
	return names
}

func (m *Menu) Select(name string) error {
	for i, e := range m.entries {
		if e.name == name {
			return m.SelectIndex(i)
		}
	}
	return fmt.Errorf("%w: '%s'", ErrUnknownDemo, name)
}

func (m *Menu) SelectIndex(i int) error {
	if i < 0 || i >= len(m.entries) {
		return fmt.Errorf("%w: index %d of %d", ErrUnknownDemo, i, len(m.entries))
	}
	m.Back()
	e := m.entries[i]
	d := e.factory()
	if d == nil {
		return fmt.Errorf("demo '%s' factory returned nil", e.name)
	}
	m.current = d
	m.name = e.name
	log.Printf("Switched to demo '%s'", e.name)
	return nil
}

// Back destroys the current demo and returns to the menu. It does nothing while
// the menu is current.
func (m *Menu) Back() {
	if m.current == nil {
		return
	}
	m.current.Destroy()
	log.Printf("Left demo '%s'", m.name)
	m.current = nil
	m.name = ""
}

// Current returns the selected demo, or the menu itself.
func (m *Menu) Current() Demo {
	if m.current == nil {
		return m
	}
	return m.current
}

// CurrentName is the registered name of the current demo, empty in the menu.
func (m *Menu) CurrentName() string {
	return m.name
}

func (m *Menu) State() State {
	if m.current == nil {
		return MenuActive
	}
	return DemoActive
}

// OnUIRender shows one button per registered demo.
func (m *Menu) OnUIRender(ui UI) {
	for i, e := range m.entries {
		if ui.Button(e.name) {
			if err := m.SelectIndex(i); err != nil {
				log.Printf("Failed to select demo: %v", err)
			}
			return
		}
	}
}

// RenderBackButton draws the "<-" button while a demo is current and goes back
// when it is pressed. Hosts call it before the current demo's OnUIRender.
func (m *Menu) RenderBackButton(ui UI) bool {
	if m.current == nil {
		return false
	}
	if ui.Button("<-") {
		m.Back()
		return true
	}
	return false
}

// Destroy tears down the current demo.
func (m *Menu) Destroy() {
	m.Back()
}
