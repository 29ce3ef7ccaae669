// Package demo holds the switchable render scenarios and the menu that
// selects between them.
package demo

// Demo is one interactive scenario. The host calls the three hooks once per
// frame, in order, while the demo is current. Destroy releases everything the
// demo created and is called exactly once, when the demo stops being current.
type Demo interface {
	OnUpdate(dt float32)
	OnRender()
	OnUIRender(ui UI)
	Destroy()
}

// Factory builds a fresh Demo each time it is called.
type Factory func() Demo

// Base provides no-op hooks; embed it and override what the demo needs.
type Base struct{}

func (Base) OnUpdate(dt float32) {}
func (Base) OnRender()           {}
func (Base) OnUIRender(ui UI)    {}
func (Base) Destroy()            {}

// ShaderReloader is implemented by demos that can swap a shader program while
// running. ReloadShader reports whether path belonged to the demo and a valid
// program replaced the old one.
type ShaderReloader interface {
	ReloadShader(path string) bool
}
