package demo

import "GPU_render_sandbox/renderer"

// ClearColor fills the frame with an editable color.
type ClearColor struct {
	Base
	r     renderer.Renderer
	color [4]float32
}

func NewClearColor(env Env) *ClearColor {
	return &ClearColor{
		r:     renderer.NewRenderer(env.Ctx),
		color: [4]float32{0.2, 0.3, 0.8, 1},
	}
}

func (d *ClearColor) Color() [4]float32 {
	return d.color
}

func (d *ClearColor) OnRender() {
	d.r.SetClearColor(d.color[0], d.color[1], d.color[2], d.color[3])
	d.r.Clear()
}

func (d *ClearColor) OnUIRender(ui UI) {
	ui.ColorEdit4("Clear Color", &d.color)
}

// Destroy leaves the frame black for whatever runs next.
func (d *ClearColor) Destroy() {
	d.r.SetClearColor(0, 0, 0, 1)
}
