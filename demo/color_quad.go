package demo

import "GPU_render_sandbox/renderer"

// ColorQuad draws a flat colored square whose red channel bounces between 0
// and 1.
type ColorQuad struct {
	Base
	ctx    *renderer.Context
	r      renderer.Renderer
	va     *renderer.VertexArray
	vb     *renderer.VertexBuffer
	ib     *renderer.IndexBuffer
	shader *renderer.Shader

	red   float32
	speed float32
}

func NewColorQuad(env Env) *ColorQuad {
	ctx := env.Ctx
	positions := []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	}
	d := &ColorQuad{
		ctx:   ctx,
		r:     renderer.NewRenderer(ctx),
		va:    renderer.NewVertexArray(ctx),
		vb:    renderer.NewVertexBuffer(ctx, positions),
		speed: 1.5,
	}
	layout := renderer.NewVertexBufferLayout()
	renderer.Push[float32](layout, 2)
	d.va.AddBuffer(d.vb, layout)
	d.ib = renderer.NewIndexBuffer(ctx, []uint32{0, 1, 2, 2, 3, 0})
	d.shader = renderer.NewShader(ctx, env.shaderPath("basic.shader"))
	return d
}

func (d *ColorQuad) Red() float32 {
	return d.red
}

func (d *ColorQuad) OnUpdate(dt float32) {
	d.red += d.speed * dt
	if d.red > 1 {
		d.red = 2 - d.red
		d.speed = -d.speed
	} else if d.red < 0 {
		d.red = -d.red
		d.speed = -d.speed
	}
	d.red = clamp(d.red, 0, 1)
}

func (d *ColorQuad) OnRender() {
	if !d.shader.Valid() {
		return
	}
	d.shader.Bind()
	d.shader.SetUniform4f("u_Color", d.red, 0.3, 0.8, 1.0)
	d.r.Draw(d.va, d.ib, d.shader)
}

func (d *ColorQuad) OnUIRender(ui UI) {
	if !d.shader.Valid() {
		ui.Text("shader '%s' failed to build", d.shader.Path())
		return
	}
	speed := abs(d.speed)
	if ui.SliderFloat("Speed", &speed, 0, 5) {
		if d.speed < 0 {
			speed = -speed
		}
		d.speed = speed
	}
}

func (d *ColorQuad) ReloadShader(path string) bool {
	return reloadShader(d.ctx, &d.shader, path)
}

func (d *ColorQuad) Destroy() {
	d.shader.Destroy()
	d.ib.Destroy()
	d.vb.Destroy()
	d.va.Destroy()
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
