package demo

import "GPU_render_sandbox/renderer"

// SplitBuffers feeds one vertex array from two vertex buffers: float positions
// on the first slot and normalized byte colors on the second.
type SplitBuffers struct {
	Base
	ctx       *renderer.Context
	r         renderer.Renderer
	va        *renderer.VertexArray
	positions *renderer.VertexBuffer
	colors    *renderer.VertexBuffer
	ib        *renderer.IndexBuffer
	shader    *renderer.Shader
}

func NewSplitBuffers(env Env) *SplitBuffers {
	ctx := env.Ctx
	d := &SplitBuffers{
		ctx: ctx,
		r:   renderer.NewRenderer(ctx),
		va:  renderer.NewVertexArray(ctx),
		positions: renderer.NewVertexBuffer(ctx, []float32{
			-0.6, -0.5,
			0.6, -0.5,
			0.0, 0.6,
		}),
		colors: renderer.NewVertexBuffer(ctx, []uint8{
			255, 0, 0, 255,
			0, 255, 0, 255,
			0, 0, 255, 255,
		}),
	}

	posLayout := renderer.NewVertexBufferLayout()
	renderer.Push[float32](posLayout, 2)
	d.va.AddBuffer(d.positions, posLayout)

	colorLayout := renderer.NewVertexBufferLayout()
	renderer.Push[uint8](colorLayout, 4)
	d.va.AddBuffer(d.colors, colorLayout)

	d.ib = renderer.NewIndexBuffer(ctx, []uint32{0, 1, 2})
	d.shader = renderer.NewShader(ctx, env.shaderPath("split.shader"))
	return d
}

func (d *SplitBuffers) OnRender() {
	if !d.shader.Valid() {
		return
	}
	d.r.Draw(d.va, d.ib, d.shader)
}

func (d *SplitBuffers) OnUIRender(ui UI) {
	ui.Text("%d attribute slots from 2 buffers", d.va.AttribCount())
}

func (d *SplitBuffers) ReloadShader(path string) bool {
	return reloadShader(d.ctx, &d.shader, path)
}

func (d *SplitBuffers) Destroy() {
	d.shader.Destroy()
	d.ib.Destroy()
	d.colors.Destroy()
	d.positions.Destroy()
	d.va.Destroy()
}
