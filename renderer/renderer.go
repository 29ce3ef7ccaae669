package renderer

// Renderer submits draw calls. It holds nothing but the Context and can be
// created per frame or kept for the whole run.
type Renderer struct {
	ctx *Context
}

func NewRenderer(ctx *Context) Renderer {
	return Renderer{ctx: ctx}
}

func (r Renderer) SetClearColor(red, green, blue, alpha float32) {
	r.ctx.call("glClearColor", func() { r.ctx.gl.ClearColor(red, green, blue, alpha) })
}

func (r Renderer) Clear() {
	r.ctx.call("glClear", func() { r.ctx.gl.Clear(COLOR_BUFFER_BIT) })
}

// ClearDepth resets the depth buffer. Only demos that enable DEPTH_TEST need it.
func (r Renderer) ClearDepth() {
	r.ctx.call("glClear", func() { r.ctx.gl.Clear(DEPTH_BUFFER_BIT) })
}

func (r Renderer) Viewport(x, y, width, height int32) {
	r.ctx.call("glViewport", func() { r.ctx.gl.Viewport(x, y, width, height) })
}

// Draw binds shader, vertex array and index buffer, in that order and always,
// then issues one indexed triangle draw over all indices of ib.
func (r Renderer) Draw(va *VertexArray, ib *IndexBuffer, shader *Shader) {
	shader.Bind()
	va.Bind()
	ib.Bind()
	r.ctx.call("glDrawElements", func() {
		r.ctx.gl.DrawElements(TRIANGLES, int32(ib.Count()), uint32(UnsignedInt), 0)
	})
}
