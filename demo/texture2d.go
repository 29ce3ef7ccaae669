package demo

import (
	"GPU_render_sandbox/model"
	"GPU_render_sandbox/renderer"
)

// Texture2D draws one texture twice at two editable offsets, sized in pixels
// under an orthographic projection.
type Texture2D struct {
	Base
	ctx     *renderer.Context
	r       renderer.Renderer
	texture *renderer.Texture
	mesh    meshBuffers
	shader  *renderer.Shader
	camera  *model.Camera

	halfW, halfH float32
	translationA [2]float32
	translationB [2]float32
}

func NewTexture2D(env Env) *Texture2D {
	ctx := env.Ctx
	d := &Texture2D{
		ctx:          ctx,
		r:            renderer.NewRenderer(ctx),
		texture:      renderer.NewTexture(ctx, env.Texture),
		halfW:        float32(env.Width) / 2,
		halfH:        float32(env.Height) / 2,
		translationA: [2]float32{-float32(env.Width) / 4, 0},
		translationB: [2]float32{float32(env.Width) / 4, 0},
	}
	d.camera = model.NewCamera(0, -1, 1)
	d.camera.ProjectionType = model.CAM_ORTHOGRAPHIC_PROJECTION
	d.camera.Height = float32(env.Height)
	d.camera.Aspect = env.aspect()

	if !d.texture.Valid() {
		return d
	}
	ctx.Enable(renderer.BLEND)
	ctx.BlendFunc(renderer.SRC_ALPHA, renderer.ONE_MINUS_SRC_ALPHA)
	d.mesh = uploadMesh(ctx, model.NewQuad(float32(d.texture.Width()), float32(d.texture.Height())))
	d.shader = renderer.NewShader(ctx, env.shaderPath("texture.shader"))
	if d.shader.Valid() {
		d.shader.Bind()
		d.shader.SetUniform1i("u_Texture", 0)
		d.shader.Unbind()
	}
	return d
}

func (d *Texture2D) ready() bool {
	return d.texture.Valid() && d.shader.Valid()
}

func (d *Texture2D) OnRender() {
	if !d.ready() {
		return
	}
	d.texture.Bind(0)
	for _, t := range [][2]float32{d.translationA, d.translationB} {
		tr := model.NewTransform(d.camera.Projection())
		tr.Translate(t[0], t[1], 0)
		mvp := tr.MVP()
		d.shader.Bind()
		d.shader.SetUniformMat4f("u_MVP", &mvp)
		d.mesh.draw(d.r, d.shader)
	}
}

func (d *Texture2D) OnUIRender(ui UI) {
	if !d.texture.Valid() {
		ui.Text("texture '%s' failed to load", d.texture.Path())
		return
	}
	if !d.shader.Valid() {
		ui.Text("shader '%s' failed to build", d.shader.Path())
		return
	}
	ui.Text("%dx%d", d.texture.Width(), d.texture.Height())
	ui.SliderFloat("A.x", &d.translationA[0], -d.halfW, d.halfW)
	ui.SliderFloat("A.y", &d.translationA[1], -d.halfH, d.halfH)
	ui.SliderFloat("B.x", &d.translationB[0], -d.halfW, d.halfW)
	ui.SliderFloat("B.y", &d.translationB[1], -d.halfH, d.halfH)
}

func (d *Texture2D) ReloadShader(path string) bool {
	if !d.texture.Valid() {
		return false
	}
	if !reloadShader(d.ctx, &d.shader, path) {
		return false
	}
	d.shader.Bind()
	d.shader.SetUniform1i("u_Texture", 0)
	d.shader.Unbind()
	return true
}

func (d *Texture2D) Destroy() {
	d.texture.Destroy()
	if d.shader == nil {
		return
	}
	d.shader.Destroy()
	d.mesh.destroy()
	d.ctx.Disable(renderer.BLEND)
}
