package demo

import (
	"GPU_render_sandbox/model"
	"GPU_render_sandbox/renderer"
	vm "GPU_render_sandbox/vector_math"
)

// Cube spins the vertex colored unit cube under a perspective camera.
type Cube struct {
	Base
	ctx    *renderer.Context
	r      renderer.Renderer
	mesh   meshBuffers
	shader *renderer.Shader
	camera *model.Camera

	// lit shaders also get the model matrix to rotate normals with.
	lit   bool
	angle float32
	speed float32
}

func NewCube(env Env) *Cube {
	return newSpinner(env, model.NewCube(), "cube.shader", false)
}

func newSpinner(env Env, m *model.Mesh, shader string, lit bool) *Cube {
	ctx := env.Ctx
	d := &Cube{
		ctx:    ctx,
		r:      renderer.NewRenderer(ctx),
		mesh:   uploadMesh(ctx, m),
		shader: renderer.NewShader(ctx, env.shaderPath(shader)),
		camera: model.NewCamera(45, 0.1, 100),
		lit:    lit,
		speed:  45,
	}
	d.camera.Pos = vm.Vec3{X: 1.5, Y: 1.5, Z: 2.5}
	d.camera.Aspect = env.aspect()
	ctx.Enable(renderer.DEPTH_TEST)
	return d
}

// Angle is the current rotation in degrees.
func (d *Cube) Angle() float32 {
	return d.angle
}

func (d *Cube) OnUpdate(dt float32) {
	d.angle += d.speed * dt
	for d.angle >= 360 {
		d.angle -= 360
	}
}

func (d *Cube) OnRender() {
	d.r.ClearDepth()
	if !d.shader.Valid() {
		return
	}
	tr := model.FromCamera(d.camera)
	tr.Rotate(0, 1, 0, float32(vm.ToRad(float64(d.angle))))
	mvp := tr.MVP()
	d.shader.Bind()
	d.shader.SetUniformMat4f("u_MVP", &mvp)
	if d.lit {
		d.shader.SetUniformMat4f("u_Model", &tr.Model)
	}
	d.mesh.draw(d.r, d.shader)
}

func (d *Cube) OnUIRender(ui UI) {
	if !d.shader.Valid() {
		ui.Text("shader '%s' failed to build", d.shader.Path())
		return
	}
	ui.SliderFloat("Speed", &d.speed, 0, 180)
	ui.SliderFloat("Fov", &d.camera.Fov, 20, 120)
}

func (d *Cube) ReloadShader(path string) bool {
	return reloadShader(d.ctx, &d.shader, path)
}

func (d *Cube) Destroy() {
	d.shader.Destroy()
	d.mesh.destroy()
	d.ctx.Disable(renderer.DEPTH_TEST)
}
