package demo

import (
	"log"

	"GPU_render_sandbox/stl"
)

// StlMesh spins a model read from a binary STL file, shaded by its facet
// normals. A file that can not be read leaves the demo showing the error.
type StlMesh struct {
	*Cube
	path string
	err  error
}

func NewStlMesh(env Env) *StlMesh {
	m, err := stl.ReadStlFile(env.Model)
	if err != nil {
		log.Printf("Failed to load model: %v", err)
		return &StlMesh{path: env.Model, err: err}
	}
	m.Fit(1.5)
	return &StlMesh{Cube: newSpinner(env, m, "normals.shader", true), path: env.Model}
}

func (d *StlMesh) Err() error {
	return d.err
}

func (d *StlMesh) OnUpdate(dt float32) {
	if d.Cube != nil {
		d.Cube.OnUpdate(dt)
	}
}

func (d *StlMesh) OnRender() {
	if d.Cube != nil {
		d.Cube.OnRender()
	}
}

func (d *StlMesh) OnUIRender(ui UI) {
	if d.Cube == nil {
		ui.Text("model '%s': %v", d.path, d.err)
		return
	}
	d.Cube.OnUIRender(ui)
}

func (d *StlMesh) ReloadShader(path string) bool {
	return d.Cube != nil && d.Cube.ReloadShader(path)
}

func (d *StlMesh) Destroy() {
	if d.Cube != nil {
		d.Cube.Destroy()
	}
}
