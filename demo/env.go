package demo

import (
	"log"
	"path/filepath"

	"GPU_render_sandbox/model"
	"GPU_render_sandbox/renderer"
)

// Env is what a demo factory gets from the host.
type Env struct {
	Ctx       *renderer.Context
	Width     int32
	Height    int32
	ShaderDir string
	Texture   string
	Model     string
}

func (e Env) shaderPath(name string) string {
	return filepath.Join(e.ShaderDir, name)
}

func (e Env) aspect() float32 {
	if e.Height == 0 {
		return 1
	}
	return float32(e.Width) / float32(e.Height)
}

// meshBuffers is a mesh uploaded with the interleaved model.Vertex layout.
type meshBuffers struct {
	va *renderer.VertexArray
	vb *renderer.VertexBuffer
	ib *renderer.IndexBuffer
}

func uploadMesh(ctx *renderer.Context, m *model.Mesh) meshBuffers {
	b := meshBuffers{
		va: renderer.NewVertexArray(ctx),
		vb: renderer.NewVertexBuffer(ctx, m.Vertices),
	}
	b.va.AddBuffer(b.vb, model.VertexLayout())
	b.ib = renderer.NewIndexBuffer(ctx, m.Indices)
	return b
}

func (b meshBuffers) draw(r renderer.Renderer, s *renderer.Shader) {
	r.Draw(b.va, b.ib, s)
}

func (b meshBuffers) destroy() {
	b.va.Destroy()
	b.vb.Destroy()
	b.ib.Destroy()
}

// reloadShader rebuilds *s from path when path is the file *s was built from.
// The old program is kept when the new one is invalid.
func reloadShader(ctx *renderer.Context, s **renderer.Shader, path string) bool {
	if *s == nil || !samePath((*s).Path(), path) {
		return false
	}
	next := renderer.NewShader(ctx, (*s).Path())
	if !next.Valid() {
		log.Printf("Keeping previous program for '%s'", path)
		next.Destroy()
		return false
	}
	(*s).Destroy()
	*s = next
	log.Printf("Reloaded shader '%s'", path)
	return true
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
