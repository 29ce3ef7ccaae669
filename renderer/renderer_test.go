package renderer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GPU_render_sandbox/renderer"
)

type quadMesh struct {
	va     *renderer.VertexArray
	vb     *renderer.VertexBuffer
	ib     *renderer.IndexBuffer
	shader *renderer.Shader
}

func newQuad(t *testing.T, ctx *renderer.Context, src renderer.ShaderProgramSource) quadMesh {
	t.Helper()
	q := quadMesh{
		va: renderer.NewVertexArray(ctx),
		vb: renderer.NewVertexBuffer(ctx, []float32{
			-0.5, -0.5, 0, 0,
			0.5, -0.5, 1, 0,
			0.5, 0.5, 1, 1,
			-0.5, 0.5, 0, 1,
		}),
	}
	l := renderer.NewVertexBufferLayout()
	renderer.Push[float32](l, 2)
	renderer.Push[float32](l, 2)
	q.va.AddBuffer(q.vb, l)
	q.ib = renderer.NewIndexBuffer(ctx, []uint32{0, 1, 2, 2, 3, 0})
	q.shader = renderer.NewShaderFromSource(ctx, "quad", src)
	return q
}

func TestDrawIssuesOneIndexedDraw(t *testing.T) {
	ctx, rec := newContext()
	q := newQuad(t, ctx, renderer.ShaderProgramSource{VertexSource: validVertex, FragmentSource: validFragment})
	r := renderer.NewRenderer(ctx)

	r.Draw(q.va, q.ib, q.shader)

	require.Len(t, rec.Draws, 1)
	d := rec.Draws[0]
	assert.Equal(t, uint32(renderer.TRIANGLES), d.Mode)
	assert.Equal(t, int32(6), d.Count)
	assert.Equal(t, uint32(renderer.UnsignedInt), d.Type)
	assert.Equal(t, q.shader.ID(), d.Program)
	assert.Equal(t, q.va.ID(), d.VertexArray)
	assert.Equal(t, q.ib.ID(), d.ElementBuffer)
	assert.Equal(t, renderer.ShaderActive, q.shader.State())
}

func TestDrawAlwaysRebinds(t *testing.T) {
	ctx, rec := newContext()
	q := newQuad(t, ctx, renderer.ShaderProgramSource{VertexSource: validVertex, FragmentSource: validFragment})
	r := renderer.NewRenderer(ctx)
	useBefore := rec.Count("UseProgram")
	arraysBefore := rec.Count("BindVertexArray")

	r.Draw(q.va, q.ib, q.shader)
	r.Draw(q.va, q.ib, q.shader)

	assert.Len(t, rec.Draws, 2)
	assert.Equal(t, useBefore+2, rec.Count("UseProgram"))
	assert.Equal(t, arraysBefore+2, rec.Count("BindVertexArray"))
}

func TestDrawWithInvalidShaderIsFatal(t *testing.T) {
	ctx, rec := newContext()
	q := newQuad(t, ctx, renderer.ShaderProgramSource{VertexSource: brokenStage, FragmentSource: validFragment})
	require.False(t, q.shader.Valid())

	err := catchCallError(func() { renderer.NewRenderer(ctx).Draw(q.va, q.ib, q.shader) })
	require.NotNil(t, err)
	assert.Equal(t, "glDrawElements", err.Call)
	assert.Equal(t, "renderer.go", err.File)
	assert.Empty(t, rec.Draws)
}

func TestDrawAfterDestroyPanics(t *testing.T) {
	ctx, _ := newContext()
	q := newQuad(t, ctx, renderer.ShaderProgramSource{VertexSource: validVertex, FragmentSource: validFragment})
	q.ib.Destroy()
	assert.Panics(t, func() { renderer.NewRenderer(ctx).Draw(q.va, q.ib, q.shader) })
}

func TestClearAndViewport(t *testing.T) {
	ctx, rec := newContext()
	r := renderer.NewRenderer(ctx)

	r.SetClearColor(0.1, 0.2, 0.3, 1)
	r.Clear()
	r.ClearDepth()
	r.Viewport(0, 0, 640, 480)

	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, rec.ClearRGBA)
	assert.Equal(t, []uint32{renderer.COLOR_BUFFER_BIT, renderer.DEPTH_BUFFER_BIT}, rec.Clears)
	assert.Equal(t, 1, rec.Count("Viewport"))

	assert.NotNil(t, catchCallError(func() { r.Viewport(0, 0, -1, 480) }))
}
