package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GPU_render_sandbox/renderer"
	"GPU_render_sandbox/renderer/renderertest"
)

func testEnv() (Env, *renderertest.Recorder) {
	rec := renderertest.NewRecorder()
	return Env{
		Ctx:       renderer.NewContext(rec),
		Width:     960,
		Height:    540,
		ShaderDir: filepath.Join("..", "res", "shaders"),
		Texture:   filepath.Join("..", "res", "textures", "checker.png"),
		Model:     filepath.Join("..", "res", "models", "tetrahedron.stl"),
	}, rec
}

func assertNoLeaks(t *testing.T, rec *renderertest.Recorder) {
	t.Helper()
	for _, kind := range []string{"buffer", "array", "shader", "program", "texture"} {
		assert.Zero(t, rec.Live(kind), "live %s objects", kind)
	}
}

func runFrames(d Demo, n int) *KeyPanel {
	p := NewKeyPanel()
	for i := 0; i < n; i++ {
		d.OnUpdate(1.0 / 60)
		d.OnRender()
		p.Begin()
		d.OnUIRender(p)
		p.End()
	}
	return p
}

func TestDemosDrawAndRelease(t *testing.T) {
	for name, tc := range map[string]struct {
		build func(Env) Demo
		draws int
	}{
		"ClearColor":   {func(e Env) Demo { return NewClearColor(e) }, 0},
		"ColorQuad":    {func(e Env) Demo { return NewColorQuad(e) }, 3},
		"Texture2D":    {func(e Env) Demo { return NewTexture2D(e) }, 6},
		"Cube":         {func(e Env) Demo { return NewCube(e) }, 3},
		"StlMesh":      {func(e Env) Demo { return NewStlMesh(e) }, 3},
		"SplitBuffers": {func(e Env) Demo { return NewSplitBuffers(e) }, 3},
	} {
		t.Run(name, func(t *testing.T) {
			env, rec := testEnv()
			d := tc.build(env)
			p := runFrames(d, 3)
			assert.Len(t, rec.Draws, tc.draws)
			assert.NotEmpty(t, p.Summary())

			d.Destroy()
			assertNoLeaks(t, rec)
		})
	}
}

func TestColorQuadBounces(t *testing.T) {
	env, rec := testEnv()
	rec.Uniforms["u_Color"] = 1
	d := NewColorQuad(env)
	defer d.Destroy()

	d.OnUpdate(0.5)
	assert.InDelta(t, 0.75, d.Red(), 1e-6)
	d.OnUpdate(0.5)
	assert.InDelta(t, 0.5, d.Red(), 1e-6, "reflected at 1")
	d.OnUpdate(0.5)
	assert.InDelta(t, 0.25, d.Red(), 1e-6, "reflected at 0")

	d.OnRender()
	assert.Equal(t, []float32{d.Red(), 0.3, 0.8, 1.0}, rec.UniformValues[1])
}

func TestClearColorResetsOnDestroy(t *testing.T) {
	env, rec := testEnv()
	d := NewClearColor(env)
	d.OnRender()
	assert.Equal(t, d.Color(), rec.ClearRGBA)
	d.Destroy()
	assert.Equal(t, [4]float32{0, 0, 0, 1}, rec.ClearRGBA)
}

func TestSplitBuffersContinuesSlots(t *testing.T) {
	env, rec := testEnv()
	d := NewSplitBuffers(env)
	defer d.Destroy()

	require.Len(t, rec.Attribs, 2)
	assert.Equal(t, uint32(0), rec.Attribs[0].Index)
	assert.Equal(t, uint32(1), rec.Attribs[1].Index)
	assert.NotEqual(t, rec.Attribs[0].Buffer, rec.Attribs[1].Buffer)
	assert.True(t, rec.Attribs[1].Normalized)
}

func TestTexture2DMissingTexture(t *testing.T) {
	env, rec := testEnv()
	env.Texture = filepath.Join(t.TempDir(), "missing.png")
	d := NewTexture2D(env)

	p := runFrames(d, 1)
	assert.Empty(t, rec.Draws)
	assert.Contains(t, p.Summary(), "failed to load")
	d.Destroy()
	assertNoLeaks(t, rec)
}

func TestStlMeshMissingModel(t *testing.T) {
	env, rec := testEnv()
	env.Model = filepath.Join(t.TempDir(), "missing.stl")
	d := NewStlMesh(env)

	assert.ErrorIs(t, d.Err(), os.ErrNotExist)
	p := runFrames(d, 1)
	assert.Contains(t, p.Summary(), "missing.stl")
	assert.False(t, d.ReloadShader(filepath.Join(env.ShaderDir, "normals.shader")))
	d.Destroy()
	assertNoLeaks(t, rec)
}

func TestCubeTogglesDepthTest(t *testing.T) {
	env, rec := testEnv()
	d := NewCube(env)
	assert.Equal(t, 1, rec.Count("Enable"))
	d.OnUpdate(10)
	assert.InDelta(t, 90, d.Angle(), 1e-3)
	d.Destroy()
	assert.Equal(t, 1, rec.Count("Disable"))
}

func TestReloadShaderKeepsValidProgram(t *testing.T) {
	basic, err := os.ReadFile(filepath.Join("..", "res", "shaders", "basic.shader"))
	require.NoError(t, err)
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.shader")
	require.NoError(t, os.WriteFile(path, basic, 0o644))

	env, rec := testEnv()
	env.ShaderDir = dir
	d := NewColorQuad(env)
	first := d.shader.ID()
	require.NotZero(t, first)

	assert.False(t, d.ReloadShader(filepath.Join(dir, "other.shader")))

	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\nbroken\n#shader fragment\nbroken\n"), 0o644))
	assert.False(t, d.ReloadShader(path))
	assert.Equal(t, first, d.shader.ID())
	assert.True(t, d.shader.Valid())

	require.NoError(t, os.WriteFile(path, basic, 0o644))
	assert.True(t, d.ReloadShader(path))
	assert.NotEqual(t, first, d.shader.ID())
	assert.Equal(t, 1, rec.Live("program"))

	d.Destroy()
	assertNoLeaks(t, rec)
}

func TestDemosImplementReloader(t *testing.T) {
	var _ ShaderReloader = (*ColorQuad)(nil)
	var _ ShaderReloader = (*Texture2D)(nil)
	var _ ShaderReloader = (*Cube)(nil)
	var _ ShaderReloader = (*StlMesh)(nil)
	var _ ShaderReloader = (*SplitBuffers)(nil)
	_, ok := Demo(&ClearColor{}).(ShaderReloader)
	assert.False(t, ok)
}
