package renderer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lin "github.com/xlab/linmath"

	"GPU_render_sandbox/renderer"
)

const (
	validVertex   = "#version 330 core\nlayout(location = 0) in vec4 position;\nvoid main() { gl_Position = position; }\n"
	validFragment = "#version 330 core\nuniform vec4 u_Color;\nout vec4 color;\nvoid main() { color = u_Color; }\n"
	brokenStage   = "#version 330 core\nvoid mian() {}\n"
)

func TestShaderLifecycle(t *testing.T) {
	ctx, rec := newContext()
	s := renderer.NewShaderFromSource(ctx, "basic", renderer.ShaderProgramSource{VertexSource: validVertex, FragmentSource: validFragment})

	require.True(t, s.Valid())
	assert.Equal(t, renderer.ShaderLinked, s.State())
	assert.Equal(t, 1, rec.Live("program"))
	assert.Zero(t, rec.Live("shader"), "stages are released after linking")
	assert.Equal(t, 1, rec.Count("ValidateProgram"))

	s.Bind()
	assert.Equal(t, renderer.ShaderActive, s.State())
	assert.Equal(t, s.ID(), rec.Program())
	s.Unbind()
	assert.Equal(t, renderer.ShaderLinked, s.State())
	assert.Zero(t, rec.Program())

	s.Destroy()
	s.Destroy()
	assert.Equal(t, 1, rec.Count("DeleteProgram"))
	assert.Zero(t, rec.Live("program"))
	assert.False(t, s.Valid())
	assert.Panics(t, s.Bind)
}

func TestShaderCompileFailureIsInvalid(t *testing.T) {
	for name, src := range map[string]renderer.ShaderProgramSource{
		"vertex":   {VertexSource: brokenStage, FragmentSource: validFragment},
		"fragment": {VertexSource: validVertex, FragmentSource: brokenStage},
		"both":     {VertexSource: brokenStage, FragmentSource: brokenStage},
	} {
		t.Run(name, func(t *testing.T) {
			ctx, rec := newContext()
			s := renderer.NewShaderFromSource(ctx, name, src)

			assert.Zero(t, s.ID())
			assert.False(t, s.Valid())
			assert.Equal(t, renderer.ShaderInvalid, s.State())
			assert.Zero(t, rec.Count("CreateProgram"), "no program is created from a broken stage")
			assert.Zero(t, rec.Live("shader"))
		})
	}
}

func TestShaderLinkFailureIsInvalid(t *testing.T) {
	ctx, rec := newContext()
	rec.LinkLog = "error: fragment input not written by vertex shader"
	s := renderer.NewShaderFromSource(ctx, "mismatch", renderer.ShaderProgramSource{VertexSource: validVertex, FragmentSource: validFragment})

	assert.Zero(t, s.ID())
	assert.Equal(t, renderer.ShaderInvalid, s.State())
	assert.Equal(t, 1, rec.Count("GetProgramInfoLog"))
	assert.Zero(t, rec.Live("program"))
	assert.Zero(t, rec.Live("shader"))
	assert.Zero(t, rec.Count("ValidateProgram"))
}

func TestShaderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\n"+validVertex+"#shader fragment\n"+validFragment), 0o644))

	ctx, _ := newContext()
	s := renderer.NewShader(ctx, path)
	assert.True(t, s.Valid())
	assert.Equal(t, path, s.Path())
}

func TestShaderFromMissingFile(t *testing.T) {
	ctx, rec := newContext()
	s := renderer.NewShader(ctx, filepath.Join(t.TempDir(), "missing.shader"))

	assert.False(t, s.Valid())
	assert.Equal(t, renderer.ShaderInvalid, s.State())
	assert.Empty(t, rec.Calls)
}

func TestUniformLocationIsCached(t *testing.T) {
	ctx, rec := newContext()
	rec.Uniforms["u_Color"] = 3
	s := renderer.NewShaderFromSource(ctx, "basic", renderer.ShaderProgramSource{VertexSource: validVertex, FragmentSource: validFragment})
	s.Bind()

	s.SetUniform4f("u_Color", 0.2, 0.3, 0.8, 1.0)
	s.SetUniform4f("u_Color", 0.5, 0.3, 0.8, 1.0)
	assert.Equal(t, 1, rec.UniformQueries["u_Color"])
	assert.Equal(t, []float32{0.5, 0.3, 0.8, 1.0}, rec.UniformValues[3])

	assert.Equal(t, int32(-1), s.UniformLocation("u_Missing"))
	assert.NotPanics(t, func() { s.SetUniform1f("u_Missing", 1) })
	assert.Equal(t, 1, rec.UniformQueries["u_Missing"], "a missing uniform is looked up once")
}

func TestSetUniformMat4f(t *testing.T) {
	ctx, rec := newContext()
	rec.Uniforms["u_MVP"] = 0
	s := renderer.NewShaderFromSource(ctx, "basic", renderer.ShaderProgramSource{VertexSource: validVertex, FragmentSource: validFragment})
	s.Bind()

	var m lin.Mat4x4
	m.Identity()
	m.Translate(1, 2, 3)
	s.SetUniformMat4f("u_MVP", &m)

	v := rec.UniformValues[0]
	require.Len(t, v, 16)
	assert.Equal(t, float32(1), v[0])
	assert.Equal(t, []float32{1, 2, 3, 1}, v[12:16], "translation lives in the last column")
}

func TestShaderStateString(t *testing.T) {
	assert.Equal(t, "active", renderer.ShaderActive.String())
	assert.Equal(t, "invalid", renderer.ShaderInvalid.String())
}
