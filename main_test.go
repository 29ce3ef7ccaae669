package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GPU_render_sandbox/config"
	"GPU_render_sandbox/demo"
	"GPU_render_sandbox/renderer"
	"GPU_render_sandbox/renderer/renderertest"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-c", "sandbox.toml", "--demo", "Cube", "--hot-reload"})
	require.NoError(t, err)
	assert.Equal(t, "sandbox.toml", o.configPath)
	assert.Equal(t, "Cube", o.demo)
	assert.True(t, o.hotReload)
	assert.False(t, o.probe)

	_, err = parseFlags([]string{"--nope"})
	assert.Error(t, err)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sandbox]\nstart_demo = \"Color Quad\"\n"), 0o644))

	cfg, err := loadConfig(options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, "Color Quad", cfg.Sandbox.StartDemo)
	assert.False(t, cfg.Sandbox.HotReload)

	cfg, err = loadConfig(options{configPath: path, demo: "Cube", hotReload: true})
	require.NoError(t, err)
	assert.Equal(t, "Cube", cfg.Sandbox.StartDemo)
	assert.True(t, cfg.Sandbox.HotReload)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(options{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = loadConfig(options{configPath: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestRegisterDemos(t *testing.T) {
	rec := renderertest.NewRecorder()
	env := demo.Env{
		Ctx:       renderer.NewContext(rec),
		Width:     640,
		Height:    480,
		ShaderDir: "res/shaders",
		Texture:   "res/textures/checker.png",
		Model:     "res/models/tetrahedron.stl",
	}
	m := demo.NewMenu()
	registerDemos(m, env)
	names := m.Names()
	assert.Equal(t, []string{"Clear Color", "Color Quad", "Texture 2D", "Cube", "STL Mesh", "Split Buffers"}, names)

	for _, name := range names {
		require.NoError(t, m.Select(name), name)
		m.Current().OnUpdate(1.0 / 60)
		m.Current().OnRender()
		m.Back()
	}
	assert.Equal(t, demo.MenuActive, m.State())
	for _, kind := range []string{"buffer", "array", "program", "texture"} {
		assert.Zero(t, rec.Live(kind), kind)
	}
}
