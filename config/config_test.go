package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	c, err := Load(write(t, "sandbox.toml", `
[window]
width = 1280
height = 720

[sandbox]
start_demo = "Texture 2D"
clear_color = [0.0, 0.5, 1.0, 1.0]
`))
	require.NoError(t, err)
	assert.Equal(t, int32(1280), c.Window.Width)
	assert.Equal(t, int32(720), c.Window.Height)
	assert.Equal(t, Default().Window.Title, c.Window.Title)
	assert.Equal(t, "Texture 2D", c.Sandbox.StartDemo)
	assert.Equal(t, [4]float32{0, 0.5, 1, 1}, c.Sandbox.ClearColor)
	assert.Equal(t, filepath.Join("res/shaders", "basic.shader"), c.ShaderPath("basic.shader"))
}

func TestLoadYAML(t *testing.T) {
	c, err := Load(write(t, "sandbox.yaml", "window:\n  title: yaml\nsandbox:\n  hot_reload: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Window.Title)
	assert.True(t, c.Sandbox.HotReload)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(write(t, "sandbox.toml", "[window]\nfullscreen = true\n"))
	assert.Error(t, err)

	_, err = Load(write(t, "sandbox.yml", "window:\n  fullscreen: true\n"))
	assert.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	_, err := Load(write(t, "sandbox.toml", "[window]\nwidth = 0\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(write(t, "sandbox.toml", "[sandbox]\nclear_color = [2.0, 0.0, 0.0, 1.0]\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(write(t, "sandbox.ini", "width=1"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
