// Package config holds the sandbox settings read at startup.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int32  `toml:"width" yaml:"width"`
	Height int32  `toml:"height" yaml:"height"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
}

type Assets struct {
	ShaderDir string `toml:"shader_dir" yaml:"shader_dir"`
	Texture   string `toml:"texture" yaml:"texture"`
	Model     string `toml:"model" yaml:"model"`
}

type Sandbox struct {
	// StartDemo is selected right after startup; empty keeps the menu open.
	StartDemo  string     `toml:"start_demo" yaml:"start_demo"`
	HotReload  bool       `toml:"hot_reload" yaml:"hot_reload"`
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`
}

type Config struct {
	Window  Window  `toml:"window" yaml:"window"`
	Assets  Assets  `toml:"assets" yaml:"assets"`
	Sandbox Sandbox `toml:"sandbox" yaml:"sandbox"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "GPU render sandbox",
			Width:  960,
			Height: 540,
			VSync:  true,
		},
		Assets: Assets{
			ShaderDir: "res/shaders",
			Texture:   "res/textures/checker.png",
			Model:     "res/models/tetrahedron.stl",
		},
		Sandbox: Sandbox{
			ClearColor: [4]float32{0.1, 0.1, 0.12, 1},
		},
	}
}

// Load reads path over the defaults. The format follows the extension: .toml,
// or .yaml/.yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config '%s': %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(&c)
	default:
		return c, fmt.Errorf("%w: unsupported config format '%s'", ErrInvalid, ext)
	}
	if err != nil {
		return c, fmt.Errorf("failed to decode config '%s': %w", path, err)
	}
	return c, c.Validate()
}

// ShaderPath resolves a shader file name inside the shader directory.
func (c Config) ShaderPath(name string) string {
	return filepath.Join(c.Assets.ShaderDir, name)
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Assets.ShaderDir == "" {
		return fmt.Errorf("%w: empty shader_dir", ErrInvalid)
	}
	for i, v := range c.Sandbox.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear_color[%d] = %v is outside [0,1]", ErrInvalid, i, v)
		}
	}
	return nil
}
