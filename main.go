package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"GPU_render_sandbox/common"
	"GPU_render_sandbox/config"
	"GPU_render_sandbox/demo"
	"GPU_render_sandbox/renderer"
)

func init() {
	// SDL and OpenGL calls have to stay on the thread that created the context
	runtime.LockOSThread()
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Println("Starting GPU render sandbox")
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

type options struct {
	configPath string
	demo       string
	probe      bool
	hotReload  bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("sandbox", pflag.ContinueOnError)
	fs.StringVarP(&o.configPath, "config", "c", "", "TOML or YAML config file")
	fs.StringVarP(&o.demo, "demo", "d", "", "demo to open on startup")
	fs.BoolVar(&o.probe, "probe", false, "print the Vulkan adapters and exit")
	fs.BoolVar(&o.hotReload, "hot-reload", false, "recompile shaders when their files change")
	err := fs.Parse(args)
	return o, err
}

// loadConfig applies the command line on top of the config file or the defaults.
func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.demo != "" {
		cfg.Sandbox.StartDemo = o.demo
	}
	if o.hotReload {
		cfg.Sandbox.HotReload = true
	}
	return cfg, nil
}

func registerDemos(m *demo.Menu, env demo.Env) {
	m.Register("Clear Color", func() demo.Demo { return demo.NewClearColor(env) })
	m.Register("Color Quad", func() demo.Demo { return demo.NewColorQuad(env) })
	m.Register("Texture 2D", func() demo.Demo { return demo.NewTexture2D(env) })
	m.Register("Cube", func() demo.Demo { return demo.NewCube(env) })
	m.Register("STL Mesh", func() demo.Demo { return demo.NewStlMesh(env) })
	m.Register("Split Buffers", func() demo.Demo { return demo.NewSplitBuffers(env) })
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	cfg, err := loadConfig(o)
	if err != nil {
		log.Fatal(err)
	}

	win := common.NewWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, cfg.Window.VSync)
	if o.probe {
		adapters, err := common.ProbeAdapters()
		if err != nil {
			log.Printf("Vulkan probe failed: %v", err)
		} else {
			fmt.Print(common.FormatAdapters(adapters))
		}
		win.Destroy()
		return
	}

	ctx := renderer.NewContext(common.NewGLBackend())
	w, h := win.Size()
	env := demo.Env{
		Ctx:       ctx,
		Width:     w,
		Height:    h,
		ShaderDir: cfg.Assets.ShaderDir,
		Texture:   cfg.Assets.Texture,
		Model:     cfg.Assets.Model,
	}
	menu := demo.NewMenu()
	registerDemos(menu, env)
	if cfg.Sandbox.StartDemo != "" {
		if err := menu.Select(cfg.Sandbox.StartDemo); err != nil {
			log.Printf("Start demo: %v, available: %v", err, menu.Names())
		}
	}

	app := NewApp(cfg, win, ctx, menu)
	app.Loop()
	app.Destroy()
}
