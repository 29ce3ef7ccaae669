package main

import (
	"fmt"
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"GPU_render_sandbox/common"
	"GPU_render_sandbox/config"
	"GPU_render_sandbox/demo"
	"GPU_render_sandbox/renderer"
)

// App drives the frame loop. The core never polls or swaps; everything that
// touches the window happens here.
type App struct {
	cfg     config.Config
	win     *common.Window
	r       renderer.Renderer
	menu    *demo.Menu
	panel   *demo.KeyPanel
	input   *common.InputMapper
	watcher *common.ShaderWatcher
}

func NewApp(cfg config.Config, win *common.Window, ctx *renderer.Context, menu *demo.Menu) *App {
	panel := demo.NewKeyPanel()
	a := &App{
		cfg:   cfg,
		win:   win,
		r:     renderer.NewRenderer(ctx),
		menu:  menu,
		panel: panel,
		input: common.NewInputMapper(panel),
	}
	if cfg.Sandbox.HotReload {
		w, err := common.NewShaderWatcher(cfg.Assets.ShaderDir)
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			a.watcher = w
		}
	}
	width, height := win.Size()
	a.r.Viewport(0, 0, width, height)
	return a
}

func (a *App) Loop() {
	t0 := time.Now()
	last := t0
	frames := 0
	for !a.win.Close {
		a.pollEvents()
		if a.win.Minimized {
			// Sleep until new events change a.win.Minimized
			sdl.WaitEvent()
			continue
		}
		if a.win.Resized {
			w, h := a.win.Size()
			a.r.Viewport(0, 0, w, h)
			a.win.Resized = false
		}
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		a.drawFrame(dt)
		a.reloadShaders()
		a.win.Swap()
		frames++
	}
	dtSec := float64(time.Since(t0).Milliseconds()) / 1000
	log.Printf("Elapsed: %vs, rough avg fps: %v fps", dtSec, float64(frames)/dtSec)
}

func (a *App) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			a.win.Close = true
		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				a.win.Resized = true
			case sdl.WINDOWEVENT_MINIMIZED:
				a.win.Minimized = true
			case sdl.WINDOWEVENT_RESTORED:
				a.win.Minimized = false
			}
		case *sdl.KeyboardEvent:
			switch a.input.HandleKey(ev) {
			case common.ActionQuit:
				a.win.Close = true
			case common.ActionBack:
				a.menu.Back()
			}
		}
	}
}

// drawFrame runs clear, update, render and the UI panel in that order.
func (a *App) drawFrame(dt float32) {
	c := a.cfg.Sandbox.ClearColor
	a.r.SetClearColor(c[0], c[1], c[2], c[3])
	a.r.Clear()

	current := a.menu.Current()
	current.OnUpdate(dt)
	current.OnRender()

	a.panel.Begin()
	a.menu.RenderBackButton(a.panel)
	// the back button may have swapped the current demo out
	a.menu.Current().OnUIRender(a.panel)
	a.panel.End()

	a.win.SetTitle(fmt.Sprintf("%s - %s", a.cfg.Window.Title, a.panel.Summary()))
}

func (a *App) reloadShaders() {
	if a.watcher == nil {
		return
	}
	for _, path := range a.watcher.Poll() {
		r, ok := a.menu.Current().(demo.ShaderReloader)
		if !ok {
			continue
		}
		if r.ReloadShader(path) {
			log.Printf("Reloaded %s", path)
		}
	}
}

func (a *App) Destroy() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("Failed to close shader watcher: %v", err)
		}
	}
	a.menu.Destroy()
	a.win.Destroy()
}
