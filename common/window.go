package common

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

const APPLICATION_NAME = "GPU render sandbox"
const APP_MAJOR, APP_MINOR, APP_PATCH = 1, 0, 0

const SDL_MAJOR, SDL_MINOR, SDL_PATCH = int(sdl.MAJOR_VERSION), int(sdl.MINOR_VERSION), int(sdl.PATCHLEVEL)

// OpenGL profile requested from SDL. The shaders in res/ are written against #version 330 core.
const GL_MAJOR, GL_MINOR = 3, 3

// Window encapsulates the SDL window and its OpenGL context. SDL also delivers the user input, the flags below are
// written by the event loop and read by whoever owns the window.
type Window struct {
	sdlVersion string
	glVersion  string

	Win       *sdl.Window
	Ctx       sdl.GLContext
	Resized   bool
	Minimized bool
	Close     bool
}

// NewWindow initializes SDL, opens a resizable window, creates a core profile OpenGL context on it and makes that
// context current. On tear down the context has to be deleted before the window, see Destroy.
func NewWindow(title string, w int32, h int32, vsync bool) *Window {
	window := &Window{
		sdlVersion: fmt.Sprintf("v%d.%d.%d", SDL_MAJOR, SDL_MINOR, SDL_PATCH),
		glVersion:  fmt.Sprintf("v%d.%d core", GL_MAJOR, GL_MINOR),
	}
	window.initSDLWindow(title, w, h)
	window.createGLContext(vsync)
	log.Printf("Generated SDL/OpenGL window - SDL: %s OpenGL: %s", window.sdlVersion, window.glVersion)
	return window
}

// Destroy deletes the OpenGL context, closes the window and shuts SDL down.
func (w *Window) Destroy() {
	sdl.GLDeleteContext(w.Ctx)
	err := w.Win.Destroy()
	if err != nil {
		log.Fatal(err)
	}
	sdl.Quit()
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	w.Win.GLSwap()
}

func (w *Window) SetTitle(title string) {
	w.Win.SetTitle(title)
}

// Size is the drawable size in pixels, which differs from the window size on high DPI displays.
func (w *Window) Size() (int32, int32) {
	return w.Win.GLGetDrawableSize()
}

func (w *Window) initSDLWindow(title string, width int32, height int32) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		log.Panicf("Failed to initialize SDL: %v", err)
	}
	log.Println("Initialized SDL")
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, GL_MAJOR},
		{sdl.GL_CONTEXT_MINOR_VERSION, GL_MINOR},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			log.Panicf("Failed to set SDL GL attribute %d: %v", a.attr, err)
		}
	}
	win, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		width,
		height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_OPENGL,
	)
	if err != nil {
		log.Panicf("Failed to create SDL window for use with OpenGL: %v", err)
	}
	log.Printf("Created SDL window for use with OpenGL. Title: \"%s\", Width: %d, Height: %d", title, width, height)
	w.Win = win
}

func (w *Window) createGLContext(vsync bool) {
	ctx, err := w.Win.GLCreateContext()
	if err != nil {
		log.Panicf("Failed to create OpenGL context, due to: %v", err)
	}
	if err = w.Win.GLMakeCurrent(ctx); err != nil {
		log.Panicf("Failed to make OpenGL context current, due to: %v", err)
	}
	interval := 0
	if vsync {
		interval = 1
	}
	if err = sdl.GLSetSwapInterval(interval); err != nil {
		log.Printf("Swap interval %d not supported: %v", interval, err)
	}
	w.Ctx = ctx
}
