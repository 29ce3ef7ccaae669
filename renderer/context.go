package renderer

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"
)

// CallError describes a graphics error raised by a single API call. It is the
// value the Context panics with: a pending error means the calls were issued in
// the wrong order or on a dead handle, which no caller can recover from.
type CallError struct {
	Code uint32
	Call string
	File string
	Line int
}

func (e *CallError) Error() string {
	return fmt.Sprintf("[OpenGL Error] (0x%04X %s): %s %s:%d", e.Code, errorName(e.Code), e.Call, e.File, e.Line)
}

func errorName(code uint32) string {
	switch code {
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "unknown"
	}
}

// Context is the error-checked boundary in front of a GL implementation. All
// resources in this package issue their calls through it. A Context belongs to
// the thread owning the graphics context and must not be shared.
type Context struct {
	gl GL
}

func NewContext(gl GL) *Context {
	if gl == nil {
		log.Panicf("Cannot create render context without a GL implementation")
	}
	return &Context{gl: gl}
}

// GL exposes the unchecked implementation, mainly for hosts that need a call the
// renderer does not wrap.
func (c *Context) GL() GL {
	return c.gl
}

// call drains stale errors, runs fn and panics if fn left an error behind. File
// and line reported are the ones of the code calling into call.
func (c *Context) call(name string, fn func()) {
	c.clearErrors()
	fn()
	if code := c.gl.GetError(); code != NO_ERROR {
		_, file, line, _ := runtime.Caller(1)
		err := &CallError{Code: code, Call: name, File: filepath.Base(file), Line: line}
		log.Println(err.Error())
		panic(err)
	}
}

func (c *Context) clearErrors() {
	// GetError returns one flag per call, an implementation may hold several.
	for i := 0; i < 32; i++ {
		if c.gl.GetError() == NO_ERROR {
			return
		}
	}
}

// Enable switches on a capability such as BLEND.
func (c *Context) Enable(capability uint32) {
	c.call("glEnable", func() { c.gl.Enable(capability) })
}

func (c *Context) Disable(capability uint32) {
	c.call("glDisable", func() { c.gl.Disable(capability) })
}

func (c *Context) BlendFunc(sfactor, dfactor uint32) {
	c.call("glBlendFunc", func() { c.gl.BlendFunc(sfactor, dfactor) })
}
