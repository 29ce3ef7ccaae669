package common

import (
	"log"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"GPU_render_sandbox/renderer"
)

// GLBackend forwards renderer.GL to the go-gl bindings. It is only valid on the
// thread the GL context is current on.
type GLBackend struct{}

var _ renderer.GL = GLBackend{}

// NewGLBackend loads the GL function pointers of the current context.
func NewGLBackend() GLBackend {
	if err := gl.Init(); err != nil {
		log.Panicf("Failed to initialize OpenGL: %v", err)
	}
	log.Printf("Initialized OpenGL %s (GLSL %s) on %s",
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
	)
	return GLBackend{}
}

func (GLBackend) GetError() uint32 {
	return gl.GetError()
}

func (GLBackend) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (GLBackend) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (GLBackend) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (GLBackend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (GLBackend) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (GLBackend) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (GLBackend) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (GLBackend) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (GLBackend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (GLBackend) CreateShader(kind uint32) uint32 {
	return gl.CreateShader(kind)
}

func (GLBackend) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

func (GLBackend) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (GLBackend) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (b GLBackend) GetShaderInfoLog(shader uint32) string {
	n := b.GetShaderiv(shader, gl.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (GLBackend) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GLBackend) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GLBackend) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GLBackend) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (GLBackend) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (GLBackend) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (b GLBackend) GetProgramInfoLog(program uint32) string {
	n := b.GetProgramiv(program, gl.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (GLBackend) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GLBackend) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (GLBackend) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(TerminatedStr(name)))
}

func (GLBackend) Uniform1i(location int32, v0 int32) {
	gl.Uniform1i(location, v0)
}

func (GLBackend) Uniform1f(location int32, v0 float32) {
	gl.Uniform1f(location, v0)
}

func (GLBackend) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (GLBackend) UniformMatrix4fv(location int32, transpose bool, value *float32) {
	gl.UniformMatrix4fv(location, 1, transpose, value)
}

func (GLBackend) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (GLBackend) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (GLBackend) BindTexture(target uint32, texture uint32) {
	gl.BindTexture(target, texture)
}

func (GLBackend) TexParameteri(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (GLBackend) TexImage2D(target uint32, level int32, internalFormat int32, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalFormat, width, height, border, format, xtype, pixels)
}

func (GLBackend) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (GLBackend) Enable(capability uint32) {
	gl.Enable(capability)
}

func (GLBackend) Disable(capability uint32) {
	gl.Disable(capability)
}

func (GLBackend) BlendFunc(sfactor, dfactor uint32) {
	gl.BlendFunc(sfactor, dfactor)
}

func (GLBackend) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (GLBackend) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (GLBackend) Clear(mask uint32) {
	gl.Clear(mask)
}

func (GLBackend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}
