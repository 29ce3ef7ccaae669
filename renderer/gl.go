package renderer

import "unsafe"

// GL is the slice of the graphics API the renderer talks to. Method names and
// argument order follow the C API so a backend is a one-to-one forward to the
// bindings. Object creation and deletion is singular (one name per call) as the
// renderer never batches them.
type GL interface {
	GetError() uint32

	GenBuffer() uint32
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v0 int32)
	Uniform1f(location int32, v0 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, transpose bool, value *float32)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target uint32, texture uint32)
	TexParameteri(target uint32, pname uint32, param int32)
	TexImage2D(target uint32, level int32, internalFormat int32, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)
	DeleteTexture(texture uint32)

	Enable(capability uint32)
	Disable(capability uint32)
	BlendFunc(sfactor, dfactor uint32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}

// Enum values as defined by the OpenGL 3.3 core registry. They are kept here so
// the core does not link against the cgo bindings.
const (
	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4

	VERTEX_SHADER   = 0x8B31
	FRAGMENT_SHADER = 0x8B30
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	VALIDATE_STATUS = 0x8B83
	INFO_LOG_LENGTH = 0x8B84

	TEXTURE_2D         = 0x0DE1
	TEXTURE0           = 0x84C0
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812F
	RGBA               = 0x1908
	RGBA8              = 0x8058

	BLEND               = 0x0BE2
	DEPTH_TEST          = 0x0B71
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
	COLOR_BUFFER_BIT    = 0x4000
	DEPTH_BUFFER_BIT    = 0x0100
	TRIANGLES           = 0x0004

	TRUE  = 1
	FALSE = 0
)
