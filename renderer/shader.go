package renderer

import (
	"log"

	lin "github.com/xlab/linmath"
)

// ShaderState tracks where a Shader is in its lifecycle.
type ShaderState int

const (
	ShaderUncompiled ShaderState = iota
	ShaderLinked
	ShaderActive
	ShaderInvalid
)

func (s ShaderState) String() string {
	switch s {
	case ShaderUncompiled:
		return "uncompiled"
	case ShaderLinked:
		return "linked"
	case ShaderActive:
		return "active"
	case ShaderInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Shader owns one linked program object built from a combined shader file. A
// program that failed to compile or link has ID 0, reports ShaderInvalid and
// must not be bound or drawn with; check Valid after construction.
type Shader struct {
	ctx       *Context
	id        uint32
	path      string
	state     ShaderState
	locations map[string]int32
	destroyed bool
}

// NewShader reads the combined shader file at path and builds a program from it.
// An unreadable file yields an invalid Shader, the same as a compile error.
func NewShader(ctx *Context, path string) *Shader {
	src, err := LoadShaderSource(path)
	if err != nil {
		log.Printf("Failed to load shader: %v", err)
		return &Shader{ctx: ctx, path: path, state: ShaderInvalid, locations: map[string]int32{}}
	}
	return NewShaderFromSource(ctx, path, src)
}

// NewShaderFromSource compiles and links src. name is only used for logging.
func NewShaderFromSource(ctx *Context, name string, src ShaderProgramSource) *Shader {
	s := &Shader{ctx: ctx, path: name, state: ShaderUncompiled, locations: map[string]int32{}}
	vs := s.compile(VERTEX_SHADER, src.VertexSource)
	fs := s.compile(FRAGMENT_SHADER, src.FragmentSource)
	s.id = s.link(vs, fs)
	if s.id == 0 {
		log.Printf("Shader '%s' is invalid", name)
		s.state = ShaderInvalid
		return s
	}
	s.state = ShaderLinked
	log.Printf("Created shader program %d from '%s'", s.id, name)
	return s
}

func stageName(kind uint32) string {
	if kind == VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

// compile returns the stage object or 0 if the driver rejected the source.
func (s *Shader) compile(kind uint32, source string) uint32 {
	gl := s.ctx.gl
	var id uint32
	s.ctx.call("glCreateShader", func() { id = gl.CreateShader(kind) })
	s.ctx.call("glShaderSource", func() { gl.ShaderSource(id, source) })
	s.ctx.call("glCompileShader", func() { gl.CompileShader(id) })

	var status int32
	s.ctx.call("glGetShaderiv", func() { status = gl.GetShaderiv(id, COMPILE_STATUS) })
	if status == FALSE {
		var msg string
		s.ctx.call("glGetShaderInfoLog", func() { msg = gl.GetShaderInfoLog(id) })
		log.Printf("Failed to compile %s shader!\n%s", stageName(kind), msg)
		s.ctx.call("glDeleteShader", func() { gl.DeleteShader(id) })
		return 0
	}
	return id
}

// link builds the program from two compiled stages. No program object is created
// unless both stages are valid. The stages are released before returning.
func (s *Shader) link(vs, fs uint32) uint32 {
	gl := s.ctx.gl
	if vs == 0 || fs == 0 {
		for _, stage := range []uint32{vs, fs} {
			if stage != 0 {
				s.ctx.call("glDeleteShader", func() { gl.DeleteShader(stage) })
			}
		}
		return 0
	}

	var program uint32
	s.ctx.call("glCreateProgram", func() { program = gl.CreateProgram() })
	s.ctx.call("glAttachShader", func() { gl.AttachShader(program, vs) })
	s.ctx.call("glAttachShader", func() { gl.AttachShader(program, fs) })
	s.ctx.call("glLinkProgram", func() { gl.LinkProgram(program) })

	var status int32
	s.ctx.call("glGetProgramiv", func() { status = gl.GetProgramiv(program, LINK_STATUS) })
	if status == FALSE {
		var msg string
		s.ctx.call("glGetProgramInfoLog", func() { msg = gl.GetProgramInfoLog(program) })
		log.Printf("Failed to link shader program!\n%s", msg)
		s.ctx.call("glDeleteProgram", func() { gl.DeleteProgram(program) })
		s.ctx.call("glDeleteShader", func() { gl.DeleteShader(vs) })
		s.ctx.call("glDeleteShader", func() { gl.DeleteShader(fs) })
		return 0
	}

	s.ctx.call("glValidateProgram", func() { gl.ValidateProgram(program) })
	s.ctx.call("glDeleteShader", func() { gl.DeleteShader(vs) })
	s.ctx.call("glDeleteShader", func() { gl.DeleteShader(fs) })
	return program
}

func (s *Shader) ID() uint32 {
	return s.id
}

// Path is the file (or name) the program was built from.
func (s *Shader) Path() string {
	return s.path
}

func (s *Shader) State() ShaderState {
	return s.state
}

func (s *Shader) Valid() bool {
	return s.id != 0 && !s.destroyed
}

func (s *Shader) Bind() {
	mustBeAlive(s.destroyed, "Shader")
	s.ctx.call("glUseProgram", func() { s.ctx.gl.UseProgram(s.id) })
	if s.state == ShaderLinked {
		s.state = ShaderActive
	}
}

func (s *Shader) Unbind() {
	s.ctx.call("glUseProgram", func() { s.ctx.gl.UseProgram(0) })
	if s.state == ShaderActive {
		s.state = ShaderLinked
	}
}

// Destroy deletes the program. Calling it again has no effect.
func (s *Shader) Destroy() {
	if s.destroyed {
		return
	}
	if s.id != 0 {
		s.ctx.call("glDeleteProgram", func() { s.ctx.gl.DeleteProgram(s.id) })
	}
	s.destroyed = true
}

// The uniform setters write to the program currently in use: Bind the Shader
// first.

func (s *Shader) SetUniform1i(name string, v int32) {
	loc := s.UniformLocation(name)
	s.ctx.call("glUniform1i", func() { s.ctx.gl.Uniform1i(loc, v) })
}

func (s *Shader) SetUniform1f(name string, v float32) {
	loc := s.UniformLocation(name)
	s.ctx.call("glUniform1f", func() { s.ctx.gl.Uniform1f(loc, v) })
}

func (s *Shader) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	loc := s.UniformLocation(name)
	s.ctx.call("glUniform4f", func() { s.ctx.gl.Uniform4f(loc, v0, v1, v2, v3) })
}

// SetUniformMat4f uploads m as is; linmath matrices are column major already.
func (s *Shader) SetUniformMat4f(name string, m *lin.Mat4x4) {
	loc := s.UniformLocation(name)
	s.ctx.call("glUniformMatrix4fv", func() { s.ctx.gl.UniformMatrix4fv(loc, false, &m[0][0]) })
}

// UniformLocation resolves name once per program lifetime. A missing uniform
// (-1) is cached too, so it is reported once and never queried again.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	var loc int32
	s.ctx.call("glGetUniformLocation", func() { loc = s.ctx.gl.GetUniformLocation(s.id, name) })
	if loc == -1 {
		log.Printf("Warning: uniform '%s' doesn't exist in '%s'", name, s.path)
	}
	s.locations[name] = loc
	return loc
}
