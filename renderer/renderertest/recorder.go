// Package renderertest provides a recording implementation of renderer.GL for
// tests that exercise GPU resources without a graphics context.
package renderertest

import (
	"strings"
	"unsafe"

	"GPU_render_sandbox/renderer"
)

// AttribPointer is one recorded VertexAttribPointer call together with the
// objects bound when it was issued.
type AttribPointer struct {
	Index       uint32
	Size        int32
	Type        uint32
	Normalized  bool
	Stride      int32
	Offset      uintptr
	VertexArray uint32
	Buffer      uint32
}

// DrawCall is one recorded DrawElements call and the state it drew with.
type DrawCall struct {
	Mode          uint32
	Count         int32
	Type          uint32
	Program       uint32
	VertexArray   uint32
	ElementBuffer uint32
}

// TexImage is one recorded TexImage2D upload.
type TexImage struct {
	Texture uint32
	Width   int32
	Height  int32
	Pixels  []byte
}

// Recorder is a fake GL. It hands out object names, keeps just enough binding
// state to raise the errors a core profile driver raises for wrong call order,
// and records everything a test may want to assert on.
//
// A shader stage compiles when its source contains "void main"; linking fails
// when LinkLog is set.
type Recorder struct {
	Calls []string

	// Uniforms maps uniform names to the location GetUniformLocation returns.
	// Unknown names resolve to -1.
	Uniforms       map[string]int32
	UniformQueries map[string]int
	UniformValues  map[int32][]float32
	LinkLog        string

	Buffers       map[uint32][]byte
	Attribs       []AttribPointer
	EnabledAttrib map[uint32]map[uint32]bool
	Draws         []DrawCall
	TexImages     []TexImage
	ClearRGBA     [4]float32
	Clears        []uint32

	nextName uint32
	errors   []uint32
	failOn   map[string]uint32

	buffers  map[uint32]bool
	arrays   map[uint32]bool
	shaders  map[uint32]string
	compiled map[uint32]bool
	programs map[uint32][]uint32
	linked   map[uint32]bool
	textures map[uint32]bool

	arrayBuffer   uint32
	boundArray    uint32
	elementBuffer map[uint32]uint32
	program       uint32
	activeUnit    uint32
	texture       map[uint32]uint32
}

var _ renderer.GL = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		Uniforms:       map[string]int32{},
		UniformQueries: map[string]int{},
		UniformValues:  map[int32][]float32{},
		Buffers:        map[uint32][]byte{},
		EnabledAttrib:  map[uint32]map[uint32]bool{},
		failOn:         map[string]uint32{},
		buffers:        map[uint32]bool{},
		arrays:         map[uint32]bool{},
		shaders:        map[uint32]string{},
		compiled:       map[uint32]bool{},
		programs:       map[uint32][]uint32{},
		linked:         map[uint32]bool{},
		textures:       map[uint32]bool{},
		elementBuffer:  map[uint32]uint32{},
		texture:        map[uint32]uint32{},
		activeUnit:     renderer.TEXTURE0,
	}
}

// FailOn makes the next call named call (e.g. "DrawElements") leave code in the
// error queue.
func (r *Recorder) FailOn(call string, code uint32) {
	r.failOn[call] = code
}

// PushError leaves code in the error queue as if an earlier, unchecked call had
// failed.
func (r *Recorder) PushError(code uint32) {
	r.errors = append(r.errors, code)
}

// Count returns how often the call named call was issued.
func (r *Recorder) Count(call string) int {
	n := 0
	for _, c := range r.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Live reports the number of objects of kind ("buffer", "array", "shader",
// "program", "texture") that were created and not deleted.
func (r *Recorder) Live(kind string) int {
	switch kind {
	case "buffer":
		return len(r.buffers)
	case "array":
		return len(r.arrays)
	case "shader":
		return len(r.shaders)
	case "program":
		return len(r.programs)
	case "texture":
		return len(r.textures)
	}
	return 0
}

// Program returns the program currently in use.
func (r *Recorder) Program() uint32 {
	return r.program
}

func (r *Recorder) record(call string) {
	r.Calls = append(r.Calls, call)
	if code, ok := r.failOn[call]; ok {
		delete(r.failOn, call)
		r.errors = append(r.errors, code)
	}
}

func (r *Recorder) raise(code uint32) {
	r.errors = append(r.errors, code)
}

func (r *Recorder) name() uint32 {
	r.nextName++
	return r.nextName
}

func (r *Recorder) GetError() uint32 {
	if len(r.errors) == 0 {
		return renderer.NO_ERROR
	}
	code := r.errors[0]
	r.errors = r.errors[1:]
	return code
}

func (r *Recorder) GenBuffer() uint32 {
	r.record("GenBuffer")
	id := r.name()
	r.buffers[id] = true
	return id
}

func (r *Recorder) BindBuffer(target uint32, buffer uint32) {
	r.record("BindBuffer")
	if buffer != 0 && !r.buffers[buffer] {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	switch target {
	case renderer.ARRAY_BUFFER:
		r.arrayBuffer = buffer
	case renderer.ELEMENT_ARRAY_BUFFER:
		r.elementBuffer[r.boundArray] = buffer
	default:
		r.raise(renderer.INVALID_ENUM)
	}
}

func (r *Recorder) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	r.record("BufferData")
	var bound uint32
	switch target {
	case renderer.ARRAY_BUFFER:
		bound = r.arrayBuffer
	case renderer.ELEMENT_ARRAY_BUFFER:
		bound = r.elementBuffer[r.boundArray]
	}
	if bound == 0 {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	b := make([]byte, size)
	if data != nil && size > 0 {
		copy(b, unsafe.Slice((*byte)(data), size))
	}
	r.Buffers[bound] = b
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer")
	delete(r.buffers, buffer)
	if r.arrayBuffer == buffer {
		r.arrayBuffer = 0
	}
}

func (r *Recorder) GenVertexArray() uint32 {
	r.record("GenVertexArray")
	id := r.name()
	r.arrays[id] = true
	return id
}

func (r *Recorder) BindVertexArray(array uint32) {
	r.record("BindVertexArray")
	if array != 0 && !r.arrays[array] {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	r.boundArray = array
}

func (r *Recorder) DeleteVertexArray(array uint32) {
	r.record("DeleteVertexArray")
	delete(r.arrays, array)
	if r.boundArray == array {
		r.boundArray = 0
	}
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray")
	if r.boundArray == 0 {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	if r.EnabledAttrib[r.boundArray] == nil {
		r.EnabledAttrib[r.boundArray] = map[uint32]bool{}
	}
	r.EnabledAttrib[r.boundArray][index] = true
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer")
	if r.boundArray == 0 || r.arrayBuffer == 0 {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		r.raise(renderer.INVALID_VALUE)
		return
	}
	r.Attribs = append(r.Attribs, AttribPointer{
		Index:       index,
		Size:        size,
		Type:        xtype,
		Normalized:  normalized,
		Stride:      stride,
		Offset:      offset,
		VertexArray: r.boundArray,
		Buffer:      r.arrayBuffer,
	})
}

func (r *Recorder) CreateShader(kind uint32) uint32 {
	r.record("CreateShader")
	if kind != renderer.VERTEX_SHADER && kind != renderer.FRAGMENT_SHADER {
		r.raise(renderer.INVALID_ENUM)
		return 0
	}
	id := r.name()
	r.shaders[id] = ""
	return id
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	r.record("ShaderSource")
	if _, ok := r.shaders[shader]; !ok {
		r.raise(renderer.INVALID_VALUE)
		return
	}
	r.shaders[shader] = source
}

func (r *Recorder) CompileShader(shader uint32) {
	r.record("CompileShader")
	src, ok := r.shaders[shader]
	if !ok {
		r.raise(renderer.INVALID_VALUE)
		return
	}
	r.compiled[shader] = strings.Contains(src, "void main")
}

func (r *Recorder) GetShaderiv(shader uint32, pname uint32) int32 {
	r.record("GetShaderiv")
	if _, ok := r.shaders[shader]; !ok {
		r.raise(renderer.INVALID_VALUE)
		return 0
	}
	switch pname {
	case renderer.COMPILE_STATUS:
		if r.compiled[shader] {
			return renderer.TRUE
		}
		return renderer.FALSE
	case renderer.INFO_LOG_LENGTH:
		return int32(len(r.shaderLog(shader)) + 1)
	}
	r.raise(renderer.INVALID_ENUM)
	return 0
}

func (r *Recorder) shaderLog(shader uint32) string {
	if r.compiled[shader] {
		return ""
	}
	return "0:1(1): error: main function not found"
}

func (r *Recorder) GetShaderInfoLog(shader uint32) string {
	r.record("GetShaderInfoLog")
	return r.shaderLog(shader)
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader")
	delete(r.shaders, shader)
	delete(r.compiled, shader)
}

func (r *Recorder) CreateProgram() uint32 {
	r.record("CreateProgram")
	id := r.name()
	r.programs[id] = nil
	return id
}

func (r *Recorder) AttachShader(program uint32, shader uint32) {
	r.record("AttachShader")
	_, okP := r.programs[program]
	_, okS := r.shaders[shader]
	if !okP || !okS {
		r.raise(renderer.INVALID_VALUE)
		return
	}
	r.programs[program] = append(r.programs[program], shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram")
	stages, ok := r.programs[program]
	if !ok {
		r.raise(renderer.INVALID_VALUE)
		return
	}
	linked := r.LinkLog == "" && len(stages) == 2
	for _, s := range stages {
		linked = linked && r.compiled[s]
	}
	r.linked[program] = linked
}

func (r *Recorder) ValidateProgram(program uint32) {
	r.record("ValidateProgram")
	if _, ok := r.programs[program]; !ok {
		r.raise(renderer.INVALID_VALUE)
	}
}

func (r *Recorder) GetProgramiv(program uint32, pname uint32) int32 {
	r.record("GetProgramiv")
	if _, ok := r.programs[program]; !ok {
		r.raise(renderer.INVALID_VALUE)
		return 0
	}
	switch pname {
	case renderer.LINK_STATUS:
		if r.linked[program] {
			return renderer.TRUE
		}
		return renderer.FALSE
	case renderer.INFO_LOG_LENGTH:
		return int32(len(r.LinkLog) + 1)
	}
	r.raise(renderer.INVALID_ENUM)
	return 0
}

func (r *Recorder) GetProgramInfoLog(program uint32) string {
	r.record("GetProgramInfoLog")
	return r.LinkLog
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram")
	if program != 0 && !r.linked[program] {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	r.program = program
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram")
	delete(r.programs, program)
	delete(r.linked, program)
	if r.program == program {
		r.program = 0
	}
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.record("GetUniformLocation")
	if !r.linked[program] {
		r.raise(renderer.INVALID_OPERATION)
		return -1
	}
	r.UniformQueries[name]++
	if loc, ok := r.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) setUniform(location int32, v ...float32) {
	if r.program == 0 {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	if location == -1 {
		return
	}
	r.UniformValues[location] = v
}

func (r *Recorder) Uniform1i(location int32, v0 int32) {
	r.record("Uniform1i")
	r.setUniform(location, float32(v0))
}

func (r *Recorder) Uniform1f(location int32, v0 float32) {
	r.record("Uniform1f")
	r.setUniform(location, v0)
}

func (r *Recorder) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	r.record("Uniform4f")
	r.setUniform(location, v0, v1, v2, v3)
}

func (r *Recorder) UniformMatrix4fv(location int32, transpose bool, value *float32) {
	r.record("UniformMatrix4fv")
	m := unsafe.Slice(value, 16)
	v := make([]float32, 16)
	copy(v, m)
	r.setUniform(location, v...)
}

func (r *Recorder) GenTexture() uint32 {
	r.record("GenTexture")
	id := r.name()
	r.textures[id] = true
	return id
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.record("ActiveTexture")
	if unit < renderer.TEXTURE0 || unit >= renderer.TEXTURE0+32 {
		r.raise(renderer.INVALID_ENUM)
		return
	}
	r.activeUnit = unit
}

func (r *Recorder) BindTexture(target uint32, texture uint32) {
	r.record("BindTexture")
	if texture != 0 && !r.textures[texture] {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	r.texture[r.activeUnit] = texture
}

// BoundTexture returns the texture bound to sampler unit slot.
func (r *Recorder) BoundTexture(slot uint32) uint32 {
	return r.texture[renderer.TEXTURE0+slot]
}

func (r *Recorder) TexParameteri(target uint32, pname uint32, param int32) {
	r.record("TexParameteri")
	if r.texture[r.activeUnit] == 0 {
		r.raise(renderer.INVALID_OPERATION)
	}
}

func (r *Recorder) TexImage2D(target uint32, level int32, internalFormat int32, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	r.record("TexImage2D")
	bound := r.texture[r.activeUnit]
	if bound == 0 {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	if width < 0 || height < 0 || border != 0 {
		r.raise(renderer.INVALID_VALUE)
		return
	}
	size := int(width * height * 4)
	pix := make([]byte, size)
	if pixels != nil && size > 0 {
		copy(pix, unsafe.Slice((*byte)(pixels), size))
	}
	r.TexImages = append(r.TexImages, TexImage{Texture: bound, Width: width, Height: height, Pixels: pix})
}

func (r *Recorder) DeleteTexture(texture uint32) {
	r.record("DeleteTexture")
	delete(r.textures, texture)
	for unit, t := range r.texture {
		if t == texture {
			r.texture[unit] = 0
		}
	}
}

func (r *Recorder) Enable(capability uint32) {
	r.record("Enable")
}

func (r *Recorder) Disable(capability uint32) {
	r.record("Disable")
}

func (r *Recorder) BlendFunc(sfactor, dfactor uint32) {
	r.record("BlendFunc")
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport")
	if width < 0 || height < 0 {
		r.raise(renderer.INVALID_VALUE)
	}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor")
	r.ClearRGBA = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear")
	r.Clears = append(r.Clears, mask)
}

func (r *Recorder) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	r.record("DrawElements")
	if r.boundArray == 0 || r.elementBuffer[r.boundArray] == 0 || r.program == 0 {
		r.raise(renderer.INVALID_OPERATION)
		return
	}
	r.Draws = append(r.Draws, DrawCall{
		Mode:          mode,
		Count:         count,
		Type:          xtype,
		Program:       r.program,
		VertexArray:   r.boundArray,
		ElementBuffer: r.elementBuffer[r.boundArray],
	})
}
