package renderer

import (
	"log"
	"unsafe"
)

// VertexBuffer owns one ARRAY_BUFFER object. The data is uploaded once on
// construction with a static usage hint and can not be changed afterwards.
type VertexBuffer struct {
	ctx       *Context
	id        uint32
	size      int
	destroyed bool
}

// NewVertexBuffer uploads data synchronously. T is the vertex (or component)
// type; the byte size is len(data) times the size of T, so T must not contain
// pointers or padding the shader does not expect.
func NewVertexBuffer[T any](ctx *Context, data []T) *VertexBuffer {
	vb := &VertexBuffer{ctx: ctx, size: sliceByteSize(data)}
	ctx.call("glGenBuffers", func() { vb.id = ctx.gl.GenBuffer() })
	ctx.call("glBindBuffer", func() { ctx.gl.BindBuffer(ARRAY_BUFFER, vb.id) })
	ctx.call("glBufferData", func() { ctx.gl.BufferData(ARRAY_BUFFER, vb.size, slicePtr(data), STATIC_DRAW) })
	log.Printf("Uploaded vertex buffer %d (%d Byte)", vb.id, vb.size)
	return vb
}

func (vb *VertexBuffer) ID() uint32 {
	return vb.id
}

// Size returns the uploaded size in bytes.
func (vb *VertexBuffer) Size() int {
	return vb.size
}

func (vb *VertexBuffer) Bind() {
	mustBeAlive(vb.destroyed, "VertexBuffer")
	vb.ctx.call("glBindBuffer", func() { vb.ctx.gl.BindBuffer(ARRAY_BUFFER, vb.id) })
}

func (vb *VertexBuffer) Unbind() {
	vb.ctx.call("glBindBuffer", func() { vb.ctx.gl.BindBuffer(ARRAY_BUFFER, 0) })
}

// Destroy releases the GPU allocation. Calling it again has no effect.
func (vb *VertexBuffer) Destroy() {
	if vb.destroyed {
		return
	}
	vb.ctx.call("glDeleteBuffers", func() { vb.ctx.gl.DeleteBuffer(vb.id) })
	vb.destroyed = true
}

// IndexBuffer owns one ELEMENT_ARRAY_BUFFER object of 32-bit indices.
type IndexBuffer struct {
	ctx       *Context
	id        uint32
	count     int
	destroyed bool
}

func NewIndexBuffer(ctx *Context, indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{ctx: ctx, count: len(indices)}
	ctx.call("glGenBuffers", func() { ib.id = ctx.gl.GenBuffer() })
	ctx.call("glBindBuffer", func() { ctx.gl.BindBuffer(ELEMENT_ARRAY_BUFFER, ib.id) })
	ctx.call("glBufferData", func() {
		ctx.gl.BufferData(ELEMENT_ARRAY_BUFFER, sliceByteSize(indices), slicePtr(indices), STATIC_DRAW)
	})
	log.Printf("Uploaded index buffer %d (%d indices)", ib.id, ib.count)
	return ib
}

func (ib *IndexBuffer) ID() uint32 {
	return ib.id
}

// Count is the number of indices, used to size draw calls.
func (ib *IndexBuffer) Count() int {
	return ib.count
}

func (ib *IndexBuffer) Bind() {
	mustBeAlive(ib.destroyed, "IndexBuffer")
	ib.ctx.call("glBindBuffer", func() { ib.ctx.gl.BindBuffer(ELEMENT_ARRAY_BUFFER, ib.id) })
}

func (ib *IndexBuffer) Unbind() {
	ib.ctx.call("glBindBuffer", func() { ib.ctx.gl.BindBuffer(ELEMENT_ARRAY_BUFFER, 0) })
}

func (ib *IndexBuffer) Destroy() {
	if ib.destroyed {
		return
	}
	ib.ctx.call("glDeleteBuffers", func() { ib.ctx.gl.DeleteBuffer(ib.id) })
	ib.destroyed = true
}

func sliceByteSize[T any](s []T) int {
	if len(s) == 0 {
		return 0
	}
	return len(s) * int(unsafe.Sizeof(s[0]))
}

func slicePtr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func mustBeAlive(destroyed bool, kind string) {
	if destroyed {
		log.Panicf("%s used after Destroy", kind)
	}
}
