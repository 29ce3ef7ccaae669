package renderer

// VertexArray owns one vertex array object and records which attribute slots
// have been wired to buffer regions. Vertex buffers added to it are borrowed and
// must outlive every draw that references the array.
type VertexArray struct {
	ctx         *Context
	id          uint32
	attribCount uint32
	destroyed   bool
}

func NewVertexArray(ctx *Context) *VertexArray {
	va := &VertexArray{ctx: ctx}
	ctx.call("glGenVertexArrays", func() { va.id = ctx.gl.GenVertexArray() })
	return va
}

func (va *VertexArray) ID() uint32 {
	return va.id
}

// AttribCount is the number of attribute slots enabled so far, which is also the
// slot the next added element will take.
func (va *VertexArray) AttribCount() uint32 {
	return va.attribCount
}

// AddBuffer binds the array and vb and declares every element of layout on its
// own slot. Slots continue where the previous AddBuffer stopped, so several
// buffers can feed one array on disjoint slot ranges.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexBufferLayout) {
	va.Bind()
	vb.Bind()
	stride := int32(layout.Stride())
	var offset uint32
	for _, e := range layout.Elements() {
		slot := va.attribCount
		va.ctx.call("glEnableVertexAttribArray", func() { va.ctx.gl.EnableVertexAttribArray(slot) })
		va.ctx.call("glVertexAttribPointer", func() {
			va.ctx.gl.VertexAttribPointer(slot, int32(e.Count), uint32(e.Type), e.Normalized, stride, uintptr(offset))
		})
		offset += e.ByteSize()
		va.attribCount++
	}
}

func (va *VertexArray) Bind() {
	mustBeAlive(va.destroyed, "VertexArray")
	va.ctx.call("glBindVertexArray", func() { va.ctx.gl.BindVertexArray(va.id) })
}

func (va *VertexArray) Unbind() {
	va.ctx.call("glBindVertexArray", func() { va.ctx.gl.BindVertexArray(0) })
}

// Destroy deletes the array object only; added buffers stay with their owners.
func (va *VertexArray) Destroy() {
	if va.destroyed {
		return
	}
	va.ctx.call("glDeleteVertexArrays", func() { va.ctx.gl.DeleteVertexArray(va.id) })
	va.destroyed = true
}
