package renderer

import "log"

// ElementType tags the component type of a vertex attribute. The values are the
// GL type enums so they can be passed through unchanged.
type ElementType uint32

const (
	Float        ElementType = 0x1406
	UnsignedInt  ElementType = 0x1405
	UnsignedByte ElementType = 0x1401
)

type elementTypeInfo struct {
	size       uint32
	normalized bool
}

var elementTypes = map[ElementType]elementTypeInfo{
	Float:        {size: 4, normalized: false},
	UnsignedInt:  {size: 4, normalized: false},
	UnsignedByte: {size: 1, normalized: true},
}

// SizeOfType returns the byte size of one component of t.
func SizeOfType(t ElementType) uint32 {
	info, ok := elementTypes[t]
	if !ok {
		log.Panicf("Unsupported vertex element type 0x%04X", uint32(t))
	}
	return info.size
}

func (t ElementType) String() string {
	switch t {
	case Float:
		return "float32"
	case UnsignedInt:
		return "uint32"
	case UnsignedByte:
		return "uint8"
	default:
		return "unknown"
	}
}

// VertexBufferElement is one attribute of a vertex: Count components of Type.
type VertexBufferElement struct {
	Type       ElementType
	Count      uint32
	Normalized bool
}

// ByteSize is the number of bytes the element occupies inside a vertex.
func (e VertexBufferElement) ByteSize() uint32 {
	return e.Count * SizeOfType(e.Type)
}

// Component lists the Go types a vertex attribute may be made of. Pushing any
// other type does not compile.
type Component interface {
	float32 | uint32 | uint8
}

// VertexBufferLayout describes how the bytes of one vertex split into
// attributes. It is built by appending with Push and never shrinks.
type VertexBufferLayout struct {
	elements []VertexBufferElement
	stride   uint32
}

func NewVertexBufferLayout() *VertexBufferLayout {
	return &VertexBufferLayout{}
}

// Push appends an attribute of count components of type T. uint8 attributes are
// normalized to [0,1] when read by the shader.
func Push[T Component](l *VertexBufferLayout, count uint32) {
	var zero T
	var t ElementType
	switch any(zero).(type) {
	case float32:
		t = Float
	case uint32:
		t = UnsignedInt
	case uint8:
		t = UnsignedByte
	}
	l.push(t, count)
}

func (l *VertexBufferLayout) push(t ElementType, count uint32) {
	info := elementTypes[t]
	l.elements = append(l.elements, VertexBufferElement{Type: t, Count: count, Normalized: info.normalized})
	l.stride += count * info.size
}

// Elements returns a copy of the pushed elements in order.
func (l *VertexBufferLayout) Elements() []VertexBufferElement {
	e := make([]VertexBufferElement, len(l.elements))
	copy(e, l.elements)
	return e
}

// Stride is the byte distance between two consecutive vertices.
func (l *VertexBufferLayout) Stride() uint32 {
	return l.stride
}

// Offset returns the byte offset of element i inside a vertex.
func (l *VertexBufferLayout) Offset(i int) uint32 {
	var offset uint32
	for _, e := range l.elements[:i] {
		offset += e.ByteSize()
	}
	return offset
}
