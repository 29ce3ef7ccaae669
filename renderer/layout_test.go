package renderer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GPU_render_sandbox/renderer"
)

func TestLayoutStrideAndOffsets(t *testing.T) {
	l := renderer.NewVertexBufferLayout()
	renderer.Push[float32](l, 3)
	renderer.Push[uint8](l, 4)
	renderer.Push[uint32](l, 1)

	elements := l.Elements()
	require.Len(t, elements, 3)
	assert.Equal(t, renderer.VertexBufferElement{Type: renderer.Float, Count: 3, Normalized: false}, elements[0])
	assert.Equal(t, renderer.VertexBufferElement{Type: renderer.UnsignedByte, Count: 4, Normalized: true}, elements[1])
	assert.Equal(t, renderer.VertexBufferElement{Type: renderer.UnsignedInt, Count: 1, Normalized: false}, elements[2])

	assert.Equal(t, uint32(20), l.Stride())
	assert.Equal(t, uint32(0), l.Offset(0))
	assert.Equal(t, uint32(12), l.Offset(1))
	assert.Equal(t, uint32(16), l.Offset(2))
	assert.Equal(t, l.Stride(), l.Offset(3))
}

func TestLayoutStrideIsSumOfElements(t *testing.T) {
	l := renderer.NewVertexBufferLayout()
	for i := uint32(1); i <= 4; i++ {
		renderer.Push[float32](l, i)
		renderer.Push[uint8](l, i)

		var sum uint32
		for _, e := range l.Elements() {
			sum += e.ByteSize()
		}
		assert.Equal(t, sum, l.Stride())
	}
}

func TestLayoutElementsIsCopy(t *testing.T) {
	l := renderer.NewVertexBufferLayout()
	renderer.Push[float32](l, 2)
	e := l.Elements()
	e[0].Count = 99
	assert.Equal(t, uint32(2), l.Elements()[0].Count)
}

func TestSizeOfType(t *testing.T) {
	assert.Equal(t, uint32(4), renderer.SizeOfType(renderer.Float))
	assert.Equal(t, uint32(4), renderer.SizeOfType(renderer.UnsignedInt))
	assert.Equal(t, uint32(1), renderer.SizeOfType(renderer.UnsignedByte))
	assert.Panics(t, func() { renderer.SizeOfType(renderer.ElementType(0x140A)) })
	assert.Equal(t, "uint8", renderer.UnsignedByte.String())
}
