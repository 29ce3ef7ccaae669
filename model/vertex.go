package model

import (
	"GPU_render_sandbox/renderer"
	vm "GPU_render_sandbox/vector_math"
)

// Vertex is the interleaved vertex used by all meshes. Its memory layout is three
// tightly packed float32 attributes: 12 + 12 + 8 = 32 Byte, no padding.
type Vertex struct {
	Pos      vm.Vec3
	Color    vm.Vec3
	TexCoord vm.Vec2
}

// VertexLayout describes Vertex to a vertex array: position on the first slot,
// color on the second and texture coordinates on the third.
func VertexLayout() *renderer.VertexBufferLayout {
	l := renderer.NewVertexBufferLayout()
	renderer.Push[float32](l, 3)
	renderer.Push[float32](l, 3)
	renderer.Push[float32](l, 2)
	return l
}
