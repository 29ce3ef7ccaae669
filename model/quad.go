package model

import vm "GPU_render_sandbox/vector_math"

// NewQuad returns a w x h rectangle in the XY plane centered on the origin.
// Texture coordinates span the full [0,1] range with (0,0) at the bottom-left.
func NewQuad(w, h float32) *Mesh {
	x, y := w/2, h/2
	v := []Vertex{
		{ // [0]
			Pos:      vm.Vec3{X: -x, Y: -y},
			Color:    vm.Vec3{X: 1, Y: 0, Z: 0},
			TexCoord: vm.Vec2{X: 0, Y: 0},
		},
		{ // [1]
			Pos:      vm.Vec3{X: x, Y: -y},
			Color:    vm.Vec3{X: 0, Y: 1, Z: 0},
			TexCoord: vm.Vec2{X: 1, Y: 0},
		},
		{ // [2]
			Pos:      vm.Vec3{X: x, Y: y},
			Color:    vm.Vec3{X: 0, Y: 0, Z: 1},
			TexCoord: vm.Vec2{X: 1, Y: 1},
		},
		{ // [3]
			Pos:      vm.Vec3{X: -x, Y: y},
			Color:    vm.Vec3{X: 1, Y: 0.5, Z: 1},
			TexCoord: vm.Vec2{X: 0, Y: 1},
		},
	}

	id := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	return NewMesh("quad", v, id)
}
