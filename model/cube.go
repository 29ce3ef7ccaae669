package model

import vm "GPU_render_sandbox/vector_math"

// NewCube returns a unit cube centered on the origin with a distinct color per
// corner.
func NewCube() *Mesh {
	v := []Vertex{
		{ // [0]
			Pos:      vm.Vec3{X: -0.5, Y: -0.5, Z: -0.5},
			Color:    vm.Vec3{X: 1, Y: 0, Z: 0},
			TexCoord: vm.Vec2{X: 1, Y: 1},
		},
		{ // [1]
			Pos:      vm.Vec3{X: 0.5, Y: -0.5, Z: -0.5},
			Color:    vm.Vec3{X: 0, Y: 1, Z: 0},
			TexCoord: vm.Vec2{X: 0, Y: 1},
		},
		{ // [2]
			Pos:      vm.Vec3{X: 0.5, Y: 0.5, Z: -0.5},
			Color:    vm.Vec3{X: 0, Y: 0, Z: 1},
			TexCoord: vm.Vec2{X: 0, Y: 0},
		},
		{ // [3]
			Pos:      vm.Vec3{X: -0.5, Y: 0.5, Z: -0.5},
			Color:    vm.Vec3{X: 1, Y: 0.5, Z: 1},
			TexCoord: vm.Vec2{X: 1, Y: 0},
		},
		{ // [4]
			Pos:      vm.Vec3{X: -0.5, Y: -0.5, Z: 0.5},
			Color:    vm.Vec3{X: 1, Y: 0.5, Z: 0.5},
			TexCoord: vm.Vec2{X: 1, Y: 1},
		},
		{ // [5]
			Pos:      vm.Vec3{X: 0.5, Y: -0.5, Z: 0.5},
			Color:    vm.Vec3{X: 0.5, Y: 1, Z: 0.5},
			TexCoord: vm.Vec2{X: 0, Y: 1},
		},
		{ // [6]
			Pos:      vm.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			Color:    vm.Vec3{X: 0.5, Y: 0.5, Z: 1},
			TexCoord: vm.Vec2{X: 0, Y: 0},
		},
		{ // [7]
			Pos:      vm.Vec3{X: -0.5, Y: 0.5, Z: 0.5},
			Color:    vm.Vec3{X: 0, Y: 0.5, Z: 0},
			TexCoord: vm.Vec2{X: 1, Y: 0},
		},
	}

	id := []uint32{
		2, 1, 0, 0, 3, 2, // back
		5, 1, 6, 1, 2, 6, // right
		4, 5, 6, 7, 4, 6, // front
		4, 7, 0, 0, 7, 3, // left
		0, 1, 5, 5, 4, 0, // bottom
		3, 7, 6, 2, 3, 6, // top
	}

	return NewMesh("cube", v, id)
}
