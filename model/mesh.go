package model

import (
	"math"

	vm "GPU_render_sandbox/vector_math"
)

// Mesh is CPU side geometry, uploaded by whoever draws it.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

func NewMesh(name string, v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: v,
		Indices:  id,
	}
}

// Bounds returns the axis aligned box around all vertex positions. An empty mesh
// has zero bounds.
func (m *Mesh) Bounds() (min, max vm.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0].Pos
	max = m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		min = min.Min(v.Pos)
		max = max.Max(v.Pos)
	}
	return min, max
}

// Fit moves the mesh to the origin and scales it uniformly so its largest extent
// is size. Meshes without extent are left alone.
func (m *Mesh) Fit(size float32) {
	min, max := m.Bounds()
	ext := max.Sub(min)
	largest := float32(math.Max(float64(ext.X), math.Max(float64(ext.Y), float64(ext.Z))))
	if largest == 0 {
		return
	}
	center := min.Add(ext.ScalarMul(0.5))
	scale := size / largest
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Sub(center).ScalarMul(scale)
	}
}
