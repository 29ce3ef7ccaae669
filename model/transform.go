package model

import lin "github.com/xlab/linmath"

// Transform holds the three matrices a vertex shader composes positions with.
type Transform struct {
	Model      lin.Mat4x4
	View       lin.Mat4x4
	Projection lin.Mat4x4
}

// NewTransform starts with identity model and view matrices.
func NewTransform(projection lin.Mat4x4) Transform {
	t := Transform{Projection: projection}
	t.Model.Identity()
	t.View.Identity()
	return t
}

// FromCamera takes view and projection from c.
func FromCamera(c *Camera) Transform {
	t := NewTransform(c.Projection())
	t.View = c.View()
	return t
}

// MVP returns Projection * View * Model, the matrix the shaders expect as u_MVP.
func (t *Transform) MVP() lin.Mat4x4 {
	var vp, mvp lin.Mat4x4
	vp.Mult(&t.Projection, &t.View)
	mvp.Mult(&vp, &t.Model)
	return mvp
}

// Translate sets the model matrix to a pure translation.
func (t *Transform) Translate(x, y, z float32) {
	t.Model.Translate(x, y, z)
}

// Rotate sets the model matrix to a rotation of angle radians around (x, y, z).
func (t *Transform) Rotate(x, y, z, angle float32) {
	var id lin.Mat4x4
	id.Identity()
	t.Model.Rotate(&id, x, y, z, angle)
}
