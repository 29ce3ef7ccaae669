package model

import (
	"log"

	lin "github.com/xlab/linmath"

	vm "GPU_render_sandbox/vector_math"
)

const (
	CAM_PERSPECTIVE_PROJECTION = iota
	CAM_ORTHOGRAPHIC_PROJECTION
)

// Camera produces the view and projection halves of a Transform.
type Camera struct {
	ProjectionType int

	// Fov is the vertical field of view in degrees. Ignored by orthographic
	// cameras, which span [-Aspect*Height/2, Aspect*Height/2] horizontally.
	Fov    float32
	Height float32
	Aspect float32
	Near   float32
	Far    float32

	Pos    vm.Vec3
	Target vm.Vec3
	Up     vm.Vec3
}

func NewCamera(fov float32, near float32, far float32) *Camera {
	return &Camera{
		Fov:    fov,
		Height: 2,
		Aspect: 1,
		Near:   near,
		Far:    far,
		Pos:    vm.Vec3{Z: 3},
		Up:     vm.Vec3{Y: 1},
	}
}

// SetViewport updates the aspect ratio from a framebuffer size.
func (c *Camera) SetViewport(width, height int32) {
	if height == 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) Projection() lin.Mat4x4 {
	var m lin.Mat4x4
	switch c.ProjectionType {
	case CAM_PERSPECTIVE_PROJECTION:
		m.Perspective(float32(vm.ToRad(float64(c.Fov))), c.Aspect, c.Near, c.Far)
	case CAM_ORTHOGRAPHIC_PROJECTION:
		x, y := c.Aspect*c.Height/2, c.Height/2
		m.Ortho(-x, x, -y, y, c.Near, c.Far)
	default:
		log.Printf("Failed to select projection type, returning identity.")
		m.Identity()
	}
	return m
}

func (c *Camera) View() lin.Mat4x4 {
	var m lin.Mat4x4
	if c.Target.Sub(c.Pos).Len() == 0 {
		log.Printf("Failed to calculate view direction, target - position = [0,0,0]. Using identity view.")
		m.Identity()
		return m
	}
	eye, center, up := toLin(c.Pos), toLin(c.Target), toLin(c.Up)
	m.LookAt(&eye, &center, &up)
	return m
}

func toLin(v vm.Vec3) lin.Vec3 {
	return lin.Vec3{v.X, v.Y, v.Z}
}
