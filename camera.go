package oven

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideAnim holds active glide tweens for the eye's X, Y and Z.
type glideAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// Camera pairs a view with a projection. The combined view-projection
// matrix is cached and rebuilt only when either half changes.
type Camera struct {
	View       ViewMatrix
	Projection ProjectionMatrix

	glide *glideAnim

	cachedView ViewMatrix
	cachedProj ProjectionMatrix
	viewProj   Mat4
	cacheValid bool
}

// NewCamera returns a camera at the origin looking down -Z through proj.
func NewCamera(proj ProjectionMatrix) *Camera {
	return &Camera{
		View:       NewViewMatrix(),
		Projection: proj,
	}
}

// LookAt turns the camera toward target without moving it.
func (c *Camera) LookAt(target, up Vec3) {
	c.View.LookAt(c.View.Eye, target, up)
}

// LookAtFrom moves the camera to eye and turns it toward target.
func (c *Camera) LookAtFrom(eye, target, up Vec3) {
	c.View.LookAt(eye, target, up)
}

// Slide moves the eye along the camera's own axes: X along U, Y along V and
// Z along N.
func (c *Camera) Slide(offset Vec3) {
	c.View.Slide(offset.X, offset.Y, offset.Z)
}

// MoveTo places the eye at pos without changing the orientation. It cancels
// any glide in progress.
func (c *Camera) MoveTo(pos Vec3) {
	c.glide = nil
	c.View.Eye = pos
}

// Eye returns the camera position.
func (c *Camera) Eye() Vec3 { return c.View.Eye }

// Basis returns the camera's right, up and backward axes.
func (c *Camera) Basis() (u, v, n Vec3) { return c.View.U, c.View.V, c.View.N }

// RotAngles returns (roll, pitch, yaw) in radians.
func (c *Camera) RotAngles() (roll, pitch, yaw float64) { return c.View.RotAngles() }

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() Mat4 { return c.View.Matrix() }

// ProjectionMatrix returns the camera-to-clip matrix.
func (c *Camera) ProjectionMatrix() Mat4 { return c.Projection.Matrix() }

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() Mat4 {
	if c.cacheValid && c.cachedView == c.View && c.cachedProj == c.Projection {
		return c.viewProj
	}
	c.cachedView = c.View
	c.cachedProj = c.Projection
	c.viewProj = c.Projection.Matrix().Mul(c.View.Matrix())
	c.cacheValid = true
	return c.viewProj
}

// WorldToNDC projects a world point into normalized device coordinates. ok
// is false when the point is at the eye plane.
func (c *Camera) WorldToNDC(p Vec3) (Vec3, bool) {
	return c.ViewProjection().Project(p)
}

// GlideTo animates the eye to pos over duration seconds. A nil easeFn means
// linear.
func (c *Camera) GlideTo(pos Vec3, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	from := c.View.Eye
	c.glide = &glideAnim{tweens: [3]*gween.Tween{
		gween.New(float32(from.X), float32(pos.X), duration, easeFn),
		gween.New(float32(from.Y), float32(pos.Y), duration, easeFn),
		gween.New(float32(from.Z), float32(pos.Z), duration, easeFn),
	}}
}

// Gliding reports whether a glide is in progress.
func (c *Camera) Gliding() bool { return c.glide != nil }

// Update advances the glide by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.glide == nil {
		return
	}
	eye := [3]*float64{&c.View.Eye.X, &c.View.Eye.Y, &c.View.Eye.Z}
	for i, tw := range c.glide.tweens {
		if c.glide.done[i] {
			continue
		}
		val, done := tw.Update(float32(dt))
		*eye[i] = float64(val)
		c.glide.done[i] = done
	}
	if c.glide.done == [3]bool{true, true, true} {
		c.glide = nil
	}
}
