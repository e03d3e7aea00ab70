package oven

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ErrDegenerateFrustum is returned by ProjectionMatrix.Validate when two
// opposite planes coincide.
var ErrDegenerateFrustum = errors.New("oven: degenerate frustum")

// ProjectionMatrix describes a view volume by its six clip planes.
// Build one with Perspective or Orthographic.
type ProjectionMatrix struct {
	Left, Right float64
	Bottom, Top float64
	Near, Far   float64

	// FOV and Aspect are the inputs Perspective derived the planes from.
	FOV    float64
	Aspect float64

	Orthographic bool
}

// Perspective builds a symmetric perspective frustum. fov is the vertical
// field of view in radians and is wrapped into [0, 2π). near and far are
// swapped if given in the wrong order.
func Perspective(fov, aspect, near, far float64) ProjectionMatrix {
	near, far = math.Min(near, far), math.Max(near, far)
	fov = math.Mod(fov, tau)

	top := math.Tan(fov/2) * near
	right := top * aspect
	return ProjectionMatrix{
		Left: -right, Right: right,
		Bottom: -top, Top: top,
		Near: near, Far: far,
		FOV: fov, Aspect: aspect,
	}
}

// Orthographic builds a box-shaped view volume width wide and height tall,
// centered on the view axis. A zero height means a square volume.
func Orthographic(near, far, width, height float64) ProjectionMatrix {
	if height == 0 {
		height = width
	}
	hw, hh := width/2, height/2
	var aspect float64
	if hh != 0 {
		aspect = hw / hh
	}
	return ProjectionMatrix{
		Left: -hw, Right: hw,
		Bottom: -hh, Top: hh,
		Near: near, Far: far,
		Aspect:       aspect,
		Orthographic: true,
	}
}

// Validate reports whether the planes bound a usable volume.
func (p ProjectionMatrix) Validate() error {
	switch {
	case p.Right == p.Left:
		return fmt.Errorf("left == right (%v): %w", p.Left, ErrDegenerateFrustum)
	case p.Top == p.Bottom:
		return fmt.Errorf("bottom == top (%v): %w", p.Top, ErrDegenerateFrustum)
	case p.Near == p.Far:
		return fmt.Errorf("near == far (%v): %w", p.Near, ErrDegenerateFrustum)
	}
	return nil
}

// Matrix returns the camera-to-clip matrix. A degenerate volume yields the
// identity matrix and logs a warning.
//
// Perspective uses the off-center frustum form with bottom row [0 0 -1 0]
// so that w = -z. Orthographic is a scale and translate with bottom row
// [0 0 0 1].
func (p ProjectionMatrix) Matrix() Mat4 {
	if err := p.Validate(); err != nil {
		Logger().Warn("projection matrix", zap.Error(err))
		return Identity4()
	}
	rl := 1 / (p.Right - p.Left)
	tb := 1 / (p.Top - p.Bottom)
	nf := 1 / (p.Near - p.Far)

	if p.Orthographic {
		return Mat4{
			2 * rl, 0, 0, -(p.Right + p.Left) * rl,
			0, 2 * tb, 0, -(p.Top + p.Bottom) * tb,
			0, 0, 2 * nf, (p.Near + p.Far) * nf,
			0, 0, 0, 1,
		}
	}
	return Mat4{
		2 * p.Near * rl, 0, (p.Right + p.Left) * rl, 0,
		0, 2 * p.Near * tb, (p.Top + p.Bottom) * tb, 0,
		0, 0, (p.Near + p.Far) * nf, 2 * p.Near * p.Far * nf,
		0, 0, -1, 0,
	}
}
