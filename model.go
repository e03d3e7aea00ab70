package oven

import (
	"errors"
	"fmt"
)

// ErrEmptyMatrixStack is returned by ModelMatrix.Pop when nothing was pushed.
var ErrEmptyMatrixStack = errors.New("oven: pop on empty matrix stack")

// ModelMatrix accumulates object-to-world transforms by right-multiplication
// and keeps a stack of snapshots for hierarchical drawing.
type ModelMatrix struct {
	m     Mat4
	stack []Mat4
}

// NewModelMatrix returns a model matrix set to identity.
func NewModelMatrix() *ModelMatrix {
	return &ModelMatrix{m: Identity4()}
}

// ModelFromTransformations returns identity * T(translate) * Rx * Ry * Rz *
// S(scale). The rotation is applied as three separate multiplications.
func ModelFromTransformations(translate, rotate, scale Vec3) *ModelMatrix {
	mm := NewModelMatrix()
	mm.AddTranslation(translate)
	mm.AddRotation(rotate)
	mm.AddScale(scale)
	return mm
}

// Matrix returns the accumulated matrix.
func (mm *ModelMatrix) Matrix() Mat4 { return mm.m }

// LoadIdentity resets the accumulated matrix. The stack is left untouched.
func (mm *ModelMatrix) LoadIdentity() { mm.m = Identity4() }

// AddTransformation right-multiplies the accumulated matrix by o.
func (mm *ModelMatrix) AddTransformation(o Mat4) { mm.m = mm.m.Mul(o) }

// AddTranslation appends a translation. A zero offset is a no-op.
func (mm *ModelMatrix) AddTranslation(t Vec3) {
	if t.IsZero() {
		return
	}
	mm.AddTransformation(Translation(t))
}

// AddRotation appends rotations about X, then Y, then Z (angles in radians).
func (mm *ModelMatrix) AddRotation(r Vec3) {
	if r.IsZero() {
		return
	}
	mm.AddTransformation(RotationX(r.X))
	mm.AddTransformation(RotationY(r.Y))
	mm.AddTransformation(RotationZ(r.Z))
}

// AddScale appends a scale. Vec3One is a no-op.
func (mm *ModelMatrix) AddScale(s Vec3) {
	if s == Vec3One {
		return
	}
	mm.AddTransformation(Scaling(s))
}

// Push saves a snapshot of the current matrix.
func (mm *ModelMatrix) Push() {
	mm.stack = append(mm.stack, mm.m)
}

// Pop restores the matrix saved by the matching Push.
func (mm *ModelMatrix) Pop() error {
	n := len(mm.stack)
	if n == 0 {
		return fmt.Errorf("model matrix: %w", ErrEmptyMatrixStack)
	}
	mm.m = mm.stack[n-1]
	mm.stack = mm.stack[:n-1]
	return nil
}

// Depth returns the number of saved snapshots.
func (mm *ModelMatrix) Depth() int { return len(mm.stack) }
