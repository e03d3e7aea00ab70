package oven

import "math"

// ViewMatrix holds the camera's eye position and its orthonormal basis:
// U points right, V up and N backward (away from what the camera looks at).
type ViewMatrix struct {
	Eye Vec3
	U   Vec3
	V   Vec3
	N   Vec3
}

// NewViewMatrix returns a view at the origin with the world axes as basis.
func NewViewMatrix() ViewMatrix {
	return ViewMatrix{U: Vec3Right, V: Vec3Up, N: Vec3{0, 0, 1}}
}

// LookAt places the eye and orients the basis toward target.
//
// If eye and target coincide the previous viewing direction is kept. If up is
// parallel to the viewing direction another world axis stands in for it.
func (vm *ViewMatrix) LookAt(eye, target, up Vec3) {
	vm.Eye = eye
	if n := eye.Sub(target).Normalized(); !n.IsZero() {
		vm.N = n
	}
	u := up.Cross(vm.N).Normalized()
	if u.IsZero() {
		u = Vec3Forward.Cross(vm.N).Normalized()
		if u.IsZero() {
			u = Vec3Right.Cross(vm.N).Normalized()
		}
	}
	vm.U = u
	vm.V = vm.N.Cross(vm.U)
}

// Slide moves the eye along the camera's own axes.
func (vm *ViewMatrix) Slide(du, dv, dn float64) {
	vm.Eye = vm.Eye.Add(vm.U.Scale(du)).Add(vm.V.Scale(dv)).Add(vm.N.Scale(dn))
}

// RotateX pitches the camera about its U axis.
func (vm *ViewMatrix) RotateX(angle float64) {
	vm.N, vm.V = rotateAxes(vm.N, vm.V, angle)
}

// RotateY yaws the camera about its V axis.
func (vm *ViewMatrix) RotateY(angle float64) {
	vm.U, vm.N = rotateAxes(vm.U, vm.N, angle)
}

// RotateZ rolls the camera about its N axis.
func (vm *ViewMatrix) RotateZ(angle float64) {
	vm.U, vm.V = rotateAxes(vm.U, vm.V, angle)
}

// RotateGlobalX rotates the whole basis about the world X axis.
func (vm *ViewMatrix) RotateGlobalX(angle float64) { vm.RotateWithMatrix(RotationX(angle)) }

// RotateGlobalY rotates the whole basis about the world Y axis. Used for yaw
// that must not introduce roll.
func (vm *ViewMatrix) RotateGlobalY(angle float64) { vm.RotateWithMatrix(RotationY(angle)) }

// RotateGlobalZ rotates the whole basis about the world Z axis.
func (vm *ViewMatrix) RotateGlobalZ(angle float64) { vm.RotateWithMatrix(RotationZ(angle)) }

// RotateWithMatrix applies the rotation part of m to every basis axis.
func (vm *ViewMatrix) RotateWithMatrix(m Mat4) {
	vm.U = vm.U.RotateWithMatrix(m)
	vm.V = vm.V.RotateWithMatrix(m)
	vm.N = vm.N.RotateWithMatrix(m)
}

// Matrix assembles the world-to-camera matrix:
//
//	| u  -eye·u |
//	| v  -eye·v |
//	| n  -eye·n |
//	| 0     1   |
func (vm ViewMatrix) Matrix() Mat4 {
	return Mat4{
		vm.U.X, vm.U.Y, vm.U.Z, -vm.Eye.Dot(vm.U),
		vm.V.X, vm.V.Y, vm.V.Z, -vm.Eye.Dot(vm.V),
		vm.N.X, vm.N.Y, vm.N.Z, -vm.Eye.Dot(vm.N),
		0, 0, 0, 1,
	}
}

// Forward returns the direction the camera looks in (-N).
func (vm ViewMatrix) Forward() Vec3 { return vm.N.Neg() }

// RotAngles returns (roll, pitch, yaw) in radians derived from the basis.
func (vm ViewMatrix) RotAngles() (roll, pitch, yaw float64) {
	n := vm.N
	yaw = math.Atan2(n.Y, n.X)
	pitch = math.Atan2(-n.Z, math.Hypot(n.X, n.Y))
	roll = math.Atan2(vm.U.Z, vm.V.Z)
	return roll, pitch, yaw
}

// rotateAxes rotates the pair (a, b) within their plane by angle.
func rotateAxes(a, b Vec3, angle float64) (Vec3, Vec3) {
	s, c := math.Sincos(angle)
	return a.Scale(c).Add(b.Scale(s)), a.Scale(-s).Add(b.Scale(c))
}
