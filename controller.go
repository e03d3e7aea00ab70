package oven

import "math"

// Controller drives a camera from per-frame input.
type Controller interface {
	Camera() *Camera
	Update(dt float64, in FrameInput)
}

// freeLookSlideKeys maps keys to camera-local slide directions (X along U,
// Y along V, Z along N).
var freeLookSlideKeys = [...]struct {
	key Key
	dir Vec3
}{
	{KeyW, Vec3Up},
	{KeyS, Vec3Down},
	{KeyA, Vec3Left},
	{KeyD, Vec3Right},
	{KeyQ, Vec3Backward}, // toward what the camera looks at
	{KeyE, Vec3Forward},
}

// FreeLookCamera flies freely: WASD/QE slide along the camera's own axes
// and I/K, J/L, U/O pitch, yaw and roll it.
type FreeLookCamera struct {
	cam *Camera

	// Speed is the slide speed in units per second.
	Speed float64
	// TurnRate is the rotation speed in radians per second.
	TurnRate float64
}

// NewFreeLookCamera returns a free-look controller placed at eye and
// looking at target.
func NewFreeLookCamera(proj ProjectionMatrix, eye, target, up Vec3) *FreeLookCamera {
	cam := NewCamera(proj)
	cam.LookAtFrom(eye, target, up)
	return &FreeLookCamera{cam: cam, Speed: 20, TurnRate: 1}
}

// Camera returns the driven camera.
func (f *FreeLookCamera) Camera() *Camera { return f.cam }

// Update applies one frame of input.
func (f *FreeLookCamera) Update(dt float64, in FrameInput) {
	var dir Vec3
	for _, sk := range freeLookSlideKeys {
		if in.Pressed(sk.key) {
			dir = dir.Add(sk.dir)
		}
	}
	if dir = dir.Normalized(); !dir.IsZero() {
		f.cam.Slide(dir.Scale(dt * f.Speed))
	}

	turn := dt * f.TurnRate
	f.cam.View.RotateX(in.Axis(KeyI, KeyK) * turn)
	f.cam.View.RotateY(in.Axis(KeyJ, KeyL) * turn)
	f.cam.View.RotateZ(in.Axis(KeyU, KeyO) * turn)
	f.cam.Update(dt)
}

// fpsMoveKeys maps keys to move directions in the yaw frame, where
// Vec3Forward is the horizontal viewing direction at zero yaw.
var fpsMoveKeys = [...]struct {
	key Key
	dir Vec3
}{
	{KeyW, Vec3Forward},
	{KeyS, Vec3Backward},
	{KeyA, Vec3Right}, // screen left when looking down +Z
	{KeyD, Vec3Left},
	{KeyShift, Vec3Up},
	{KeyCtrl, Vec3Down},
}

// FPSCamera is a first-person controller. Pointer motion pitches the camera
// about its own right axis and yaws it about the world Y axis, so roll never
// accumulates. Movement keys translate the eye in the horizontal frame given
// by Yaw.
type FPSCamera struct {
	cam *Camera

	// Sensitivity scales pointer motion into radians per second.
	Sensitivity float64
	// Speed is the move speed in units per second.
	Speed float64
	// MaxPitch limits how far the camera looks up or down, in radians.
	// Zero leaves pitch unclamped.
	MaxPitch float64

	// Yaw is the accumulated rotation about world Y. Zero looks down +Z.
	Yaw float64
	// Pitch is the accumulated pitch; positive looks down.
	Pitch float64
}

// NewFPSCamera returns a first-person controller placed at eye and looking
// at target. Yaw and Pitch are derived from the initial view direction.
func NewFPSCamera(proj ProjectionMatrix, eye, target, up Vec3) *FPSCamera {
	cam := NewCamera(proj)
	cam.LookAtFrom(eye, target, up)
	dir := eye.DirectionTo(target)
	return &FPSCamera{
		cam:         cam,
		Sensitivity: 0.5,
		Speed:       5,
		Yaw:         math.Atan2(dir.X, dir.Z),
		Pitch:       -math.Asin(clamp(dir.Y, -1, 1)),
	}
}

// Camera returns the driven camera.
func (f *FPSCamera) Camera() *Camera { return f.cam }

// Update applies one frame of input: move, then pitch, then turn.
func (f *FPSCamera) Update(dt float64, in FrameInput) {
	f.Translate(f.MoveVector(in).Scale(dt * f.Speed))
	f.pitch(in.PointerDelta.Y * f.Sensitivity * dt)
	f.turn(-in.PointerDelta.X * f.Sensitivity * dt)
	f.cam.Update(dt)
}

// MoveVector returns the unit world-space move direction requested by in,
// or zero.
func (f *FPSCamera) MoveVector(in FrameInput) Vec3 {
	var dir Vec3
	for _, mk := range fpsMoveKeys {
		if in.Pressed(mk.key) {
			dir = dir.Add(mk.dir)
		}
	}
	dir = dir.Normalized()
	if dir.IsZero() {
		return dir
	}
	return dir.Rotate(Vec3Up, f.Yaw).Normalized()
}

// Translate moves the eye by a world-space offset.
func (f *FPSCamera) Translate(offset Vec3) {
	if offset.IsZero() {
		return
	}
	f.cam.View.Eye = f.cam.View.Eye.Add(offset)
}

func (f *FPSCamera) pitch(angle float64) {
	if angle == 0 {
		return
	}
	if f.MaxPitch > 0 {
		next := clamp(f.Pitch+angle, -f.MaxPitch, f.MaxPitch)
		angle = next - f.Pitch
	}
	f.cam.View.RotateX(angle)
	f.Pitch += angle
}

func (f *FPSCamera) turn(angle float64) {
	if angle == 0 {
		return
	}
	f.cam.View.RotateGlobalY(angle)
	f.Yaw += angle
}

// RailCamera moves the eye along a BezierPath, facing along the path or
// toward a fixed target.
type RailCamera struct {
	cam  *Camera
	Path *BezierPath
	// Speed is the path parameter advanced per second, in segments.
	Speed float64
	// Target, when set, is looked at instead of the path tangent.
	Target *Vec3
	Up     Vec3
}

// NewRailCamera returns a controller placed at the start of path.
func NewRailCamera(proj ProjectionMatrix, path *BezierPath, speed float64) *RailCamera {
	r := &RailCamera{cam: NewCamera(proj), Path: path, Speed: speed, Up: Vec3Up}
	pos, tangent := path.Sample(0, 0)
	r.face(pos, tangent)
	return r
}

// Camera returns the driven camera.
func (r *RailCamera) Camera() *Camera { return r.cam }

// Update advances along the path. Input is ignored.
func (r *RailCamera) Update(dt float64, _ FrameInput) {
	if r.Path.Done() {
		return
	}
	pos, tangent := r.Path.Advance(dt * r.Speed)
	r.face(pos, tangent)
	r.cam.Update(dt)
}

func (r *RailCamera) face(pos, tangent Vec3) {
	target := pos.Add(tangent)
	if r.Target != nil {
		target = *r.Target
	}
	r.cam.LookAtFrom(pos, target, r.Up)
}
