package oven

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func testProjection() ProjectionMatrix {
	return Perspective(math.Pi/4, 16.0/9.0, 0.5, 100)
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(testProjection())
	u, v, n := cam.Basis()
	assert.Equal(t, Vec3Right, u)
	assert.Equal(t, Vec3Up, v)
	assert.Equal(t, Vec3{0, 0, 1}, n)
	assert.Equal(t, Vec3Zero, cam.Eye())
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera(testProjection())
	cam.LookAtFrom(Vec3{0, 0, 5}, Vec3Zero, Vec3Up)
	assertVec3(t, Vec3{0, 0, -1}, cam.View.Forward())

	cam.LookAt(Vec3{10, 0, 5}, Vec3Up)
	assert.Equal(t, Vec3{0, 0, 5}, cam.Eye())
	assertVec3(t, Vec3Right, cam.View.Forward())

	cam.Slide(Vec3{0, 2, 0})
	assertVec3(t, Vec3{0, 2, 5}, cam.Eye())
}

func TestCameraViewProjectionCache(t *testing.T) {
	cam := NewCamera(testProjection())
	cam.LookAtFrom(Vec3{0, 0, 5}, Vec3Zero, Vec3Up)

	vp := cam.ViewProjection()
	assert.Equal(t, cam.ProjectionMatrix().Mul(cam.ViewMatrix()), vp)
	assert.Equal(t, vp, cam.ViewProjection())

	cam.Slide(Vec3{1, 0, 0})
	assert.NotEqual(t, vp, cam.ViewProjection())
	assert.Equal(t, cam.ProjectionMatrix().Mul(cam.ViewMatrix()), cam.ViewProjection())

	cam.Projection = Perspective(math.Pi/3, 1, 1, 50)
	assert.Equal(t, cam.ProjectionMatrix().Mul(cam.ViewMatrix()), cam.ViewProjection())
}

func TestCameraWorldToNDC(t *testing.T) {
	cam := NewCamera(testProjection())
	cam.LookAtFrom(Vec3{0, 0, 5}, Vec3Zero, Vec3Up)

	ndc, ok := cam.WorldToNDC(Vec3Zero)
	require.True(t, ok)
	assert.InDelta(t, 0, ndc.X, epsilon)
	assert.InDelta(t, 0, ndc.Y, epsilon)
	assert.True(t, ndc.Z > -1 && ndc.Z < 1)

	_, ok = cam.WorldToNDC(Vec3{1, 0, 5})
	assert.False(t, ok)
}

func TestCameraGlideTo(t *testing.T) {
	tests := []struct {
		name string
		fn   ease.TweenFunc
		half float64
	}{
		{"linear", nil, 5},
		{"out quad", ease.OutQuad, 7.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(testProjection())
			cam.GlideTo(Vec3{10, 0, -4}, 1, tt.fn)
			require.True(t, cam.Gliding())

			cam.Update(0.5)
			assert.InDelta(t, tt.half, cam.Eye().X, 1e-4)
			assert.True(t, cam.Gliding())

			cam.Update(0.6)
			assert.InDelta(t, 10, cam.Eye().X, 1e-4)
			assert.InDelta(t, -4, cam.Eye().Z, 1e-4)
			assert.False(t, cam.Gliding())
		})
	}
}

func TestCameraMoveToCancelsGlide(t *testing.T) {
	cam := NewCamera(testProjection())
	cam.GlideTo(Vec3{10, 0, 0}, 1, nil)
	cam.MoveTo(Vec3{1, 2, 3})
	assert.False(t, cam.Gliding())
	cam.Update(0.5)
	assert.Equal(t, Vec3{1, 2, 3}, cam.Eye())
}

func TestFPSCameraInitialAngles(t *testing.T) {
	f := NewFPSCamera(testProjection(), Vec3Zero, Vec3Forward, Vec3Up)
	assert.InDelta(t, 0, f.Yaw, epsilon)
	assert.InDelta(t, 0, f.Pitch, epsilon)

	f = NewFPSCamera(testProjection(), Vec3{0, 5, 0}, Vec3{10, 5, 0}, Vec3Up)
	assert.InDelta(t, math.Pi/2, f.Yaw, epsilon)

	// Looking down gives a positive pitch.
	f = NewFPSCamera(testProjection(), Vec3{0, 5, 0}, Vec3{0, 0, 5}, Vec3Up)
	assert.InDelta(t, math.Pi/4, f.Pitch, epsilon)
}

func TestFPSCameraMoveVector(t *testing.T) {
	f := NewFPSCamera(testProjection(), Vec3Zero, Vec3Forward, Vec3Up)
	tests := []struct {
		name string
		keys KeySet
		want Vec3
	}{
		{"none", 0, Vec3Zero},
		{"forward", Keys(KeyW), Vec3Forward},
		{"back", Keys(KeyS), Vec3Backward},
		{"strafe left", Keys(KeyA), Vec3Right},
		{"strafe right", Keys(KeyD), Vec3Left},
		{"up", Keys(KeyShift), Vec3Up},
		{"down", Keys(KeyCtrl), Vec3Down},
		{"cancel", Keys(KeyW, KeyS), Vec3Zero},
		{"diagonal", Keys(KeyW, KeyA), Vec3{1, 0, 1}.Normalized()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec3(t, tt.want, f.MoveVector(FrameInput{Keys: tt.keys}))
		})
	}

	f.Yaw = math.Pi / 2
	assertVec3(t, Vec3Right, f.MoveVector(FrameInput{Keys: Keys(KeyW)}))
}

func TestFPSCameraMove(t *testing.T) {
	f := NewFPSCamera(testProjection(), Vec3Zero, Vec3Forward, Vec3Up)
	f.Update(1, FrameInput{Keys: Keys(KeyW)})
	assertVec3(t, Vec3{0, 0, 5}, f.Camera().Eye())

	f.Update(0.5, FrameInput{Keys: Keys(KeyShift)})
	assertVec3(t, Vec3{0, 2.5, 5}, f.Camera().Eye())
}

func TestFPSCameraTurnFollowsPointer(t *testing.T) {
	f := NewFPSCamera(testProjection(), Vec3Zero, Vec3Forward, Vec3Up)
	f.Update(0.01, FrameInput{PointerDelta: Vec2{100, 0}})

	assert.InDelta(t, -0.5, f.Yaw, epsilon)
	fwd := f.Camera().View.Forward()
	assertVec3(t, Vec3{math.Sin(-0.5), 0, math.Cos(-0.5)}, fwd)
	// Moving forward goes where the camera looks.
	assertVec3(t, fwd, f.MoveVector(FrameInput{Keys: Keys(KeyW)}))
}

func TestFPSCameraPitch(t *testing.T) {
	f := NewFPSCamera(testProjection(), Vec3Zero, Vec3Forward, Vec3Up)
	f.Update(0.01, FrameInput{PointerDelta: Vec2{0, 40}})

	assert.InDelta(t, 0.2, f.Pitch, epsilon)
	assert.Less(t, f.Camera().View.Forward().Y, 0.0)
}

func TestFPSCameraMaxPitch(t *testing.T) {
	f := NewFPSCamera(testProjection(), Vec3Zero, Vec3Forward, Vec3Up)
	f.MaxPitch = 0.5
	for range 10 {
		f.Update(0.1, FrameInput{PointerDelta: Vec2{0, 100}})
	}
	assert.InDelta(t, 0.5, f.Pitch, epsilon)
	assert.InDelta(t, -math.Sin(0.5), f.Camera().View.Forward().Y, epsilon)

	f.MaxPitch = 0
	f.Update(0.1, FrameInput{PointerDelta: Vec2{0, 20}})
	assert.InDelta(t, 1.5, f.Pitch, epsilon)
}

func TestFPSCameraNeverRolls(t *testing.T) {
	f := NewFPSCamera(testProjection(), Vec3Zero, Vec3Forward, Vec3Up)
	f.MaxPitch = 1.2
	in := &ScriptedInput{}
	in.Push(
		FrameInput{PointerDelta: Vec2{30, 10}},
		FrameInput{PointerDelta: Vec2{-80, 25}},
		FrameInput{PointerDelta: Vec2{45, -60}},
		FrameInput{PointerDelta: Vec2{200, 5}},
	)
	for in.Pending() > 0 {
		f.Update(0.016, in.Sample())
		u, v, n := f.Camera().Basis()
		assert.InDelta(t, 0, u.Y, epsilon)
		assert.InDelta(t, 1, u.Len(), epsilon)
		assert.InDelta(t, 0, u.Dot(v), epsilon)
		assert.InDelta(t, 0, n.Dot(v), epsilon)
	}
}

func TestFreeLookCameraSlide(t *testing.T) {
	tests := []struct {
		name string
		keys KeySet
		want Vec3
	}{
		{"up", Keys(KeyW), Vec3{0, 2, 5}},
		{"down", Keys(KeyS), Vec3{0, -2, 5}},
		{"left", Keys(KeyA), Vec3{-2, 0, 5}},
		{"right", Keys(KeyD), Vec3{2, 0, 5}},
		{"toward target", Keys(KeyQ), Vec3{0, 0, 3}},
		{"away from target", Keys(KeyE), Vec3{0, 0, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFreeLookCamera(testProjection(), Vec3{0, 0, 5}, Vec3Zero, Vec3Up)
			f.Update(0.1, FrameInput{Keys: tt.keys})
			assertVec3(t, tt.want, f.Camera().Eye())
		})
	}
}

func TestFreeLookCameraRotate(t *testing.T) {
	f := NewFreeLookCamera(testProjection(), Vec3{0, 0, 5}, Vec3Zero, Vec3Up)
	f.Update(1, FrameInput{Keys: Keys(KeyU)})
	_, v, _ := f.Camera().Basis()
	assert.InDelta(t, math.Cos(1), v.Y, epsilon)

	f.Update(1, FrameInput{Keys: Keys(KeyI, KeyJ)})
	u, v, n := f.Camera().Basis()
	assert.InDelta(t, 0, u.Dot(v), epsilon)
	assert.InDelta(t, 0, u.Dot(n), epsilon)
	assertVec3(t, n, u.Cross(v))
	assert.Equal(t, Vec3{0, 0, 5}, f.Camera().Eye())
}

func straightPath(t *testing.T, mode LoopMode) *BezierPath {
	t.Helper()
	path, err := NewBezierPath([]BezierPoint{
		{Position: Vec3Zero, Handle: Vec3Forward},
		{Position: Vec3{0, 0, 10}, Handle: Vec3Backward},
	}, mode)
	require.NoError(t, err)
	return path
}

func TestRailCameraFollowsPath(t *testing.T) {
	r := NewRailCamera(testProjection(), straightPath(t, LoopNone), 1)
	assert.Equal(t, Vec3Zero, r.Camera().Eye())
	assertVec3(t, Vec3Forward, r.Camera().View.Forward())

	r.Update(0.5, FrameInput{})
	assertVec3(t, Vec3{0, 0, 5}, r.Camera().Eye())
	assertVec3(t, Vec3Forward, r.Camera().View.Forward())

	r.Update(2, FrameInput{})
	assert.True(t, r.Path.Done())
	assertVec3(t, Vec3{0, 0, 10}, r.Camera().Eye())

	r.Update(1, FrameInput{})
	assertVec3(t, Vec3{0, 0, 10}, r.Camera().Eye())
}

func TestRailCameraTarget(t *testing.T) {
	r := NewRailCamera(testProjection(), straightPath(t, LoopBounce), 2)
	target := Vec3{10, 0, 5}
	r.Target = &target
	r.Update(0.25, FrameInput{})
	assertVec3(t, Vec3{0, 0, 5}, r.Camera().Eye())
	assertVec3(t, Vec3Right, r.Camera().View.Forward())
}
