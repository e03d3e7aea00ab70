package oven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySet(t *testing.T) {
	s := Keys(KeyW, KeyShift)
	assert.True(t, s.Has(KeyW))
	assert.True(t, s.Has(KeyShift))
	assert.False(t, s.Has(KeyA))

	s = s.With(KeyA).Without(KeyW)
	assert.True(t, s.Has(KeyA))
	assert.False(t, s.Has(KeyW))

	assert.Equal(t, s, s.With(keyCount))
	assert.False(t, s.Has(keyCount))
}

func TestFrameInputAxis(t *testing.T) {
	tests := []struct {
		keys KeySet
		want float64
	}{
		{0, 0},
		{Keys(KeyI), 1},
		{Keys(KeyK), -1},
		{Keys(KeyI, KeyK), 0},
	}
	for _, tt := range tests {
		in := FrameInput{Keys: tt.keys}
		assert.Equal(t, tt.want, in.Axis(KeyI, KeyK))
	}
}

func TestScriptedInput(t *testing.T) {
	var in ScriptedInput
	in.Hold(Keys(KeyW), 2)
	in.Drag(Vec2{30, -9}, 3)
	in.Push(FrameInput{Keys: Keys(KeyEscape)})
	require.Equal(t, 6, in.Pending())

	assert.True(t, in.Sample().Pressed(KeyW))
	assert.True(t, in.Sample().Pressed(KeyW))
	var total Vec2
	for range 3 {
		f := in.Sample()
		assert.Zero(t, f.Keys)
		total = total.Add(f.PointerDelta)
	}
	assertVec2(t, Vec2{30, -9}, total)
	assert.True(t, in.Sample().Pressed(KeyEscape))

	assert.Zero(t, in.Pending())
	assert.Equal(t, FrameInput{}, in.Sample())
}

func TestScriptedInputDragMinimumFrame(t *testing.T) {
	var in ScriptedInput
	in.Drag(Vec2{5, 5}, 0)
	require.Equal(t, 1, in.Pending())
	assert.Equal(t, Vec2{5, 5}, in.Sample().PointerDelta)
}

func TestParseKey(t *testing.T) {
	k, ok := ParseKey("Shift")
	assert.True(t, ok)
	assert.Equal(t, KeyShift, k)

	_, ok = ParseKey("f13")
	assert.False(t, ok)
}

func TestLoadInputScript(t *testing.T) {
	in, err := LoadInputScript([]byte(`
steps:
  - {action: hold, keys: [w, shift], frames: 2}
  - {action: drag, dx: 10, dy: 4, frames: 2}
  - {action: wait}
`))
	require.NoError(t, err)
	require.Equal(t, 5, in.Pending())

	assert.Equal(t, Keys(KeyW, KeyShift), in.Sample().Keys)
	in.Sample()
	assert.Equal(t, Vec2{5, 2}, in.Sample().PointerDelta)
	in.Sample()
	assert.Equal(t, FrameInput{}, in.Sample())
}

func TestLoadInputScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no steps", "steps: []"},
		{"unknown key", "steps: [{action: hold, keys: [hyper]}]"},
		{"unknown action", "steps: [{action: jump}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInputScript([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}

	_, err := LoadInputScript([]byte("steps: {"))
	assert.Error(t, err)
}

func TestScriptDrivesFPSCamera(t *testing.T) {
	in, err := LoadInputScript([]byte(`
steps:
  - {action: hold, keys: [w], frames: 10}
`))
	require.NoError(t, err)

	f := NewFPSCamera(testProjection(), Vec3Zero, Vec3Forward, Vec3Up)
	for in.Pending() > 0 {
		f.Update(0.1, in.Sample())
	}
	assertVec3(t, Vec3{0, 0, 5}, f.Camera().Eye())
}
