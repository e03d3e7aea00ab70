package oven

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Key identifies a key the controllers react to.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyU
	KeyO
	KeyShift
	KeyCtrl
	KeySpace
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	keyCount
)

// KeySet is a bitmask of pressed keys.
// Values can be combined with bitwise OR (e.g. KeySet(0).With(KeyW)).
type KeySet uint32

// Keys returns a set holding the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool { return k < keyCount && s&(1<<k) != 0 }

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

// Without returns the set with k removed.
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// FrameInput is the input sampled for one frame.
type FrameInput struct {
	Keys KeySet
	// PointerDelta is the pointer motion since the previous frame in pixels,
	// +Y pointing down the screen.
	PointerDelta Vec2
}

// Pressed reports whether k is held this frame.
func (in FrameInput) Pressed(k Key) bool { return in.Keys.Has(k) }

// Axis returns +1 when pos is held, -1 when neg is held and 0 when both or
// neither are.
func (in FrameInput) Axis(pos, neg Key) float64 {
	var v float64
	if in.Pressed(pos) {
		v++
	}
	if in.Pressed(neg) {
		v--
	}
	return v
}

// InputSource produces one FrameInput per frame.
type InputSource interface {
	Sample() FrameInput
}

// ebitenKeys maps each Key to the ebiten keys that press it.
var ebitenKeys = [keyCount][]ebiten.Key{
	KeyW:          {ebiten.KeyW},
	KeyA:          {ebiten.KeyA},
	KeyS:          {ebiten.KeyS},
	KeyD:          {ebiten.KeyD},
	KeyQ:          {ebiten.KeyQ},
	KeyE:          {ebiten.KeyE},
	KeyI:          {ebiten.KeyI},
	KeyJ:          {ebiten.KeyJ},
	KeyK:          {ebiten.KeyK},
	KeyL:          {ebiten.KeyL},
	KeyU:          {ebiten.KeyU},
	KeyO:          {ebiten.KeyO},
	KeyShift:      {ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	KeyCtrl:       {ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight},
	KeySpace:      {ebiten.KeySpace},
	KeyEscape:     {ebiten.KeyEscape},
	KeyArrowUp:    {ebiten.KeyArrowUp},
	KeyArrowDown:  {ebiten.KeyArrowDown},
	KeyArrowLeft:  {ebiten.KeyArrowLeft},
	KeyArrowRight: {ebiten.KeyArrowRight},
}

// EbitenInput samples the keyboard and cursor through ebiten. It must be
// sampled from the game's Update.
type EbitenInput struct {
	lastX, lastY int
	primed       bool
}

// Sample reads the current key state and the cursor motion since the last
// call. The first call reports no motion.
func (e *EbitenInput) Sample() FrameInput {
	var in FrameInput
	for k, keys := range ebitenKeys {
		for _, ek := range keys {
			if ebiten.IsKeyPressed(ek) {
				in.Keys = in.Keys.With(Key(k))
				break
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	if e.primed {
		in.PointerDelta = Vec2{float64(mx - e.lastX), float64(my - e.lastY)}
	}
	e.lastX, e.lastY = mx, my
	e.primed = true
	return in
}

// ScriptedInput replays queued frames, one per Sample, and then reports no
// input. Useful for driving a World without a window.
type ScriptedInput struct {
	queue []FrameInput
}

// Push queues frames to be returned by later Sample calls.
func (s *ScriptedInput) Push(frames ...FrameInput) {
	s.queue = append(s.queue, frames...)
}

// Hold queues the same keys for n frames with no pointer motion.
func (s *ScriptedInput) Hold(keys KeySet, n int) {
	for range n {
		s.queue = append(s.queue, FrameInput{Keys: keys})
	}
}

// Drag queues n frames whose pointer deltas add up to total.
func (s *ScriptedInput) Drag(total Vec2, n int) {
	if n < 1 {
		n = 1
	}
	step := total.DivScalar(float64(n))
	for range n {
		s.queue = append(s.queue, FrameInput{PointerDelta: step})
	}
}

// Pending returns how many queued frames remain.
func (s *ScriptedInput) Pending() int { return len(s.queue) }

// Sample pops the next queued frame.
func (s *ScriptedInput) Sample() FrameInput {
	if len(s.queue) == 0 {
		return FrameInput{}
	}
	in := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	return in
}
