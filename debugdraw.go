package oven

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug outline colors.
var (
	DebugColorEnabled     = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	DebugColorReceiveOnly = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	DebugColorContact     = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	DebugColorBounds      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// DebugDrawColliders outlines every registered collider on screen. view is
// the region of the collision plane mapped onto the whole screen; colliders
// touching something this frame are drawn in DebugColorContact, and each
// contact normal is drawn from the collider's center.
func DebugDrawColliders(screen *ebiten.Image, m *CollisionManager, view AABB) {
	if view.IsEmpty() {
		return
	}
	b := screen.Bounds()
	sx := float64(b.Dx()) / view.Size.X
	sy := float64(b.Dy()) / view.Size.Y
	toScreen := func(p Vec2) (float32, float32) {
		return float32((p.X - view.TL.X) * sx), float32((p.Y - view.TL.Y) * sy)
	}

	touching := make(map[*Collider][]Vec2)
	for _, c := range m.LastCollisions() {
		touching[c.A] = append(touching[c.A], c.Normal)
	}

	if bounds, ok := m.WorldBounds(); ok {
		x, y := toScreen(bounds.TL)
		vector.StrokeRect(screen, x, y, float32(bounds.Size.X*sx), float32(bounds.Size.Y*sy), 1, DebugColorBounds, false)
	}

	for _, c := range m.Colliders() {
		shape, mode := c.resolve(m.table)
		if mode == CollisionDisabled {
			continue
		}
		clr := color.Color(DebugColorEnabled)
		if mode == CollisionReceiveOnly {
			clr = DebugColorReceiveOnly
		}
		normals, hit := touching[c]
		if hit {
			clr = DebugColorContact
		}

		switch shape.Kind {
		case ShapeAABB:
			x, y := toScreen(shape.Box.TL)
			vector.StrokeRect(screen, x, y, float32(shape.Box.Size.X*sx), float32(shape.Box.Size.Y*sy), 1, clr, false)
		case ShapeCircle:
			x, y := toScreen(shape.Center)
			vector.StrokeCircle(screen, x, y, float32(shape.Radius*sx), 1, clr, true)
		case ShapeLine:
			x0, y0 := toScreen(shape.P1)
			x1, y1 := toScreen(shape.P2)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
		}

		center := shape.Bounds().Center()
		for _, n := range normals {
			x0, y0 := toScreen(center)
			x1, y1 := toScreen(center.Add(n.Scale(16 / sx)))
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, DebugColorContact, true)
		}
	}
}
