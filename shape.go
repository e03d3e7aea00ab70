package oven

// ShapeKind distinguishes the geometry carried by a Shape.
type ShapeKind uint8

const (
	ShapeAABB   ShapeKind = iota // axis-aligned box in Box
	ShapeCircle                  // circle at Center with Radius
	ShapeLine                    // segment from P1 to P2

	shapeKindCount
)

// String returns the kind's name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeAABB:
		return "aabb"
	case ShapeCircle:
		return "circle"
	case ShapeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Shape is a closed union of the collision primitives. Only the fields for
// Kind are meaningful; use the typed constructors.
type Shape struct {
	Kind ShapeKind

	Box AABB // ShapeAABB

	Center Vec2 // ShapeCircle
	Radius float64

	P1, P2 Vec2 // ShapeLine
}

// BoxShape returns an AABB shape.
func BoxShape(b AABB) Shape { return Shape{Kind: ShapeAABB, Box: b} }

// CircleShape returns a circle shape. Negative radii are clamped to zero.
func CircleShape(center Vec2, radius float64) Shape {
	if radius < 0 {
		radius = 0
	}
	return Shape{Kind: ShapeCircle, Center: center, Radius: radius}
}

// LineShape returns a segment shape.
func LineShape(p1, p2 Vec2) Shape { return Shape{Kind: ShapeLine, P1: p1, P2: p2} }

// Bounds returns the shape's bounding box.
func (s Shape) Bounds() AABB {
	switch s.Kind {
	case ShapeAABB:
		return s.Box
	case ShapeCircle:
		return AABBFromCircle(s.Center, s.Radius)
	case ShapeLine:
		return AABBFromLine(s.P1, s.P2)
	}
	return AABB{}
}

// Translated returns the shape moved by offset.
func (s Shape) Translated(offset Vec2) Shape {
	switch s.Kind {
	case ShapeAABB:
		s.Box = s.Box.MoveBy(offset)
	case ShapeCircle:
		s.Center = s.Center.Add(offset)
	case ShapeLine:
		s.P1 = s.P1.Add(offset)
		s.P2 = s.P2.Add(offset)
	}
	return s
}
