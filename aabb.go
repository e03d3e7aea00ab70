package oven

import "math"

// Side identifies one edge of an AABB. TL is the minimum corner, so SideTop
// is the edge at minimum Y and SideLeft the edge at minimum X.
type Side uint8

const (
	SideTop    Side = iota // edge at TL.Y
	SideLeft               // edge at TL.X
	SideBottom             // edge at BR().Y
	SideRight              // edge at BR().X
)

// String returns the side's name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideBottom:
		return "bottom"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// AABB is an axis-aligned box given by its minimum corner and a non-negative
// size. FlippedNormals marks a box used as the inner bound of a container:
// its side normals point inward instead of outward.
type AABB struct {
	TL             Vec2 `yaml:"tl"`
	Size           Vec2 `yaml:"size"`
	FlippedNormals bool `yaml:"flipped_normals"`
}

// NewAABB returns a box with the given corner and size.
func NewAABB(tl, size Vec2) AABB {
	return AABB{TL: tl, Size: size}
}

// AABBAtOrigin returns a box of the given size with its corner at the origin.
func AABBAtOrigin(size Vec2) AABB {
	return AABB{Size: size}
}

// AABBFromCircle returns the bounding box of a circle.
func AABBFromCircle(center Vec2, radius float64) AABB {
	return AABB{TL: center.Sub(Vec2{radius, radius}), Size: Vec2{2 * radius, 2 * radius}}
}

// AABBFromLine returns the bounding box of the segment p1-p2.
func AABBFromLine(p1, p2 Vec2) AABB {
	tl := Vec2{math.Min(p1.X, p2.X), math.Min(p1.Y, p2.Y)}
	br := Vec2{math.Max(p1.X, p2.X), math.Max(p1.Y, p2.Y)}
	return AABB{TL: tl, Size: br.Sub(tl)}
}

// BR returns the maximum corner.
func (b AABB) BR() Vec2 { return b.TL.Add(b.Size) }

// BL returns the corner at minimum X and maximum Y.
func (b AABB) BL() Vec2 { return Vec2{b.TL.X, b.TL.Y + b.Size.Y} }

// TR returns the corner at maximum X and minimum Y.
func (b AABB) TR() Vec2 { return Vec2{b.TL.X + b.Size.X, b.TL.Y} }

// Center returns the box's midpoint.
func (b AABB) Center() Vec2 { return b.TL.Add(b.Size.Scale(0.5)) }

// Area returns width * height.
func (b AABB) Area() float64 { return b.Size.X * b.Size.Y }

// Diagonal returns the length of the box's diagonal.
func (b AABB) Diagonal() float64 { return b.Size.Len() }

// IsEmpty reports whether the box has no interior.
func (b AABB) IsEmpty() bool { return b.Size.X <= 0 || b.Size.Y <= 0 }

// Centered returns a box of the same size centered on the origin.
func (b AABB) Centered() AABB {
	return AABB{TL: b.Size.Scale(-0.5), Size: b.Size, FlippedNormals: b.FlippedNormals}
}

// MoveBy returns the box translated by offset.
func (b AABB) MoveBy(offset Vec2) AABB {
	b.TL = b.TL.Add(offset)
	return b
}

// MoveTo returns the box moved so that its corner, or its center when
// moveCenter is true, sits at dest.
func (b AABB) MoveTo(dest Vec2, moveCenter bool) AABB {
	if moveCenter {
		return b.MoveBy(dest.Sub(b.Center()))
	}
	return b.MoveBy(dest.Sub(b.TL))
}

// ContainsPoint reports whether p lies inside the box. Points on an edge are
// inside.
func (b AABB) ContainsPoint(p Vec2) bool {
	br := b.BR()
	return p.X >= b.TL.X && p.X <= br.X && p.Y >= b.TL.Y && p.Y <= br.Y
}

// ContainsBox reports whether o lies entirely inside b.
func (b AABB) ContainsBox(o AABB) bool {
	return b.ContainsPoint(o.TL) && b.ContainsPoint(o.BR())
}

// Intersects reports whether b and o overlap. Boxes sharing only an edge
// intersect.
func (b AABB) Intersects(o AABB) bool {
	_, ok := b.Intersection(o)
	return ok
}

// ExpandTo returns the smallest box containing both b and p.
func (b AABB) ExpandTo(p Vec2) AABB {
	if b.ContainsPoint(p) {
		return b
	}
	br := b.BR()
	tl := Vec2{math.Min(b.TL.X, p.X), math.Min(b.TL.Y, p.Y)}
	br = Vec2{math.Max(br.X, p.X), math.Max(br.Y, p.Y)}
	return AABB{TL: tl, Size: br.Sub(tl), FlippedNormals: b.FlippedNormals}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	bbr, obr := b.BR(), o.BR()
	tl := Vec2{math.Min(b.TL.X, o.TL.X), math.Min(b.TL.Y, o.TL.Y)}
	br := Vec2{math.Max(bbr.X, obr.X), math.Max(bbr.Y, obr.Y)}
	return AABB{TL: tl, Size: br.Sub(tl), FlippedNormals: b.FlippedNormals}
}

// Intersection returns the overlap of b and o. ok is false when they do not
// touch. Touching edges yield a zero-width box.
func (b AABB) Intersection(o AABB) (AABB, bool) {
	bbr, obr := b.BR(), o.BR()
	tl := Vec2{math.Max(b.TL.X, o.TL.X), math.Max(b.TL.Y, o.TL.Y)}
	br := Vec2{math.Min(bbr.X, obr.X), math.Min(bbr.Y, obr.Y)}
	if tl.X > br.X || tl.Y > br.Y {
		return AABB{}, false
	}
	return AABB{TL: tl, Size: br.Sub(tl)}, true
}

// ClosestPoint returns the point of the box nearest to p.
func (b AABB) ClosestPoint(p Vec2) Vec2 {
	return p.Clamped(b.TL, b.BR())
}

// DistanceToSide returns the signed distance from p to the given side,
// positive when p is on the inner side of it.
func (b AABB) DistanceToSide(p Vec2, side Side) float64 {
	switch side {
	case SideTop:
		return p.Y - b.TL.Y
	case SideLeft:
		return p.X - b.TL.X
	case SideBottom:
		return b.TL.Y + b.Size.Y - p.Y
	case SideRight:
		return b.TL.X + b.Size.X - p.X
	}
	return 0
}

// ClosestSides returns every side at minimal distance from p. A point at the
// exact center returns all four sides.
func (b AABB) ClosestSides(p Vec2) []Side {
	if p == b.Center() {
		return []Side{SideTop, SideBottom, SideLeft, SideRight}
	}
	order := [4]Side{SideTop, SideBottom, SideRight, SideLeft}
	var dist [4]float64
	minDist := math.Inf(1)
	for i, s := range order {
		dist[i] = b.DistanceToSide(p, s)
		minDist = math.Min(minDist, dist[i])
	}
	out := make([]Side, 0, 2)
	for i, s := range order {
		if dist[i] == minDist {
			out = append(out, s)
		}
	}
	return out
}

// SideNormal returns the unit normal of side: outward, or inward when
// FlippedNormals is set.
func (b AABB) SideNormal(side Side) Vec2 {
	var n Vec2
	switch side {
	case SideTop:
		n = Vec2{0, -1}
	case SideLeft:
		n = Vec2{-1, 0}
	case SideBottom:
		n = Vec2{0, 1}
	case SideRight:
		n = Vec2{1, 0}
	}
	if b.FlippedNormals {
		n = n.Neg()
	}
	return n
}

// ClosestSideNormal averages the normals of the sides closest to p. When the
// tied normals cancel out, the first closest side wins.
func (b AABB) ClosestSideNormal(p Vec2) Vec2 {
	sides := b.ClosestSides(p)
	var sum Vec2
	for _, s := range sides {
		sum = sum.Add(b.SideNormal(s))
	}
	if n := sum.Normalized(); !n.IsZero() {
		return n
	}
	return b.SideNormal(sides[0])
}

// IsPointOnPerimeter reports whether p lies on one of the box's edge lines.
func (b AABB) IsPointOnPerimeter(p Vec2) bool {
	br := b.BR()
	return p.X == b.TL.X || p.X == br.X || p.Y == b.TL.Y || p.Y == br.Y
}

// NormalAt returns the surface normal at the perimeter point closest to p.
// At a corner the two side normals are averaged.
func (b AABB) NormalAt(p Vec2) Vec2 {
	if !b.IsPointOnPerimeter(p) {
		p = b.ClosestPoint(p)
	}
	return b.ClosestSideNormal(p)
}
