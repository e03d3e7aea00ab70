package oven

// Narrow-phase tests. Every test returns the contact normal pointing from
// the first shape toward the second, and false when the shapes do not touch.

// narrowFunc tests two shapes of known kinds.
type narrowFunc func(a, b Shape) (Vec2, bool)

// narrowPhase is indexed by [a.Kind][b.Kind]. Every cell is filled, so
// Collide has a rule for every pair of kinds.
var narrowPhase = [shapeKindCount][shapeKindCount]narrowFunc{
	ShapeAABB: {
		ShapeAABB:   func(a, b Shape) (Vec2, bool) { return AABBAABB(a.Box, b.Box) },
		ShapeCircle: func(a, b Shape) (Vec2, bool) { return AABBCircle(a.Box, b.Center, b.Radius) },
		ShapeLine:   func(a, b Shape) (Vec2, bool) { return AABBLine(a.Box, b.P1, b.P2) },
	},
	ShapeCircle: {
		ShapeAABB:   swapped(func(a, b Shape) (Vec2, bool) { return AABBCircle(a.Box, b.Center, b.Radius) }),
		ShapeCircle: func(a, b Shape) (Vec2, bool) { return CircleCircle(a.Center, a.Radius, b.Center, b.Radius) },
		ShapeLine:   func(a, b Shape) (Vec2, bool) { return CircleLine(a.Center, a.Radius, b.P1, b.P2) },
	},
	ShapeLine: {
		ShapeAABB:   swapped(func(a, b Shape) (Vec2, bool) { return AABBLine(a.Box, b.P1, b.P2) }),
		ShapeCircle: swapped(func(a, b Shape) (Vec2, bool) { return CircleLine(a.Center, a.Radius, b.P1, b.P2) }),
		ShapeLine:   func(a, b Shape) (Vec2, bool) { return LineLine(a.P1, a.P2, b.P1, b.P2) },
	},
}

// swapped adapts a test written for (b, a) to be called as (a, b).
func swapped(f narrowFunc) narrowFunc {
	return func(a, b Shape) (Vec2, bool) {
		n, ok := f(b, a)
		return n.Neg(), ok
	}
}

// Collide runs the narrow-phase test for any pair of shapes. Shapes with an
// out-of-range Kind never collide.
func Collide(a, b Shape) (Vec2, bool) {
	if a.Kind >= shapeKindCount || b.Kind >= shapeKindCount {
		return Vec2{}, false
	}
	return narrowPhase[a.Kind][b.Kind](a, b)
}

// AABBAABB tests two boxes. The normal is the side of b1 closest to the
// center of the overlap.
func AABBAABB(b1, b2 AABB) (Vec2, bool) {
	inter, ok := b1.Intersection(b2)
	if !ok {
		return Vec2{}, false
	}
	return b1.ClosestSideNormal(inter.Center()), true
}

// AABBCircle tests a box against a circle. The normal is the side of the box
// closest to the circle's center.
func AABBCircle(box AABB, center Vec2, radius float64) (Vec2, bool) {
	if !box.Intersects(AABBFromCircle(center, radius)) {
		return Vec2{}, false
	}
	if !box.ContainsPoint(center) && box.ClosestPoint(center).DistanceTo(center) > radius {
		return Vec2{}, false
	}
	return box.ClosestSideNormal(center), true
}

// CircleCircle tests two circles. The normal points from c1 toward c2;
// concentric circles report Vec2Right.
func CircleCircle(c1 Vec2, r1 float64, c2 Vec2, r2 float64) (Vec2, bool) {
	sum := r1 + r2
	if c1.DistanceSqTo(c2) > sum*sum {
		return Vec2{}, false
	}
	n := c2.Sub(c1).Normalized()
	if n.IsZero() {
		n = Vec2Right
	}
	return n, true
}

// CircleLine tests a circle against the segment p1-p2 using the distance
// from the center to the segment. The normal points from the center toward
// the closest point on the segment.
func CircleLine(center Vec2, radius float64, p1, p2 Vec2) (Vec2, bool) {
	closest := center.PointLineProjection(p1, p2)
	if closest.DistanceSqTo(center) > radius*radius {
		return Vec2{}, false
	}
	n := closest.Sub(center).Normalized()
	if n.IsZero() {
		n = p2.Sub(p1).Orthogonal().Normalized()
	}
	if n.IsZero() {
		n = Vec2Right
	}
	return n, true
}

// SegmentsIntersect reports whether segments p1-p2 and p3-p4 share a point.
// Parallel segments intersect only when collinear with overlapping extents.
func SegmentsIntersect(p1, p2, p3, p4 Vec2) bool {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	p13 := p3.Sub(p1)
	denom := d1.Cross(d2)

	if denom == 0 {
		if p13.Cross(d1) != 0 || p13.Cross(d2) != 0 {
			return false
		}
		dd := d1.Dot(d1)
		if dd == 0 {
			return p1.PointLineDistance(p3, p4) == 0
		}
		t0 := p13.Dot(d1) / dd
		t1 := t0 + d2.Dot(d1)/dd
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		return t0 <= 1 && t1 >= 0
	}

	t := p13.Cross(d2) / denom
	u := p13.Cross(d1) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// LineLine tests two segments. The normal is perpendicular to the first
// segment and faces the second one; for collinear overlap it runs along the
// line from the first midpoint to the second.
func LineLine(p1, p2, p3, p4 Vec2) (Vec2, bool) {
	if !SegmentsIntersect(p1, p2, p3, p4) {
		return Vec2{}, false
	}
	d1 := p2.Sub(p1)
	toB := p3.Add(p4).Scale(0.5).Sub(p1.Add(p2).Scale(0.5))

	var n Vec2
	if d1.Cross(p4.Sub(p3)) == 0 {
		n = toB.Normalized()
	}
	if n.IsZero() {
		n = d1.Orthogonal().Normalized()
		if n.Dot(toB) < 0 {
			n = n.Neg()
		}
	}
	if n.IsZero() {
		n = Vec2Right
	}
	return n, true
}

// AABBLine tests a box against the segment p1-p2 by clipping the segment to
// the box. The normal is the side of the box closest to the middle of the
// clipped part.
func AABBLine(box AABB, p1, p2 Vec2) (Vec2, bool) {
	a, b, ok := clipSegment(box, p1, p2)
	if !ok {
		return Vec2{}, false
	}
	return box.ClosestSideNormal(a.Add(b).Scale(0.5)), true
}

// clipSegment clips p1-p2 to box (Liang-Barsky).
func clipSegment(box AABB, p1, p2 Vec2) (Vec2, Vec2, bool) {
	br := box.BR()
	d := p2.Sub(p1)
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{p1.X - box.TL.X, br.X - p1.X, p1.Y - box.TL.Y, br.Y - p1.Y}

	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return Vec2{}, Vec2{}, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return Vec2{}, Vec2{}, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return Vec2{}, Vec2{}, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return p1.Add(d.Scale(t0)), p1.Add(d.Scale(t1)), true
}
