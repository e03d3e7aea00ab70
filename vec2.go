package oven

import "math"

const (
	tau      = 2 * math.Pi
	sqrtHalf = math.Sqrt2 / 2
)

// Vec2 is a 2D vector used for positions, offsets, sizes, normals and
// directions. Vec2 is a value type: every operation returns a new vector and
// never modifies its receiver.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Named 2D vectors. These are plain values; copying one never aliases another.
var (
	Vec2Zero      = Vec2{0, 0}
	Vec2One       = Vec2{1, 1}
	Vec2Up        = Vec2{0, 1}
	Vec2Down      = Vec2{0, -1}
	Vec2Left      = Vec2{-1, 0}
	Vec2Right     = Vec2{1, 0}
	Vec2UpLeft    = Vec2{-sqrtHalf, sqrtHalf}
	Vec2UpRight   = Vec2{sqrtHalf, sqrtHalf}
	Vec2DownLeft  = Vec2{-sqrtHalf, -sqrtHalf}
	Vec2DownRight = Vec2{sqrtHalf, -sqrtHalf}
)

// Vec2FromPolar returns the vector at the given angle (radians, counter-
// clockwise from +X) and radius.
func Vec2FromPolar(angle, radius float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{radius * cos, radius * sin}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Mul returns the component-wise (Hadamard) product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient of v and o.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// DivScalar returns v / f.
func (v Vec2) DivScalar(f float64) Vec2 { return Vec2{v.X / f, v.Y / f} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Abs returns the component-wise absolute value of v.
func (v Vec2) Abs() Vec2 { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the signed area of the parallelogram spanned by v and o.
// It is positive when o is counter-clockwise from v.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// Angle returns the angle of v in radians, measured from +X.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleWith returns the unsigned angle between v and o in radians.
// Returns 0 if either vector has zero length.
func (v Vec2) AngleWith(o Vec2) float64 {
	l := v.Len() * o.Len()
	if l == 0 {
		return 0
	}
	return math.Acos(clamp(v.Dot(o)/l, -1, 1))
}

// Normalized returns v scaled to unit length. The zero vector normalizes to
// itself.
func (v Vec2) Normalized() Vec2 { return v.ScaleToLength(1) }

// ScaleToLength returns v rescaled to length l. The zero vector is returned
// unchanged.
func (v Vec2) ScaleToLength(l float64) Vec2 {
	cur := v.Len()
	if cur == 0 {
		return v
	}
	return v.Scale(l / cur)
}

// ClampLength returns v shortened to at most length l.
func (v Vec2) ClampLength(l float64) Vec2 {
	if v.LenSq() <= l*l {
		return v
	}
	return v.ScaleToLength(l)
}

// Clamped clamps each component of v into [lo, hi].
func (v Vec2) Clamped(lo, hi Vec2) Vec2 {
	return Vec2{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y)}
}

// Orthogonal returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Orthogonal() Vec2 { return Vec2{-v.Y, v.X} }

// Rotated returns v rotated counter-clockwise by angle radians. Multiples of
// a quarter turn are exact.
func (v Vec2) Rotated(angle float64) Vec2 {
	angle = math.Mod(angle, tau)
	if angle < 0 {
		angle += tau
	}
	switch angle {
	case 0:
		return v
	case tau / 4:
		return Vec2{-v.Y, v.X}
	case tau / 2:
		return Vec2{-v.X, -v.Y}
	case tau * 3 / 4:
		return Vec2{v.Y, -v.X}
	}
	sin, cos := math.Sincos(angle)
	return Vec2{cos*v.X - sin*v.Y, sin*v.X + cos*v.Y}
}

// Reflected mirrors v about the line whose normal is n: v - 2(v·n̂)n̂.
// A zero normal leaves v unchanged.
func (v Vec2) Reflected(n Vec2) Vec2 {
	n = n.Normalized()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Projected returns the projection of v onto o. Projecting onto the zero
// vector yields the zero vector.
func (v Vec2) Projected(o Vec2) Vec2 {
	l := o.LenSq()
	if l == 0 {
		return Vec2Zero
	}
	return o.Scale(v.Dot(o) / l)
}

// Lerp linearly interpolates from v toward target. t is clamped to [0, 1].
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	t = clamp(t, 0, 1)
	return target.Scale(t).Add(v.Scale(1 - t))
}

// DistanceSqTo returns the squared distance between v and o.
func (v Vec2) DistanceSqTo(o Vec2) float64 { return v.Sub(o).LenSq() }

// DistanceTo returns the distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 { return math.Sqrt(v.DistanceSqTo(o)) }

// PointLineProjection returns the point on the segment p1-p2 closest to v.
// When p1 == p2 the segment degenerates to p1.
func (v Vec2) PointLineProjection(p1, p2 Vec2) Vec2 {
	d := p2.Sub(p1)
	l := d.LenSq()
	if l == 0 {
		return p1
	}
	t := clamp(v.Sub(p1).Dot(d)/l, 0, 1)
	return p1.Add(d.Scale(t))
}

// PointLineDistance returns the distance from v to the segment p1-p2.
// When p1 == p2 this is the distance to p1.
func (v Vec2) PointLineDistance(p1, p2 Vec2) float64 {
	return v.DistanceTo(v.PointLineProjection(p1, p2))
}

// Snap rounds each component to the nearest multiple of step.
func (v Vec2) Snap(step float64) Vec2 {
	if step == 0 {
		return v
	}
	return Vec2{math.Round(v.X/step) * step, math.Round(v.Y/step) * step}
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}
