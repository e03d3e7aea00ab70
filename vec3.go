package oven

import "math"

// Vec3 is a 3D vector. Like Vec2 it is a value type.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Named 3D vectors. Forward is +Z.
var (
	Vec3Zero     = Vec3{0, 0, 0}
	Vec3One      = Vec3{1, 1, 1}
	Vec3Up       = Vec3{0, 1, 0}
	Vec3Down     = Vec3{0, -1, 0}
	Vec3Left     = Vec3{-1, 0, 0}
	Vec3Right    = Vec3{1, 0, 0}
	Vec3Forward  = Vec3{0, 0, 1}
	Vec3Backward = Vec3{0, 0, -1}
)

// Vec3FromVec2 lifts a 2D vector into the XY plane.
func Vec3FromVec2(v Vec2) Vec3 { return Vec3{v.X, v.Y, 0} }

// Vec3FromSpherical converts spherical coordinates (azimuth theta, polar phi)
// to a vector. phi is measured from +Z.
func Vec3FromSpherical(theta, phi, radius float64) Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return Vec3{radius * sp * ct, radius * sp * st, radius * cp}
}

// Spherical returns (theta, phi, radius) for v. The zero vector returns all
// zeros.
func (v Vec3) Spherical() (theta, phi, radius float64) {
	radius = v.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	return math.Atan2(v.Y, v.X), math.Acos(clamp(v.Z/radius, -1, 1)), radius
}

// Vec3FromCylindrical converts cylindrical coordinates to a vector with the
// cylinder axis along Z.
func Vec3FromCylindrical(theta, radius, height float64) Vec3 {
	sin, cos := math.Sincos(theta)
	return Vec3{radius * cos, radius * sin, height}
}

func (v Vec3) Add(o Vec3) Vec3          { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3          { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(f float64) Vec3     { return Vec3{v.X * f, v.Y * f, v.Z * f} }
func (v Vec3) Mul(o Vec3) Vec3          { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Div(o Vec3) Vec3          { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }
func (v Vec3) DivScalar(f float64) Vec3 { return Vec3{v.X / f, v.Y / f, v.Z / f} }
func (v Vec3) Neg() Vec3                { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Abs() Vec3                { return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }
func (v Vec3) IsZero() bool             { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// XY, XZ and ZY drop one component.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }
func (v Vec3) ZY() Vec2 { return Vec2{v.Z, v.Y} }

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LenSq() float64 { return v.Dot(v) }
func (v Vec3) Len() float64   { return math.Sqrt(v.LenSq()) }

// AngleWith returns the unsigned angle between v and o in radians.
func (v Vec3) AngleWith(o Vec3) float64 {
	l := v.Len() * o.Len()
	if l == 0 {
		return 0
	}
	return math.Acos(clamp(v.Dot(o)/l, -1, 1))
}

// Normalized returns v at unit length; the zero vector stays zero.
func (v Vec3) Normalized() Vec3 { return v.ScaleToLength(1) }

// ScaleToLength returns v rescaled to length l. The zero vector is returned
// unchanged.
func (v Vec3) ScaleToLength(l float64) Vec3 {
	cur := v.Len()
	if cur == 0 {
		return v
	}
	return v.Scale(l / cur)
}

// ClampLength returns v shortened to at most length l.
func (v Vec3) ClampLength(l float64) Vec3 {
	if v.LenSq() <= l*l {
		return v
	}
	return v.ScaleToLength(l)
}

// Clamped clamps each component of v into [lo, hi].
func (v Vec3) Clamped(lo, hi Vec3) Vec3 {
	return Vec3{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y), clamp(v.Z, lo.Z, hi.Z)}
}

// Rotate rotates v around axis by angle radians using Rodrigues' formula.
// A zero axis leaves v unchanged.
func (v Vec3) Rotate(axis Vec3, angle float64) Vec3 {
	k := axis.Normalized()
	if k.IsZero() {
		return v
	}
	sin, cos := math.Sincos(angle)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// RotateWithMatrix applies the upper-left 3×3 of m to v.
func (v Vec3) RotateWithMatrix(m Mat4) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Reflected mirrors v about the plane whose normal is n.
func (v Vec3) Reflected(n Vec3) Vec3 {
	n = n.Normalized()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Projected returns the projection of v onto o, or zero if o is zero.
func (v Vec3) Projected(o Vec3) Vec3 {
	l := o.LenSq()
	if l == 0 {
		return Vec3Zero
	}
	return o.Scale(v.Dot(o) / l)
}

// ProjectOnPlane removes the component of v along the plane normal n.
func (v Vec3) ProjectOnPlane(n Vec3) Vec3 {
	n = n.Normalized()
	return v.Sub(n.Scale(v.Dot(n)))
}

// DistanceToPlane returns the unsigned distance from v to the plane through
// point with the given normal.
func (v Vec3) DistanceToPlane(normal, point Vec3) float64 {
	normal = normal.Normalized()
	return math.Abs(v.Dot(normal) - point.Dot(normal))
}

// Lerp linearly interpolates from v toward target. t is clamped to [0, 1].
func (v Vec3) Lerp(target Vec3, t float64) Vec3 {
	t = clamp(t, 0, 1)
	return target.Scale(t).Add(v.Scale(1 - t))
}

func (v Vec3) DistanceSqTo(o Vec3) float64 { return v.Sub(o).LenSq() }
func (v Vec3) DistanceTo(o Vec3) float64   { return math.Sqrt(v.DistanceSqTo(o)) }

// DirectionTo returns the unit vector from v toward o, or zero if they
// coincide.
func (v Vec3) DirectionTo(o Vec3) Vec3 { return o.Sub(v).Normalized() }

// PointLineProjection returns the point on the segment p1-p2 closest to v.
func (v Vec3) PointLineProjection(p1, p2 Vec3) Vec3 {
	d := p2.Sub(p1)
	l := d.LenSq()
	if l == 0 {
		return p1
	}
	t := clamp(v.Sub(p1).Dot(d)/l, 0, 1)
	return p1.Add(d.Scale(t))
}

// PointLineDistance returns the distance from v to the segment p1-p2.
func (v Vec3) PointLineDistance(p1, p2 Vec3) float64 {
	return v.DistanceTo(v.PointLineProjection(p1, p2))
}
