package oven

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4×4 matrix stored row-major: element (row r, column c) is at
// index r*4+c. Vectors are columns, so transforms compose right to left.
//
//	| 0  1  2  3 |
//	| 4  5  6  7 |
//	| 8  9 10 11 |
//	|12 13 14 15 |
type Mat4 [16]float64

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix that moves points by t.
func Translation(t Vec3) Mat4 {
	m := Identity4()
	m[3], m[7], m[11] = t.X, t.Y, t.Z
	return m
}

// Scaling returns a matrix that scales along each axis by s.
func Scaling(s Vec3) Mat4 {
	m := Identity4()
	m[0], m[5], m[10] = s.X, s.Y, s.Z
	return m
}

// RotationX returns a rotation of angle radians about the X axis.
func RotationX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation of angle radians about the Y axis.
func RotationY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation of angle radians about the Z axis.
func RotationZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4]*o[c] + m[r*4+1]*o[4+c] + m[r*4+2]*o[8+c] + m[r*4+3]*o[12+c]
		}
	}
	return out
}

// MulVec4 applies m to the homogeneous column vector (x, y, z, w).
func (m Mat4) MulVec4(x, y, z, w float64) [4]float64 {
	return [4]float64{
		m[0]*x + m[1]*y + m[2]*z + m[3]*w,
		m[4]*x + m[5]*y + m[6]*z + m[7]*w,
		m[8]*x + m[9]*y + m[10]*z + m[11]*w,
		m[12]*x + m[13]*y + m[14]*z + m[15]*w,
	}
}

// TransformPoint applies m to p with w = 1 and returns the xyz part without
// a perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	r := m.MulVec4(p.X, p.Y, p.Z, 1)
	return Vec3{r[0], r[1], r[2]}
}

// Project applies m to p with w = 1 and performs the perspective divide.
// ok is false when the resulting w is zero.
func (m Mat4) Project(p Vec3) (ndc Vec3, ok bool) {
	r := m.MulVec4(p.X, p.Y, p.Z, 1)
	if r[3] == 0 {
		return Vec3{}, false
	}
	return Vec3{r[0] / r[3], r[1] / r[3], r[2] / r[3]}, true
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// ApproxEqual reports whether every element of m is within eps of o.
func (m Mat4) ApproxEqual(o Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// Float32 returns the row-major elements narrowed to float32 for upload.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// Mgl converts m to a column-major mathgl matrix.
func (m Mat4) Mgl() mgl64.Mat4 {
	return mgl64.Mat4(m.Transpose())
}

// Mat4FromMgl converts a column-major mathgl matrix to a Mat4.
func Mat4FromMgl(m mgl64.Mat4) Mat4 {
	return Mat4(m).Transpose()
}
