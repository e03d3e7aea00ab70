package oven

import (
	"errors"
	"fmt"
	"math"
)

// ErrBezierTooShort is returned when a path has fewer than two points.
var ErrBezierTooShort = errors.New("oven: bezier path needs at least 2 points")

// LoopMode selects what a BezierPath does when it reaches its last point.
type LoopMode uint8

const (
	LoopNone   LoopMode = iota // stop at the last point
	LoopRepeat                 // jump back to the first point
	LoopBounce                 // run the path backward, then forward again
)

// String returns the mode's name.
func (m LoopMode) String() string {
	switch m {
	case LoopNone:
		return "none"
	case LoopRepeat:
		return "loop"
	case LoopBounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// BezierPoint is a path vertex. Handle is a direction; the control point
// sits one unit from Position along it.
type BezierPoint struct {
	Position Vec3 `yaml:"position"`
	Handle   Vec3 `yaml:"handle"`
}

// handlePoint returns the absolute control point.
func (p BezierPoint) handlePoint() Vec3 {
	return p.Position.Add(p.Handle.Normalized())
}

// BezierPath is a chain of cubic Bézier segments through its points. Each
// segment after the first starts with the reflection of the previous
// segment's end handle, so the path is smooth at every interior point.
type BezierPath struct {
	Points []BezierPoint
	Mode   LoopMode

	segment int
	t       float64
	dir     float64
	done    bool
}

// NewBezierPath returns a path through points.
func NewBezierPath(points []BezierPoint, mode LoopMode) (*BezierPath, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("new bezier path with %d points: %w", len(points), ErrBezierTooShort)
	}
	return &BezierPath{Points: points, Mode: mode, dir: 1}, nil
}

// Segments returns the number of cubic segments.
func (b *BezierPath) Segments() int { return len(b.Points) - 1 }

// controls returns the four control points of segment i.
func (b *BezierPath) controls(i int) (p1, p2, p3, p4 Vec3) {
	start, end := b.Points[i], b.Points[i+1]
	p1, p2 = start.Position, start.handlePoint()
	if i != 0 {
		p2 = p1.Scale(2).Sub(p2)
	}
	return p1, p2, end.handlePoint(), end.Position
}

// Sample returns the position and unit tangent on segment i at t in [0, 1].
// t is clamped; i is clamped to the valid segments.
func (b *BezierPath) Sample(i int, t float64) (pos, tangent Vec3) {
	i = max(0, min(i, b.Segments()-1))
	t = clamp(t, 0, 1)
	p1, p2, p3, p4 := b.controls(i)

	u := 1 - t
	pos = p1.Scale(u * u * u).
		Add(p2.Scale(3 * u * u * t)).
		Add(p3.Scale(3 * u * t * t)).
		Add(p4.Scale(t * t * t))

	tangent = p2.Sub(p1).Scale(3 * u * u).
		Add(p3.Sub(p2).Scale(6 * u * t)).
		Add(p4.Sub(p3).Scale(3 * t * t)).
		Normalized()
	if tangent.IsZero() {
		tangent = p4.Sub(p1).Normalized()
	}
	return pos, tangent
}

// SegmentLength approximates the arc length of segment i with n chords.
func (b *BezierPath) SegmentLength(i, n int) float64 {
	if n < 1 {
		n = 1
	}
	last, _ := b.Sample(i, 0)
	var total float64
	for k := 1; k <= n; k++ {
		p, _ := b.Sample(i, float64(k)/float64(n))
		total += p.DistanceTo(last)
		last = p
	}
	return total
}

// Advance moves along the path by delta segments and returns the new
// position and the tangent in the direction of travel. Once a LoopNone path
// reaches its end it stays there and Done reports true. A NaN or infinite
// delta leaves the path where it is.
func (b *BezierPath) Advance(delta float64) (pos, tangent Vec3) {
	if b.dir == 0 {
		b.dir = 1
	}
	if u := float64(b.segment) + b.t + delta*b.dir; !b.done && !math.IsNaN(u) && !math.IsInf(u, 0) {
		b.wrap(u)
	}
	pos, tangent = b.Sample(b.segment, b.t)
	if b.dir < 0 {
		tangent = tangent.Neg()
	}
	return pos, tangent
}

// wrap applies the loop mode to u, a distance in segments from the first
// point, and stores the resulting segment and parameter.
func (b *BezierPath) wrap(u float64) {
	n := float64(b.Segments())
	if u < 0 || u > n {
		switch b.Mode {
		case LoopRepeat:
			u = math.Mod(u, n)
			if u < 0 {
				u += n
			}
		case LoopBounce:
			if math.Mod(math.Floor(u/n), 2) != 0 {
				b.dir = -b.dir
			}
			u = math.Mod(u, 2*n)
			if u < 0 {
				u += 2 * n
			}
			if u > n {
				u = 2*n - u
			}
		default:
			if u > n {
				b.done = true
			}
			u = clamp(u, 0, n)
		}
	}
	seg := min(int(u), b.Segments()-1)
	b.segment, b.t = seg, u-float64(seg)
}

// Position returns the current segment and parameter.
func (b *BezierPath) Position() (segment int, t float64) { return b.segment, b.t }

// Done reports whether a LoopNone path has reached its end.
func (b *BezierPath) Done() bool { return b.done }

// Reset returns to the start of the path, travelling forward.
func (b *BezierPath) Reset() {
	b.segment, b.t, b.dir, b.done = 0, 0, 1, false
}
