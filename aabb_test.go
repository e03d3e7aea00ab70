package oven

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABBCorners(t *testing.T) {
	b := NewAABB(Vec2{1, 2}, Vec2{4, 6})
	assert.Equal(t, Vec2{5, 8}, b.BR())
	assert.Equal(t, Vec2{1, 8}, b.BL())
	assert.Equal(t, Vec2{5, 2}, b.TR())
	assert.Equal(t, Vec2{3, 5}, b.Center())
	assert.Equal(t, 24.0, b.Area())
	assert.InDelta(t, math.Sqrt(52), b.Diagonal(), epsilon)
	assert.False(t, b.IsEmpty())
	assert.True(t, AABBAtOrigin(Vec2{0, 3}).IsEmpty())
}

func TestAABBFromShapes(t *testing.T) {
	assert.Equal(t, NewAABB(Vec2{-1, 1}, Vec2{4, 4}), AABBFromCircle(Vec2{1, 3}, 2))
	assert.Equal(t, NewAABB(Vec2{-2, 1}, Vec2{5, 3}), AABBFromLine(Vec2{3, 1}, Vec2{-2, 4}))
}

func TestAABBMove(t *testing.T) {
	b := NewAABB(Vec2{0, 0}, Vec2{4, 2})
	assert.Equal(t, Vec2{1, 1}, b.MoveBy(Vec2{1, 1}).TL)
	assert.Equal(t, Vec2{10, 10}, b.MoveTo(Vec2{10, 10}, false).TL)
	assert.Equal(t, Vec2{10, 10}, b.MoveTo(Vec2{10, 10}, true).Center())
	assert.Equal(t, Vec2{-2, -1}, b.Centered().TL)
}

func TestAABBContains(t *testing.T) {
	b := NewAABB(Vec2{0, 0}, Vec2{10, 10})
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{5, 5}, true},
		{Vec2{0, 0}, true},
		{Vec2{10, 3}, true},
		{Vec2{10.001, 3}, false},
		{Vec2{-1, 5}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.ContainsPoint(tt.p), "%v", tt.p)
	}
	assert.True(t, b.ContainsBox(NewAABB(Vec2{1, 1}, Vec2{9, 9})))
	assert.False(t, b.ContainsBox(NewAABB(Vec2{1, 1}, Vec2{10, 1})))
}

func TestAABBIntersection(t *testing.T) {
	a := NewAABB(Vec2{0, 0}, Vec2{4, 4})
	tests := []struct {
		name string
		o    AABB
		want AABB
		ok   bool
	}{
		{"overlap", NewAABB(Vec2{2, 2}, Vec2{4, 4}), NewAABB(Vec2{2, 2}, Vec2{2, 2}), true},
		{"contained", NewAABB(Vec2{1, 1}, Vec2{1, 1}), NewAABB(Vec2{1, 1}, Vec2{1, 1}), true},
		{"touching edge", NewAABB(Vec2{4, 0}, Vec2{2, 2}), NewAABB(Vec2{4, 0}, Vec2{0, 2}), true},
		{"apart", NewAABB(Vec2{5, 5}, Vec2{1, 1}), AABB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.Intersection(tt.o)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, a.Intersects(tt.o))
			assert.Equal(t, tt.ok, tt.o.Intersects(a))
		})
	}
}

func TestAABBUnionExpand(t *testing.T) {
	a := NewAABB(Vec2{0, 0}, Vec2{2, 2})
	assert.Equal(t, NewAABB(Vec2{0, 0}, Vec2{5, 4}), a.Union(NewAABB(Vec2{3, 3}, Vec2{2, 1})))
	assert.Equal(t, NewAABB(Vec2{-1, 0}, Vec2{3, 3}), a.ExpandTo(Vec2{-1, 3}))
	assert.Equal(t, a, a.ExpandTo(Vec2{1, 1}))
}

func TestAABBClosestSides(t *testing.T) {
	b := NewAABB(Vec2{0, 0}, Vec2{10, 10})
	tests := []struct {
		name string
		p    Vec2
		want []Side
	}{
		{"near top", Vec2{5, 1}, []Side{SideTop}},
		{"near right", Vec2{9, 5}, []Side{SideRight}},
		{"corner", Vec2{1, 1}, []Side{SideTop, SideLeft}},
		{"center", Vec2{5, 5}, []Side{SideTop, SideBottom, SideLeft, SideRight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, b.ClosestSides(tt.p))
		})
	}
}

func TestAABBSideNormals(t *testing.T) {
	b := NewAABB(Vec2{0, 0}, Vec2{10, 10})
	assert.Equal(t, Vec2{0, -1}, b.SideNormal(SideTop))
	assert.Equal(t, Vec2{0, 1}, b.SideNormal(SideBottom))
	assert.Equal(t, Vec2{-1, 0}, b.SideNormal(SideLeft))
	assert.Equal(t, Vec2{1, 0}, b.SideNormal(SideRight))

	b.FlippedNormals = true
	assert.Equal(t, Vec2{0, 1}, b.SideNormal(SideTop))
	assert.Equal(t, Vec2{-1, 0}, b.SideNormal(SideRight))
}

func TestAABBClosestSideNormal(t *testing.T) {
	b := NewAABB(Vec2{0, 0}, Vec2{10, 10})
	assert.Equal(t, Vec2{1, 0}, b.ClosestSideNormal(Vec2{9, 5}))
	assertVec2(t, Vec2{-1, -1}.Normalized(), b.ClosestSideNormal(Vec2{1, 1}))
	// All four normals cancel at the center, so the first side wins.
	assert.Equal(t, Vec2{0, -1}, b.ClosestSideNormal(b.Center()))
}

func TestAABBNormalAt(t *testing.T) {
	b := NewAABB(Vec2{0, 0}, Vec2{10, 10})
	assert.True(t, b.IsPointOnPerimeter(Vec2{10, 4}))
	assert.False(t, b.IsPointOnPerimeter(Vec2{4, 4}))
	assert.Equal(t, Vec2{1, 0}, b.NormalAt(Vec2{15, 4}))
	assert.Equal(t, Vec2{0, 1}, b.NormalAt(Vec2{3, 10}))
	assertVec2(t, Vec2{1, 1}.Normalized(), b.NormalAt(Vec2{12, 12}))
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "top", SideTop.String())
	assert.Equal(t, "unknown", Side(9).String())
	assert.Equal(t, "circle", ShapeCircle.String())
}

func TestShapeBoundsAndTranslate(t *testing.T) {
	c := CircleShape(Vec2{1, 1}, -3)
	assert.Zero(t, c.Radius)

	l := LineShape(Vec2{0, 0}, Vec2{2, -2}).Translated(Vec2{1, 1})
	assert.Equal(t, Vec2{1, 1}, l.P1)
	assert.Equal(t, NewAABB(Vec2{1, -1}, Vec2{2, 2}), l.Bounds())

	box := BoxShape(NewAABB(Vec2{0, 0}, Vec2{1, 1})).Translated(Vec2{3, 0})
	assert.Equal(t, Vec2{3, 0}, box.Bounds().TL)
}
