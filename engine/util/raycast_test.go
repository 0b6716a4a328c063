package util

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

var (
	up2    = mgl64.Vec2{0, 1}
	right2 = mgl64.Vec2{1, 0}
)

func TestRaySegment2DHorizontalSegment(t *testing.T) {
	origin := mgl64.Vec2{0, 0}
	p0 := mgl64.Vec2{-1, 1}
	p1 := mgl64.Vec2{1, 1}

	// segment and ray are perpendicular
	assert.Equal(t, 1.0, RaySegment2D(origin, up2, p0, p1))
	// same, but the ray starts lower
	assert.Equal(t, 2.0, RaySegment2D(origin.Sub(up2), up2, p0, p1))
	// ray reaches the segment exactly at its right-hand endpoint
	assert.Equal(t, 1.0, RaySegment2D(origin, up2.Add(right2), p0, p1))
	// ray points away from the segment
	assert.True(t, math.IsNaN(RaySegment2D(origin, up2.Mul(-1), p0, p1)))
	// segment and ray are parallel
	assert.True(t, math.IsNaN(RaySegment2D(origin, right2, p0, p1)))
	// ray passes to the right of the segment
	assert.True(t, math.IsNaN(RaySegment2D(origin, up2.Add(right2.Mul(2)), p0, p1)))
}

func TestRaySegment2DVerticalSegment(t *testing.T) {
	origin := mgl64.Vec2{0, 0}
	p0 := mgl64.Vec2{1, 1}
	p1 := mgl64.Vec2{1, -1}

	assert.Equal(t, 1.0, RaySegment2D(origin, right2, p0, p1))
	// ray reaches the upper endpoint of the segment
	assert.Equal(t, 1.0, RaySegment2D(origin, up2.Add(right2), p0, p1))
	// parallel
	assert.True(t, math.IsNaN(RaySegment2D(origin, up2, p0, p1)))
	// ray passes above the segment
	assert.True(t, math.IsNaN(RaySegment2D(origin, up2.Mul(2).Add(right2), p0, p1)))
}

func TestRaySegment2DDiagonalSegment(t *testing.T) {
	origin := mgl64.Vec2{0, 0}
	p0 := mgl64.Vec2{0, 2}
	p1 := mgl64.Vec2{2, 0}

	assert.Equal(t, 1.0, RaySegment2D(origin, up2.Add(right2), p0, p1))
	// endpoints count as hits
	assert.Equal(t, 2.0, RaySegment2D(origin, up2, p0, p1))
	assert.Equal(t, 2.0, RaySegment2D(origin, right2, p0, p1))
	// parallel
	assert.True(t, math.IsNaN(RaySegment2D(origin, up2.Sub(right2), p0, p1)))
	// ray passes left of the segment
	assert.True(t, math.IsNaN(RaySegment2D(origin, up2.Mul(2).Sub(right2), p0, p1)))
	// ray passes below the segment
	assert.True(t, math.IsNaN(RaySegment2D(origin, right2.Mul(2).Sub(up2), p0, p1)))
}

func TestRaySegment2DKnownCases(t *testing.T) {
	origin := mgl64.Vec2{0, 0}
	direction := mgl64.Vec2{1, 0}

	assert.Equal(t, 2.0, RaySegment2D(origin, direction, mgl64.Vec2{2, -1}, mgl64.Vec2{2, 1}))
	// segment entirely above the ray's line
	assert.True(t, math.IsNaN(RaySegment2D(origin, direction, mgl64.Vec2{2, 1}, mgl64.Vec2{2, 2})))
	// intersection behind the origin
	assert.True(t, math.IsNaN(RaySegment2D(origin, direction, mgl64.Vec2{-2, -1}, mgl64.Vec2{-2, 1})))
}

func TestRaySegment2DDegenerateInputs(t *testing.T) {
	origin := mgl64.Vec2{0, 0}
	point := mgl64.Vec2{3, 3}

	// zero-length segment
	assert.True(t, math.IsNaN(RaySegment2D(origin, mgl64.Vec2{1, 1}, point, point)))
	assert.True(t, math.IsNaN(RaySegment2D(origin, mgl64.Vec2{-1, 0}, point, point)))
	// zero direction
	assert.True(t, math.IsNaN(RaySegment2D(origin, mgl64.Vec2{}, mgl64.Vec2{1, -1}, mgl64.Vec2{1, 1})))
}

func TestRayTriangle3DKnownCases(t *testing.T) {
	origin := mgl64.Vec3{0, 0, 0}
	p0 := mgl64.Vec3{-1, -1, 1}
	p1 := mgl64.Vec3{1, -1, 1}
	p2 := mgl64.Vec3{0, 1, 1}

	// triangle in the plane z=1, straight in front of the ray
	assert.Equal(t, 1.0, RayTriangle3D(origin, mgl64.Vec3{0, 0, 1}, p0, p1, p2))
	// same triangle, ray points away
	assert.True(t, math.IsNaN(RayTriangle3D(origin, mgl64.Vec3{0, 0, -1}, p0, p1, p2)))
	// ray direction lies in the triangle's plane
	assert.True(t, math.IsNaN(RayTriangle3D(mgl64.Vec3{5, 5, 1}, mgl64.Vec3{1, 0, 0}, p0, p1, p2)))
	// ray passes outside the triangle
	assert.True(t, math.IsNaN(RayTriangle3D(mgl64.Vec3{5, 5, 0}, mgl64.Vec3{0, 0, 1}, p0, p1, p2)))
}

func TestRayTriangle3DVerticalTriangle(t *testing.T) {
	p0 := mgl64.Vec3{0, 1, 0}
	p1 := mgl64.Vec3{1, 1, 0}
	p2 := mgl64.Vec3{1, 1, 1}
	origin := mgl64.Vec3{0.5, 0.5, 0}

	assert.Equal(t, 0.5, RayTriangle3D(origin, mgl64.Vec3{0, 1, 1}, p0, p1, p2))
	// steeper ray overshoots the triangle
	assert.True(t, math.IsNaN(RayTriangle3D(origin, mgl64.Vec3{0, 1, 3}, p0, p1, p2)))
}

func TestRayTriangle3DBoundaryInclusive(t *testing.T) {
	p0 := mgl64.Vec3{-1, -1, 1}
	p1 := mgl64.Vec3{1, -1, 1}
	p2 := mgl64.Vec3{0, 1, 1}
	origin := mgl64.Vec3{0, 0, 0}

	// through the vertex p2, so l=0, m=1, l+m=1
	assert.Equal(t, 1.0, RayTriangle3D(origin, mgl64.Vec3{0, 1, 1}, p0, p1, p2))
	// through the vertex p0, so l=0, m=0
	assert.Equal(t, 1.0, RayTriangle3D(origin, mgl64.Vec3{-1, -1, 1}, p0, p1, p2))
	// through the midpoint of the edge p0-p1
	assert.Equal(t, 1.0, RayTriangle3D(origin, mgl64.Vec3{0, -1, 1}, p0, p1, p2))
}

func TestRayTriangle3DDegenerateTriangle(t *testing.T) {
	// all three vertices collinear
	p0 := mgl64.Vec3{0, 0, 0}
	p1 := mgl64.Vec3{1, 0, 0}
	p2 := mgl64.Vec3{2, 0, 0}

	assert.True(t, math.IsNaN(RayTriangle3D(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1}, p0, p1, p2)))
	assert.True(t, math.IsNaN(RayTriangle3D(mgl64.Vec3{0, -5, 0}, mgl64.Vec3{0, 1, 0}, p0, p1, p2)))
	// coincident vertices
	assert.True(t, math.IsNaN(RayTriangle3D(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1}, p0, p0, p2)))
}

func TestRaycastDeterminism(t *testing.T) {
	origin2 := mgl64.Vec2{0.123, -4.56}
	direction2 := mgl64.Vec2{0.7, 0.31}
	first := RaySegment2D(origin2, direction2, mgl64.Vec2{3, -7}, mgl64.Vec2{3.5, 9})
	second := RaySegment2D(origin2, direction2, mgl64.Vec2{3, -7}, mgl64.Vec2{3.5, 9})
	assert.Equal(t, math.Float64bits(first), math.Float64bits(second))

	origin3 := mgl64.Vec3{0.1, 0.2, 0.3}
	direction3 := mgl64.Vec3{0.4, 0.5, -0.6}
	p0 := mgl64.Vec3{1, 2, -3}
	p1 := mgl64.Vec3{-1, 2, -3.5}
	p2 := mgl64.Vec3{0, -2, -3.25}
	first = RayTriangle3D(origin3, direction3, p0, p1, p2)
	second = RayTriangle3D(origin3, direction3, p0, p1, p2)
	assert.Equal(t, math.Float64bits(first), math.Float64bits(second))
}

func BenchmarkRaySegment2D(b *testing.B) {
	origin := mgl64.Vec2{0, 0}
	direction := mgl64.Vec2{1, 0.1}
	p0 := mgl64.Vec2{2, -1}
	p1 := mgl64.Vec2{2, 1}
	for i := 0; i < b.N; i++ {
		_ = RaySegment2D(origin, direction, p0, p1)
	}
}

func BenchmarkRayTriangle3D(b *testing.B) {
	origin := mgl64.Vec3{0.25, 0.25, 1}
	direction := mgl64.Vec3{0, 0, -1}
	p0 := mgl64.Vec3{1, 0, 0}
	p1 := mgl64.Vec3{0, 0, 0}
	p2 := mgl64.Vec3{0, 1, 0}
	for i := 0; i < b.N; i++ {
		_ = RayTriangle3D(origin, direction, p0, p1, p2)
	}
}
