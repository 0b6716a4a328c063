package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RaySegment2D finds the intersection between the ray origin+k*direction and
// the segment [p0,p1]. Returns the ray parameter k, or NaN if no valid
// intersection exists. Check the result with math.IsNaN, never with ==.
//
// Solves origin + k*direction = p0 + l*(p1-p0) as a 2x2 system via the
// closed-form inverse. The singularity test is exact (det == 0), so a ray
// that is parallel to the segment or a zero-length segment both report a
// miss. No allocs, safe to call from any number of goroutines.
func RaySegment2D(origin, direction, p0, p1 mgl64.Vec2) float64 {
	a0 := direction
	a1 := p0.Sub(p1)
	det := a0.X()*a1.Y() - a0.Y()*a1.X()
	if det == 0 {
		return math.NaN()
	}
	b := p0.Sub(origin)
	k := (b.X()*a1.Y() - b.Y()*a1.X()) / det
	l := (a0.X()*b.Y() - a0.Y()*b.X()) / det
	if k < 0 || l < 0 || l > 1 {
		return math.NaN()
	}
	return k
}

// RayTriangle3D finds the intersection between the ray origin+k*direction
// and the triangle (p0,p1,p2). Returns the ray parameter k, or NaN if no
// valid intersection exists.
//
// Solves origin + k*direction = p0 + l*(p1-p0) + m*(p2-p0) with Cramer's
// rule: det is the scalar triple product of the system columns and each
// adjugate row is the cross product of the other two columns. The bounds on
// the barycentric coordinates are inclusive, so rays grazing an edge or a
// vertex count as hits. Same exact det == 0 policy as RaySegment2D.
func RayTriangle3D(origin, direction, p0, p1, p2 mgl64.Vec3) float64 {
	a0 := direction
	a1 := p0.Sub(p1)
	a2 := p0.Sub(p2)
	n := a1.Cross(a2)
	det := a0.Dot(n)
	if det == 0 {
		return math.NaN()
	}
	b := p0.Sub(origin)
	k := n.Dot(b) / det
	l := a2.Cross(a0).Dot(b) / det
	m := a0.Cross(a1).Dot(b) / det
	if k < 0 || l < 0 || l > 1 || m < 0 || m > 1 || l+m > 1 {
		return math.NaN()
	}
	return k
}
