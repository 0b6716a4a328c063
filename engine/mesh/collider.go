package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/memmaker/heightray/engine/util"
)

// TriangleMesh is a triangle soup with an optional index buffer and a model
// transform. Without indices every three consecutive vertices form one
// triangle.
type TriangleMesh struct {
	Vertices  []mgl64.Vec3
	Indices   []uint32
	Transform mgl64.Mat4
	name      string
}

func NewTriangleMesh(vertices []mgl64.Vec3, indices []uint32) *TriangleMesh {
	return &TriangleMesh{
		Vertices:  vertices,
		Indices:   indices,
		Transform: mgl64.Ident4(),
	}
}

func (m *TriangleMesh) SetName(name string) {
	m.name = name
}

func (m *TriangleMesh) GetName() string {
	return m.name
}

func (m *TriangleMesh) TriangleCount() int {
	if m.Indices != nil {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

func (m *TriangleMesh) IterateTrianglesTransformed(callback func(triangle [3]mgl64.Vec3)) {
	transformVertex := func(v mgl64.Vec3) mgl64.Vec3 {
		return m.Transform.Mul4x1(v.Vec4(1)).Vec3()
	}
	if m.Indices != nil {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			callback([3]mgl64.Vec3{
				transformVertex(m.Vertices[m.Indices[i]]),
				transformVertex(m.Vertices[m.Indices[i+1]]),
				transformVertex(m.Vertices[m.Indices[i+2]]),
			})
		}
	} else {
		for i := 0; i+2 < len(m.Vertices); i += 3 {
			callback([3]mgl64.Vec3{
				transformVertex(m.Vertices[i]),
				transformVertex(m.Vertices[i+1]),
				transformVertex(m.Vertices[i+2]),
			})
		}
	}
}

// HitPoint is the nearest intersection found by IntersectRay.
type HitPoint struct {
	Distance float64 // the ray parameter k
	Point    mgl64.Vec3
}

// IntersectRay tests the ray against every triangle of the mesh and returns
// the hit with the smallest ray parameter.
func (m *TriangleMesh) IntersectRay(origin, direction mgl64.Vec3) (HitPoint, bool) {
	nearest := HitPoint{Distance: math.Inf(1)}
	doesIntersect := false
	m.IterateTrianglesTransformed(func(triangle [3]mgl64.Vec3) {
		k := util.RayTriangle3D(origin, direction, triangle[0], triangle[1], triangle[2])
		if math.IsNaN(k) {
			return
		}
		if k < nearest.Distance {
			nearest = HitPoint{
				Distance: k,
				Point:    origin.Add(direction.Mul(k)),
			}
			doesIntersect = true
		}
	})
	return nearest, doesIntersect
}

func (m *TriangleMesh) ToString() string {
	return fmt.Sprintf("TriangleMesh{Name = %s, Triangles = %d}", m.name, m.TriangleCount())
}
