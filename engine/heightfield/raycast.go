package heightfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/memmaker/heightray/engine/util"
)

const (
	// minimum advance along an edge crossing before we fall back to nudging,
	// keeps the march from stalling on a corner it is already touching
	minEdgeStep = 1e-10
	edgeNudge   = 0.01
)

// HitInfo describes where a ray met the terrain.
type HitInfo struct {
	Hit      bool
	Distance float64 // the ray parameter k at the hit
	Point    mgl64.Vec3
}

// FirstEntryPoint returns the point where the ray first touches the grid
// footprint, clipping the ray's 2D projection against the four border
// segments. An origin already above the walkable region starts at itself.
// The second return value is false if the ray never reaches the grid.
func (h *Heightfield) FirstEntryPoint(origin, direction mgl64.Vec3) (mgl64.Vec3, bool) {
	width := float64(h.width)
	depth := float64(h.depth)

	o := mgl64.Vec2{origin.X(), origin.Y()}
	d := mgl64.Vec2{direction.X(), direction.Y()}

	if o.X() >= 0 && o.X() < width-1 && o.Y() >= 0 && o.Y() < depth-1 {
		return origin, true
	}

	p00 := mgl64.Vec2{0, 0}
	p01 := mgl64.Vec2{0, depth}
	p10 := mgl64.Vec2{width, 0}
	p11 := mgl64.Vec2{width, depth}

	sides := [4][2]mgl64.Vec2{
		{p00, p10}, // south
		{p00, p01}, // west
		{p01, p11}, // north
		{p10, p11}, // east
	}

	closest := math.NaN()
	for _, side := range sides {
		k := util.RaySegment2D(o, d, side[0], side[1])
		if math.IsNaN(k) {
			continue
		}
		if math.IsNaN(closest) || k < closest {
			closest = k
		}
	}
	if math.IsNaN(closest) {
		return mgl64.Vec3{}, false
	}
	return origin.Add(direction.Mul(closest)), true
}

// Raycast walks the ray across the terrain, one sub-triangle at a time, and
// returns the first intersection with the surface. Each grid cell is treated
// as four triangles fanned around the cell center, whose height is the mean
// of the four corners. A triangle is only tested while the ray point's
// height is strictly inside the cell's corner band, so a ray crossing a cell
// whose corners are all equal passes through untested.
func (h *Heightfield) Raycast(origin, direction mgl64.Vec3) HitInfo {
	p, entered := h.FirstEntryPoint(origin, direction)
	if !entered {
		return HitInfo{}
	}

	width := float64(h.width)
	depth := float64(h.depth)
	d2d := mgl64.Vec2{direction.X(), direction.Y()}

	for p.X() >= 0 && p.X() < width-1 && p.Y() >= 0 && p.Y() < depth-1 {
		cellX := int(math.Floor(p.X()))
		cellY := int(math.Floor(p.Y()))
		center := mgl64.Vec2{float64(cellX) + 0.5, float64(cellY) + 0.5}
		corners := SubTrianglePoints(mgl64.Vec2{p.X(), p.Y()})

		k := math.NaN()
		if lowest, highest := h.CellBounds(cellX, cellY); lowest < p.Z() && p.Z() < highest {
			tri0 := mgl64.Vec3{center.X(), center.Y(), h.CellCenterHeight(cellX, cellY)}
			tri1 := mgl64.Vec3{float64(corners[0].X), float64(corners[0].Y), h.At(corners[0].X, corners[0].Y)}
			tri2 := mgl64.Vec3{float64(corners[1].X), float64(corners[1].Y), h.At(corners[1].X, corners[1].Y)}
			k = util.RayTriangle3D(origin, direction, tri0, tri1, tri2)
		}

		if !math.IsNaN(k) {
			return HitInfo{
				Hit:      true,
				Distance: k,
				Point:    origin.Add(direction.Mul(k)),
			}
		}

		// no hit here, cross into the neighboring sub-triangle
		p2d := mgl64.Vec2{p.X(), p.Y()}
		c0 := mgl64.Vec2{float64(corners[0].X), float64(corners[0].Y)}
		c1 := mgl64.Vec2{float64(corners[1].X), float64(corners[1].Y)}
		edges := [3][2]mgl64.Vec2{{center, c0}, {c0, c1}, {c1, center}}

		advanced := false
		for _, edge := range edges {
			nk := util.RaySegment2D(p2d, d2d, edge[0], edge[1])
			if math.IsNaN(nk) {
				continue
			}
			if nk > minEdgeStep {
				p = p.Add(direction.Mul(nk))
			} else {
				p = p.Add(direction.Mul(edgeNudge))
			}
			advanced = true
			break
		}
		if !advanced {
			// a ray with no horizontal motion can never leave this
			// sub-triangle, give up instead of spinning
			return HitInfo{}
		}
	}
	return HitInfo{}
}
