package heightfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/memmaker/heightray/engine/util"
)

// Heightfield is a width x depth grid of terrain heights. Grid coordinates
// are x (column) and y (row), the stored value is the height z at that
// corner. The walkable cell region spans [0,width-1) x [0,depth-1), each
// cell owning four corner samples.
type Heightfield struct {
	width   int
	depth   int
	heights []float64
}

func New(width, depth int) *Heightfield {
	return &Heightfield{
		width:   width,
		depth:   depth,
		heights: make([]float64, width*depth),
	}
}

func NewFromFunc(width, depth int, heightAt func(x, y int) float64) *Heightfield {
	h := New(width, depth)
	for y := 0; y < depth; y++ {
		for x := 0; x < width; x++ {
			h.Set(x, y, heightAt(x, y))
		}
	}
	return h
}

// NewParaboloid builds the n x n bowl surface ((x-n/2)^2 + (y-n/2)^2) / 2.
func NewParaboloid(n int) *Heightfield {
	half := float64(n) / 2
	return NewFromFunc(n, n, func(x, y int) float64 {
		dx := float64(x) - half
		dy := float64(y) - half
		return (dx*dx + dy*dy) / 2
	})
}

func (h *Heightfield) Width() int {
	return h.width
}

func (h *Heightfield) Depth() int {
	return h.depth
}

func (h *Heightfield) At(x, y int) float64 {
	return h.heights[y*h.width+x]
}

func (h *Heightfield) Set(x, y int, height float64) {
	h.heights[y*h.width+x] = height
}

// CellBounds returns the lowest and highest of the four corner heights of
// the cell whose lower-left corner is (x, y).
func (h *Heightfield) CellBounds(x, y int) (float64, float64) {
	min := h.At(x, y)
	max := min
	for _, corner := range [3]float64{h.At(x+1, y), h.At(x, y+1), h.At(x+1, y+1)} {
		min = math.Min(min, corner)
		max = math.Max(max, corner)
	}
	return min, max
}

// CellCenterHeight returns the mean of the four corner heights of the cell
// whose lower-left corner is (x, y).
func (h *Heightfield) CellCenterHeight(x, y int) float64 {
	return (h.At(x, y) + h.At(x+1, y) + h.At(x, y+1) + h.At(x+1, y+1)) / 4
}

type GridPoint struct {
	X, Y int
}

// SubTrianglePoints returns the two integer cell corners that, together with
// the cell center, bound the sub-triangle containing pos. Each cell is split
// into four triangles around its center by the two diagonals; the fractional
// position relative to those diagonals picks the triangle.
func SubTrianglePoints(pos mgl64.Vec2) [2]GridPoint {
	baseX := int(math.Floor(pos.X()))
	baseY := int(math.Floor(pos.Y()))
	fx := util.Frac(pos.X())
	fy := util.Frac(pos.Y())

	aboveMainDiagonal := fy > fx
	aboveAntiDiagonal := fy > 1-fx

	first := GridPoint{X: baseX, Y: baseY}
	if aboveMainDiagonal {
		first.Y++
	} else {
		first.X++
	}
	second := GridPoint{X: baseX, Y: baseY}
	if aboveAntiDiagonal {
		second.X++
		second.Y++
	}
	return [2]GridPoint{first, second}
}
