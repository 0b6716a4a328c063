package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/memmaker/heightray/engine/util"
)

// Camera shoots a fan of rays from a single origin. Aperture is the total
// angular spread in radians along the larger output dimension; the smaller
// dimension gets a proportional share.
type Camera struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	Aperture  float64
}

// RayDirections returns one ray direction per pixel, row-major, top row
// first. The horizontal fan offsets the X component, the vertical fan the Z
// component of the view direction.
func (c *Camera) RayDirections(width, height int) []mgl64.Vec3 {
	apertureH := c.Aperture
	apertureV := c.Aperture
	if width > height {
		apertureV = c.Aperture * float64(height) / float64(width)
	} else {
		apertureH = c.Aperture * float64(width) / float64(height)
	}

	horizontal := util.Linspace(-apertureH/2, apertureH/2, width)
	vertical := util.Linspace(apertureV/2, -apertureV/2, height)

	directions := make([]mgl64.Vec3, 0, width*height)
	for _, y := range vertical {
		for _, x := range horizontal {
			offset := mgl64.Vec3{math.Sin(x), 0, math.Sin(y)}
			directions = append(directions, c.Direction.Add(offset))
		}
	}
	return directions
}
