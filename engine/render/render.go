package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/memmaker/heightray/engine/heightfield"
	"github.com/memmaker/heightray/engine/util"
)

// DepthBuffer holds one terrain height per pixel, row-major. NaN marks a
// pixel whose ray never hit the surface.
type DepthBuffer struct {
	Width, Height int
	Values        []float64
}

func (d *DepthBuffer) At(x, y int) float64 {
	return d.Values[y*d.Width+x]
}

// ToImage normalizes the finite depth values into a 16-bit grayscale image.
// Missed pixels come out black.
func (d *DepthBuffer) ToImage() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, d.Width, d.Height))

	lowest := math.Inf(1)
	highest := math.Inf(-1)
	for _, v := range d.Values {
		if math.IsNaN(v) {
			continue
		}
		lowest = math.Min(lowest, v)
		highest = math.Max(highest, v)
	}
	if lowest > highest {
		return img // nothing was hit
	}

	span := highest - lowest
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			v := d.At(x, y)
			if math.IsNaN(v) {
				continue
			}
			normalized := 1.0
			if span > 0 {
				normalized = (v - lowest) / span
			}
			img.SetGray16(x, y, gray16FromFloat(normalized))
		}
	}
	return img
}

func gray16FromFloat(normalized float64) color.Gray16 {
	return color.Gray16{Y: uint16(util.Clamp(normalized, 0, 1) * math.MaxUint16)}
}

// ScaleImage resizes img to the given dimensions with bilinear filtering.
func ScaleImage(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// Renderer maps Heightfield.Raycast over a camera's ray fan, one row of
// pixels at a time across a pool of workers. Pixels are independent, so the
// result does not depend on worker scheduling.
type Renderer struct {
	Width   int
	Height  int
	Workers int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:   width,
		Height:  height,
		Workers: runtime.NumCPU(),
	}
}

func (r *Renderer) Render(camera *Camera, surface *heightfield.Heightfield) *DepthBuffer {
	directions := camera.RayDirections(r.Width, r.Height)
	values := make([]float64, len(directions))

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < r.Width; x++ {
					i := y*r.Width + x
					hit := surface.Raycast(camera.Origin, directions[i])
					if hit.Hit {
						values[i] = hit.Point.Z()
					} else {
						values[i] = math.NaN()
					}
				}
			}
		}()
	}
	for y := 0; y < r.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	util.LogRenderDebug(fmt.Sprintf("rendered %dx%d rays with %d workers", r.Width, r.Height, workers))
	return &DepthBuffer{Width: r.Width, Height: r.Height, Values: values}
}
