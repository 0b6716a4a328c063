package render

import (
	"math"
	"strings"
)

const asciiRamp = " .:-=+*#%@"

// ASCII downsamples the depth buffer into a character picture of at most
// width x height cells, darker characters for lower terrain. Missed pixels
// stay blank.
func (d *DepthBuffer) ASCII(width, height int) string {
	if width > d.Width {
		width = d.Width
	}
	if height > d.Height {
		height = d.Height
	}
	if width < 1 || height < 1 {
		return ""
	}

	lowest := math.Inf(1)
	highest := math.Inf(-1)
	for _, v := range d.Values {
		if math.IsNaN(v) {
			continue
		}
		lowest = math.Min(lowest, v)
		highest = math.Max(highest, v)
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		y := row * d.Height / height
		for col := 0; col < width; col++ {
			x := col * d.Width / width
			v := d.At(x, y)
			if math.IsNaN(v) || lowest > highest {
				sb.WriteByte(' ')
				continue
			}
			normalized := 1.0
			if highest > lowest {
				normalized = (v - lowest) / (highest - lowest)
			}
			rampIndex := int(normalized * float64(len(asciiRamp)-1))
			sb.WriteByte(asciiRamp[rampIndex])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
