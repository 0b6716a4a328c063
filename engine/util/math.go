package util

import "math"

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func Mix(a, b, factor float64) float64 {
	return a*(1-factor) + factor*b
}

// Frac returns the fractional part of x, always in [0,1).
func Frac(x float64) float64 {
	return x - math.Floor(x)
}

// Linspace returns count evenly spaced values from start to stop, both
// endpoints included.
func Linspace(start, stop float64, count int) []float64 {
	if count == 1 {
		return []float64{start}
	}
	values := make([]float64, count)
	step := (stop - start) / float64(count-1)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	return values
}
