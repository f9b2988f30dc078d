// Package geom provides small geometric helpers used by the gesture controller.
package geom

import "math"

// Clamp bounds v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b using factor t.
// For t in [0,1] the result lies between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Distance returns the Euclidean distance between (x1,y1) and (x2,y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
