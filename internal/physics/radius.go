package physics

import "math"

// Radius is the display radius of a body of mass m at the given density,
// cbrt(m/density). It plays no part in the dynamics.
func Radius(m, density float64) float64 {
	return math.Cbrt(m / density)
}

// Radii computes Radius for every body.
func Radii(b Bodies, density float64) []float64 {
	r := make([]float64, b.N())
	for i, m := range b.M {
		r[i] = Radius(m, density)
	}
	return r
}
