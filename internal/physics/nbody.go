package physics

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// PairForce is the gravitational force body j exerts on body i,
// (rj − ri)·G·mi·mj/|rj − ri|³. Swapping i and j negates the result exactly.
// Coincident bodies give NaN components.
func (b Bodies) PairForce(i, j int) (fx, fy float64) {
	dx := b.X[j] - b.X[i]
	dy := b.Y[j] - b.Y[i]
	r := math.Sqrt(dx*dx + dy*dy)
	coe := b.G * (b.M[i] * b.M[j]) / (r * r * r)
	return dx * coe, dy * coe
}

// Gravity sums the pairwise forces on every body. Each unordered pair is
// evaluated once and applied with opposite signs to its two bodies.
func Gravity(b Bodies) (fx, fy []float64) {
	n := b.N()
	fx = make([]float64, n)
	fy = make([]float64, n)

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			px, py := b.PairForce(i, j)
			fx[i] += px
			fy[i] += py
			fx[j] -= px
			fy[j] -= py
		}
	}

	return fx, fy
}

// Derivative is the time derivative of the state: positions change at the
// current velocity, velocities at force over mass.
func Derivative(b Bodies) Delta {
	fx, fy := Gravity(b)
	return Delta{
		X:  slices.Clone(b.VX),
		Y:  slices.Clone(b.VY),
		VX: floats.DivTo(fx, fx, b.M),
		VY: floats.DivTo(fy, fy, b.M),
	}
}
