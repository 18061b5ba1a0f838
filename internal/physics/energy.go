package physics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Energy is the total mechanical energy: Σ ½m|v|² plus −G·mi·mj/rij over
// every unordered pair.
func Energy(b Bodies) float64 {
	n := b.N()
	v2 := floats.MulTo(make([]float64, n), b.VX, b.VX)
	floats.Add(v2, floats.MulTo(make([]float64, n), b.VY, b.VY))
	total := floats.Dot(b.M, v2) / 2

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			dx := b.X[j] - b.X[i]
			dy := b.Y[j] - b.Y[i]
			total -= b.G * (b.M[i] * b.M[j]) / math.Sqrt(dx*dx+dy*dy)
		}
	}

	return total
}

// EnergyGradient is ∂E/∂(x, y, vx, vy). The position part is the negated
// gravitational force, the velocity part is momentum.
func EnergyGradient(b Bodies) Delta {
	n := b.N()
	fx, fy := Gravity(b)
	floats.Scale(-1, fx)
	floats.Scale(-1, fy)
	return Delta{
		X:  fx,
		Y:  fy,
		VX: floats.MulTo(make([]float64, n), b.M, b.VX),
		VY: floats.MulTo(make([]float64, n), b.M, b.VY),
	}
}

// CorrectEnergy returns ∇E/‖∇E‖². Moving the state by c times this vector
// changes its energy by c, to first order. A zero gradient yields NaN.
func CorrectEnergy(b Bodies) Delta {
	g := EnergyGradient(b)
	s := g.SquaredNorm()
	for _, l := range [][]float64{g.X, g.Y, g.VX, g.VY} {
		for i := range l {
			l[i] /= s
		}
	}
	return g
}
