package physics

import "github.com/san-kum/gravsim/internal/integrators"

// DefaultSubsteps is the number of RK4 substeps per frame used by the live
// view and the CLI unless told otherwise.
const DefaultSubsteps = 10

// Superstep advances b by dt in n RK4 substeps, pulling the energy back after
// each one.
//
// The energy reference starts at the energy of b. After a substep moves the
// energy from prev to e, the state is displaced by (prev − e)·∇E/‖∇E‖²,
// and prev becomes e, the value before the displacement. Each correction
// therefore undoes one substep's error relative to the previous uncorrected
// energy; errors are bounded per substep but can still accumulate slowly
// over many calls.
//
// n ≤ 0 returns b unchanged.
func Superstep(b Bodies, dt float64, n int) Bodies {
	if n <= 0 {
		return b
	}
	h := DT(dt / float64(n))
	prev := Energy(b)
	for i := 0; i < n; i++ {
		b = integrators.RK4(b, Derivative, h)
		e := Energy(b)
		b = b.Add(DT(prev - e).Mul(CorrectEnergy(b)))
		prev = e
	}
	return b
}

// RawStep advances b by dt in n plain RK4 substeps, without energy
// correction.
func RawStep(b Bodies, dt float64, n int) Bodies {
	if n <= 0 {
		return b
	}
	return integrators.RK4N(b, Derivative, DT(dt/float64(n)), n)
}

// EulerStep advances b by dt in n explicit Euler substeps.
func EulerStep(b Bodies, dt float64, n int) Bodies {
	if n <= 0 {
		return b
	}
	return integrators.EulerN(b, Derivative, DT(dt/float64(n)), n)
}
