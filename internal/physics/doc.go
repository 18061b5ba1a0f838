// Package physics integrates point masses under mutual Newtonian gravity in
// the plane.
//
// A configuration is held in [Bodies], five parallel lanes (positions,
// velocities, masses) plus the gravitational constant. Lanes are plain
// float64 slices operated on element-wise, so every body is processed by the
// same vector operation. [Delta] is the matching tangent type; it has no mass
// lane because mass never changes. [DT] scales a rate into a displacement.
//
// These three types satisfy the contracts of the generic integrators in
// [github.com/san-kum/gravsim/internal/integrators], which is how
// [Superstep] advances a state:
//
//	b, _ := physics.FromParams([]float64{-1, 0, 0, 0.5, 1, 1, 0, 0, -0.5, 1}, 1.0)
//	for frame := 0; frame < 100; frame++ {
//	    b = physics.Superstep(b, 0.01, physics.DefaultSubsteps)
//	}
//
// After every RK4 substep, [Superstep] applies a first-order projection along
// the energy gradient ([CorrectEnergy]) that cancels the energy error that
// substep introduced.
//
// # Value semantics
//
// No function in this package writes into a lane it was given. Each step
// returns a new [Bodies]; the mass lane is shared between a state and the
// states derived from it since it is never written.
//
// # Degenerate input
//
// Coincident bodies and zero energy gradients divide by zero. Nothing here
// guards against that: the resulting NaN/Inf values propagate into later
// states. [Bodies.IsFinite] reports whether that has happened.
package physics
