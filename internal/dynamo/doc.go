// Package dynamo runs N-body simulations frame by frame.
//
// The physics lives in [github.com/san-kum/gravsim/internal/physics]; this
// package drives it:
//
//   - [Stepper]: advances a state by one frame (superstep, raw RK4, Euler)
//   - [Simulator]: runs a stepper for a number of frames, records
//     diagnostics and feeds [Metric] and [Observer] implementations
//   - [Ensemble]: runs independent simulations concurrently
//
// # Example
//
//	b, _ := physics.FromParams(params, 1.0)
//	step, _ := dynamo.LookupStepper("superstep")
//	sim := dynamo.New(step)
//	result, _ := sim.Run(ctx, b, dynamo.DefaultConfig())
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. For parallel simulations,
// use the [Ensemble] type which gives every run its own simulator.
package dynamo
