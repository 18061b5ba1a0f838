package integrators

// Delta is a tangent value: a time-derivative of some state, or a
// displacement over a step. It only needs to be a vector space over the
// small integer coefficients the Runge-Kutta tableaux use.
type Delta[D any] interface {
	Add(D) D
	Neg() D
	Scale(k uint8) D
}

// State is anything a Delta can be applied to.
type State[S, D any] interface {
	Add(D) S
}

// Time is a step size. It can be split into integer fractions and turns a
// rate into a displacement.
type Time[T, D any] interface {
	Div(k int8) T
	Mul(D) D
}
