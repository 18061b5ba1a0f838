package integrators

// Euler is the explicit first-order step s + dt·dv(s). It is kept as a
// baseline for drift comparisons.
func Euler[S State[S, D], D Delta[D], T Time[T, D]](s S, dv func(S) D, dt T) S {
	return s.Add(dt.Mul(dv(s)))
}

// EulerN applies n Euler steps of size dt.
func EulerN[S State[S, D], D Delta[D], T Time[T, D]](s S, dv func(S) D, dt T, n int) S {
	for i := 0; i < n; i++ {
		s = Euler(s, dv, dt)
	}
	return s
}
