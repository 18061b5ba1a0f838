package integrators

// RK4 advances s by one classical fourth-order Runge-Kutta step of size dt.
//
// The tableau is written with integer coefficients only (thirds and eighths
// of dt, multiples of 3 on the deltas) so that no fractional scalar is ever
// applied to a Delta:
//
//	k0 = dv(s)
//	k1 = dv(s + dt/3·k0)
//	k2 = dv(s + dt·k1 − dt/3·k0)
//	k3 = dv(s + dt·k2 − dt·k1 + dt·k0)
//	s' = s + dt/8·(k0 + 3·k1 + 3·k2 + k3)
//
// dv may carry its own state; it is called exactly four times, in order.
func RK4[S State[S, D], D Delta[D], T Time[T, D]](s S, dv func(S) D, dt T) S {
	k0 := dv(s)
	d0 := dt.Div(3).Mul(k0)
	k1 := dv(s.Add(d0))
	d1 := dt.Mul(k1)
	k2 := dv(s.Add(d1).Add(d0.Neg()))
	k3 := dv(s.Add(dt.Mul(k2)).Add(d1.Neg()).Add(d0.Scale(3)))
	k := k0.Add(k1.Scale(3)).Add(k2.Scale(3)).Add(k3)
	return s.Add(dt.Div(8).Mul(k))
}

// RK4N applies n RK4 steps of the same size, with no processing in between.
func RK4N[S State[S, D], D Delta[D], T Time[T, D]](s S, dv func(S) D, dt T, n int) S {
	for i := 0; i < n; i++ {
		s = RK4(s, dv, dt)
	}
	return s
}
