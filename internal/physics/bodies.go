package physics

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Bodies is the state of an N-body system: one lane per quantity, one element
// per body. All five lanes have the same length, fixed at construction.
type Bodies struct {
	X, Y   []float64
	VX, VY []float64
	M      []float64

	// G is the gravitational constant shared by every pair.
	G float64
}

// Delta is a tangent to Bodies: either a rate of change or a displacement of
// positions and velocities.
type Delta struct {
	X, Y   []float64
	VX, VY []float64
}

// DT is a step size.
type DT float64

// NewBodies lays the bodies out in lanes.
func NewBodies(bodies []Body, g float64) (Bodies, error) {
	n := len(bodies)
	if n == 0 {
		return Bodies{}, ErrNoBodies
	}
	b := Bodies{
		X:  make([]float64, n),
		Y:  make([]float64, n),
		VX: make([]float64, n),
		VY: make([]float64, n),
		M:  make([]float64, n),
		G:  g,
	}
	for i, body := range bodies {
		b.X[i], b.Y[i] = body.X, body.Y
		b.VX[i], b.VY[i] = body.VX, body.VY
		b.M[i] = body.M
	}
	return b, nil
}

// FromParams parses a flat x, y, vx, vy, m list into a state.
func FromParams(params []float64, g float64) (Bodies, error) {
	bodies, err := ParseBodies(params)
	if err != nil {
		return Bodies{}, err
	}
	return NewBodies(bodies, g)
}

// N is the number of bodies.
func (b Bodies) N() int { return len(b.M) }

// Body extracts lane i.
func (b Bodies) Body(i int) Body {
	return Body{X: b.X[i], Y: b.Y[i], VX: b.VX[i], VY: b.VY[i], M: b.M[i]}
}

// Bodies extracts every lane.
func (b Bodies) Bodies() []Body {
	out := make([]Body, b.N())
	for i := range out {
		out[i] = b.Body(i)
	}
	return out
}

// CenterOfMass returns the mean body position. It is not weighted by mass,
// so it is only the physical center of mass when all masses are equal.
func (b Bodies) CenterOfMass() (x, y float64) {
	n := float64(b.N())
	return floats.Sum(b.X) / n, floats.Sum(b.Y) / n
}

// AngularMomentum is Σ m·((y−y0)·vx − (x−x0)·vy) about the pivot (x0, y0).
func (b Bodies) AngularMomentum(x0, y0 float64) float64 {
	n := b.N()
	dx := slices.Clone(b.X)
	floats.AddConst(-x0, dx)
	dy := slices.Clone(b.Y)
	floats.AddConst(-y0, dy)

	l := floats.MulTo(make([]float64, n), dy, b.VX)
	floats.Sub(l, floats.MulTo(dx, dx, b.VY))
	return floats.Dot(b.M, l)
}

// Momentum is the total linear momentum Σ m·v.
func (b Bodies) Momentum() (px, py float64) {
	return floats.Dot(b.M, b.VX), floats.Dot(b.M, b.VY)
}

// IsFinite reports whether every position, velocity and mass is a finite
// number. Degenerate configurations show up here as false.
func (b Bodies) IsFinite() bool {
	for _, l := range [][]float64{b.X, b.Y, b.VX, b.VY, b.M} {
		for _, v := range l {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Add displaces positions and velocities by d. It panics with
// ErrLaneMismatch unless d covers exactly the bodies of b.
func (b Bodies) Add(d Delta) Bodies {
	n := b.N()
	mustMatch(n, d)
	return Bodies{
		X:  floats.AddTo(make([]float64, n), b.X, d.X),
		Y:  floats.AddTo(make([]float64, n), b.Y, d.Y),
		VX: floats.AddTo(make([]float64, n), b.VX, d.VX),
		VY: floats.AddTo(make([]float64, n), b.VY, d.VY),
		M:  b.M,
		G:  b.G,
	}
}

// N is the number of bodies the delta covers.
func (d Delta) N() int { return len(d.X) }

// Add sums two deltas lane by lane.
func (d Delta) Add(o Delta) Delta {
	n := d.N()
	mustMatch(n, d)
	mustMatch(n, o)
	return Delta{
		X:  floats.AddTo(make([]float64, n), d.X, o.X),
		Y:  floats.AddTo(make([]float64, n), d.Y, o.Y),
		VX: floats.AddTo(make([]float64, n), d.VX, o.VX),
		VY: floats.AddTo(make([]float64, n), d.VY, o.VY),
	}
}

func mustMatch(n int, d Delta) {
	for _, l := range [][]float64{d.X, d.Y, d.VX, d.VY} {
		if len(l) != n {
			panic(fmt.Errorf("%w: want %d, got %d", ErrLaneMismatch, n, len(l)))
		}
	}
}

// Neg flips the sign of every component.
func (d Delta) Neg() Delta { return d.scaled(-1) }

// Scale multiplies every component by a small integer.
func (d Delta) Scale(k uint8) Delta { return d.scaled(float64(k)) }

// SquaredNorm is the sum of squares over all four lanes.
func (d Delta) SquaredNorm() float64 {
	return floats.Dot(d.X, d.X) + floats.Dot(d.Y, d.Y) + floats.Dot(d.VX, d.VX) + floats.Dot(d.VY, d.VY)
}

func (d Delta) scaled(c float64) Delta {
	n := d.N()
	return Delta{
		X:  floats.ScaleTo(make([]float64, n), c, d.X),
		Y:  floats.ScaleTo(make([]float64, n), c, d.Y),
		VX: floats.ScaleTo(make([]float64, n), c, d.VX),
		VY: floats.ScaleTo(make([]float64, n), c, d.VY),
	}
}

// Div splits the step into k equal parts.
func (dt DT) Div(k int8) DT { return dt / DT(k) }

// Mul turns a rate into the displacement it produces over dt.
func (dt DT) Mul(d Delta) Delta { return d.scaled(float64(dt)) }
