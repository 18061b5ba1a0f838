package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/physics"
)

// AngularMomentumDrift reports the largest absolute change of the angular
// momentum about the origin.
type AngularMomentumDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{name: "angular_momentum_drift"}
}

func (a *AngularMomentumDrift) Name() string { return a.name }

func (a *AngularMomentumDrift) Observe(b physics.Bodies, t float64) {
	l := b.AngularMomentum(0, 0)
	if a.samples == 0 {
		a.initial = l
	}
	a.samples++
	a.maxDrift = math.Max(a.maxDrift, math.Abs(l-a.initial))
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}

// CentroidShift reports the largest distance of the unweighted centroid from
// where it started.
type CentroidShift struct {
	name     string
	x0, y0   float64
	maxShift float64
	samples  int
}

func NewCentroidShift() *CentroidShift {
	return &CentroidShift{name: "centroid_shift"}
}

func (c *CentroidShift) Name() string { return c.name }

func (c *CentroidShift) Observe(b physics.Bodies, t float64) {
	x, y := b.CenterOfMass()
	if c.samples == 0 {
		c.x0, c.y0 = x, y
	}
	c.samples++
	c.maxShift = math.Max(c.maxShift, math.Hypot(x-c.x0, y-c.y0))
}

func (c *CentroidShift) Value() float64 { return c.maxShift }

func (c *CentroidShift) Reset() {
	c.x0, c.y0 = 0, 0
	c.maxShift = 0
	c.samples = 0
}
