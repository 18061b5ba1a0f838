package dynamo

import (
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/gravsim/internal/physics"
)

// Stepper advances a state by dt using n substeps.
type Stepper func(b physics.Bodies, dt float64, n int) physics.Bodies

var steppers = map[string]Stepper{
	"superstep": physics.Superstep,
	"rk4":       physics.RawStep,
	"euler":     physics.EulerStep,
}

// LookupStepper finds a registered stepper by name.
func LookupStepper(name string) (Stepper, error) {
	s, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStepper, name, Steppers())
	}
	return s, nil
}

// Steppers lists the registered steppers in sorted order.
func Steppers() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Metric interface {
	Name() string
	Observe(b physics.Bodies, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(b physics.Bodies, t float64)
}

type Config struct {
	// Dt is the simulated time per frame before Speed is applied.
	Dt            float64
	Substeps      int
	Frames        int
	Speed         float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Substeps:      physics.DefaultSubsteps,
		Frames:        1000,
		Speed:         1.0,
		ValidateState: true,
	}
}

// Frame is the diagnostic summary of one state.
type Frame struct {
	Time            float64 `json:"time"`
	Energy          float64 `json:"energy"`
	CenterX         float64 `json:"center_x"`
	CenterY         float64 `json:"center_y"`
	AngularMomentum float64 `json:"angular_momentum"`
}

// Diagnose summarises b at time t.
func Diagnose(b physics.Bodies, t float64) Frame {
	cx, cy := b.CenterOfMass()
	return Frame{
		Time:            t,
		Energy:          physics.Energy(b),
		CenterX:         cx,
		CenterY:         cy,
		AngularMomentum: b.AngularMomentum(0, 0),
	}
}

type Result struct {
	Frames      []Frame
	Final       physics.Bodies
	Metrics     map[string]float64
	EnergyDrift float64
	FramesTaken int
	Elapsed     time.Duration
	Errors      []error
}
