package physics

import (
	"errors"
	"fmt"
)

// ParamsPerBody is the number of values describing one body: x, y, vx, vy, m.
const ParamsPerBody = 5

// GravitationalConstant is G in SI units.
const GravitationalConstant = 6.6743e-11

var (
	// ErrMalformedBodies indicates a parameter list that is not a positive
	// multiple of ParamsPerBody long.
	ErrMalformedBodies = errors.New("physics: body parameters must come in groups of five (x y vx vy m)")

	// ErrNoBodies indicates an attempt to build a state without bodies.
	ErrNoBodies = errors.New("physics: at least one body is required")

	// ErrLaneMismatch is the panic value when states or deltas of different
	// sizes are combined.
	ErrLaneMismatch = errors.New("physics: lane lengths differ")
)

// Body is a single point mass.
type Body struct {
	X, Y   float64
	VX, VY float64
	M      float64
}

// ParseBodies groups a flat parameter list into bodies, five values each.
// Masses are taken as given; positivity is the caller's concern.
func ParseBodies(params []float64) ([]Body, error) {
	if len(params) == 0 || len(params)%ParamsPerBody != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrMalformedBodies, len(params))
	}
	bodies := make([]Body, 0, len(params)/ParamsPerBody)
	for i := 0; i < len(params); i += ParamsPerBody {
		p := params[i : i+ParamsPerBody]
		bodies = append(bodies, Body{X: p[0], Y: p[1], VX: p[2], VY: p[3], M: p[4]})
	}
	return bodies, nil
}

// Params flattens the body back into its five parameters.
func (b Body) Params() []float64 {
	return []float64{b.X, b.Y, b.VX, b.VY, b.M}
}

func (b Body) String() string {
	return fmt.Sprintf("(%+.3f, %+.3f) v=(%+.3f, %+.3f) m=%+.3f", b.X, b.Y, b.VX, b.VY, b.M)
}
