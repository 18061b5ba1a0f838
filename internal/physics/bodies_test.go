package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBodies(t *testing.T) {
	tests := []struct {
		name   string
		params []float64
		want   int
		err    error
	}{
		{"empty", nil, 0, ErrMalformedBodies},
		{"short", []float64{1, 2, 3, 4}, 0, ErrMalformedBodies},
		{"one", []float64{1, 2, 3, 4, 5}, 1, nil},
		{"ragged", []float64{1, 2, 3, 4, 5, 6, 7}, 0, ErrMalformedBodies},
		{"two", []float64{-1, 0, 0, 0.5, 1, 1, 0, 0, -0.5, 1}, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodies, err := ParseBodies(tt.params)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseBodies() error = %v, want %v", err, tt.err)
			}
			if err != nil && bodies != nil {
				t.Error("expected no bodies on error")
			}
			if len(bodies) != tt.want {
				t.Errorf("got %d bodies, want %d", len(bodies), tt.want)
			}
		})
	}
}

func TestParseBodiesOrder(t *testing.T) {
	bodies, err := ParseBodies([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []Body{
		{X: 1, Y: 2, VX: 3, VY: 4, M: 5},
		{X: 6, Y: 7, VX: 8, VY: 9, M: 10},
	}
	if diff := cmp.Diff(want, bodies); diff != "" {
		t.Errorf("bodies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{6, 7, 8, 9, 10}, bodies[1].Params()); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBodies(t *testing.T) {
	if _, err := NewBodies(nil, 1); !errors.Is(err, ErrNoBodies) {
		t.Errorf("expected ErrNoBodies, got %v", err)
	}

	b, err := FromParams([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.5)
	if err != nil {
		t.Fatalf("FromParams failed: %v", err)
	}
	if b.N() != 2 {
		t.Fatalf("expected 2 bodies, got %d", b.N())
	}
	if b.G != 0.5 {
		t.Errorf("expected G 0.5, got %f", b.G)
	}
	if got := b.Body(1); got != (Body{X: 6, Y: 7, VX: 8, VY: 9, M: 10}) {
		t.Errorf("Body(1) = %+v", got)
	}
	if len(b.Bodies()) != 2 {
		t.Errorf("Bodies() returned %d entries", len(b.Bodies()))
	}

	if _, err := FromParams([]float64{1, 2, 3}, 1); !errors.Is(err, ErrMalformedBodies) {
		t.Errorf("expected ErrMalformedBodies, got %v", err)
	}
}

func TestCenterOfMassIsUnweighted(t *testing.T) {
	b, _ := NewBodies([]Body{
		{X: 0, Y: 0, M: 1},
		{X: 2, Y: 4, M: 3},
	}, 1)

	x, y := b.CenterOfMass()
	if x != 1 || y != 2 {
		t.Errorf("CenterOfMass() = (%f, %f), want (1, 2)", x, y)
	}
}

func TestAngularMomentum(t *testing.T) {
	b, _ := NewBodies([]Body{{X: 1, Y: 0, VX: 0, VY: 1, M: 2}}, 1)

	tests := []struct {
		x0, y0 float64
		want   float64
	}{
		{0, 0, -2},
		{1, 0, 0},
		{0, 1, -2},
		{-1, 0, -4},
	}

	for _, tt := range tests {
		if got := b.AngularMomentum(tt.x0, tt.y0); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("AngularMomentum(%v, %v) = %v, want %v", tt.x0, tt.y0, got, tt.want)
		}
	}
}

func TestMomentum(t *testing.T) {
	b, _ := NewBodies([]Body{
		{VX: 1, VY: 2, M: 2},
		{VX: -1, VY: 0.5, M: 4},
	}, 1)

	px, py := b.Momentum()
	if px != -2 || py != 6 {
		t.Errorf("Momentum() = (%f, %f), want (-2, 6)", px, py)
	}
}

func TestDeltaAlgebra(t *testing.T) {
	d := Delta{X: []float64{1, -2}, Y: []float64{0.5, 0}, VX: []float64{3, 4}, VY: []float64{-1, 1}}

	neg := d.Neg()
	if diff := cmp.Diff([]float64{-1, 2}, neg.X); diff != "" {
		t.Errorf("Neg X mismatch:\n%s", diff)
	}

	tripled := d.Scale(3)
	if diff := cmp.Diff([]float64{9, 12}, tripled.VX); diff != "" {
		t.Errorf("Scale VX mismatch:\n%s", diff)
	}

	sum := d.Add(neg)
	for _, l := range [][]float64{sum.X, sum.Y, sum.VX, sum.VY} {
		for _, v := range l {
			if v != 0 {
				t.Fatalf("d + (-d) should vanish, got %v", sum)
			}
		}
	}

	if got := d.SquaredNorm(); got != 1+4+0.25+9+16+1+1 {
		t.Errorf("SquaredNorm() = %v", got)
	}
}

func TestDT(t *testing.T) {
	dt := DT(0.6)
	if got := dt.Div(3); math.Abs(float64(got)-0.2) > 1e-15 {
		t.Errorf("Div(3) = %v", got)
	}
	if got := dt.Div(-2); got != -0.3 {
		t.Errorf("Div(-2) = %v", got)
	}

	d := DT(2).Mul(Delta{X: []float64{1}, Y: []float64{2}, VX: []float64{3}, VY: []float64{4}})
	want := Delta{X: []float64{2}, Y: []float64{4}, VX: []float64{6}, VY: []float64{8}}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("Mul mismatch (-want +got):\n%s", diff)
	}
}

func TestAddDoesNotMutate(t *testing.T) {
	b, _ := FromParams([]float64{1, 2, 3, 4, 5}, 1)
	d := Delta{X: []float64{1}, Y: []float64{1}, VX: []float64{1}, VY: []float64{1}}

	moved := b.Add(d)
	if b.X[0] != 1 || b.Y[0] != 2 || b.VX[0] != 3 || b.VY[0] != 4 {
		t.Errorf("Add modified its receiver: %+v", b.Body(0))
	}
	if got := moved.Body(0); got != (Body{X: 2, Y: 3, VX: 4, VY: 5, M: 5}) {
		t.Errorf("moved body = %+v", got)
	}
	if moved.G != b.G {
		t.Error("Add dropped G")
	}
}

func TestLaneMismatchPanics(t *testing.T) {
	b, _ := FromParams([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 1)
	one := Delta{X: []float64{1}, Y: []float64{1}, VX: []float64{1}, VY: []float64{1}}
	two := Delta{X: []float64{1, 1}, Y: []float64{1, 1}, VX: []float64{1, 1}, VY: []float64{1}}

	tests := []struct {
		name string
		fn   func()
	}{
		{"state plus short delta", func() { b.Add(one) }},
		{"delta plus longer delta", func() { one.Add(two) }},
		{"ragged delta", func() { two.Add(two) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrLaneMismatch) {
					t.Errorf("expected ErrLaneMismatch panic, got %v", err)
				}
			}()
			tt.fn()
		})
	}
}

func TestIsFinite(t *testing.T) {
	b, _ := FromParams([]float64{1, 2, 3, 4, 5}, 1)
	if !b.IsFinite() {
		t.Error("expected finite state")
	}

	b.VY[0] = math.Inf(-1)
	if b.IsFinite() {
		t.Error("expected -Inf to be detected")
	}

	b.VY[0] = math.NaN()
	if b.IsFinite() {
		t.Error("expected NaN to be detected")
	}
}

func TestRadius(t *testing.T) {
	tests := []struct {
		m, density, want float64
	}{
		{8, 1, 2},
		{1, 1, 1},
		{54, 2, 3},
		{-8, 1, -2},
	}
	for _, tt := range tests {
		if got := Radius(tt.m, tt.density); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Radius(%v, %v) = %v, want %v", tt.m, tt.density, got, tt.want)
		}
	}

	b, _ := FromParams([]float64{0, 0, 0, 0, 8, 1, 1, 0, 0, 27}, 1)
	r := Radii(b, 1)
	if math.Abs(r[0]-2) > 1e-12 || math.Abs(r[1]-3) > 1e-12 {
		t.Errorf("Radii() = %v", r)
	}
}
