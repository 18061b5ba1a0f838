package dynamo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/gravsim/internal/physics"
)

type Simulator struct {
	stepper   Stepper
	metrics   []Metric
	observers []Observer
}

func New(stepper Stepper) *Simulator {
	return &Simulator{
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances b for cfg.Frames frames. The input state is left untouched;
// the last state reached is returned in Result.Final.
func (s *Simulator) Run(ctx context.Context, b physics.Bodies, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Frames:  make([]Frame, 0, cfg.Frames+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	start := time.Now()
	t := 0.0
	dt := cfg.Dt * cfg.Speed

	result.Frames = append(result.Frames, Diagnose(b, t))
	s.observe(b, t)

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			result.Final = b
			return result, ctx.Err()
		default:
		}

		next := s.stepper(b, dt, cfg.Substeps)

		if cfg.ValidateState && !next.IsFinite() {
			result.Errors = append(result.Errors, SimError{Time: t, Frame: i, Wrapped: ErrInvalidState})
			break
		}

		b = next
		t += dt
		result.FramesTaken++

		result.Frames = append(result.Frames, Diagnose(b, t))
		s.observe(b, t)
	}

	result.Final = b
	result.Elapsed = time.Since(start)

	initialEnergy := result.Frames[0].Energy
	finalEnergy := result.Frames[len(result.Frames)-1].Energy
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) observe(b physics.Bodies, t float64) {
	for _, m := range s.metrics {
		m.Observe(b, t)
	}
	for _, obs := range s.observers {
		obs.OnFrame(b, t)
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrParameterBounds, cfg.Dt)
	}
	if cfg.Substeps <= 0 {
		return fmt.Errorf("%w: substeps must be positive, got %d", ErrParameterBounds, cfg.Substeps)
	}
	if cfg.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrParameterBounds, cfg.Frames)
	}
	if cfg.Speed < 0 {
		return fmt.Errorf("%w: speed must not be negative, got %f", ErrParameterBounds, cfg.Speed)
	}
	return nil
}

// RunWithCallback steps b until the callback returns false or ctx is done.
// The callback sees every state, starting with b itself.
func (s *Simulator) RunWithCallback(ctx context.Context, b physics.Bodies, cfg Config, callback func(physics.Bodies, float64) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	dt := cfg.Dt * cfg.Speed

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(b, t) {
			return nil
		}

		b = s.stepper(b, dt, cfg.Substeps)
		t += dt

		if cfg.ValidateState && !b.IsFinite() {
			return SimError{Time: t, Wrapped: ErrInvalidState}
		}
	}
}
