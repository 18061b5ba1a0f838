package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/gravsim/internal/physics"
)

func TestEnsembleRun(t *testing.T) {
	b := binary(t)
	e := NewEnsemble(func() []Metric { return []Metric{&testMetric{}} },
		Run{Name: "superstep", Stepper: physics.Superstep, Bodies: b},
		Run{Name: "rk4", Stepper: physics.RawStep, Bodies: b},
	)
	e.Add(Run{Name: "euler", Stepper: physics.EulerStep, Bodies: b})
	e.SetParallel(2)

	cfg := DefaultConfig()
	cfg.Frames = 50

	results, err := e.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for name, r := range results {
		if r.FramesTaken != 50 {
			t.Errorf("%s: expected 50 frames, got %d", name, r.FramesTaken)
		}
		if _, ok := r.Metrics["test"]; !ok {
			t.Errorf("%s: metric missing", name)
		}
	}

	if results["superstep"].EnergyDrift >= results["euler"].EnergyDrift {
		t.Errorf("superstep drift %g not below euler drift %g",
			results["superstep"].EnergyDrift, results["euler"].EnergyDrift)
	}
}

func TestEnsembleError(t *testing.T) {
	e := NewEnsemble(nil, Run{Name: "bad", Stepper: physics.Superstep, Bodies: binary(t)})

	cfg := DefaultConfig()
	cfg.Dt = 0
	if _, err := e.Run(context.Background(), cfg); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}
