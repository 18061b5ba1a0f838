package dynamo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/gravsim/internal/physics"
)

// Run is one member of an ensemble.
type Run struct {
	Name    string
	Stepper Stepper
	Bodies  physics.Bodies
}

// Ensemble runs independent simulations side by side. Each run gets its own
// Simulator and its own metrics from the factory.
type Ensemble struct {
	runs     []Run
	metrics  func() []Metric
	parallel int
}

func NewEnsemble(metrics func() []Metric, runs ...Run) *Ensemble {
	return &Ensemble{runs: runs, metrics: metrics, parallel: runtime.GOMAXPROCS(0)}
}

func (e *Ensemble) Add(r Run) { e.runs = append(e.runs, r) }

// SetParallel bounds how many runs execute at once.
func (e *Ensemble) SetParallel(n int) {
	if n > 0 {
		e.parallel = n
	}
}

// Run executes every member with cfg. Results are keyed by run name. The
// first failing run cancels the others.
func (e *Ensemble) Run(ctx context.Context, cfg Config) (map[string]*Result, error) {
	results := make([]*Result, len(e.runs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallel)

	for i, r := range e.runs {
		g.Go(func() error {
			s := New(r.Stepper)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}
			res, err := s.Run(ctx, r.Bodies, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*Result, len(e.runs))
	for i, r := range e.runs {
		out[r.Name] = results[i]
	}
	return out, nil
}
