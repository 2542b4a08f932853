package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/sortviz/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs several algorithms over the same input concurrently.
type Ensemble struct {
	registry   *Registry
	algorithms []string
	newMetrics func() []metrics.Metric
}

// NewEnsemble compares algorithms, or every registered algorithm when none
// are given. newMetrics builds a fresh metric set per run and may be nil.
func NewEnsemble(registry *Registry, algorithms []string, newMetrics func() []metrics.Metric) *Ensemble {
	if registry == nil {
		registry = NewRegistry()
	}
	if len(algorithms) == 0 {
		algorithms = registry.List()
	}
	if newMetrics == nil {
		newMetrics = metrics.Default
	}
	return &Ensemble{registry: registry, algorithms: algorithms, newMetrics: newMetrics}
}

// Run sorts values with every algorithm. Results are in algorithm order.
func (e *Ensemble) Run(ctx context.Context, values []int) ([]*Result, error) {
	results := make([]*Result, len(e.algorithms))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, alg := range e.algorithms {
		eg.Go(func() error {
			exp := New(Config{Algorithm: alg, Values: values}, e.registry)
			for _, m := range e.newMetrics() {
				exp.AddMetric(m)
			}
			res, err := exp.Run(egCtx)
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
