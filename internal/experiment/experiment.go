package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/shuffle"
	"github.com/san-kum/sortviz/internal/sorting"
)

type Config struct {
	Algorithm string
	Count     int
	Seed      int64
	// Values overrides the shuffled input when set.
	Values []int
}

type Result struct {
	Algorithm string
	Initial   []int
	Final     []int
	Steps     []sorting.Step
	Metrics   map[string]float64
	// Inversions holds the inversion count after every step, initial array first.
	Inversions []float64
}

// Experiment drives a generator to exhaustion without any pacing.
type Experiment struct {
	cfg        Config
	registry   *Registry
	metrics    []metrics.Metric
	randSource *rand.Rand
}

func New(cfg Config, registry *Registry) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Experiment{
		cfg:        cfg,
		registry:   registry,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (e *Experiment) AddMetric(m metrics.Metric) { e.metrics = append(e.metrics, m) }

func (e *Experiment) initial() ([]int, error) {
	if e.cfg.Values != nil {
		return append([]int(nil), e.cfg.Values...), nil
	}
	if e.cfg.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", e.cfg.Count)
	}
	return shuffle.Permutation(e.cfg.Count, e.randSource)
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	values, err := e.initial()
	if err != nil {
		return nil, err
	}
	gen, err := e.registry.Get(e.cfg.Algorithm, values)
	if err != nil {
		return nil, err
	}

	inv := metrics.NewInversions()
	observers := append([]metrics.Metric{inv}, e.metrics...)
	for _, m := range observers {
		m.Reset()
		m.Observe(sorting.Initial(values))
	}

	result := &Result{
		Algorithm: e.cfg.Algorithm,
		Initial:   values,
		Final:     values,
		Metrics:   make(map[string]float64),
	}

	for step := range sorting.All(gen) {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range observers {
			m.Observe(step)
		}
		result.Steps = append(result.Steps, step)
		result.Final = step.Array
	}

	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Inversions = inv.History()
	return result, nil
}

// StepAt returns the k-th step of a run, 0 being the initial array. Indexes
// past the end return the terminal step.
func (r *Result) StepAt(k int) sorting.Step {
	if k <= 0 || len(r.Steps) == 0 {
		return sorting.Initial(r.Initial)
	}
	if k > len(r.Steps) {
		k = len(r.Steps)
	}
	return r.Steps[k-1]
}
