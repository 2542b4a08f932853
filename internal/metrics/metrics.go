package metrics

import (
	"sync"

	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorting"
)

type Metric interface {
	Name() string
	Observe(step sorting.Step)
	Value() float64
	Reset()
}

// Default is the metric set reported by the run command.
func Default() []Metric {
	return []Metric{
		NewSteps(),
		NewComparisons(),
		NewWrites(),
		NewInversions(),
	}
}

type Steps struct {
	name  string
	count int
}

func NewSteps() *Steps {
	return &Steps{name: "steps"}
}

func (s *Steps) Name() string { return s.name }

func (s *Steps) Observe(step sorting.Step) {
	if step.Kind != sorting.KindStart {
		s.count++
	}
}

func (s *Steps) Value() float64 { return float64(s.count) }
func (s *Steps) Reset()         { s.count = 0 }

// Comparisons counts steps that show two elements being compared. Merge
// compares inside a single merge step, so it reports one per merge.
type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string { return c.name }

func (c *Comparisons) Observe(step sorting.Step) {
	switch step.Kind {
	case sorting.KindCompare, sorting.KindMerge:
		c.count++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }
func (c *Comparisons) Reset()         { c.count = 0 }

// Writes counts array positions that changed between consecutive steps.
type Writes struct {
	name  string
	prev  []int
	count int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(step sorting.Step) {
	if len(w.prev) == len(step.Array) {
		for i, v := range step.Array {
			if w.prev[i] != v {
				w.count++
			}
		}
	}
	w.prev = append(w.prev[:0], step.Array...)
}

func (w *Writes) Value() float64 { return float64(w.count) }

func (w *Writes) Reset() {
	w.prev = w.prev[:0]
	w.count = 0
}

// Observer feeds a live run into a set of metrics. Metrics are reset when a
// new run starts.
type Observer struct {
	mu      sync.Mutex
	metrics []Metric
}

var _ player.Observer = (*Observer)(nil)

func NewObserver(ms ...Metric) *Observer {
	return &Observer{metrics: ms}
}

func (o *Observer) OnStep(f player.Frame) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if f.Seq == 0 {
		for _, m := range o.metrics {
			m.Reset()
		}
	}
	for _, m := range o.metrics {
		m.Observe(f.Step)
	}
}

// Values returns the current value of every metric keyed by name.
func (o *Observer) Values() map[string]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(map[string]float64, len(o.metrics))
	for _, m := range o.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Inversions returns a copy of the inversion history if the observer tracks one.
func (o *Observer) Inversions() []float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, m := range o.metrics {
		if inv, ok := m.(*Inversions); ok {
			return inv.History()
		}
	}
	return nil
}
