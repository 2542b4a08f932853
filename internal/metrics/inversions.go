package metrics

import "github.com/san-kum/sortviz/internal/sorting"

const historyCapacity = 600

// Inversions tracks how unsorted the array is: the number of index pairs
// i < j with a[i] > a[j]. It is zero once the run is sorted.
type Inversions struct {
	name    string
	current int
	history []float64
}

func NewInversions() *Inversions {
	return &Inversions{
		name:    "inversions",
		history: make([]float64, 0, 64),
	}
}

func (m *Inversions) Name() string { return m.name }

func (m *Inversions) Observe(step sorting.Step) {
	m.current = Count(step.Array)
	m.history = append(m.history, float64(m.current))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Inversions) Value() float64 { return float64(m.current) }

func (m *Inversions) History() []float64 {
	return append([]float64(nil), m.history...)
}

func (m *Inversions) Reset() {
	m.current = 0
	m.history = m.history[:0]
}

// Count is the O(n^2) inversion count; arrays here are small.
func Count(values []int) int {
	n := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}
