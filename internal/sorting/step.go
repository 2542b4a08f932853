package sorting

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// NoHighlight marks a step without a primary index.
const NoHighlight = -1

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
)

// Algorithms lists every algorithm in display order.
var Algorithms = []Algorithm{Bubble, Insertion, Merge, Quick}

type StepKind int

const (
	KindStart StepKind = iota
	KindCompare
	KindSwap
	KindSplit
	KindMerge
	KindCommit
	KindPivot
	KindDone
)

func (k StepKind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindCompare:
		return "compare"
	case KindSwap:
		return "swap"
	case KindSplit:
		return "split"
	case KindMerge:
		return "merge"
	case KindCommit:
		return "commit"
	case KindPivot:
		return "pivot"
	case KindDone:
		return "done"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Range is the half-open index span [Start, End). An empty range means "none".
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func Span(start, end int) Range { return Range{Start: start, End: end} }

func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) Empty() bool { return r.Len() == 0 }

func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Step is one snapshot of a sort in progress. Array is owned by the step.
type Step struct {
	Array       []int
	Primary     int
	Secondary   Range
	Scope       Range
	FastForward bool
	Kind        StepKind
}

func (s Step) Terminal() bool { return s.Kind == KindDone }

// Initial is the step shown before a generator has produced anything.
func Initial(values []int) Step {
	return newBuffer(values).snapshot(KindStart, NoHighlight)
}

// Generator yields the steps of a single run. Once Next reports false it
// keeps reporting false.
type Generator interface {
	Next() (Step, bool)
}

// New builds the generator for alg over a private copy of values.
func New(alg Algorithm, values []int) (Generator, error) {
	switch alg {
	case Bubble:
		return NewBubble(values), nil
	case Insertion:
		return NewInsertion(values), nil
	case Merge:
		return NewMerge(values), nil
	case Quick:
		return NewQuick(values), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	for _, alg := range Algorithms {
		if string(alg) == name {
			return alg, nil
		}
	}
	if name == "insert" {
		return Insertion, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// DefaultDelay is the pacing between steps used when nothing else is configured.
func DefaultDelay(alg Algorithm) time.Duration {
	switch alg {
	case Merge, Quick:
		return 250 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

// All adapts g to a range-over-func sequence.
func All(g Generator) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			step, ok := g.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

// Collect drains g.
func Collect(g Generator) []Step {
	var steps []Step
	for step := range All(g) {
		steps = append(steps, step)
	}
	return steps
}

// buffer is the array a generator mutates in place.
type buffer []int

func newBuffer(values []int) buffer {
	b := make(buffer, len(values))
	copy(b, values)
	return b
}

func (b buffer) snapshot(kind StepKind, primary int) Step {
	arr := make([]int, len(b))
	copy(arr, b)
	return Step{Array: arr, Primary: primary, Kind: kind}
}

func (b buffer) done() Step {
	return b.snapshot(KindDone, NoHighlight)
}
