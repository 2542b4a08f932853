package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/sortviz/internal/sorting"
)

type Registry struct {
	algorithms map[string]func([]int) sorting.Generator
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func([]int) sorting.Generator),
	}

	r.algorithms[string(sorting.Bubble)] = sorting.NewBubble
	r.algorithms[string(sorting.Insertion)] = sorting.NewInsertion
	r.algorithms[string(sorting.Merge)] = sorting.NewMerge
	r.algorithms[string(sorting.Quick)] = sorting.NewQuick

	return r
}

// Register adds or replaces a generator constructor.
func (r *Registry) Register(name string, fn func([]int) sorting.Generator) {
	r.algorithms[name] = fn
}

func (r *Registry) Get(name string, values []int) (sorting.Generator, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sorting.ErrUnknownAlgorithm, name)
	}
	return fn(values), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
