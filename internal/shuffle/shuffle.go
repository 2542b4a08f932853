// Package shuffle produces the randomized arrays that every sort run starts from.
package shuffle

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrInvalidCount = errors.New("shuffle: count must not be negative")

// Intn is the slice of *rand.Rand the shuffle needs.
type Intn interface {
	Intn(n int) int
}

// Sequence returns 1..n.
func Sequence(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values, nil
}

// Shuffle returns a uniformly shuffled copy of values. The input is left untouched.
func Shuffle(values []int, rng Intn) []int {
	out := make([]int, len(values))
	copy(out, values)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Permutation returns a random ordering of 1..n.
func Permutation(n int, rng Intn) ([]int, error) {
	values, err := Sequence(n)
	if err != nil {
		return nil, err
	}
	return Shuffle(values, rng), nil
}

// Shuffler hands out permutations from a seeded source so a run can be
// replayed from its seed.
type Shuffler struct {
	rng  *rand.Rand
	seed int64
}

func NewShuffler(seed int64) *Shuffler {
	return &Shuffler{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

func (s *Shuffler) Seed() int64 { return s.seed }

func (s *Shuffler) Permutation(n int) ([]int, error) {
	return Permutation(n, s.rng)
}
