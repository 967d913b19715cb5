package strategy

import (
	"math/rand"
	"time"

	"github.com/m-Py/minDiff/types"
)

// Random generates uniformly random multiset permutations.
type Random struct {
	rng *rand.Rand
}

var _ types.Generator = (*Random)(nil)

// NewRandom creates a new random generator seeded from the current time.
//
// Each generated candidate is an independent, unbiased shuffle of the
// label multiset; the generator carries no state besides its RNG stream.
//
// Returns:
//   - *Random: Initialized random generator
//
// Example:
//
//	gen := strategy.NewRandom()
//	searcher, err := mindiff.NewSearcher(&cfg, data, mindiff.WithGenerator(gen))
func NewRandom() *Random {
	return NewRandomWithSeed(time.Now().UnixNano())
}

// NewRandomWithSeed creates a random generator with a fixed seed.
//
// A fixed seed makes the candidate sequence reproducible, which is what
// tests and parallel tie-breaking determinism rely on.
//
// Parameters:
//   - seed: Seed for the RNG stream
//
// Returns:
//   - *Random: Initialized random generator
func NewRandomWithSeed(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // statistical sampling, not cryptography
}

// Next returns a uniformly random permutation of the labels.
//
// The input is never mutated. Uses a Fisher-Yates shuffle, so every
// distinct arrangement of the multiset is equally likely.
//
// Parameters:
//   - labels: Previous assignment (only its composition matters)
//
// Returns:
//   - types.Assignment: Fresh random permutation with identical composition
func (r *Random) Next(labels types.Assignment) types.Assignment {
	next := labels.Clone()
	r.rng.Shuffle(len(next), func(i, j int) {
		next[i], next[j] = next[j], next[i]
	})

	return next
}
