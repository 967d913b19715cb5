package strategy

import (
	"slices"

	"github.com/m-Py/minDiff/types"
)

// Exact generates multiset permutations in lexicographic order.
type Exact struct{}

var _ types.Generator = (*Exact)(nil)

// NewExact creates a new exhaustive lexicographic generator.
//
// Starting from the ascending-sorted multiset and calling Next repeatedly
// emits every distinct multiset permutation exactly once, in strictly
// increasing lexicographic order, before wrapping back to the sorted
// sequence. The generator itself is stateless: the next permutation is a
// pure function of the previous one, which is what makes exact-mode
// searches resumable.
//
// Returns:
//   - *Exact: Initialized exact generator
func NewExact() *Exact {
	return &Exact{}
}

// Next returns the lexicographically next-greater permutation of the labels.
//
// Group labels are treated as an ordered alphabet and the assignment as a
// sequence compared element-wise left-to-right. The algorithm is the
// standard next-permutation adapted to repeated symbols:
//
//  1. Scan from the right for the longest non-increasing suffix; the
//     element just before it is the pivot.
//  2. No pivot means the sequence is the maximal permutation: wrap around
//     by returning the ascending sort.
//  3. Swap the pivot with the smallest suffix element strictly greater
//     than it.
//  4. Reverse the suffix so it is ascending again.
//
// The input is never mutated.
//
// Parameters:
//   - labels: Previous assignment in the enumeration
//
// Returns:
//   - types.Assignment: Next permutation, or the sorted sequence on wrap
func (e *Exact) Next(labels types.Assignment) types.Assignment {
	next := labels.Clone()
	if len(next) < 2 {
		return next
	}

	// Step 1: find the pivot just before the non-increasing suffix.
	pivot := len(next) - 2
	for pivot >= 0 && next[pivot] >= next[pivot+1] {
		pivot--
	}

	// Step 2: already maximal, wrap to the ascending sort.
	if pivot < 0 {
		slices.Sort(next)

		return next
	}

	// Step 3: rightmost suffix element strictly greater than the pivot.
	// The suffix is non-increasing, so scanning from the right finds the
	// smallest such value.
	swap := len(next) - 1
	for next[swap] <= next[pivot] {
		swap--
	}
	next[pivot], next[swap] = next[swap], next[pivot]

	// Step 4: reverse the suffix to make it ascending.
	slices.Reverse(next[pivot+1:])

	return next
}
