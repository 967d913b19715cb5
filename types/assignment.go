package types

import (
	"encoding/binary"
	"slices"

	"github.com/zeebo/xxh3"
)

// Assignment maps item index to group label; it is one permutation of the
// group label multiset. Labels are 1-based group identifiers.
type Assignment []int

// GroupLabels returns the canonical group label multiset for n items split
// into setsN groups, ascending-sorted.
//
// Group sizes are as even as possible: when n is not divisible by setsN,
// the remainder r = n mod setsN is spread over labels 1..r, so groups
// differ in size by at most one.
//
// Parameters:
//   - n: Number of items
//   - setsN: Number of groups (labels 1..setsN)
//
// Returns:
//   - Assignment: Sorted label multiset, e.g. GroupLabels(5, 2) = [1 1 1 2 2]
func GroupLabels(n, setsN int) Assignment {
	if n <= 0 || setsN <= 0 {
		return Assignment{}
	}

	base := n / setsN
	remainder := n % setsN

	labels := make(Assignment, 0, n)
	for g := 1; g <= setsN; g++ {
		size := base
		if g <= remainder {
			size++
		}
		for range size {
			labels = append(labels, g)
		}
	}

	return labels
}

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// Composition returns the count of items per group label.
//
// The composition is invariant across the whole search; only the
// permutation varies.
//
// Returns:
//   - map[int]int: Label -> number of items carrying that label
func (a Assignment) Composition() map[int]int {
	counts := make(map[int]int)
	for _, label := range a {
		counts[label]++
	}

	return counts
}

// GroupSizes returns the per-group sizes ordered by ascending label.
//
// Returns:
//   - []int: Size of each group present in the assignment
func (a Assignment) GroupSizes() []int {
	counts := a.Composition()
	labels := make([]int, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	sizes := make([]int, len(labels))
	for i, label := range labels {
		sizes[i] = counts[label]
	}

	return sizes
}

// DistinctLabels returns the number of distinct group labels present.
func (a Assignment) DistinctLabels() int {
	return len(a.Composition())
}

// Fingerprint returns a 64-bit xxh3 hash of the label sequence.
//
// Fingerprints identify a labeling cheaply: the exact-mode generator uses
// them to detect wrap-around and sinks use them to de-duplicate snapshots.
func (a Assignment) Fingerprint() uint64 {
	buf := make([]byte, 8*len(a))
	for i, label := range a {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(label)) //nolint:gosec // labels are small positive ints
	}

	return xxh3.Hash(buf)
}

// Equal reports whether two assignments are the same label sequence.
func (a Assignment) Equal(b Assignment) bool {
	return slices.Equal(a, b)
}
