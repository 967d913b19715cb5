package strategy

import (
	"slices"
	"testing"

	"github.com/m-Py/minDiff/types"
	"github.com/stretchr/testify/require"
)

func TestExact_Next(t *testing.T) {
	t.Run("steps through 2+2 in lexicographic order", func(t *testing.T) {
		gen := NewExact()

		want := []types.Assignment{
			{1, 1, 2, 2},
			{1, 2, 1, 2},
			{1, 2, 2, 1},
			{2, 1, 1, 2},
			{2, 1, 2, 1},
			{2, 2, 1, 1},
		}

		current := want[0]
		for i := 1; i < len(want); i++ {
			current = gen.Next(current)
			require.Equal(t, want[i], current)
		}

		// Maximal permutation wraps back to the sorted start.
		require.Equal(t, want[0], gen.Next(current))
	})

	t.Run("emits every distinct permutation exactly once before wrapping", func(t *testing.T) {
		gen := NewExact()
		start := types.GroupLabels(9, 3)

		count, ok := PermutationCount(start.GroupSizes())
		require.True(t, ok)
		require.Equal(t, uint64(1680), count)

		seen := map[uint64]struct{}{start.Fingerprint(): {}}
		previous := start
		calls := uint64(1)
		for {
			next := gen.Next(previous)
			if next.Equal(start) {
				break
			}

			// Strictly increasing lexicographic order.
			require.Equal(t, 1, slices.Compare(next, previous))
			require.Equal(t, start.Composition(), next.Composition())

			fp := next.Fingerprint()
			_, dup := seen[fp]
			require.False(t, dup, "permutation emitted twice: %v", next)
			seen[fp] = struct{}{}

			previous = next
			calls++
		}

		require.Equal(t, count, calls)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		gen := NewExact()
		labels := types.Assignment{1, 2, 2, 1}
		before := labels.Clone()

		gen.Next(labels)

		require.Equal(t, before, labels)
	})

	t.Run("handles trivial sequences", func(t *testing.T) {
		gen := NewExact()

		require.Equal(t, types.Assignment{1}, gen.Next(types.Assignment{1}))
		require.Empty(t, gen.Next(types.Assignment{}))
	})
}
