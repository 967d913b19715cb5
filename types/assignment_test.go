package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupLabels(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		labels := GroupLabels(6, 2)

		require.Equal(t, Assignment{1, 1, 1, 2, 2, 2}, labels)
	})

	t.Run("remainder goes to low labels", func(t *testing.T) {
		labels := GroupLabels(7, 3)

		require.Equal(t, Assignment{1, 1, 1, 2, 2, 3, 3}, labels)
		require.Equal(t, map[int]int{1: 3, 2: 2, 3: 2}, labels.Composition())
	})

	t.Run("groups differ by at most one", func(t *testing.T) {
		for n := 2; n <= 30; n++ {
			for setsN := 2; setsN <= n; setsN++ {
				sizes := GroupLabels(n, setsN).GroupSizes()
				require.Len(t, sizes, setsN)

				minSize, maxSize := sizes[0], sizes[0]
				for _, s := range sizes {
					minSize = min(minSize, s)
					maxSize = max(maxSize, s)
				}
				require.LessOrEqual(t, maxSize-minSize, 1, "n=%d setsN=%d", n, setsN)
			}
		}
	})

	t.Run("degenerate inputs yield empty multiset", func(t *testing.T) {
		require.Empty(t, GroupLabels(0, 2))
		require.Empty(t, GroupLabels(5, 0))
	})
}

func TestAssignment_Clone(t *testing.T) {
	a := Assignment{1, 2, 1, 2}
	b := a.Clone()

	b[0] = 9

	require.Equal(t, Assignment{1, 2, 1, 2}, a)
	require.True(t, a.Equal(Assignment{1, 2, 1, 2}))
	require.False(t, a.Equal(b))
}

func TestAssignment_Fingerprint(t *testing.T) {
	t.Run("identical sequences collide, permutations do not", func(t *testing.T) {
		a := Assignment{1, 1, 2, 2}
		b := Assignment{1, 1, 2, 2}
		c := Assignment{1, 2, 1, 2}

		require.Equal(t, a.Fingerprint(), b.Fingerprint())
		require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	})
}

func TestAssignment_DistinctLabels(t *testing.T) {
	require.Equal(t, 3, Assignment{1, 2, 3, 1}.DistinctLabels())
	require.Equal(t, 0, Assignment{}.DistinctLabels())
}
