package strategy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermutationCount(t *testing.T) {
	t.Run("known small spaces", func(t *testing.T) {
		tests := []struct {
			name  string
			sizes []int
			want  uint64
		}{
			{"two groups of two", []int{2, 2}, 6},
			{"three groups of three", []int{3, 3, 3}, 1680},
			{"single group", []int{5}, 1},
			{"uneven split", []int{3, 2}, 10},
			{"singletons", []int{1, 1, 1, 1}, 24},
			{"empty", nil, 1},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				count, ok := PermutationCount(tt.sizes)

				require.True(t, ok)
				require.Equal(t, tt.want, count)
			})
		}
	})

	t.Run("order of group sizes does not matter", func(t *testing.T) {
		a, ok := PermutationCount([]int{4, 2, 3})
		require.True(t, ok)
		b, ok := PermutationCount([]int{2, 3, 4})
		require.True(t, ok)

		require.Equal(t, a, b)
	})

	t.Run("saturates on overflow", func(t *testing.T) {
		// 2 groups of 40: C(80, 40) ~ 1.08e23, beyond uint64.
		count, ok := PermutationCount([]int{40, 40})

		require.False(t, ok)
		require.Equal(t, uint64(math.MaxUint64), count)
	})
}
