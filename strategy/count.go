package strategy

import (
	"math"
	"math/bits"
)

// PermutationCount returns the number of distinct multiset permutations for
// the given group sizes, i.e. the size of the exact-mode search space.
//
// For group sizes n_1..n_k summing to N the count is the multinomial
// coefficient N! / (n_1! ... n_k!), computed as the product of binomials
// C(N, n_1) * C(N-n_1, n_2) * ...: repeatedly choose the next group's
// members from the remaining pool. Each binomial is accumulated
// iteratively, so no factorial of N is ever materialized.
//
// The count grows astronomically fast: GroupLabels over a few dozen items
// already overflows uint64, in which case exact mode is impractical and the
// caller should not expect an exhaustive search to complete. Overflow is
// reported explicitly rather than wrapped.
//
// Parameters:
//   - groupSizes: Item count per group (order does not matter)
//
// Returns:
//   - uint64: Number of distinct permutations (math.MaxUint64 on overflow)
//   - bool: false if the count overflowed uint64
//
// Example:
//
//	count, ok := strategy.PermutationCount([]int{3, 3, 3}) // 1680, true
func PermutationCount(groupSizes []int) (uint64, bool) {
	remaining := 0
	for _, size := range groupSizes {
		if size < 0 {
			return 0, true
		}
		remaining += size
	}
	if remaining == 0 {
		return 1, true
	}

	total := uint64(1)
	// The last group is forced once the others are chosen, hence len-1.
	for _, size := range groupSizes[:len(groupSizes)-1] {
		choose, ok := binomial(remaining, size)
		if !ok {
			return math.MaxUint64, false
		}

		var hi uint64
		hi, total = bits.Mul64(total, choose)
		if hi != 0 {
			return math.MaxUint64, false
		}

		remaining -= size
	}

	return total, true
}

// binomial computes C(n, k) by iterative accumulation: result is multiplied
// by (n-k+i) and divided by i at each step, staying exact because every
// prefix is itself a binomial coefficient.
func binomial(n, k int) (uint64, bool) {
	if k < 0 || k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}

	result := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(result, uint64(n-k+i)) //nolint:gosec // n-k+i > 0 by loop bounds
		if hi != 0 {
			return 0, false
		}
		result = lo / uint64(i) //nolint:gosec // i >= 1
	}

	return result, true
}
