// Package strategy provides built-in candidate generator implementations.
//
// Candidate generators produce group-label assignments for the search
// controller to evaluate. The package includes two built-in generators:
//
//   - Random: uniformly random multiset permutations (recommended for all
//     but the smallest inputs)
//   - Exact: exhaustive lexicographic enumeration of every distinct
//     multiset permutation (guarantees the optimal assignment is found)
//
// # Generator Selection Guide
//
// Random:
//   - Use when the permutation space is large (almost always)
//   - Quality scales with the repetition budget
//   - Embarrassingly parallel: candidates are independent
//
// Exact:
//   - Use when PermutationCount is small enough to enumerate
//   - Strictly sequential: each permutation depends on the previous one
//   - Visits every distinct permutation exactly once before wrapping
//
// PermutationCount reports the size of the enumeration space so callers
// can decide between the two. Custom generators can be implemented by
// satisfying the types.Generator interface.
package strategy
