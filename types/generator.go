package types

// Generator produces candidate group-label assignments.
//
// Built-in generators:
//   - Random: uniformly random multiset permutations (unbiased shuffle)
//   - Exact: lexicographically-next multiset permutations, wrapping from
//     the maximal permutation back to the ascending sort
//
// The search controller calls Next on every iteration. Implementations
// must preserve the multiset composition: the returned assignment carries
// exactly the same label counts as the input.
//
// Generator implementations should:
//   - Never mutate the input slice (return a fresh assignment)
//   - Run quickly (called on the hot path)
//   - Carry no state beyond what their algorithm requires (an RNG stream
//     for Random, nothing for Exact)
type Generator interface {
	// Next returns the next candidate permutation of the given labels.
	//
	// Parameters:
	//   - labels: Previous assignment (composition source)
	//
	// Returns:
	//   - Assignment: New assignment with identical composition
	Next(labels Assignment) Assignment
}
