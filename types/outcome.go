package types

// Outcome describes how a search terminated.
//
// Search progression:
//
//	Init → Iterating → (BestFound | Exhausted | NoCriteria | Infeasible | Canceled)
//
// Infeasible and Canceled are recoverable conditions, not errors: the
// search result still reports iteration counts, and Canceled carries the
// best assignment found before cancellation.
type Outcome int

const (
	// OutcomeNone is the zero value before a search has terminated.
	OutcomeNone Outcome = iota

	// OutcomeBestFound indicates the random-mode repetition budget was
	// evaluated and a best-scoring assignment was retained.
	OutcomeBestFound

	// OutcomeExhausted indicates exact mode enumerated the full permutation
	// space.
	OutcomeExhausted

	// OutcomeNoCriteria indicates a nominal-only run: the first candidate
	// passing the balance check was accepted and the search stopped.
	OutcomeNoCriteria

	// OutcomeInfeasible indicates no candidate satisfied the nominal
	// tolerances within the budget; the result has no assignment. Relax the
	// tolerances or increase the budget.
	OutcomeInfeasible

	// OutcomeCanceled indicates the context was canceled between iterations;
	// the best assignment found so far is returned.
	OutcomeCanceled
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeBestFound:
		return "BestFound"
	case OutcomeExhausted:
		return "Exhausted"
	case OutcomeNoCriteria:
		return "NoCriteria"
	case OutcomeInfeasible:
		return "Infeasible"
	case OutcomeCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}
