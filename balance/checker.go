package balance

import (
	"fmt"

	"github.com/m-Py/minDiff/types"
)

// MaxNominal is the maximum number of nominal criteria per run.
const MaxNominal = 2

// Checker decides whether an assignment satisfies the categorical balance
// tolerances. It is a pure function of its inputs: Check has no side
// effects and is safe for concurrent use.
type Checker struct {
	names      []string
	columns    [][]string
	tolerances []float64
}

// NewChecker creates a balance checker for up to two nominal criteria.
//
// The tolerance vector must contain one value for a single criterion, or
// exactly three values for two criteria: the marginal tolerance of each
// criterion followed by the tolerance of their joint (cross) distribution.
// Use math.Inf(1) for a tolerance that always passes.
//
// Parameters:
//   - dataset: Dataset holding the nominal columns
//   - nominal: Names of one or two categorical columns
//   - tolerances: Tolerance vector (length 1 or 3, values >= 0 or +Inf)
//
// Returns:
//   - *Checker: Initialized checker
//   - error: Unknown column, criterion count, or tolerance vector mismatch
func NewChecker(dataset *types.Dataset, nominal []string, tolerances []float64) (*Checker, error) {
	if len(nominal) == 0 {
		return nil, types.ErrNoCriteria
	}
	if len(nominal) > MaxNominal {
		return nil, fmt.Errorf("%w: got %d", types.ErrTooManyNominal, len(nominal))
	}

	want := 1
	if len(nominal) == MaxNominal {
		want = 3
	}
	if len(tolerances) != want {
		return nil, fmt.Errorf("%w: %d criteria need %d values, got %d",
			types.ErrToleranceMismatch, len(nominal), want, len(tolerances))
	}
	for i, tol := range tolerances {
		if tol < 0 {
			return nil, fmt.Errorf("%w: tolerance %d is negative (%v)", types.ErrInvalidConfig, i, tol)
		}
	}

	columns := make([][]string, len(nominal))
	for i, name := range nominal {
		col, ok := dataset.Nominal(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownColumn, name)
		}
		columns[i] = col
	}

	return &Checker{names: nominal, columns: columns, tolerances: tolerances}, nil
}

// Check reports whether the assignment's per-group category distributions
// are within every tolerance.
//
// Parameters:
//   - labels: Candidate assignment, one group label per item
//
// Returns:
//   - bool: true iff every marginal and joint imbalance is tolerated
func (c *Checker) Check(labels types.Assignment) bool {
	groupIdx := groupIndex(labels)

	for i, col := range c.columns {
		if imbalance(contingency(labels, groupIdx, col)) > c.tolerances[i] {
			return false
		}
	}

	if len(c.columns) == MaxNominal {
		joint := jointColumn(c.columns[0], c.columns[1])
		if imbalance(contingency(labels, groupIdx, joint)) > c.tolerances[2] {
			return false
		}
	}

	return true
}

// Imbalance returns the overall imbalance of one nominal criterion under
// the assignment: the maximum max-minus-min group count over all category
// columns. Exposed for diagnostics; Check is the hot-path entry point.
//
// Parameters:
//   - labels: Candidate assignment
//   - criterion: Index of the nominal criterion (0 or 1)
//
// Returns:
//   - float64: Criterion imbalance (0 for a perfectly even distribution)
func (c *Checker) Imbalance(labels types.Assignment, criterion int) float64 {
	return imbalance(contingency(labels, groupIndex(labels), c.columns[criterion]))
}

// groupIndex maps each distinct label to a dense group index.
func groupIndex(labels types.Assignment) map[int]int {
	idx := make(map[int]int)
	for _, label := range labels {
		if _, ok := idx[label]; !ok {
			idx[label] = len(idx)
		}
	}

	return idx
}

// contingency builds the group-by-category count table. Every category
// observed anywhere gets a count slot for every group, so categories absent
// from a group count as zero. Missing values ("") form a category of their
// own: imbalance in missingness counts too.
func contingency(labels types.Assignment, groupIdx map[int]int, col []string) map[string][]int {
	table := make(map[string][]int)
	for item, label := range labels {
		counts, ok := table[col[item]]
		if !ok {
			counts = make([]int, len(groupIdx))
			table[col[item]] = counts
		}
		counts[groupIdx[label]]++
	}

	return table
}

// imbalance returns the maximum max-minus-min group count over all category
// columns of a contingency table.
func imbalance(table map[string][]int) float64 {
	worst := 0
	for _, counts := range table {
		lo, hi := counts[0], counts[0]
		for _, n := range counts[1:] {
			lo = min(lo, n)
			hi = max(hi, n)
		}
		worst = max(worst, hi-lo)
	}

	return float64(worst)
}

// jointColumn combines two categorical columns into the column of their
// cross distribution.
func jointColumn(a, b []string) []string {
	joint := make([]string, len(a))
	for i := range a {
		joint[i] = a[i] + "\x1f" + b[i]
	}

	return joint
}
