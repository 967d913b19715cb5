package objective

import (
	"fmt"
	"math"

	"github.com/m-Py/minDiff/types"
)

// Scorer computes the similarity objective for candidate assignments.
//
// Standardization happens once at construction; Score itself is a pure
// function of the assignment, so re-scoring the same labels always yields
// the identical value. Safe for concurrent use.
type Scorer struct {
	names      []string
	columns    [][]float64 // standardized copies, NaN preserved
	equalizers []Equalizer
}

// NewScorer creates a scorer over the given scale criteria.
//
// Each criterion column is standardized across all items, ignoring missing
// values. A constant column standardizes to all zeros (it cannot
// discriminate between assignments either way).
//
// Parameters:
//   - dataset: Dataset holding the scale columns
//   - scale: Names of the continuous criterion columns (at least one)
//   - equalizers: Summary statistics to equalize per criterion (at least one)
//
// Returns:
//   - *Scorer: Initialized scorer
//   - error: Unknown column or empty criterion/equalizer list
func NewScorer(dataset *types.Dataset, scale []string, equalizers []Equalizer) (*Scorer, error) {
	if len(scale) == 0 {
		return nil, types.ErrNoCriteria
	}
	if len(equalizers) == 0 {
		return nil, fmt.Errorf("%w: empty equalizer list", types.ErrInvalidConfig)
	}

	columns := make([][]float64, len(scale))
	for i, name := range scale {
		col, ok := dataset.Numeric(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownColumn, name)
		}
		columns[i] = standardize(col)
	}

	return &Scorer{names: scale, columns: columns, equalizers: equalizers}, nil
}

// Score returns the total objective value of the assignment: the sum over
// every (criterion, equalizer) pair of the population variance of the
// per-group equalizer values. Lower is more balanced; zero means every
// group is identical on every pair.
//
// Groups with no non-missing values for a criterion are skipped for that
// criterion; a pair with fewer than two populated groups contributes 0.
//
// Parameters:
//   - labels: Candidate assignment, one group label per item
//
// Returns:
//   - float64: Non-negative objective score
func (s *Scorer) Score(labels types.Assignment) float64 {
	groupIdx := make(map[int]int)
	for _, label := range labels {
		if _, ok := groupIdx[label]; !ok {
			groupIdx[label] = len(groupIdx)
		}
	}

	total := 0.0
	groups := make([][]float64, len(groupIdx))
	perGroup := make([]float64, 0, len(groupIdx))

	for _, col := range s.columns {
		for g := range groups {
			groups[g] = groups[g][:0]
		}
		for item, label := range labels {
			if v := col[item]; !math.IsNaN(v) {
				g := groupIdx[label]
				groups[g] = append(groups[g], v)
			}
		}

		for _, eq := range s.equalizers {
			perGroup = perGroup[:0]
			for _, values := range groups {
				if len(values) > 0 {
					perGroup = append(perGroup, eq(values))
				}
			}
			total += variance(perGroup)
		}
	}

	return total
}

// standardize returns a zero-mean, unit-variance copy of the column,
// computed over non-missing values only. NaN cells stay NaN.
func standardize(col []float64) []float64 {
	sum, count := 0.0, 0
	for _, v := range col {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}

	out := make([]float64, len(col))
	if count == 0 {
		copy(out, col)

		return out
	}

	mean := sum / float64(count)
	ss := 0.0
	for _, v := range col {
		if !math.IsNaN(v) {
			d := v - mean
			ss += d * d
		}
	}

	sd := 0.0
	if count > 1 {
		sd = math.Sqrt(ss / float64(count-1))
	}

	for i, v := range col {
		switch {
		case math.IsNaN(v):
			out[i] = math.NaN()
		case sd == 0:
			out[i] = 0
		default:
			out[i] = (v - mean) / sd
		}
	}

	return out
}

// variance is the population variance across per-group values. Fewer than
// two values carry no spread and contribute 0.
func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}

	return ss / float64(len(values))
}
