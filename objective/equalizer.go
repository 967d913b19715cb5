package objective

import (
	"fmt"
	"math"
	"slices"

	"github.com/m-Py/minDiff/types"
)

// Equalizer is a summary statistic whose value is matched across groups for
// a scale criterion. It receives the group's non-missing standardized
// values; the slice may be reordered but must not be retained.
type Equalizer func(values []float64) float64

// Built-in equalizer names accepted by Lookup.
const (
	EqualizerMean   = "mean"
	EqualizerSD     = "sd"
	EqualizerMedian = "median"
)

// Mean returns the arithmetic mean, the default equalizer.
//
// Returns NaN for an empty slice; the scorer never passes one.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// SD returns the sample standard deviation (n-1 divisor, matching R's sd).
//
// A group of fewer than two values has no spread to equalize; SD returns 0
// so such groups never poison the score with NaN.
func SD(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	m := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(values)-1))
}

// Median returns the middle value (average of the two middle values for an
// even count). The input slice is sorted in place.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	slices.Sort(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}

	return (values[mid-1] + values[mid]) / 2
}

// Lookup resolves a registered equalizer by name.
//
// Parameters:
//   - name: One of "mean", "sd", "median"
//
// Returns:
//   - Equalizer: The named statistic
//   - error: types.ErrUnknownEqualizer for unregistered names
func Lookup(name string) (Equalizer, error) {
	switch name {
	case EqualizerMean:
		return Mean, nil
	case EqualizerSD:
		return SD, nil
	case EqualizerMedian:
		return Median, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownEqualizer, name)
	}
}
