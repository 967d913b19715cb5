// Package objective implements the variance-based similarity objective.
//
// Each scale criterion is standardized across all items (zero mean, unit
// variance) so criteria with different units contribute comparably. For
// every (criterion, equalizer) pair the scorer computes the equalizer's
// value within each group and the variance of those per-group values across
// groups; the total score is the sum over all pairs. Lower is more
// balanced, and zero means every group is identical on every pair.
//
// Equalizers are summary statistics whose values are matched across groups.
// The built-in registry provides "mean" (the default), "sd" and "median";
// callers can supply any func([]float64) float64.
//
// Missing values (NaN) are excluded from standardization and per-group
// aggregation, never imputed.
package objective
