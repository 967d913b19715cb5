// Package metrics provides MetricsCollector implementations for the
// minDiff library.
package metrics

import "github.com/m-Py/minDiff/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used. It is also embedded by PrometheusCollector so partial
// instrumentation still satisfies the full interface.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	searcher, err := mindiff.NewSearcher(&cfg, data, mindiff.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SearchMetrics implementation

// RecordSearchDuration discards the search duration metric.
func (n *NopMetrics) RecordSearchDuration(_ /* mode */ string, _ /* seconds */ float64) {
	// No-op
}

// RecordBestScore discards the best score metric.
func (n *NopMetrics) RecordBestScore(_ /* score */ float64) {
	// No-op
}

// RecordImprovement discards the improvement metric.
func (n *NopMetrics) RecordImprovement(_ /* iteration */ uint64) {
	// No-op
}

// RecordOutcome discards the outcome metric.
func (n *NopMetrics) RecordOutcome(_ /* outcome */ types.Outcome) {
	// No-op
}

// CandidateMetrics implementation

// RecordCandidate discards the candidate evaluation metric.
func (n *NopMetrics) RecordCandidate(_ /* accepted */ bool) {
	// No-op
}

// RecordActiveWorkers discards the active workers metric.
func (n *NopMetrics) RecordActiveWorkers(_ /* count */ int) {
	// No-op
}

// SinkMetrics implementation

// RecordSnapshotWrite discards the snapshot write metric.
func (n *NopMetrics) RecordSnapshotWrite(_ /* success */ bool) {
	// No-op
}

// ObserveSnapshotLatency discards the snapshot latency metric.
func (n *NopMetrics) ObserveSnapshotLatency(_ /* seconds */ float64) {
	// No-op
}
