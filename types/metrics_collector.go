package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// In parallel random mode the candidate methods are called from worker
// goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces so sinks and
// internal components can depend on only what they record.
type MetricsCollector interface {
	SearchMetrics
	CandidateMetrics
	SinkMetrics
}

// SearchMetrics defines metrics for whole-search operations.
type SearchMetrics interface {
	// RecordSearchDuration records the wall-clock duration of a completed search.
	//
	// Parameters:
	//   - mode: Search mode ("random" or "exact")
	//   - seconds: Time taken in seconds
	RecordSearchDuration(mode string, seconds float64)

	// RecordBestScore sets the current best objective score (gauge metric).
	RecordBestScore(score float64)

	// RecordImprovement records that a strictly better assignment was adopted.
	//
	// Parameters:
	//   - iteration: Iteration index at which the improvement occurred
	RecordImprovement(iteration uint64)

	// RecordOutcome records the terminal outcome of a search.
	RecordOutcome(outcome Outcome)
}

// CandidateMetrics defines metrics for per-candidate evaluation.
type CandidateMetrics interface {
	// RecordCandidate records one evaluated candidate.
	//
	// Parameters:
	//   - accepted: true if the candidate passed the categorical balance
	//     check (or no nominal criteria were configured), false if rejected
	RecordCandidate(accepted bool)

	// RecordActiveWorkers sets the current evaluation worker count (gauge metric).
	RecordActiveWorkers(count int)
}

// SinkMetrics defines metrics for persistence sink operations.
type SinkMetrics interface {
	// RecordSnapshotWrite records a snapshot write attempt.
	//
	// Parameters:
	//   - success: true if the write succeeded, false otherwise
	RecordSnapshotWrite(success bool)

	// ObserveSnapshotLatency observes snapshot write latency in seconds.
	ObserveSnapshotLatency(seconds float64)
}
