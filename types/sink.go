package types

import "context"

// Snapshot is the unit handed to a persistence sink whenever the search
// finds a new best assignment.
type Snapshot struct {
	// Version is a monotonically increasing snapshot version within one
	// search run (1 for the first improvement).
	Version int64 `json:"version"`

	// Iteration is the iteration index at which the improvement was found.
	Iteration uint64 `json:"iteration"`

	// Score is the similarity objective value of the assignment
	// (lower is more balanced).
	Score float64 `json:"score"`

	// Labels is the best group-label assignment, one label per item.
	Labels Assignment `json:"labels"`

	// Fingerprint is the xxh3 hash of the label sequence, usable for
	// de-duplication by watchers.
	Fingerprint uint64 `json:"fingerprint"`
}

// Sink persists intermediate best assignments so long-running searches are
// not lost when interrupted.
//
// Implementations can write to various backends:
//   - CSV: augmented table written to a local file
//   - NATSKV: snapshot published to a JetStream KeyValue bucket
//   - Custom: any durable storage with a write capability
//
// The controller invokes Write fire-and-forget on every improvement: a
// write failure is logged and never aborts the search. No acknowledgment
// beyond the returned error is required, and implementations need not be
// synchronous.
type Sink interface {
	// Write persists the snapshot.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - snap: Current best assignment with its score and version
	//
	// Returns:
	//   - error: Write failure (reported by the controller, non-fatal)
	Write(ctx context.Context, snap Snapshot) error
}
