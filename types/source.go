package types

import "context"

// DatasetSource loads a dataset from an external representation.
//
// Implementations validate column shapes during Load so a Searcher never
// sees a malformed table. See the source package for built-in CSV, JSON
// and static sources.
type DatasetSource interface {
	// Load reads and validates the dataset.
	//
	// Parameters:
	//   - ctx: Context for timeout/cancellation
	//
	// Returns:
	//   - *Dataset: Loaded dataset
	//   - error: Any read or parse error
	Load(ctx context.Context) (*Dataset, error)
}
