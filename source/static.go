package source

import (
	"context"
	"sync"

	"github.com/m-Py/minDiff/types"
)

// Static implements a dataset source backed by an in-memory dataset.
type Static struct {
	mu   sync.RWMutex
	data *types.Dataset
}

var _ types.DatasetSource = (*Static)(nil)

// NewStatic creates a new static dataset source.
//
// The source returns a dataset that was constructed in code. Useful for
// testing and for callers that already hold their items in memory.
//
// Parameters:
//   - data: Dataset to serve
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	data := types.NewDataset(4)
//	_ = data.AddNumeric("iq", []float64{10, 10, 20, 20})
//	src := source.NewStatic(data)
func NewStatic(data *types.Dataset) *Static {
	return &Static{data: data}
}

// Load returns the wrapped dataset.
//
// Returns:
//   - *types.Dataset: The dataset passed to NewStatic or Update
//   - error: Always nil (never fails)
func (s *Static) Load(_ context.Context) (*types.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data, nil
}

// Update replaces the wrapped dataset.
//
// This allows the static source to simulate external data changes, which
// is useful for testing reload scenarios.
//
// Parameters:
//   - data: New dataset to serve
func (s *Static) Update(data *types.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
}
