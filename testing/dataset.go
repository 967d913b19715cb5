package testing

import (
	"testing"

	"github.com/m-Py/minDiff/types"
)

// SampleDataset returns a small dataset with one numeric and one categorical
// column, suitable for exercising a full search in tests.
//
// The dataset has 12 items: an "iq" column with a clear spread and a
// "gender" column with a 6/6 split, so both scale and nominal criteria can
// be configured against it.
//
// Parameters:
//   - t: Testing context
//
// Returns:
//   - *types.Dataset: Dataset with columns "iq" (numeric) and "gender" (categorical)
func SampleDataset(t *testing.T) *types.Dataset {
	t.Helper()

	iq := []float64{95, 118, 102, 87, 130, 110, 99, 121, 105, 92, 114, 108}
	gender := []string{"f", "m", "f", "m", "f", "m", "f", "m", "f", "m", "f", "m"}

	data := types.NewDataset(len(iq))
	if err := data.AddNumeric("iq", iq); err != nil {
		t.Fatalf("Failed to add numeric column: %v", err)
	}
	if err := data.AddNominal("gender", gender); err != nil {
		t.Fatalf("Failed to add nominal column: %v", err)
	}

	return data
}
