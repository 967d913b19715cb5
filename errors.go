package mindiff

import "github.com/m-Py/minDiff/types"

// Sentinel errors returned by the Searcher, re-exported from the types
// package so callers can errors.Is against mindiff.Err* directly.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrDatasetRequired is returned when the dataset is nil or empty.
	ErrDatasetRequired = types.ErrDatasetRequired

	// ErrNoCriteria is returned when neither scale nor nominal criteria are configured.
	ErrNoCriteria = types.ErrNoCriteria

	// ErrTooManyNominal is returned when more than two nominal criteria are configured.
	ErrTooManyNominal = types.ErrTooManyNominal

	// ErrToleranceMismatch is returned when the tolerance vector length does
	// not match the nominal criterion count.
	ErrToleranceMismatch = types.ErrToleranceMismatch

	// ErrUnknownColumn is returned when a criterion names a column absent from the dataset.
	ErrUnknownColumn = types.ErrUnknownColumn

	// ErrUnknownEqualizer is returned when an equalizer name is not registered.
	ErrUnknownEqualizer = types.ErrUnknownEqualizer

	// ErrTooFewItems is returned when the dataset has fewer items than groups.
	ErrTooFewItems = types.ErrTooFewItems

	// ErrPriorMismatch is returned when a prior assignment is structurally
	// incompatible with the configured group count or item count.
	ErrPriorMismatch = types.ErrPriorMismatch

	// ErrSearchRunning is returned when Run is called while a run is in progress.
	ErrSearchRunning = types.ErrSearchRunning
)
