package types

import "errors"

// Sentinel errors for the minDiff library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components use these sentinels for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Searcher errors - Public API errors returned by the Searcher component.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDatasetRequired is returned when the dataset is nil or empty.
	ErrDatasetRequired = errors.New("dataset is required")

	// ErrNoCriteria is returned when neither scale nor nominal criteria are configured.
	ErrNoCriteria = errors.New("no scale or nominal criteria configured")

	// ErrTooManyNominal is returned when more than two nominal criteria are configured.
	ErrTooManyNominal = errors.New("at most two nominal criteria are supported")

	// ErrToleranceMismatch is returned when the tolerance vector length does not
	// match the nominal criterion count (one value for one criterion, three for two).
	ErrToleranceMismatch = errors.New("tolerance vector length does not match nominal criteria")

	// ErrUnknownColumn is returned when a criterion names a column absent from the dataset.
	ErrUnknownColumn = errors.New("criterion column not found in dataset")

	// ErrUnknownEqualizer is returned when an equalizer name is not registered.
	ErrUnknownEqualizer = errors.New("unknown equalizer")

	// ErrTooFewItems is returned when the dataset has fewer items than groups.
	ErrTooFewItems = errors.New("fewer items than groups")

	// ErrPriorMismatch is returned when a prior assignment is structurally
	// incompatible with the configured group count or item count.
	ErrPriorMismatch = errors.New("prior assignment incompatible with configuration")

	// ErrSearchRunning is returned when Run is called while a run is in progress.
	ErrSearchRunning = errors.New("search already running")
)

// Sink errors - Persistence sink component errors.
var (
	// ErrSnapshotFailed is returned when persisting a snapshot fails.
	// The controller logs this error and continues the search.
	ErrSnapshotFailed = errors.New("failed to persist snapshot")
)
