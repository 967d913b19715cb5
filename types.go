package mindiff

import "github.com/m-Py/minDiff/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the
// `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `mindiff`
// package, while still providing a convenient `mindiff.Dataset`,
// `mindiff.Logger`, etc. for users.
type (
	Dataset    = types.Dataset
	Assignment = types.Assignment
	Snapshot   = types.Snapshot
	Outcome    = types.Outcome
)

// Re-export interfaces from the internal types package for convenience.
type (
	Generator        = types.Generator
	Sink             = types.Sink
	DatasetSource    = types.DatasetSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export Outcome constants from the internal types package.
const (
	OutcomeNone       = types.OutcomeNone
	OutcomeBestFound  = types.OutcomeBestFound
	OutcomeExhausted  = types.OutcomeExhausted
	OutcomeNoCriteria = types.OutcomeNoCriteria
	OutcomeInfeasible = types.OutcomeInfeasible
	OutcomeCanceled   = types.OutcomeCanceled
)

// NewDataset creates an empty dataset with capacity for n items per column.
// See types.NewDataset.
func NewDataset(n int) *Dataset {
	return types.NewDataset(n)
}

// GroupLabels returns the canonical group label multiset for n items split
// into setsN groups. See types.GroupLabels.
func GroupLabels(n, setsN int) Assignment {
	return types.GroupLabels(n, setsN)
}
