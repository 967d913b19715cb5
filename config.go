package mindiff

import (
	"fmt"

	"github.com/m-Py/minDiff/balance"
)

// Config is the configuration for the Searcher.
//
// Criterion names refer to dataset columns: scale criteria must be numeric
// columns, nominal criteria must be categorical columns. Column existence
// is checked against the dataset in NewSearcher; Validate covers everything
// that can be checked from the configuration alone.
type Config struct {
	// SetsN is the number of groups to split the items into (>= 2).
	// Group sizes are as even as possible: when the item count is not
	// divisible by SetsN the groups differ in size by at most one.
	SetsN int `yaml:"setsN"`

	// ScaleCriteria names the continuous columns whose summary statistics
	// are equalized across groups.
	ScaleCriteria []string `yaml:"scaleCriteria"`

	// NominalCriteria names the categorical columns whose per-group
	// distributions must stay within Tolerances. At most two are supported.
	NominalCriteria []string `yaml:"nominalCriteria"`

	// Tolerances is the maximum acceptable max-minus-min category count
	// across groups: one value for one nominal criterion, or exactly three
	// for two (marginal of each criterion, then their joint distribution).
	// Use math.Inf(1) for a tolerance that always passes.
	Tolerances []float64 `yaml:"tolerances"`

	// Equalizers names the summary statistics to equalize per scale
	// criterion ("mean", "sd", "median"). Default: ["mean"]. Additional
	// functions can be registered with WithEqualizerFunc.
	Equalizers []string `yaml:"equalizers"`

	// Exact switches from random search to exhaustive lexicographic
	// enumeration of every distinct assignment. The enumeration space
	// grows combinatorially; check strategy.PermutationCount first.
	Exact bool `yaml:"exact"`

	// Repetitions is the number of accepted candidates to evaluate in
	// random mode. Ignored in exact mode.
	Repetitions int `yaml:"repetitions"`

	// Workers is the number of goroutines evaluating candidates in random
	// mode. Random iterations are independent, so they parallelize freely;
	// exact mode is strictly sequential and ignores this setting.
	Workers int `yaml:"workers"`

	// Seed seeds the random generator stream (0 = derive from the clock).
	// With a fixed seed the candidate sequence, and therefore the result,
	// is reproducible for a given worker count.
	Seed int64 `yaml:"seed"`

	// MaxBalanceRejects caps consecutive balance-check rejections per
	// accepted candidate in random mode. Without the cap an infeasible
	// tolerance would retry forever, since rejected candidates do not
	// consume the repetition budget.
	MaxBalanceRejects int `yaml:"maxBalanceRejects"`

	// LabelColumn is the column name used when attaching the best
	// assignment to a dataset (sinks and examples).
	LabelColumn string `yaml:"labelColumn"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Criterion fields stay empty: which columns to balance is inherently a
// per-run decision.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		SetsN:             2,
		Equalizers:        []string{"mean"},
		Repetitions:       100,
		Workers:           1,
		MaxBalanceRejects: 10000,
		LabelColumn:       "group",
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.SetsN == 0 {
		cfg.SetsN = defaults.SetsN
	}
	if len(cfg.Equalizers) == 0 {
		cfg.Equalizers = defaults.Equalizers
	}
	if cfg.Repetitions == 0 {
		cfg.Repetitions = defaults.Repetitions
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.MaxBalanceRejects == 0 {
		cfg.MaxBalanceRejects = defaults.MaxBalanceRejects
	}
	if cfg.LabelColumn == "" {
		cfg.LabelColumn = defaults.LabelColumn
	}
}

// Validate checks configuration constraints and returns an error for
// invalid values.
//
// Hard Validation Rules:
//   - SetsN >= 2 (a single group is not a split)
//   - At least one scale or nominal criterion
//   - At most two nominal criteria
//   - Tolerance vector length matches the nominal criterion count
//     (1 for one criterion, 3 for two), values >= 0 or +Inf
//   - Repetitions >= 1 in random mode
//   - Workers >= 1
//
// Returns:
//   - error: Validation error with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	// Rule 1: group count
	if cfg.SetsN < 2 {
		return fmt.Errorf("%w: SetsN must be >= 2, got %d", ErrInvalidConfig, cfg.SetsN)
	}

	// Rule 2: at least one criterion
	if len(cfg.ScaleCriteria) == 0 && len(cfg.NominalCriteria) == 0 {
		return ErrNoCriteria
	}

	// Rule 3: nominal criterion count
	if len(cfg.NominalCriteria) > balance.MaxNominal {
		return fmt.Errorf("%w: got %d", ErrTooManyNominal, len(cfg.NominalCriteria))
	}

	// Rule 4: tolerance vector shape
	if len(cfg.NominalCriteria) > 0 {
		want := 1
		if len(cfg.NominalCriteria) == balance.MaxNominal {
			want = 3
		}
		if len(cfg.Tolerances) != want {
			return fmt.Errorf("%w: %d criteria need %d values, got %d",
				ErrToleranceMismatch, len(cfg.NominalCriteria), want, len(cfg.Tolerances))
		}
		for i, tol := range cfg.Tolerances {
			if tol < 0 {
				return fmt.Errorf("%w: tolerance %d is negative (%v)", ErrInvalidConfig, i, tol)
			}
		}
	}

	// Rule 5: iteration budget
	if !cfg.Exact && cfg.Repetitions < 1 {
		return fmt.Errorf("%w: Repetitions must be >= 1 in random mode, got %d",
			ErrInvalidConfig, cfg.Repetitions)
	}

	// Rule 6: worker count
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: Workers must be >= 1, got %d", ErrInvalidConfig, cfg.Workers)
	}

	return nil
}

// ValidateWithWarnings checks the configuration and logs warnings for
// non-recommended values. Called after Validate() in NewSearcher().
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Exact && cfg.Workers > 1 {
		logger.Warn(
			"exact mode is strictly sequential, Workers setting is ignored",
			"workers", cfg.Workers,
		)
	}

	if !cfg.Exact && len(cfg.NominalCriteria) > 0 && cfg.MaxBalanceRejects < 1000 {
		logger.Warn(
			"MaxBalanceRejects is very low, feasible tolerances may be reported infeasible",
			"maxBalanceRejects", cfg.MaxBalanceRejects,
			"recommended", "10000 or higher",
		)
	}
}

// TestConfig returns a configuration optimized for fast test execution.
//
// The repetition budget is small so searches complete in milliseconds, and
// the seed is fixed so results are reproducible. Use DefaultConfig() for
// real runs.
//
// Returns:
//   - Config: Configuration with fast, deterministic settings for tests
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.Repetitions = 50
	cfg.Seed = 1
	cfg.MaxBalanceRejects = 1000

	return cfg
}
