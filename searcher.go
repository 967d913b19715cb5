package mindiff

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m-Py/minDiff/balance"
	"github.com/m-Py/minDiff/internal/logger"
	"github.com/m-Py/minDiff/internal/metrics"
	"github.com/m-Py/minDiff/objective"
	"github.com/m-Py/minDiff/strategy"
	"github.com/m-Py/minDiff/types"
	"github.com/puzpuzpuz/xsync/v4"
)

// Search mode labels used for logging and metrics.
const (
	modeRandom = "random"
	modeExact  = "exact"
)

// Result is the outcome of a search run.
type Result struct {
	// Labels is the best assignment found, one group label per item.
	// Nil when no candidate satisfied the nominal tolerances.
	Labels Assignment

	// Score is the similarity objective of Labels (lower is more balanced).
	// 0 for nominal-only runs, +Inf when Labels is nil.
	Score float64

	// Iterations is the number of candidate permutations generated,
	// including balance-rejected ones.
	Iterations uint64

	// Outcome reports how the search terminated.
	Outcome Outcome
}

// Searcher orchestrates the assignment search: candidate generation,
// categorical balance checking, similarity scoring and best tracking.
//
// Searcher is the main entry point of the minDiff library.
//
// Thread Safety:
//   - A Searcher runs one search at a time; concurrent Run calls return
//     ErrSearchRunning
//   - With Config.Workers > 1 random-mode candidates are evaluated
//     concurrently and merged by a minimum-score reduction, ties resolved
//     toward the lowest iteration index
//
// Lifecycle:
//   - Create with NewSearcher() (validates configuration and dataset)
//   - Call Run() to execute the search; cancel its context to stop early
//     and receive the best assignment found so far
type Searcher struct {
	cfg     Config
	dataset *Dataset

	// Optional dependencies
	generator Generator
	sink      Sink
	metrics   MetricsCollector
	logger    Logger
	prior     Assignment

	// Derived components
	checker *balance.Checker
	scorer  *objective.Scorer

	// Canonical ascending-sorted group label multiset
	base Assignment

	// Exact-mode search space size
	space    uint64
	spaceOK  bool
	running  atomic.Bool
	sinkWG   sync.WaitGroup
	versions atomic.Int64
}

// NewSearcher creates a new Searcher for the given configuration and dataset.
//
// Configuration errors (unknown columns, bad tolerance vectors, missing
// criteria, incompatible prior assignments) are reported here, before any
// iteration. Non-fatal conditions are logged as warnings: an item count not
// divisible by SetsN (groups will differ in size by at most one) and
// missing values in criterion columns.
//
// Returns a concrete *Searcher struct following the "accept interfaces,
// return structs" principle.
//
// Parameters:
//   - cfg: Search configuration (defaults are applied in place)
//   - dataset: Columnar table of items; owned by the caller, never mutated
//   - opts: Optional configuration (generator, sink, metrics, logger,
//     prior assignment, custom equalizers)
//
// Returns:
//   - *Searcher: Initialized searcher instance
//   - error: Validation error if the configuration or dataset is invalid
//
// Example:
//
//	cfg := mindiff.Config{SetsN: 2, ScaleCriteria: []string{"iq"}, Repetitions: 1000}
//	searcher, err := mindiff.NewSearcher(&cfg, data)
func NewSearcher(cfg *Config, dataset *Dataset, opts ...Option) (*Searcher, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if dataset == nil || dataset.Len() == 0 {
		return nil, ErrDatasetRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Apply options
	options := &searcherOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	// Validate with warnings after logger is available
	cfg.ValidateWithWarnings(loggerInstance)

	if dataset.Len() < cfg.SetsN {
		return nil, fmt.Errorf("%w: %d items, %d groups", ErrTooFewItems, dataset.Len(), cfg.SetsN)
	}
	if dataset.Len()%cfg.SetsN != 0 {
		loggerInstance.Warn(
			"item count not divisible by group count, group sizes will differ by one",
			"items", dataset.Len(),
			"setsN", cfg.SetsN,
		)
	}

	s := &Searcher{
		cfg:       *cfg,
		dataset:   dataset,
		generator: options.generator,
		sink:      options.sink,
		metrics:   metricsCollector,
		logger:    loggerInstance,
		base:      types.GroupLabels(dataset.Len(), cfg.SetsN),
	}

	if err := s.initComponents(options); err != nil {
		return nil, err
	}

	s.space, s.spaceOK = strategy.PermutationCount(s.base.GroupSizes())
	if cfg.Exact && !s.spaceOK {
		loggerInstance.Warn(
			"permutation space exceeds uint64, exact mode will not complete in any practical time",
			"items", dataset.Len(),
			"setsN", cfg.SetsN,
		)
	}

	return s, nil
}

// initComponents builds the scorer, checker and prior from the validated
// configuration, reporting dataset-dependent errors and warnings.
func (s *Searcher) initComponents(options *searcherOptions) error {
	if len(s.cfg.ScaleCriteria) > 0 {
		equalizers := make([]objective.Equalizer, len(s.cfg.Equalizers))
		for i, name := range s.cfg.Equalizers {
			if fn, ok := options.equalizers[name]; ok {
				equalizers[i] = fn

				continue
			}

			fn, err := objective.Lookup(name)
			if err != nil {
				return err
			}
			equalizers[i] = fn
		}

		scorer, err := objective.NewScorer(s.dataset, s.cfg.ScaleCriteria, equalizers)
		if err != nil {
			return err
		}
		s.scorer = scorer
	}

	if len(s.cfg.NominalCriteria) > 0 {
		checker, err := balance.NewChecker(s.dataset, s.cfg.NominalCriteria, s.cfg.Tolerances)
		if err != nil {
			return err
		}
		s.checker = checker
	}

	for _, name := range append(append([]string{}, s.cfg.ScaleCriteria...), s.cfg.NominalCriteria...) {
		if missing := s.dataset.MissingCount(name); missing > 0 {
			s.logger.Warn("criterion column has missing values, they are ignored, never imputed",
				"column", name,
				"missing", missing,
			)
		}
	}

	if options.prior != nil {
		if len(options.prior) != s.dataset.Len() {
			return fmt.Errorf("%w: prior covers %d items, dataset has %d",
				ErrPriorMismatch, len(options.prior), s.dataset.Len())
		}
		if distinct := options.prior.DistinctLabels(); distinct != s.cfg.SetsN {
			return fmt.Errorf("%w: prior has %d distinct labels, SetsN is %d",
				ErrPriorMismatch, distinct, s.cfg.SetsN)
		}
		s.prior = options.prior.Clone()
	}

	return nil
}

// PermutationSpace returns the exact-mode search space size and whether it
// fits in uint64 (false means the count saturated and exact mode is
// impractical for this input).
func (s *Searcher) PermutationSpace() (uint64, bool) {
	return s.space, s.spaceOK
}

// Run executes the search and returns the best assignment found.
//
// Random mode evaluates Config.Repetitions accepted candidates; exact mode
// enumerates the full permutation space. Canceling the context stops the
// search between iterations and returns the best assignment found so far
// with OutcomeCanceled. An infeasible tolerance configuration terminates
// with OutcomeInfeasible and nil Labels; this is a recoverable outcome, not
// an error.
//
// Parameters:
//   - ctx: Context for cancellation and deadline
//
// Returns:
//   - Result: Best assignment, score, iteration count and outcome
//   - error: ErrSearchRunning if a run is already in progress
func (s *Searcher) Run(ctx context.Context) (Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Result{}, ErrSearchRunning
	}
	defer s.running.Store(false)

	mode := modeRandom
	if s.cfg.Exact {
		mode = modeExact
	}

	s.logger.Info("search started",
		"mode", mode,
		"items", s.dataset.Len(),
		"setsN", s.cfg.SetsN,
		"scaleCriteria", len(s.cfg.ScaleCriteria),
		"nominalCriteria", len(s.cfg.NominalCriteria),
	)

	start := time.Now()
	s.versions.Store(0)

	var result Result
	switch {
	case s.cfg.Exact:
		result = s.runExact(ctx)
	case s.scorer == nil:
		result = s.runNominalOnly(ctx)
	case s.cfg.Workers > 1 && s.generator == nil:
		result = s.runRandomParallel(ctx)
	default:
		result = s.runRandomSequential(ctx)
	}

	// Let in-flight snapshot writes drain before reporting completion.
	s.sinkWG.Wait()

	s.metrics.RecordSearchDuration(mode, time.Since(start).Seconds())
	s.metrics.RecordOutcome(result.Outcome)

	s.logger.Info("search finished",
		"outcome", result.Outcome.String(),
		"score", result.Score,
		"iterations", result.Iterations,
		"elapsed", time.Since(start),
	)
	if result.Outcome == OutcomeInfeasible {
		s.logger.Warn(
			"no candidate satisfied the nominal tolerances, relax them or raise the budget",
			"iterations", result.Iterations,
			"maxBalanceRejects", s.cfg.MaxBalanceRejects,
		)
	}

	return result, nil
}

// initialBest seeds the best assignment from the prior, if one was supplied.
func (s *Searcher) initialBest() (Assignment, float64) {
	if s.prior == nil || s.scorer == nil {
		return nil, math.Inf(1)
	}

	score := s.scorer.Score(s.prior)
	s.logger.Info("resuming from prior assignment", "score", score)

	return s.prior.Clone(), score
}

// publish offers an improved assignment to the sink, fire-and-forget.
// Failures are logged and reported to metrics, never propagated.
func (s *Searcher) publish(ctx context.Context, labels Assignment, score float64, iteration uint64) {
	if s.sink == nil {
		return
	}

	snap := Snapshot{
		Version:     s.versions.Add(1),
		Iteration:   iteration,
		Score:       score,
		Labels:      labels.Clone(),
		Fingerprint: labels.Fingerprint(),
	}

	s.sinkWG.Add(1)
	go func() {
		defer s.sinkWG.Done()

		begin := time.Now()
		err := s.sink.Write(ctx, snap)
		s.metrics.ObserveSnapshotLatency(time.Since(begin).Seconds())
		s.metrics.RecordSnapshotWrite(err == nil)
		if err != nil {
			s.logger.Error("snapshot write failed, search continues",
				"version", snap.Version,
				"error", err,
			)
		}
	}()
}

// runRandomSequential is the single-worker random-mode loop. Rejected
// candidates do not consume the repetition budget; MaxBalanceRejects
// consecutive rejections end the search instead of looping forever.
func (s *Searcher) runRandomSequential(ctx context.Context) Result {
	gen := s.generator
	if gen == nil {
		gen = strategy.NewRandomWithSeed(s.seed())
	}

	best, bestScore := s.initialBest()

	var iterations uint64
	accepted := 0
	rejects := 0

	for accepted < s.cfg.Repetitions {
		if ctx.Err() != nil {
			return s.finish(best, bestScore, iterations, OutcomeCanceled)
		}

		candidate := gen.Next(s.base)
		iterations++

		if s.checker != nil && !s.checker.Check(candidate) {
			s.metrics.RecordCandidate(false)
			rejects++
			if rejects >= s.cfg.MaxBalanceRejects {
				if best == nil {
					return s.finish(nil, math.Inf(1), iterations, OutcomeInfeasible)
				}

				return s.finish(best, bestScore, iterations, OutcomeBestFound)
			}

			continue
		}

		s.metrics.RecordCandidate(true)
		rejects = 0
		accepted++

		score := s.scorer.Score(candidate)
		if best == nil || score < bestScore {
			best, bestScore = candidate, score
			s.recordImprovement(ctx, best, bestScore, iterations)
		}
	}

	return s.finish(best, bestScore, iterations, OutcomeBestFound)
}

// candidateResult carries one accepted (or infeasible) candidate from a
// worker to the reducer in parallel random mode.
type candidateResult struct {
	index  uint64
	score  float64
	labels Assignment
}

// runRandomParallel evaluates random-mode candidates across Config.Workers
// goroutines. The merge is a minimum-score reduction; equal scores resolve
// to the lowest iteration index so a seeded run stays deterministic.
func (s *Searcher) runRandomParallel(ctx context.Context) Result {
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	seed := s.seed()
	budget := uint64(s.cfg.Repetitions) //nolint:gosec // Repetitions >= 1 validated

	var claimed atomic.Uint64
	generated := xsync.NewCounter()
	rejected := xsync.NewCounter()

	results := make(chan candidateResult, s.cfg.Workers)

	var wg sync.WaitGroup
	s.metrics.RecordActiveWorkers(s.cfg.Workers)
	for w := range s.cfg.Workers {
		gen := strategy.NewRandomWithSeed(seed + int64(w))

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.randomWorker(workerCtx, gen, budget, &claimed, generated, rejected, results)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	best, bestScore := s.initialBest()
	bestIndex := uint64(math.MaxUint64)
	infeasibleSlots := 0

	for res := range results {
		if res.labels == nil {
			infeasibleSlots++
			// A slot that exhausted its rejection cap means the tolerances
			// are (close to) infeasible; stop claiming further slots.
			cancel()

			continue
		}

		if best == nil || res.score < bestScore ||
			(res.score == bestScore && res.index < bestIndex) {
			best, bestScore, bestIndex = res.labels, res.score, res.index
			s.recordImprovement(ctx, best, bestScore, res.index)
		}
	}

	s.metrics.RecordActiveWorkers(0)
	iterations := uint64(generated.Value()) //nolint:gosec // counters only increment
	s.logger.Debug("parallel evaluation drained",
		"generated", generated.Value(),
		"rejected", rejected.Value(),
		"infeasibleSlots", infeasibleSlots,
	)

	switch {
	case best == nil && infeasibleSlots > 0:
		return s.finish(nil, math.Inf(1), iterations, OutcomeInfeasible)
	case ctx.Err() != nil:
		return s.finish(best, bestScore, iterations, OutcomeCanceled)
	default:
		return s.finish(best, bestScore, iterations, OutcomeBestFound)
	}
}

// randomWorker claims repetition slots and evaluates candidates until the
// budget is exhausted or the context is canceled.
func (s *Searcher) randomWorker(
	ctx context.Context,
	gen Generator,
	budget uint64,
	claimed *atomic.Uint64,
	generated, rejected *xsync.Counter,
	results chan<- candidateResult,
) {
	for {
		if ctx.Err() != nil {
			return
		}

		index := claimed.Add(1)
		if index > budget {
			return
		}

		candidate, tries, ok := s.acceptCandidate(ctx, gen)
		generated.Add(tries)
		rejected.Add(tries - 1)
		if !ok {
			results <- candidateResult{index: index}

			return
		}

		s.metrics.RecordCandidate(true)
		results <- candidateResult{
			index:  index,
			score:  s.scorer.Score(candidate),
			labels: candidate,
		}
	}
}

// acceptCandidate generates candidates until one passes the balance check,
// up to MaxBalanceRejects consecutive rejections. Returns the number of
// candidates generated alongside the accepted one.
func (s *Searcher) acceptCandidate(ctx context.Context, gen Generator) (Assignment, int64, bool) {
	tries := int64(0)
	for {
		if ctx.Err() != nil {
			return nil, tries, false
		}

		candidate := gen.Next(s.base)
		tries++

		if s.checker == nil || s.checker.Check(candidate) {
			return candidate, tries, true
		}

		s.metrics.RecordCandidate(false)
		if tries >= int64(s.cfg.MaxBalanceRejects) {
			return nil, tries, false
		}
	}
}

// runNominalOnly handles runs with no scale criteria: the first candidate
// passing the balance check is accepted and the search terminates.
func (s *Searcher) runNominalOnly(ctx context.Context) Result {
	if s.prior != nil && s.checker.Check(s.prior) {
		return s.finish(s.prior.Clone(), 0, 0, OutcomeNoCriteria)
	}

	gen := s.generator
	if gen == nil {
		gen = strategy.NewRandomWithSeed(s.seed())
	}

	var iterations uint64
	for range s.cfg.MaxBalanceRejects {
		if ctx.Err() != nil {
			return s.finish(nil, math.Inf(1), iterations, OutcomeCanceled)
		}

		candidate := gen.Next(s.base)
		iterations++

		if s.checker.Check(candidate) {
			s.metrics.RecordCandidate(true)
			s.publish(ctx, candidate, 0, iterations)

			return s.finish(candidate, 0, iterations, OutcomeNoCriteria)
		}
		s.metrics.RecordCandidate(false)
	}

	return s.finish(nil, math.Inf(1), iterations, OutcomeInfeasible)
}

// runExact enumerates every distinct permutation in lexicographic order,
// starting from the ascending-sorted multiset. Rejected candidates consume
// a sequence step; the loop ends when the enumeration wraps back to its
// starting permutation.
func (s *Searcher) runExact(ctx context.Context) Result {
	gen := s.generator
	if gen == nil {
		gen = strategy.NewExact()
	}

	best, bestScore := s.initialBest()
	current := s.base.Clone()
	startFingerprint := s.base.Fingerprint()

	var iterations uint64
	for {
		if ctx.Err() != nil {
			return s.finish(best, bestScore, iterations, OutcomeCanceled)
		}

		if iterations > 0 && current.Fingerprint() == startFingerprint && current.Equal(s.base) {
			break // wrapped: the space is exhausted
		}

		iterations++

		if s.checker != nil && !s.checker.Check(current) {
			s.metrics.RecordCandidate(false)
			current = gen.Next(current)

			continue
		}
		s.metrics.RecordCandidate(true)

		if s.scorer == nil {
			s.publish(ctx, current, 0, iterations)

			return s.finish(current.Clone(), 0, iterations, OutcomeNoCriteria)
		}

		score := s.scorer.Score(current)
		if best == nil || score < bestScore {
			best, bestScore = current.Clone(), score
			s.recordImprovement(ctx, best, bestScore, iterations)
		}

		current = gen.Next(current)
	}

	if best == nil {
		return s.finish(nil, math.Inf(1), iterations, OutcomeInfeasible)
	}

	return s.finish(best, bestScore, iterations, OutcomeExhausted)
}

// recordImprovement reports a strictly better assignment to the logger,
// metrics and sink.
func (s *Searcher) recordImprovement(ctx context.Context, best Assignment, score float64, iteration uint64) {
	s.metrics.RecordBestScore(score)
	s.metrics.RecordImprovement(iteration)
	s.logger.Debug("best assignment improved",
		"score", score,
		"iteration", iteration,
		"fingerprint", best.Fingerprint(),
	)
	s.publish(ctx, best, score, iteration)
}

// finish assembles the terminal Result.
func (s *Searcher) finish(best Assignment, score float64, iterations uint64, outcome Outcome) Result {
	if best == nil {
		return Result{Score: math.Inf(1), Iterations: iterations, Outcome: outcome}
	}

	return Result{Labels: best, Score: score, Iterations: iterations, Outcome: outcome}
}

// seed returns the configured RNG seed, deriving one from the clock when unset.
func (s *Searcher) seed() int64 {
	if s.cfg.Seed != 0 {
		return s.cfg.Seed
	}

	return time.Now().UnixNano()
}
