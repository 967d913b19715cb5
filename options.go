package mindiff

import "github.com/m-Py/minDiff/objective"

// Option configures a Searcher with optional dependencies.
type Option func(*searcherOptions)

// searcherOptions holds optional Searcher configuration.
type searcherOptions struct {
	generator  Generator
	sink       Sink
	metrics    MetricsCollector
	logger     Logger
	prior      Assignment
	equalizers map[string]objective.Equalizer
}

// WithGenerator sets a custom candidate generator.
//
// By default the Searcher uses strategy.NewExact() in exact mode and a
// clock-seeded (or Config.Seed-seeded) strategy.NewRandom() otherwise.
// With Workers > 1 the Searcher derives one generator per worker from
// Config.Seed; a custom generator forces sequential evaluation because the
// Generator interface makes no thread-safety promises.
//
// Parameters:
//   - gen: Generator implementation
//
// Returns:
//   - Option: Functional option for NewSearcher
//
// Example:
//
//	gen := strategy.NewRandomWithSeed(42)
//	searcher, err := mindiff.NewSearcher(&cfg, data, mindiff.WithGenerator(gen))
func WithGenerator(gen Generator) Option {
	return func(o *searcherOptions) {
		o.generator = gen
	}
}

// WithSink sets a persistence sink that receives every improved assignment.
//
// The Searcher writes snapshots fire-and-forget: a failing sink is logged
// and never aborts the search.
//
// Parameters:
//   - sink: Sink implementation (e.g. sink.NewCSV, sink.NewNATSKV)
//
// Returns:
//   - Option: Functional option for NewSearcher
func WithSink(sink Sink) Option {
	return func(o *searcherOptions) {
		o.sink = sink
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSearcher
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "mindiff")
//	searcher, err := mindiff.NewSearcher(&cfg, data, mindiff.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *searcherOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSearcher
func WithLogger(logger Logger) Option {
	return func(o *searcherOptions) {
		o.logger = logger
	}
}

// WithPriorAssignment resumes from a previously computed assignment.
//
// The prior labeling is scored during initialization and becomes the
// initial best, so the search can only improve on it. The prior must cover
// every item and use exactly SetsN distinct labels; a mismatch is a fatal
// configuration error since it indicates structurally incompatible input.
//
// Parameters:
//   - labels: Previously computed assignment, one label per item
//
// Returns:
//   - Option: Functional option for NewSearcher
func WithPriorAssignment(labels Assignment) Option {
	return func(o *searcherOptions) {
		o.prior = labels
	}
}

// WithEqualizerFunc registers a caller-supplied equalizer under a name,
// making it resolvable from Config.Equalizers alongside the built-ins.
//
// Parameters:
//   - name: Name to register (overrides a built-in of the same name)
//   - fn: Summary statistic mapping a sequence of numbers to one number
//
// Returns:
//   - Option: Functional option for NewSearcher
//
// Example:
//
//	trimmed := func(values []float64) float64 { /* 10% trimmed mean */ }
//	searcher, err := mindiff.NewSearcher(&cfg, data,
//	    mindiff.WithEqualizerFunc("trimmedMean", trimmed))
func WithEqualizerFunc(name string, fn objective.Equalizer) Option {
	return func(o *searcherOptions) {
		if o.equalizers == nil {
			o.equalizers = make(map[string]objective.Equalizer)
		}
		o.equalizers[name] = fn
	}
}
