// Package mindiff partitions a fixed collection of items into equally (or
// near-equally) sized groups that are as similar as possible on a set of
// continuous measurements and, optionally, as balanced as possible on
// categorical attributes.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	data := mindiff.NewDataset(6)
//	_ = data.AddNumeric("iq", []float64{100, 105, 110, 95, 120, 90})
//
//	cfg := mindiff.Config{
//	    SetsN:         2,
//	    ScaleCriteria: []string{"iq"},
//	    Repetitions:   1000,
//	}
//
//	searcher, err := mindiff.NewSearcher(&cfg, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := searcher.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grouped, _ := data.WithLabels("group", result.Labels)
//
// # Key Features
//
//   - Random Search: repeated unbiased shuffles, best-scoring assignment retained
//   - Exact Search: exhaustive lexicographic enumeration of every distinct assignment
//   - Categorical Balance: hard max-minus-min tolerances on up to two nominal criteria
//   - Variance Objective: standardized criteria scored per equalizer (mean, sd, median, custom)
//   - Resumable: a prior assignment seeds the initial best
//   - Observable: structured logging, metrics collectors, and persistence
//     sinks (CSV file, NATS JetStream KV) for long-running searches
//
// # Architecture
//
// A search progresses through a simple lifecycle:
//
//	Init → Iterating → (BestFound | Exhausted | NoCriteria | Infeasible | Canceled)
//
// Each iteration the controller obtains a candidate from the generator,
// filters it through the categorical balance checker, scores survivors with
// the similarity objective, and keeps the best assignment seen. Every
// improvement is offered to the optional persistence sink.
//
// # Advanced Usage
//
// Custom generator and sink with options:
//
//	gen := strategy.NewRandomWithSeed(42)
//	kv, _ := sink.OpenBucket(ctx, nc, "assignments")
//
//	searcher, err := mindiff.NewSearcher(&cfg, data,
//	    mindiff.WithGenerator(gen),
//	    mindiff.WithSink(sink.NewNATSKV(kv, "experiment-12")),
//	    mindiff.WithLogger(logger),
//	)
//
// See the examples/ directory for complete working examples.
package mindiff
