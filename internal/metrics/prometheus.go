package metrics

import (
	"sync"

	"github.com/m-Py/minDiff/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metric registration is deferred until the first recording so constructing
// a collector never panics on duplicate registration in tests that share the
// default registerer.
type PrometheusCollector struct {
	*NopMetrics

	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Search metrics
	searchDuration *prometheus.HistogramVec
	bestScore      prometheus.Gauge
	improvements   prometheus.Counter
	lastImproveIdx prometheus.Gauge
	outcomes       *prometheus.CounterVec

	// Candidate metrics
	candidates    *prometheus.CounterVec
	activeWorkers prometheus.Gauge

	// Sink metrics
	snapshotWrites  *prometheus.CounterVec
	snapshotLatency prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "mindiff" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "mindiff"
	}

	return &PrometheusCollector{NopMetrics: NewNop(), reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.searchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of completed searches by mode.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~260s
		}, []string{"mode"})

		p.bestScore = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "best_score",
			Help:      "Current best objective score (sum of equalizer variances).",
		})

		p.improvements = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "improvements_total",
			Help:      "Total strictly-improving assignments adopted.",
		})

		p.lastImproveIdx = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "last_improvement_iteration",
			Help:      "Iteration index of the most recent improvement.",
		})

		p.outcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "outcomes_total",
			Help:      "Terminal search outcomes (bestFound,exhausted,noCriteria,infeasible,canceled).",
		}, []string{"outcome"})

		p.candidates = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "candidate",
			Name:      "evaluations_total",
			Help:      "Evaluated candidate assignments by balance-check result (accepted,rejected).",
		}, []string{"result"})

		p.activeWorkers = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "candidate",
			Name:      "active_workers",
			Help:      "Current number of candidate evaluation workers.",
		})

		p.snapshotWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "sink",
			Name:      "snapshot_writes_total",
			Help:      "Snapshot write attempts by result (success,failure).",
		}, []string{"result"})

		p.snapshotLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "sink",
			Name:      "snapshot_latency_seconds",
			Help:      "Latency of snapshot writes in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		})

		p.reg.MustRegister(p.searchDuration)
		p.reg.MustRegister(p.bestScore)
		p.reg.MustRegister(p.improvements)
		p.reg.MustRegister(p.lastImproveIdx)
		p.reg.MustRegister(p.outcomes)
		p.reg.MustRegister(p.candidates)
		p.reg.MustRegister(p.activeWorkers)
		p.reg.MustRegister(p.snapshotWrites)
		p.reg.MustRegister(p.snapshotLatency)
	})
}

// SearchMetrics implementation

// RecordSearchDuration observes a completed search's wall-clock duration.
func (p *PrometheusCollector) RecordSearchDuration(mode string, seconds float64) {
	p.ensureRegistered()
	p.searchDuration.WithLabelValues(mode).Observe(seconds)
}

// RecordBestScore sets the current best score gauge.
func (p *PrometheusCollector) RecordBestScore(score float64) {
	p.ensureRegistered()
	p.bestScore.Set(score)
}

// RecordImprovement counts an adopted improvement and records its iteration.
func (p *PrometheusCollector) RecordImprovement(iteration uint64) {
	p.ensureRegistered()
	p.improvements.Inc()
	p.lastImproveIdx.Set(float64(iteration))
}

// RecordOutcome counts a terminal search outcome.
func (p *PrometheusCollector) RecordOutcome(outcome types.Outcome) {
	p.ensureRegistered()
	p.outcomes.WithLabelValues(outcome.String()).Inc()
}

// CandidateMetrics implementation

// RecordCandidate counts one evaluated candidate by balance-check result.
func (p *PrometheusCollector) RecordCandidate(accepted bool) {
	p.ensureRegistered()
	if accepted {
		p.candidates.WithLabelValues("accepted").Inc()
	} else {
		p.candidates.WithLabelValues("rejected").Inc()
	}
}

// RecordActiveWorkers sets the active worker gauge.
func (p *PrometheusCollector) RecordActiveWorkers(count int) {
	p.ensureRegistered()
	p.activeWorkers.Set(float64(count))
}

// SinkMetrics implementation

// RecordSnapshotWrite counts a snapshot write attempt by result.
func (p *PrometheusCollector) RecordSnapshotWrite(success bool) {
	p.ensureRegistered()
	if success {
		p.snapshotWrites.WithLabelValues("success").Inc()
	} else {
		p.snapshotWrites.WithLabelValues("failure").Inc()
	}
}

// ObserveSnapshotLatency observes snapshot write latency.
func (p *PrometheusCollector) ObserveSnapshotLatency(seconds float64) {
	p.ensureRegistered()
	p.snapshotLatency.Observe(seconds)
}
