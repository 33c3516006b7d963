package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder wires future/pool internals into Prometheus. A nil *Recorder is
// valid on every method and records nothing, so instrumentation is entirely
// opt-in: future.NewPromise and pool.New work without ever touching a
// registry.
type Recorder struct {
	resolutions       *prometheus.CounterVec
	resolutionSeconds prometheus.Histogram
	programmingErrors *prometheus.CounterVec
	poolTasks         *prometheus.CounterVec
}

// NewRecorder registers asyncx's metrics against reg and returns a Recorder
// backed by them. Pass prometheus.DefaultRegisterer to use the global
// registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "asyncx_future_resolutions_total",
			Help: "Futures resolved, by outcome.",
		}, []string{"outcome"}),
		resolutionSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "asyncx_future_resolution_seconds",
			Help:    "Time from promise creation to resolution.",
			Buckets: prometheus.DefBuckets,
		}),
		programmingErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "asyncx_future_programming_errors_total",
			Help: "Precursor contract violations, by kind.",
		}, []string{"kind"}),
		poolTasks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "asyncx_pool_tasks_total",
			Help: "Tasks submitted to a pool, by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveResolution records a future resolving, either as a value or as an
// error, along with the time it took from promise creation.
func (r *Recorder) ObserveResolution(isValue bool, elapsed time.Duration) {
	if r == nil {
		return
	}
	outcome := "error"
	if isValue {
		outcome = "value"
	}
	r.resolutions.WithLabelValues(outcome).Inc()
	r.resolutionSeconds.Observe(elapsed.Seconds())
}

// ProgrammingError records a precursor contract violation of the given
// kind ("duplicate_set" or "duplicate_continuation").
func (r *Recorder) ProgrammingError(kind string) {
	if r == nil {
		return
	}
	r.programmingErrors.WithLabelValues(kind).Inc()
}

// PoolTask records a pool task completing, by outcome ("ok" or "panic").
func (r *Recorder) PoolTask(outcome string) {
	if r == nil {
		return
	}
	r.poolTasks.WithLabelValues(outcome).Inc()
}
