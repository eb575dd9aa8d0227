// SPDX-License-Identifier: MIT

/*
Package metrics records multiplication timings in a private Prometheus
registry and exports them in the node-exporter textfile format.

# Metrics Exported

  - clrs_multiply_duration_seconds: Histogram by algorithm and size
  - clrs_multiply_runs_total: Counter by algorithm and result (ok, error, mismatch)
  - clrs_bench_last_run_timestamp_seconds: Gauge, set when a bench run finishes

A private registry keeps the output free of Go runtime collectors, so the
textfile contains only what the bench produced.
*/
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "clrs"
)

// Results counted by clrs_multiply_runs_total.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultMismatch = "mismatch"
)

// durationBuckets spans tiny (n=2) to large (n=512 naive) products.
var durationBuckets = []float64{
	0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30,
}

// Recorder owns the registry and the collectors.
//
// Thread Safety: safe for concurrent use (prometheus collectors are).
type Recorder struct {
	reg      *prometheus.Registry
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
	lastRun  prometheus.Gauge
}

// NewRecorder registers every collector on a fresh registry.
func NewRecorder() (*Recorder, error) {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "multiply",
			Name:      "duration_seconds",
			Help:      "Wall time of one square matrix multiplication.",
			Buckets:   durationBuckets,
		}, []string{"algorithm", "size"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "multiply",
			Name:      "runs_total",
			Help:      "Multiplications by algorithm and outcome.",
		}, []string{"algorithm", "result"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bench",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time at which the last bench run finished.",
		}),
	}
	for _, c := range []prometheus.Collector{r.duration, r.runs, r.lastRun} {
		if err := r.reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// Observe records one multiplication of order n.
func (r *Recorder) Observe(algorithm string, n int, d time.Duration, result string) {
	if result == ResultOK {
		r.duration.WithLabelValues(algorithm, strconv.Itoa(n)).Observe(d.Seconds())
	}
	r.runs.WithLabelValues(algorithm, result).Inc()
}

// MarkRun stamps the end of a bench run.
func (r *Recorder) MarkRun(at time.Time) {
	r.lastRun.Set(float64(at.UnixNano()) / 1e9)
}

// Registry exposes the underlying registry (for gathering in tests or serving).
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
