// Package telemetry provides opt-in Prometheus instrumentation for the
// ingest path. It is safe to call from the per-record hot loop: when
// disabled, every public function is a no-op behind a single atomic load.
package telemetry

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Config controls the module.
//
//   - MetricsAddr, when non-empty, starts a dedicated HTTP server that
//     serves /metrics. If you already expose Prometheus elsewhere, leave it
//     empty and register promhttp yourself.
type Config struct {
	Enabled     bool
	MetricsAddr string // e.g. ":9090"; empty to skip the standalone endpoint
}

var enabled atomic.Bool

// Global collectors only; no per-host or per-resource labels, which would
// have unbounded cardinality on real logs.
var (
	recordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logsight_records_total",
		Help: "Log lines parsed and fed to the analyzers",
	})
	rejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logsight_rejected_lines_total",
		Help: "Input lines skipped because they did not parse",
	})
	blockedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logsight_blocked_records_total",
		Help: "Records flagged by the brute-force blocker",
	})
	serverErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logsight_server_error_records_total",
		Help: "Records with a 5xx status",
	})
	recordBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "logsight_record_bytes",
		Help:    "Distribution of response sizes across parsed records",
		Buckets: prometheus.ExponentialBuckets(64, 4, 10),
	})
)

func init() {
	// Register eagerly. Harmless when no endpoint is ever exposed.
	prometheus.MustRegister(recordsTotal, rejectedTotal, blockedTotal, serverErrorsTotal, recordBytes)
}

// Enable configures the module. Each call replaces the enabled flag. Each
// enabled call with a MetricsAddr starts another endpoint; an endpoint
// started earlier keeps running.
func Enable(cfg Config) {
	enabled.Store(cfg.Enabled)
	if !cfg.Enabled || cfg.MetricsAddr == "" {
		return
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
			logrus.Warnf("telemetry endpoint on %s: %v", cfg.MetricsAddr, err)
		}
	}()
}

// ObserveRecord counts one parsed record and its response size.
func ObserveRecord(sizeBytes uint64) {
	if !enabled.Load() {
		return
	}
	recordsTotal.Inc()
	recordBytes.Observe(float64(sizeBytes))
}

// IncRejected counts one skipped input line.
func IncRejected() {
	if !enabled.Load() {
		return
	}
	rejectedTotal.Inc()
}

// IncBlocked counts one blocked record.
func IncBlocked() {
	if !enabled.Load() {
		return
	}
	blockedTotal.Inc()
}

// IncServerError counts one 5xx record.
func IncServerError() {
	if !enabled.Load() {
		return
	}
	serverErrorsTotal.Inc()
}
