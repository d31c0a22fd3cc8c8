// Package metrics registers the Prometheus instruments for the backend.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "inventory_"

// Result labels for upload metrics.
const (
	ResultSuccess    = "success"
	ResultParseError = "parse_error"
	ResultInvalid    = "invalid"
	ResultBusy       = "busy"
	ResultError      = "error"
)

var (
	registerOnce sync.Once

	uploadsTotal   *prometheus.CounterVec
	rowsParsed     prometheus.Counter
	uploadDuration prometheus.Histogram
	queriesTotal   *prometheus.CounterVec
)

// Init registers all instruments with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		uploadsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "uploads_total",
				Help: "Inventory uploads by result",
			},
			[]string{"result"},
		)
		rowsParsed = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "rows_parsed_total",
				Help: "Data rows surviving normalization",
			},
		)
		uploadDuration = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "upload_duration_seconds",
				Help:    "End-to-end upload processing time",
				Buckets: prometheus.DefBuckets,
			},
		)
		queriesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "device_queries_total",
				Help: "Device list queries by outcome",
			},
			[]string{"outcome"},
		)

		prometheus.MustRegister(uploadsTotal, rowsParsed, uploadDuration, queriesTotal)
	})
}

// ObserveUpload records one upload attempt.
func ObserveUpload(result string, rows int, elapsed time.Duration) {
	if uploadsTotal == nil {
		return
	}
	uploadsTotal.WithLabelValues(result).Inc()
	if rows > 0 {
		rowsParsed.Add(float64(rows))
	}
	uploadDuration.Observe(elapsed.Seconds())
}

// ObserveQuery records one device list query.
func ObserveQuery(outcome string) {
	if queriesTotal == nil {
		return
	}
	queriesTotal.WithLabelValues(outcome).Inc()
}
