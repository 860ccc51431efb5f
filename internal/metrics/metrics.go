package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Catalog Metrics
var (
	CatalogRecordsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsLoaded,
			Help: HelpTextRecordsLoaded,
		},
		[]string{LabelKind},
	)

	CatalogRecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsSkipped,
			Help: HelpTextRecordsSkipped,
		},
		[]string{LabelKind},
	)

	CatalogLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoadFailures,
			Help: HelpTextLoadFailures,
		},
		[]string{LabelKind},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)
)
