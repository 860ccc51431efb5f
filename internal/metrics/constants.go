package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Catalog metric names
const (
	MetricNameRecordsLoaded     = "catalog_records_loaded_total"
	MetricNameRecordsSkipped    = "catalog_records_skipped_total"
	MetricNameLoadFailures      = "catalog_load_failures_total"
	MetricNameSearchesPerformed = "searches_performed_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Catalog metric help text
const (
	HelpTextRecordsLoaded     = "Total number of catalog records successfully normalized"
	HelpTextRecordsSkipped    = "Total number of catalog records skipped during validation"
	HelpTextLoadFailures      = "Total number of whole-file catalog load failures"
	HelpTextSearchesPerformed = "Total number of unified searches performed"
)

// Metric label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
