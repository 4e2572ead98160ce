package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Retrieval outcomes
const (
	OutcomeOK           = "ok"
	OutcomeNotFound     = "not_found"
	OutcomeStorageError = "storage_error"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carbon_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carbon_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecordRetrievals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carbon_record_retrievals_total",
			Help: "Record retrievals by outcome",
		},
		[]string{"outcome"},
	)

	RecordsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "carbon_records_returned",
			Help:    "Number of cleaned records returned per retrieval",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carbon_survey_submissions_total",
			Help: "Survey submissions by result",
		},
		[]string{"result"},
	)

	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "carbon_websocket_clients",
			Help: "Currently connected record stream clients",
		},
	)
)

func ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func ObserveRetrieval(outcome string, n int) {
	RecordRetrievals.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		RecordsReturned.Observe(float64(n))
	}
}
