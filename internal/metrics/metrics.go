package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	EstimatesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimates_generated_total",
			Help: "Total number of estimates calculated",
		},
		[]string{"project_type"},
	)

	IntegrationResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_results_total",
			Help: "Outcomes of outbound email and CRM calls",
		},
		[]string{"integration", "success"},
	)
)

func ObserveIntegration(integration string, success bool) {
	IntegrationResults.WithLabelValues(integration, strconv.FormatBool(success)).Inc()
}
