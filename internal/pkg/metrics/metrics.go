package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobarber_dashboard_http_requests_total",
			Help: "Total HTTP requests served by the dashboard",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gobarber_dashboard_http_request_duration_seconds",
			Help:    "Dashboard HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobarber_dashboard_api_requests_total",
			Help: "Total requests sent to the gobarber backend API",
		},
		[]string{"resource", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gobarber_dashboard_api_request_duration_seconds",
			Help:    "Gobarber backend API latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	StaleResponsesDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobarber_dashboard_stale_responses_discarded_total",
			Help: "Fetch responses dropped because a newer request superseded them",
		},
		[]string{"resource"},
	)

	RouteGuardRedirects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobarber_dashboard_route_guard_redirects_total",
			Help: "Redirects issued by the route guard",
		},
		[]string{"target"},
	)

	LiveDashboards = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gobarber_dashboard_live_view_models",
			Help: "Dashboard view models currently held in memory",
		},
	)
)

func RecordHTTPRequest(method, route, status string) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func RecordAPIRequest(resource, status string, seconds float64) {
	APIRequestsTotal.WithLabelValues(resource, status).Inc()
	APIRequestDuration.WithLabelValues(resource).Observe(seconds)
}

func RecordStaleResponse(resource string) {
	StaleResponsesDiscarded.WithLabelValues(resource).Inc()
}

func RecordRouteGuardRedirect(target string) {
	RouteGuardRedirects.WithLabelValues(target).Inc()
}
