// Package metrics defines and registers all custom Prometheus metrics for the
// karagul gateway. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "karagul"

// ── Backend call metrics ──────────────────────────────────────────────────────

// BackendRequestsTotal counts calls to the content backend.
// Labels:
//   - resource: first path segment of the call (e.g. "businesses", "auth")
//   - method: HTTP method
//   - status: numeric HTTP status, or "transport_error" when the call never
//     produced a response
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the content backend.",
	},
	[]string{"resource", "method", "status"},
)

// BackendRequestDuration measures how long one backend call takes end-to-end.
// Label:
//   - resource: first path segment of the call
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of content backend calls from send to response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"resource"},
)

// BackendRequestTimer starts a duration observation for one backend call.
func BackendRequestTimer(resource string) *prometheus.Timer {
	return prometheus.NewTimer(BackendRequestDuration.WithLabelValues(resource))
}

// ── Directory metrics ─────────────────────────────────────────────────────────

// SearchesTotal counts search requests served by the gateway.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of directory searches served.",
	},
)

// ContactMessagesTotal counts visitor inquiries forwarded to the backend.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages submitted.",
	},
)
