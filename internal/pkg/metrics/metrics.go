// Package metrics defines and registers all custom Prometheus metrics for the
// switch console. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry on package load and
// are served by the echoprometheus handler at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "switch_console"

// ── Backend metrics ──────────────────────────────────────────────────────────

// BackendRequestsTotal counts calls to the reservation backend.
// Labels:
//   - operation: endpoint name (e.g. "list_switch", "reserve")
//   - outcome: "success", "server_error" (non-2xx) or "transport_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of backend calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// BackendRequestDuration measures backend round trips.
// Label:
//   - operation: endpoint name
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend calls from dispatch to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// BatchSize tracks how many calls each batch issues.
var BatchSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_calls",
		Help:      "Number of calls issued per batch.",
		Buckets:   []float64{1, 2, 3, 5, 8, 13},
	},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard evaluations.
// Label:
//   - decision: "allowed" or "redirected-to-login"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by decision.",
	},
	[]string{"decision"},
)

// AuthAttemptsTotal counts login, signup and logout calls.
// Labels:
//   - action: "login", "signup" or "logout"
//   - outcome: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of auth calls, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// SessionClearsTotal counts local session wipes. Logout clears on every path.
var SessionClearsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_clears_total",
		Help:      "Total number of times the local session was cleared.",
	},
)

// Outcome renders a success flag as the outcome label value.
func Outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
