package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// UsersRegisteredTotal counts successful registrations.
	UsersRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of registered users",
		},
	)

	// PostsMutatedTotal counts post mutations by action (create, update, delete).
	PostsMutatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posts_mutated_total",
			Help: "Total number of post mutations by action",
		},
		[]string{"action"},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, UsersRegisteredTotal, PostsMutatedTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /12/update/ -> /{id}/update/, /profile/45/ -> /profile/{id}/.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncUsersRegistered increments the registration counter (call after a successful Register).
func IncUsersRegistered() {
	UsersRegisteredTotal.Inc()
}

// IncPostsMutated increments the post mutation counter for the given action (create, update, delete).
func IncPostsMutated(action string) {
	PostsMutatedTotal.WithLabelValues(action).Inc()
}
