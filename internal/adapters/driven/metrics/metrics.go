// Package metrics records backend traffic as Prometheus metrics.
//
// Collectors register on a caller-supplied registry so the CLI, the web
// dashboard and tests each get an isolated set.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bidassist/bidassist-cli/internal/adapters/driven/backend"
)

// Ensure BackendMetrics implements the recorder.
var _ backend.Recorder = (*BackendMetrics)(nil)

// BackendMetrics counts and times requests to the RFP backend.
type BackendMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Uploads  *prometheus.CounterVec
}

// NewBackendMetrics registers the backend collectors on reg.
func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	factory := promauto.With(reg)
	return &BackendMetrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bidassist",
				Name:      "backend_requests_total",
				Help:      "Requests sent to the RFP backend by endpoint and status.",
			},
			[]string{"method", "endpoint", "status"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bidassist",
				Name:      "backend_request_duration_seconds",
				Help:      "Latency of RFP backend requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		Uploads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bidassist",
				Name:      "uploads_total",
				Help:      "RFP upload attempts by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

// ObserveRequest implements backend.Recorder.
func (m *BackendMetrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, path, statusLabel(status)).Inc()
	m.Duration.WithLabelValues(method, path).Observe(elapsed.Seconds())

	if path == backend.PathUploadRFP {
		outcome := "failed"
		if status >= 200 && status <= 299 {
			outcome = "succeeded"
		}
		m.Uploads.WithLabelValues(outcome).Inc()
	}
}

// statusLabel renders 0 as "error" for requests that never got a response.
func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
