package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP request latency by route pattern, method and status
	RequestLatency *prometheus.HistogramVec

	// CNIC operation outcomes by operation and outcome
	CNICOutcomes *prometheus.CounterVec

	// Rejections by the first rule the input broke
	CNICRejections *prometheus.CounterVec
}

// New creates all metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cnic_gateway_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route, method and status",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		}, []string{"route", "method", "status"}),

		CNICOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cnic_gateway_operations_total",
			Help: "Total CNIC operations by operation and outcome",
		}, []string{"operation", "outcome"}), // outcome: "valid", "invalid"

		CNICRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cnic_gateway_rejections_total",
			Help: "Total rejected CNIC inputs by the first rule they broke",
		}, []string{"reason"}),
	}
}

// ObserveRequestLatency records the duration of one HTTP request.
func (m *Metrics) ObserveRequestLatency(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

// IncrementOutcome records the outcome of a CNIC operation.
func (m *Metrics) IncrementOutcome(operation string, valid bool) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.CNICOutcomes.WithLabelValues(operation, outcome).Inc()
}

// IncrementRejection records why an input was rejected.
func (m *Metrics) IncrementRejection(reason string) {
	if m != nil && reason != "" {
		m.CNICRejections.WithLabelValues(reason).Inc()
	}
}
