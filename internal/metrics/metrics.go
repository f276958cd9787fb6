// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Quiz draw outcomes.
const (
	OutcomeDrawn     = "drawn"
	OutcomeExhausted = "exhausted"
)

// Metrics groups the service collectors. Build one per registry.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	QuizDraw *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trivia",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trivia",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		QuizDraw: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trivia",
			Name:      "quiz_draws_total",
			Help:      "Quiz question draws by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.Requests, m.Duration, m.QuizDraw)
	return m
}

// ObserveQuizDraw records the outcome of one quiz draw.
func (m *Metrics) ObserveQuizDraw(outcome string) {
	if m == nil {
		return
	}
	m.QuizDraw.WithLabelValues(outcome).Inc()
}
