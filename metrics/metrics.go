// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the request collectors on a private registry, so each
// router owns its own set.
type Metrics struct {
	registry        *prometheus.Registry
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	gradedAnswers   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "endpoint"},
		),
		gradedAnswers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "olympiad_answers_graded_total",
				Help: "Submitted answers by grading outcome",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.gradedAnswers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRequest records one completed request
func (m *Metrics) ObserveRequest(method, endpoint string, status int, d time.Duration) {
	m.requestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

// Grading outcomes
const (
	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
	OutcomeSkipped   = "skipped"
)

// ObserveGraded counts answers per grading outcome
func (m *Metrics) ObserveGraded(outcome string, n int) {
	if n > 0 {
		m.gradedAnswers.WithLabelValues(outcome).Add(float64(n))
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
