// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"time"

	"github.com/danielhkuo/olympiad/metrics"
)

// WithMetrics records request count and latency under the given
// endpoint label
func WithMetrics(m *metrics.Metrics, endpoint string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		m.ObserveRequest(r.Method, endpoint, rec.statusCode(), time.Since(start))
	})
}
