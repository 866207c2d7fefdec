package middleware

import (
	"net/http"
	"time"

	"github.com/oaktable/menu-service/internal/metrics"
)

// Metrics records request latency per route pattern. Pattern comes from the
// mux match so label cardinality stays bounded.
func Metrics(reg *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			reg.RequestSec.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
