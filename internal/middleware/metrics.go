package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Totarae/RentalTracker/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// MetricsMiddleware собирает Prometheus-метрики по каждому запросу.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()

		lw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lw, r)

		// Шаблон маршрута вместо фактического пути, чтобы не раздувать кардинальность
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		metrics.RecordHTTPMetrics(r.Method, path, strconv.Itoa(lw.statusCode), time.Since(start))
	})
}
