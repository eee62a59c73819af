package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// WithRequestLog writes one structured line per request. The request id comes
// from chi's RequestID middleware via the X-Request-Id response header, or
// from the inbound header when a proxy set one.
func WithRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sr, r)

		slog.Info("http request",
			"request_id", r.Header.Get("X-Request-Id"),
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.status,
			"duration", time.Since(start).String(),
		)
	})
}
