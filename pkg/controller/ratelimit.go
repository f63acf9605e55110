package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// WithRateLimit returns a middleware allowing requests per window for every
// client IP, as reported by GetClientIP. A negative requests value disables it.
func WithRateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests < 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return GetClientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"too many requests"}`))
		}),
	)
}
