// Package controller holds the HTTP middlewares shared by the advisor API:
// request logging and IDs (WithLogger), request metrics (WithMetrics), CORS
// (WithCORS) and per-client rate limiting (WithRateLimit). Pprof serves the
// runtime profiles.
package controller
