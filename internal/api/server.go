// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the advisor service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"advisor/internal/api/handler/v1handler"
	"advisor/internal/config"
	"advisor/pkg/controller"
	"advisor/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options configure the HTTP server. Zero durations keep net/http defaults.
type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// RequestTimeout bounds handling of one request. Zero disables it.
	RequestTimeout time.Duration
	// MaxBodyBytes caps /v1 request bodies. Zero or less disables the cap.
	MaxBodyBytes int64
	MetricsPath  string
	// AllowedOrigins are the CORS origins; "*" allows any.
	AllowedOrigins []string
	// RateLimitRequests scoring requests are allowed per client IP and
	// RateLimitWindow. A negative value disables the limit.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		RateLimitRequests: cfg.HTTP.RateLimit.Requests,
		RateLimitWindow:   cfg.HTTP.RateLimit.Window,
	}
}

type Deps struct {
	v1handler.Deps

	// HealthCheck reports whether backing services are reachable. Nil always
	// reports healthy.
	HealthCheck func(ctx context.Context) error
	// MeterProvider records HTTP metrics. Nil disables them.
	MeterProvider metric.MeterProvider
	// Gatherer is served at the metrics path. Nil uses the default registry.
	Gatherer prometheus.Gatherer
}

func healthz(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if check != nil {
			if err := check(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func withMaxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// withTimeout answers 503 with timeoutBody once d has passed. Zero or less
// disables it.
func withTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		timeout := http.TimeoutHandler(next, d, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			timeout.ServeHTTP(w, r)
		})
	}
}

// NewHandler routes the v1 API, its OpenAPI document and Swagger UI, the
// metrics, health and pprof endpoints behind the logging, metrics and CORS
// middlewares. Only /v1 requests are bounded by opts.RequestTimeout.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	if deps.MeterProvider == nil {
		deps.MeterProvider = noop.NewMeterProvider()
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	withMetrics, err := controller.WithMetrics(deps.MeterProvider.Meter("advisor/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	r := chi.NewRouter()
	r.Use(controller.WithLogger, withMetrics, controller.WithCORS(opts.AllowedOrigins))

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	r.Get("/healthz", healthz(deps.HealthCheck))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Crypto Tax Advisor",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	h := v1handler.New(deps.Deps)
	r.Route("/v1", func(r chi.Router) {
		r.Use(withTimeout(opts.RequestTimeout), withMaxBody(opts.MaxBodyBytes))
		r.With(controller.WithRateLimit(opts.RateLimitRequests, opts.RateLimitWindow)).Post("/score", h.Score)
		r.Get("/options/countries", h.Countries)
		r.Get("/options/exchanges", h.Exchanges)
		r.Get("/options/blockchains", h.Blockchains)
	})

	// pprof
	r.Mount(controller.PprofPath, controller.Pprof())

	return r, nil
}

// NewServer returns a server for NewHandler whose internal errors are logged
// through the context logger.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Slog(ctx).Handler(), slog.LevelError),
	}, nil
}
