// Package recommend ranks catalog candidates against a user profile.
//
// A scoring call runs a fixed pipeline: validate the profile, keep the
// candidates supporting the primary blockchain, score and rank them, apply the
// post-ranking policies, cut the result to the configured limit and annotate
// each result with the blockchains and exchanges it matched. The pipeline is
// pure: it reads an immutable catalog snapshot and never mutates shared state,
// so an Engine is safe for concurrent use.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"advisor/internal/config"
	"advisor/pkg/domain"
	"advisor/pkg/logger"
	"advisor/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// DefaultLimit is the number of recommendations returned per call.
const DefaultLimit = 3

// Options configure an Engine.
type Options struct {
	// Limit caps the number of returned recommendations. Zero means DefaultLimit.
	Limit int
	// Policies run in order after ranking.
	Policies []Policy
	// Meter records engine metrics. Nil disables them.
	Meter metric.Meter
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	opts := Options{Limit: cfg.Recommend.Limit}
	if !cfg.Recommend.PromotionsDisabled {
		opts.Policies = append(opts.Policies, SolanaPromotion())
	}

	return opts
}

// Engine computes recommendations.
type Engine struct {
	limit    int
	policies []Policy

	requests  metric.Int64Counter
	eligible  metric.Int64Histogram
	durations metric.Float64Histogram
}

// New creates an Engine.
func New(options Options) (*Engine, error) {
	if options.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", options.Limit)
	}
	if options.Limit == 0 {
		options.Limit = DefaultLimit
	}
	if options.Meter == nil {
		options.Meter = noop.NewMeterProvider().Meter("advisor/recommend")
	}

	requests, err := options.Meter.Int64Counter("advisor.recommend.requests",
		metric.WithDescription("Number of scoring calls by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	eligible, err := options.Meter.Int64Histogram("advisor.recommend.eligible_candidates",
		metric.WithDescription("Number of candidates supporting the primary blockchain"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 3, 5, 10, 20, 50))
	if err != nil {
		return nil, fmt.Errorf("could not create eligible histogram: %w", err)
	}
	durations, err := options.Meter.Float64Histogram("advisor.recommend.duration",
		metric.WithDescription("Scoring call latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Engine{
		limit:     options.Limit,
		policies:  options.Policies,
		requests:  requests,
		eligible:  eligible,
		durations: durations,
	}, nil
}

// Recommend returns up to the configured limit of recommendations for p.
// A profile failing validation yields a *ValidationError. No eligible
// candidates yield an empty list. Missing catalog entries referenced by a
// policy are logged and returned with empty matched lists.
func (e *Engine) Recommend(
	ctx context.Context,
	catalog *domain.Catalog,
	p domain.Profile) ([]domain.Recommendation, error) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		attrs := metric.WithAttributes(attribute.String("outcome", outcome))
		e.requests.Add(ctx, 1, attrs)
		e.durations.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	if err := Validate(p); err != nil {
		outcome = "invalid"

		return nil, err
	}
	p = p.Normalized()

	entries := Eligible(catalog, p.PrimaryBlockchain)
	e.eligible.Record(ctx, int64(len(entries)))
	if len(entries) == 0 {
		outcome = "empty"
		logger.Debug(ctx, "no candidate supports primary blockchain",
			zap.String("blockchain", p.PrimaryBlockchain))

		return []domain.Recommendation{}, nil
	}

	ranked := Rank(p, entries)
	for _, policy := range e.policies {
		ranked = policy.Apply(p, ranked)
	}
	if len(ranked) > e.limit {
		ranked = ranked[:e.limit]
	}

	recs, err := Annotate(catalog, p, ranked)
	if err != nil {
		var integrity *DataIntegrityError
		if !errors.As(err, &integrity) {
			outcome = "error"

			return nil, fmt.Errorf("could not annotate recommendations: %w", err)
		}
		outcome = "degraded"
		logger.Warn(ctx, "recommendation references unknown candidate", zap.Error(err))
	}

	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "computed recommendations",
			zap.String("catalog_version", catalog.Version()),
			zap.Int("eligible", len(entries)),
			zap.Any("recommendations", recs))
	}

	return recs, nil
}
