package advisor

import (
	"context"
	"fmt"

	"advisor/internal/catalog"
	"advisor/internal/leads"
	"advisor/internal/recommend"
	"advisor/pkg/cache"
	"advisor/pkg/domain"
	"advisor/pkg/logger"

	"go.uber.org/zap"
)

// Deps holds the collaborators of the service. Cache and Leads are optional.
type Deps struct {
	Catalog Snapshotter
	Engine  *recommend.Engine
	Cache   cache.RecommendationCache
	Leads   leads.Leads
}

type service struct {
	deps Deps
}

// New creates a Service.
func New(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) snapshot(ctx context.Context) (*domain.Catalog, error) {
	c, err := s.deps.Catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load catalog: %w", err)
	}

	return c, nil
}

// Recommend validates the profile, serves a cached result when one exists and
// scores the profile otherwise. Cache and lead capture failures are logged and
// never fail the call.
func (s *service) Recommend(ctx context.Context, profile domain.Profile) ([]domain.Recommendation, error) {
	if err := recommend.Validate(profile); err != nil {
		return nil, err //nolint: wrapcheck
	}
	profile = profile.Normalized()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	version := snapshot.Version()

	recs, hit := s.cached(ctx, version, profile)
	if !hit {
		recs, err = s.deps.Engine.Recommend(ctx, snapshot, profile)
		if err != nil {
			return nil, fmt.Errorf("could not compute recommendations: %w", err)
		}

		if s.deps.Cache != nil {
			if err := s.deps.Cache.StoreRecommendations(ctx, version, profile, recs); err != nil {
				logger.Warn(ctx, "could not cache recommendations", zap.Error(err))
			}
		}
	}

	s.capture(ctx, version, profile, recs)

	return recs, nil
}

func (s *service) cached(ctx context.Context, version string, profile domain.Profile) ([]domain.Recommendation, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	recs, ok, err := s.deps.Cache.Recommendations(ctx, version, profile)
	if err != nil {
		logger.Warn(ctx, "could not read cached recommendations", zap.Error(err))

		return nil, false
	}
	if ok {
		logger.Debug(ctx, "serving cached recommendations", zap.String("catalog_version", version))
	}

	return recs, ok
}

func (s *service) capture(ctx context.Context, version string, profile domain.Profile, recs []domain.Recommendation) {
	if s.deps.Leads == nil {
		return
	}

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ID)
	}

	lead, err := s.deps.Leads.Capture(ctx, domain.Lead{
		Profile:        profile,
		Recommended:    ids,
		CatalogVersion: version,
	})
	if err != nil {
		logger.Error(ctx, "could not capture lead", zap.Error(err))

		return
	}

	logger.Debug(ctx, "captured lead", zap.Stringer("lead_id", lead.ID))
}

func (s *service) Countries(ctx context.Context) ([]string, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return catalog.Countries(snapshot), nil
}

func (s *service) Exchanges(ctx context.Context, country string) ([]string, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return catalog.Exchanges(snapshot, country), nil
}

func (s *service) Blockchains(ctx context.Context, country, exchange string) ([]string, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return catalog.Blockchains(snapshot, country, exchange), nil
}
