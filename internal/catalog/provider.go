// Package catalog serves immutable catalog snapshots loaded from a storage
// source and answers the questionnaire option queries against them.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"advisor/internal/config"
	"advisor/pkg/domain"
	"advisor/pkg/logger"
	"advisor/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Options configure snapshot reloading.
type Options struct {
	// RefreshInterval is how long a loaded snapshot is served before the source
	// is read again. Zero loads the catalog once and never refreshes it.
	RefreshInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RefreshInterval: cfg.Catalog.RefreshInterval,
	}
}

// Provider caches the catalog read from a storage.CatalogReader. All callers
// share the same immutable *domain.Catalog until it expires.
type Provider struct {
	options Options
	source  storage.CatalogReader
	now     func() time.Time

	mu       sync.RWMutex
	snapshot *domain.Catalog
	loadedAt time.Time

	group singleflight.Group
}

// New creates a Provider. The catalog is loaded lazily on the first Snapshot call.
func New(source storage.CatalogReader, options Options) *Provider {
	return &Provider{
		options: options,
		source:  source,
		now:     time.Now,
	}
}

func (p *Provider) current() (*domain.Catalog, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.snapshot == nil {
		return nil, false
	}
	if p.options.RefreshInterval > 0 && p.now().Sub(p.loadedAt) >= p.options.RefreshInterval {
		return p.snapshot, false
	}

	return p.snapshot, true
}

// Snapshot returns the current catalog, reloading it from the source when it
// has expired. Concurrent reloads are coalesced. If a reload fails and a
// previous snapshot exists, the stale snapshot is served and the error logged.
// The shared reload ignores cancellation of ctx so one caller giving up does
// not fail the others waiting on it.
func (p *Provider) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	stale, fresh := p.current()
	if fresh {
		return stale, nil
	}

	v, err, _ := p.group.Do("snapshot", func() (interface{}, error) {
		return p.Reload(context.WithoutCancel(ctx))
	})
	if err != nil {
		if stale != nil {
			logger.Warn(ctx, "could not refresh catalog, serving stale snapshot",
				zap.String("version", stale.Version()),
				zap.Error(err))

			return stale, nil
		}

		return nil, err
	}

	return v.(*domain.Catalog), nil
}

// Reload reads the source unconditionally and replaces the cached snapshot.
func (p *Provider) Reload(ctx context.Context) (*domain.Catalog, error) {
	candidates, err := p.source.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load catalog candidates: %w", err)
	}

	catalog, err := domain.NewCatalog(candidates...)
	if err != nil {
		return nil, fmt.Errorf("could not build catalog: %w", err)
	}

	p.mu.Lock()
	previous := p.snapshot
	p.snapshot = catalog
	p.loadedAt = p.now()
	p.mu.Unlock()

	if previous == nil || previous.Version() != catalog.Version() {
		logger.Info(ctx, "catalog loaded",
			zap.Int("candidates", catalog.Len()),
			zap.String("version", catalog.Version()))
	}

	return catalog, nil
}
