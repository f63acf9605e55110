// Package rediscache implements cache.RecommendationCache on redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"advisor/internal/config"
	"advisor/pkg/cache"
	"advisor/pkg/domain"

	"github.com/go-faster/jx"
	"github.com/redis/go-redis/v9"
)

// Options configure the redis connection and entry lifetime.
type Options struct {
	// Addr is the redis host:port.
	Addr string
	// Password is used for redis authentication.
	Password string
	// DB is the redis logical database.
	DB int
	// TTL is how long an entry is kept. Zero keeps entries until evicted.
	TTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL,
	}
}

// Cache is a redis backed recommendation cache.
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ cache.RecommendationCache = (*Cache)(nil)

// New connects to redis using options.
func New(options Options) *Cache {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:         options.Addr,
		Password:     options.Password,
		DB:           options.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}), options.TTL)
}

// NewWithClient wraps an existing client.
func NewWithClient(client redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Ping checks the redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Recommendations returns the cached list for profile. A miss returns false
// with a nil error.
func (c *Cache) Recommendations(ctx context.Context,
	catalogVersion string,
	profile domain.Profile) ([]domain.Recommendation, bool, error) {
	b, err := c.client.Get(ctx, cache.Key(catalogVersion, profile)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not get cached recommendations: %w", err)
	}

	recs, err := domain.DecodeRecommendations(jx.DecodeBytes(b))
	if err != nil {
		return nil, false, fmt.Errorf("could not decode cached recommendations: %w", err)
	}

	return recs, true, nil
}

// StoreRecommendations caches recs for profile.
func (c *Cache) StoreRecommendations(ctx context.Context,
	catalogVersion string,
	profile domain.Profile,
	recs []domain.Recommendation) error {
	var e jx.Encoder
	domain.EncodeRecommendations(&e, recs)

	if err := c.client.Set(ctx, cache.Key(catalogVersion, profile), e.Bytes(), c.ttl).Err(); err != nil {
		return fmt.Errorf("could not cache recommendations: %w", err)
	}

	return nil
}
