// Package advisor answers questionnaire submissions: it scores them against the
// current catalog snapshot, caches the result and captures the submission as a
// lead.
package advisor

import (
	"context"

	"advisor/pkg/domain"
)

//go:generate mockgen -package mockadvisor -source=interface.go -destination=mock/mockadvisor.go *
type Service interface {
	// Recommend returns the recommendations for a questionnaire submission.
	Recommend(ctx context.Context, profile domain.Profile) ([]domain.Recommendation, error)
	// Countries lists every country supported by a catalog product.
	Countries(ctx context.Context) ([]string, error)
	// Exchanges lists the exchanges of products available in country. An empty
	// country lists all exchanges.
	Exchanges(ctx context.Context, country string) ([]string, error)
	// Blockchains lists the blockchains of products available in country and
	// supporting exchange. Empty filters match every product.
	Blockchains(ctx context.Context, country, exchange string) ([]string, error)
}

// Snapshotter provides the catalog a request is answered against.
type Snapshotter interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}
