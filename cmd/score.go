package main

import (
	"context"
	"fmt"

	"advisor/internal/config"
	"advisor/pkg/domain"
	"advisor/pkg/logger"
	"advisor/pkg/storage/postgres"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// scoreCommand scores a single profile against the configured catalog and
// prints the recommendations as JSON.
func scoreCommand(cfg *config.Config) *cobra.Command {
	var p domain.Profile
	var blockchains, exchanges []string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Scores a profile against the configured catalog and prints the result",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			var pg *postgres.PgSQL
			if cfg.Catalog.Source == config.CatalogSourcePostgres {
				var closeStrg func()
				pg, closeStrg = getPostgres(ctx, cfg)
				defer closeStrg()
			}

			snapshot, err := newProvider(ctx, cfg, catalogSource(cfg, pg)).Snapshot(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not load catalog", zap.Error(err))
			}

			p.Blockchains = domain.NewSet(blockchains...)
			p.Exchanges = domain.NewSet(exchanges...)
			recs, err := newEngine(ctx, cfg, noop.NewMeterProvider().Meter("")).Recommend(ctx, snapshot, p)
			if err != nil {
				logger.Fatal(ctx, "could not score profile", zap.Error(err))
			}

			e := jx.Encoder{}
			e.SetIdent(2)
			domain.EncodeRecommendations(&e, recs)
			fmt.Fprintln(cmd.OutOrStdout(), e.String())
		},
	}

	cmd.Flags().StringVar(&p.PrimaryBlockchain, "primary", "", "primary blockchain")
	cmd.Flags().StringSliceVar(&blockchains, "blockchains", nil, "other blockchains")
	cmd.Flags().StringSliceVar(&exchanges, "exchanges", nil, "exchanges used")
	cmd.Flags().StringVar(&p.Country, "country", "", "country of residence")
	cmd.Flags().BoolVar(&p.NFT, "nft", false, "trades NFTs")
	cmd.Flags().BoolVar(&p.DeFi, "defi", false, "uses DeFi protocols")

	return cmd
}
