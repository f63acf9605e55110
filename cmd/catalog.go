package main

import (
	"context"
	"fmt"

	"advisor/internal/config"
	"advisor/pkg/domain"
	"advisor/pkg/logger"
	"advisor/pkg/storage"
	"advisor/pkg/storage/file"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCatalog replaces the candidates table with the content of source in a
// single transaction. It returns the number of upserted and deleted rows.
func importCatalog(ctx context.Context, strg storage.Storage, source storage.CatalogReader) (int64, int64, error) {
	candidates, err := source.Candidates(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not read candidates: %w", err)
	}

	// validate before touching the table
	if _, err := domain.NewCatalog(candidates...); err != nil {
		return 0, 0, fmt.Errorf("invalid catalog: %w", err)
	}

	keep := make([]string, 0, len(candidates))
	for _, c := range candidates {
		keep = append(keep, c.ID)
	}

	var upserted, deleted int64
	err = strg.WithTx(ctx, func(tx storage.AllStorage) error {
		if upserted, err = tx.UpsertCandidates(ctx, candidates...); err != nil {
			return fmt.Errorf("could not upsert candidates: %w", err)
		}
		if deleted, err = tx.DeleteCandidatesExcept(ctx, keep); err != nil {
			return fmt.Errorf("could not delete stale candidates: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("could not import catalog: %w", err)
	}

	return upserted, deleted, nil
}

func catalogCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manages the candidates catalog stored in postgres",
	}

	var importPath string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Replaces the stored catalog with a JSON catalog file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			upserted, deleted, err := importCatalog(ctx, strg, file.New(importPath))
			if err != nil {
				logger.Fatal(ctx, "could not import catalog", zap.Error(err))
			}
			logger.Info(ctx, "catalog imported",
				zap.String("file", importPath),
				zap.Int64("upserted", upserted),
				zap.Int64("deleted", deleted))
		},
	}
	importCmd.Flags().StringVarP(&importPath, "file", "f", cfg.Catalog.Path, "catalog file to import")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists stored candidates",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			candidates, err := strg.Candidates(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not list candidates", zap.Error(err))
			}
			for _, c := range candidates {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s trust=%.1f countries=%d exchanges=%d blockchains=%d nft=%d defi=%d\n",
					c.ID, c.TrustRating, len(c.Countries), len(c.Exchanges), len(c.Blockchains),
					c.NFTProtocolCount(), c.DeFiProtocolCount())
			}
		},
	}

	var exportPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Writes the stored catalog to a JSON catalog file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			candidates, err := strg.Candidates(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not list candidates", zap.Error(err))
			}
			if err := file.Write(exportPath, candidates); err != nil {
				logger.Fatal(ctx, "could not export catalog", zap.Error(err))
			}
			logger.Info(ctx, "catalog exported", zap.String("file", exportPath), zap.Int("candidates", len(candidates)))
		},
	}
	exportCmd.Flags().StringVarP(&exportPath, "file", "f", "catalog-export.json", "destination file")

	cmd.AddCommand(importCmd, listCmd, exportCmd)

	return cmd
}
