package main

import (
	"context"
	"testing"

	"advisor/internal/config"
	"advisor/pkg/logger"
	"advisor/pkg/storage/file"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewProvider_LogsLoadOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	cfg := &config.Config{}
	cfg.Catalog.Source = config.CatalogSourceFile
	cfg.Catalog.Path = "../data/blockchain-data.json"

	provider := newProvider(ctx, cfg, file.New(cfg.Catalog.Path))
	_, err := provider.Snapshot(ctx)
	require.NoError(t, err)

	loaded := logs.FilterMessage("catalog loaded").All()
	require.Len(t, loaded, 1)
	fields := loaded[0].ContextMap()
	require.Equal(t, config.CatalogSourceFile, fields["source"])
	require.NotEmpty(t, fields["version"])
}
