package logger_test

import (
	"context"
	"testing"

	"advisor/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { _ = logger.Setup(logger.DevelopmentEnvironment, "") })

	tests := []struct {
		name        string
		environment string
		level       string
		wantDebug   bool
		wantInfo    bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, wantDebug: true, wantInfo: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, wantInfo: true},
		{name: "level overrides environment", environment: logger.DevelopmentEnvironment, level: "warn"},
		{name: "production can be made verbose", environment: logger.ProductionEnvironment, level: "debug", wantDebug: true, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Setup(tt.environment, tt.level))

			ctx := context.Background()
			require.Equal(t, tt.wantDebug, logger.IsDebug(ctx))
			require.Equal(t, tt.wantInfo, logger.Get(ctx).Core().Enabled(zap.InfoLevel))
		})
	}
}

func TestSetup_InvalidLevelKeepsLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	before := logger.Get(context.Background())

	err := logger.Setup(logger.ProductionEnvironment, "chatty")
	require.Error(t, err)
	require.Same(t, before, logger.Get(context.Background()))
}

func TestGet_PrefersContextLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	require.NotNil(t, logger.Get(context.Background()))

	custom := zap.NewExample()
	require.Same(t, custom, logger.Get(logger.WithLogger(context.Background(), custom)))
}

func TestWithFields(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)

	ctx = logger.WithFields(ctx, zap.String("profile", "solana"), zap.Int("eligible", 4))
	logger.Info(ctx, "scored")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, map[string]any{"profile": "solana", "eligible": int64(4)}, entries[0].ContextMap())
}

func TestLevelHelpers(t *testing.T) {
	ctx, logs := observed(zapcore.InfoLevel)

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	var levels []zapcore.Level
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
	require.False(t, logger.IsDebug(ctx))
}

func TestSlog_WritesToContextLogger(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)

	logger.Slog(ctx).Info("slog message", "key", "value")

	entries := logs.FilterMessage("slog message").All()
	require.Len(t, entries, 1)
	require.Equal(t, "value", entries[0].ContextMap()["key"])
}
