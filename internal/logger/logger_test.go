package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggingBeforeInit(t *testing.T) {
	ctx := context.Background()
	require.NotPanics(t, func() {
		Info(ctx, "hello", "k", "v")
		Payout(ctx, "Emma", "1", "£125", "£0")
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_DETAILED", "true")

	cfg := LoadConfigFromEnv()
	require.Equal(t, LogConfig{Level: "warn", Format: "text", DetailedLogging: true}, cfg)
}

func TestInitWithConfigDetailed(t *testing.T) {
	require.NoError(t, InitWithConfig(LogConfig{Level: "ERROR", Format: "json", DetailedLogging: true}))
	t.Cleanup(func() { _ = InitWithConfig(LogConfig{Level: "INFO", Format: "json"}) })
	require.True(t, IsDebugEnabled())

	op := StartOperation(context.Background(), "test.op", "job", "basic", "rows", 3)
	require.NotNil(t, op.GetContext())
	op.End("written", true)

	op = StartOperation(context.Background(), "test.op")
	op.EndWithError(errors.New("boom"))
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, "WARN", parseLogLevel("warn").String())
	require.Equal(t, "INFO", parseLogLevel("nonsense").String())
}

func TestToAttributesSkipsUnknown(t *testing.T) {
	attrs := toAttributes([]any{"a", "x", "b", 2, 3, "c", "d", struct{}{}, "e"})
	require.Len(t, attrs, 2)
}
