package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"broker-commission/internal/commission"
	"broker-commission/internal/commission/commissionobs"
	"broker-commission/internal/interfaces"
	"broker-commission/internal/logger"
	"broker-commission/internal/pipeline"
	"broker-commission/internal/pipeline/pipelineobs"
	"broker-commission/internal/runlog"
	"broker-commission/internal/store"
	"broker-commission/internal/trace"
)

// initializeSystem loads .env and sets up logging and tracing.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

// loadConfig reads path, or falls back to the built-in defaults when path is empty.
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	if path == "" {
		logger.Info(ctx, "No config file given, using defaults")
		return store.DefaultConfig(), nil
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// compressOldLogs gzips run logs past the retention window.
func compressOldLogs(ctx context.Context, cfg *store.Config) {
	if cfg.Log.RetentionDays <= 0 {
		return
	}
	if err := runlog.CompressOlder(cfg.Log.Dir, cfg.Log.RetentionDays); err != nil {
		logger.Warn(ctx, "Failed to compress old logs", "error", err)
	}
}

// initializeCalculator builds the commission calculator with observability.
func initializeCalculator(cfg *store.Config) interfaces.Calculator {
	rates := cfg.CurrencyRates()
	calc := commission.New(cfg.Scheme(), rates, cfg.HomeCurrency)
	return commissionobs.Wrap(calc, rates, cfg.HomeCurrency)
}

// initializeRunner wires the file store, calculator and run log together.
func initializeRunner(cfg *store.Config, dir string) *pipeline.Runner {
	files := pipelineobs.Wrap(pipeline.OSFiles{Dir: dir})
	return pipeline.NewRunner(files, initializeCalculator(cfg), cfg.Log.Dir)
}
