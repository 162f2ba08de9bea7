package pipelineobs

import (
	"context"
	"time"

	"broker-commission/internal/interfaces"
	"broker-commission/internal/logger"
	"broker-commission/internal/trace"
)

type observableFileStore struct {
	files interfaces.FileStore
}

var _ interfaces.FileStore = (*observableFileStore)(nil)

func Wrap(files interfaces.FileStore) interfaces.FileStore {
	return &observableFileStore{
		files: files,
	}
}

func (o *observableFileStore) ReadFile(ctx context.Context, path string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "files.ReadFile")
	defer span.End()

	start := time.Now()
	text, err := o.files.ReadFile(ctx, path)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to read input file", err,
			"path", path,
		)
		return "", err
	}

	logger.DebugSkip(ctx, 1, "Input file read",
		"path", path,
		"bytes", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

func (o *observableFileStore) WriteFile(ctx context.Context, path, text string) error {
	ctx, span := trace.StartSpan(ctx, "files.WriteFile")
	defer span.End()

	start := time.Now()
	if err := o.files.WriteFile(ctx, path, text); err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to write output file", err,
			"path", path,
		)
		return err
	}

	logger.InfoSkip(ctx, 1, "Output file written",
		"path", path,
		"bytes", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
