package interfaces

import "context"

// FileStore reads and writes whole files as UTF-8 text.
type FileStore interface {
	ReadFile(ctx context.Context, path string) (string, error)
	WriteFile(ctx context.Context, path, text string) error
}
