package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"broker-commission/internal/interfaces"
)

// OSFiles reads and writes files on disk, resolving relative paths against Dir.
type OSFiles struct {
	Dir string
}

var _ interfaces.FileStore = OSFiles{}

func (f OSFiles) resolve(path string) string {
	if f.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.Dir, path)
}

func (f OSFiles) ReadFile(_ context.Context, path string) (string, error) {
	b, err := os.ReadFile(f.resolve(path))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (f OSFiles) WriteFile(_ context.Context, path, text string) error {
	p := f.resolve(path)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(text), 0o644)
}
