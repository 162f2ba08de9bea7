package runlog

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

var mu sync.Mutex

// Entry is one job outcome, written as a single JSON line.
type Entry struct {
	Time       string `json:"time"`
	RunID      string `json:"run_id"`
	Job        string `json:"job"`
	Input      string `json:"input"`
	Output     string `json:"output"`
	Kind       string `json:"kind"`
	Structure  string `json:"structure,omitempty"`
	Rows       int    `json:"rows"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

func dailyFilepath(dir string, t time.Time) string {
	return filepath.Join(dir, t.Format("2006-01-02")+".txt")
}

// Append adds e to today's log file under dir.
func Append(dir string, e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now()
	if e.Time == "" {
		e.Time = now.Format(time.RFC3339)
	}
	p := dailyFilepath(dir, now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// WriteReport writes v as indented JSON to path.
func WriteReport(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}

// CompressOlder gzips .txt logs under dir last modified more than
// retentionDays ago and removes the originals.
func CompressOlder(dir string, retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || filepath.Ext(p) != ".txt" {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		gz := p + ".gz"
		// already compressed by an earlier run
		if _, err := os.Stat(gz); err == nil {
			_ = os.Remove(p)
			return nil
		}
		return compressFile(p, gz)
	})
}

func compressFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return nil
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil
	}
	gw := gzip.NewWriter(out)
	_, copyErr := io.Copy(gw, in)
	closeErr := gw.Close()
	_ = out.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(dst)
		return nil
	}
	_ = in.Close()
	return os.Remove(src)
}
