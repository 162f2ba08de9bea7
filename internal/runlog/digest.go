package runlog

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"broker-commission/internal/csvtable"
	"broker-commission/internal/types"
)

type jobAgg struct {
	Job        string
	Runs       int
	Failures   int
	Rows       int
	DurationMs int64
}

func digestPath(dir string, t time.Time) string {
	return filepath.Join(dir, "digest", t.Format("2006-01-02")+".csv")
}

// SummarizeDay aggregates the run log for t per job and writes the result as
// a CSV next to the log. It returns "" when there is nothing to summarize.
func SummarizeDay(dir string, t time.Time) (string, error) {
	inPath := dailyFilepath(dir, t)
	if _, err := os.Stat(inPath); err != nil {
		return "", nil
	}
	f, err := os.Open(inPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	aggs := map[string]*jobAgg{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		a := aggs[e.Job]
		if a == nil {
			a = &jobAgg{Job: e.Job}
			aggs[e.Job] = a
		}
		a.Runs++
		a.Rows += e.Rows
		a.DurationMs += e.DurationMs
		if e.Error != "" {
			a.Failures++
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	if len(aggs) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(aggs))
	for k := range aggs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := types.Table{{"job", "runs", "failures", "rows", "avg_duration_ms"}}
	for _, k := range keys {
		a := aggs[k]
		table = append(table, types.Row{
			a.Job,
			strconv.Itoa(a.Runs),
			strconv.Itoa(a.Failures),
			strconv.Itoa(a.Rows),
			strconv.FormatInt(a.DurationMs/int64(a.Runs), 10),
		})
	}

	outPath := digestPath(dir, t)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, []byte(csvtable.Encode(table)), 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}
