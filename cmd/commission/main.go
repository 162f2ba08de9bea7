package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"broker-commission/internal/logger"
	"broker-commission/internal/runlog"
	"broker-commission/internal/store"
	"broker-commission/internal/trace"
	"broker-commission/internal/types"
)

const structureSummary = "summary"

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults are used when empty)")
		dir        = flag.String("dir", ".", "directory that relative job paths resolve against")
		cases      = flag.String("cases", "", "override the input of every commission job")
		reportPath = flag.String("report", "", "write a JSON run report to this path")
		structure  = flag.String("structure", "", "run a single job: none|structure1|structure2|summary")
		in         = flag.String("in", "", "input file for -structure")
		out        = flag.String("out", "", "output file for -structure")
		digest     = flag.Bool("digest", false, "write today's per-job digest of the run log after the run")
	)
	flag.Parse()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	os.Exit(run(*configPath, *dir, *cases, *reportPath, *structure, *in, *out, *digest))
}

func run(configPath, dir, cases, reportPath, structure, in, out string, digest bool) int {
	ctx := context.Background()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = trace.Shutdown(shutdownCtx)
	}()

	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return 1
	}
	compressOldLogs(ctx, cfg)

	jobs, err := selectJobs(cfg, cases, structure, in, out)
	if err != nil {
		logger.ErrorWithErr(ctx, "Invalid job selection", err)
		return 1
	}

	runner := initializeRunner(cfg, dir)
	report, runErr := runner.Run(ctx, jobs)

	if reportPath != "" && report != nil {
		if err := runlog.WriteReport(reportPath, report); err != nil {
			logger.Warn(ctx, "Failed to write run report", "error", err, "path", reportPath)
		}
	}
	if digest {
		if p, err := runlog.SummarizeDay(cfg.Log.Dir, time.Now()); err != nil {
			logger.Warn(ctx, "Failed to write run digest", "error", err)
		} else if p != "" {
			logger.Info(ctx, "Run digest written", "path", p)
		}
	}

	if runErr != nil {
		logger.ErrorWithErr(ctx, "Commission run failed", runErr, "run_id", report.RunID)
		return 1
	}
	logger.Info(ctx, "Commission run completed",
		"run_id", report.RunID,
		"jobs", len(report.Jobs),
	)
	return 0
}

// selectJobs returns the single ad-hoc job when structure is set, otherwise
// the configured jobs with cases applied to every commission input.
func selectJobs(cfg *store.Config, cases, structure, in, out string) ([]store.Job, error) {
	if structure != "" {
		if in == "" || out == "" {
			return nil, fmt.Errorf("-structure needs both -in and -out")
		}
		job := store.Job{Name: structure, Input: in, Output: out, Kind: store.KindCommission, Structure: structure}
		if structure == structureSummary {
			job.Kind = store.KindSummary
			job.Structure = ""
		} else if _, err := types.ParseBonusStructure(structure); err != nil {
			return nil, err
		}
		return []store.Job{job}, nil
	}

	jobs := make([]store.Job, len(cfg.Jobs))
	copy(jobs, cfg.Jobs)
	if cases != "" {
		for i := range jobs {
			if jobs[i].Kind == store.KindCommission {
				jobs[i].Input = cases
			}
		}
	}
	return jobs, nil
}
