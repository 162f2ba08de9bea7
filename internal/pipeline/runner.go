package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"broker-commission/internal/interfaces"
	"broker-commission/internal/logger"
	"broker-commission/internal/runlog"
	"broker-commission/internal/store"
	"broker-commission/internal/types"
)

type JobReport struct {
	Name       string `json:"name"`
	Input      string `json:"input"`
	Output     string `json:"output"`
	Kind       string `json:"kind"`
	Structure  string `json:"structure,omitempty"`
	Rows       int    `json:"rows"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

type RunReport struct {
	RunID      string      `json:"run_id"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Jobs       []JobReport `json:"jobs"`
}

// Failed reports whether any job in the run returned an error.
func (r *RunReport) Failed() bool {
	for _, j := range r.Jobs {
		if j.Error != "" {
			return true
		}
	}
	return false
}

// Runner executes jobs one after another. The first failing job stops the
// run and nothing is written for it.
type Runner struct {
	files  interfaces.FileStore
	calc   interfaces.Calculator
	logDir string
}

// NewRunner builds a runner. An empty logDir disables the run log.
func NewRunner(files interfaces.FileStore, calc interfaces.Calculator, logDir string) *Runner {
	return &Runner{files: files, calc: calc, logDir: logDir}
}

func (r *Runner) Run(ctx context.Context, jobs []store.Job) (*RunReport, error) {
	report := &RunReport{RunID: uuid.NewString(), StartedAt: time.Now()}
	defer func() { report.FinishedAt = time.Now() }()

	for _, job := range jobs {
		jr, err := r.runJob(ctx, report.RunID, job)
		report.Jobs = append(report.Jobs, jr)
		r.record(ctx, report.RunID, jr)
		if err != nil {
			return report, fmt.Errorf("job %s: %w", job.Name, err)
		}
	}
	return report, nil
}

func (r *Runner) runJob(ctx context.Context, runID string, job store.Job) (JobReport, error) {
	jr := JobReport{Name: job.Name, Input: job.Input, Output: job.Output, Kind: job.Kind, Structure: job.Structure}
	op := logger.StartOperation(ctx, "pipeline.Job",
		"run_id", runID,
		"job", job.Name,
		"input", job.Input,
		"output", job.Output,
	)
	start := time.Now()

	fail := func(err error) (JobReport, error) {
		jr.DurationMs = time.Since(start).Milliseconds()
		jr.Rows = 0
		jr.Error = err.Error()
		op.EndWithError(err)
		return jr, err
	}

	fn, err := r.transformFor(job)
	if err != nil {
		return fail(err)
	}
	text, err := r.files.ReadFile(op.GetContext(), job.Input)
	if err != nil {
		return fail(err)
	}
	counted := Compose(fn, func(_ context.Context, t types.Table) (types.Table, error) {
		jr.Rows = len(t.Rows())
		return t, nil
	})
	out, err := Run(op.GetContext(), strings.TrimSpace(text), counted)
	if err != nil {
		return fail(err)
	}
	if err := r.files.WriteFile(op.GetContext(), job.Output, out); err != nil {
		return fail(err)
	}

	jr.DurationMs = time.Since(start).Milliseconds()
	op.End("rows", jr.Rows)
	logger.Info(ctx, "Job completed",
		"run_id", runID,
		"job", job.Name,
		"output", job.Output,
		"rows", jr.Rows,
	)
	return jr, nil
}

func (r *Runner) transformFor(job store.Job) (Transform, error) {
	switch job.Kind {
	case store.KindSummary:
		return SummarizeWith(r.calc), nil
	case store.KindCommission, "":
		structure, err := types.ParseBonusStructure(job.Structure)
		if err != nil {
			return nil, err
		}
		return GenerateWith(r.calc, structure), nil
	default:
		return nil, fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

func (r *Runner) record(ctx context.Context, runID string, jr JobReport) {
	if r.logDir == "" {
		return
	}
	err := runlog.Append(r.logDir, runlog.Entry{
		RunID:      runID,
		Job:        jr.Name,
		Input:      jr.Input,
		Output:     jr.Output,
		Kind:       jr.Kind,
		Structure:  jr.Structure,
		Rows:       jr.Rows,
		DurationMs: jr.DurationMs,
		Error:      jr.Error,
	})
	if err != nil {
		logger.Warn(ctx, "Failed to append run log", "error", err, "dir", r.logDir)
	}
}
