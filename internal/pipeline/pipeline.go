// Package pipeline drives the staged execution of a simulated CI/CD run.
package pipeline

import (
	"fmt"

	"github.com/bgricker/pipesim/internal/report"
	"github.com/google/uuid"
)

// SimulatorVersion is stamped into deployment manifests and reports.
const SimulatorVersion = "1.0"

// Result is the outcome a stage reports back to the runner.
type Result struct {
	OK     bool
	Detail string
}

// Stage is one step of the pipeline.
type Stage interface {
	// Name is the display name used in the summary table.
	Name() string
	// Tag labels the stage's entries in the build log.
	Tag() string
	// Execute performs the stage's work against the run context.
	Execute(rc *Context) Result
}

// Runner executes stages in their declared order. Every stage always
// runs; a failed or panicking stage is recorded and the remaining
// stages still execute.
type Runner struct {
	rc Context
}

// New creates a runner over the given context, defaulting any unset
// collaborators.
func New(rc Context) *Runner {
	return &Runner{rc: NewContext(rc)}
}

// Context returns the context the runner executes against.
func (r *Runner) Context() *Context {
	return &r.rc
}

// Run executes the stages and returns one result per stage in order,
// plus a summary. The outcome slice always has exactly one entry per
// stage; faults inside stages surface as FAILED results, never as
// errors or panics from Run itself.
func (r *Runner) Run(stages []Stage) ([]report.StageResult, report.Summary) {
	summary := report.Summary{
		RunID: uuid.NewString(),
		Total: len(stages),
	}
	results := make([]report.StageResult, 0, len(stages))

	for _, stage := range stages {
		res := report.StageResult{
			Name:   stage.Name(),
			Tag:    stage.Tag(),
			Status: report.StatusRunning,
		}

		start := r.rc.Now()
		outcome := r.execute(stage)
		res.Duration = r.rc.Now().Sub(start)
		res.DurationMS = res.Duration.Milliseconds()
		res.Detail = outcome.Detail

		if outcome.OK {
			res.Status = report.StatusPassed
			summary.Passed++
		} else {
			res.Status = report.StatusFailed
			summary.Failed++
		}

		summary.Duration += res.Duration
		results = append(results, res)
	}

	summary.DurationMS = summary.Duration.Milliseconds()
	summary.Success = summary.Failed == 0
	if !summary.Success {
		summary.ExitCode = 1
	}
	return results, summary
}

// execute runs a single stage behind the fault boundary. A panicking
// stage becomes a failed result so the stages after it still run.
func (r *Runner) execute(stage Stage) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.rc.Log.Appendf(stage.Tag(), "Exception in %s: %v", stage.Name(), rec)
			res = Result{Detail: fmt.Sprintf("panic: %v", rec)}
		}
	}()
	return stage.Execute(&r.rc)
}
