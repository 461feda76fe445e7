package report

import "time"

// Status is the lifecycle state of a single pipeline stage. A stage moves
// NOT_STARTED -> RUNNING -> PASSED or FAILED and never skips a transition.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusRunning    Status = "RUNNING"
	StatusPassed     Status = "PASSED"
	StatusFailed     Status = "FAILED"
)

// StageResult captures the terminal outcome of a single stage.
type StageResult struct {
	Name       string        `json:"name"`
	Tag        string        `json:"tag"`
	Status     Status        `json:"status"`
	Detail     string        `json:"detail,omitempty"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
}

// Summary aggregates the outcomes of one pipeline run. Success is the
// conjunction of every stage outcome; ExitCode is the process-level signal
// derived from it.
type Summary struct {
	RunID      string        `json:"run_id,omitempty"`
	Total      int           `json:"total_stages"`
	Passed     int           `json:"passed"`
	Failed     int           `json:"failed"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
	Success    bool          `json:"success"`
	ExitCode   int           `json:"exit_code"`
}
