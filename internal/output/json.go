package output

import (
	"encoding/json"
	"io"

	"github.com/bgricker/pipesim/internal/buildlog"
	"github.com/bgricker/pipesim/internal/report"
)

// JSONRenderer emits structured run data.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Report captures the JSON output schema for a pipeline run.
type Report struct {
	RunID   string               `json:"run_id"`
	Stages  []report.StageResult `json:"stages"`
	Summary report.Summary       `json:"summary"`
	Log     []buildlog.Entry     `json:"log,omitempty"`
}

// Render encodes the report as JSON.
func (j *JSONRenderer) Render(rep Report) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// RenderPlan encodes the stage listing as JSON.
func (j *JSONRenderer) RenderPlan(stages []report.StageResult) error {
	payload := struct {
		Stages []report.StageResult `json:"stages"`
	}{Stages: stages}

	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
