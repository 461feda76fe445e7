package stages

import (
	"os"
	"path/filepath"

	"github.com/bgricker/pipesim/internal/pipeline"
)

// BuildStage verifies the application structure in the workspace. The
// pipelined application is plain Python, so "building" it means checking
// that every artifact a deployment needs is present.
type BuildStage struct{}

// Name implements pipeline.Stage.
func (BuildStage) Name() string { return "Build Application" }

// Tag implements pipeline.Stage.
func (BuildStage) Tag() string { return "STAGE-4" }

// Execute implements pipeline.Stage.
func (s BuildStage) Execute(rc *pipeline.Context) pipeline.Result {
	rc.Log.Append(s.Tag(), "Starting Stage 4: Build Application")

	for _, artifact := range requiredArtifacts {
		if _, err := os.Stat(filepath.Join(rc.Workspace, artifact)); err != nil {
			rc.Log.Appendf(s.Tag(), "Missing: %s", artifact)
			return pipeline.Result{Detail: "missing artifact: " + artifact}
		}
		rc.Log.Appendf(s.Tag(), "Verified: %s", artifact)
	}
	rc.Log.Append(s.Tag(), "Application structure verified")
	return pipeline.Result{OK: true}
}
