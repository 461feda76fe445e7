package stages

import (
	"os"
	"path/filepath"

	"github.com/bgricker/pipesim/internal/pipeline"
)

// DepsStage creates the virtual environment if needed and installs the
// application's requirements into it.
type DepsStage struct{}

// Name implements pipeline.Stage.
func (DepsStage) Name() string { return "Install Dependencies" }

// Tag implements pipeline.Stage.
func (DepsStage) Tag() string { return "STAGE-2" }

// Execute implements pipeline.Stage.
func (s DepsStage) Execute(rc *pipeline.Context) pipeline.Result {
	rc.Log.Append(s.Tag(), "Starting Stage 2: Install Dependencies")

	// Creation is attempted unless the venv is definitely present; any
	// stat error counts as absent.
	if _, err := os.Stat(filepath.Join(rc.Workspace, envDir)); err != nil {
		if res := rc.Runner.Run("python -m venv "+envDir, rc.Workspace, s.Tag()); !res.OK {
			return pipeline.Result{Detail: "virtual environment creation failed"}
		}
		rc.Log.Append(s.Tag(), "Virtual environment created")
	}

	install := rc.Shell.InEnv(envDir, "pip install -r requirements.txt")
	if res := rc.Runner.Run(install, rc.Workspace, s.Tag()); !res.OK {
		return pipeline.Result{Detail: "dependency installation failed"}
	}
	rc.Log.Append(s.Tag(), "Dependencies installed successfully")
	return pipeline.Result{OK: true}
}
