package stages

import "github.com/bgricker/pipesim/internal/pipeline"

// TestStage runs the application's unit tests inside the virtual
// environment created by DepsStage.
type TestStage struct{}

// Name implements pipeline.Stage.
func (TestStage) Name() string { return "Run Unit Tests" }

// Tag implements pipeline.Stage.
func (TestStage) Tag() string { return "STAGE-3" }

// Execute implements pipeline.Stage.
func (s TestStage) Execute(rc *pipeline.Context) pipeline.Result {
	rc.Log.Append(s.Tag(), "Starting Stage 3: Run Unit Tests")

	cmd := rc.Shell.InEnv(envDir, "pytest test_app.py -v --tb=short")
	if res := rc.Runner.Run(cmd, rc.Workspace, s.Tag()); !res.OK {
		rc.Log.Append(s.Tag(), "Some tests failed")
		return pipeline.Result{Detail: "unit tests failed"}
	}
	rc.Log.Append(s.Tag(), "All unit tests passed")
	return pipeline.Result{OK: true}
}
