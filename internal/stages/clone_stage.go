package stages

import (
	"fmt"
	"os"

	"github.com/bgricker/pipesim/internal/pipeline"
)

// CloneStage clears the workspace and clones the repository into it.
type CloneStage struct{}

// Name implements pipeline.Stage.
func (CloneStage) Name() string { return "Clone Repository" }

// Tag implements pipeline.Stage.
func (CloneStage) Tag() string { return "STAGE-1" }

// Execute implements pipeline.Stage.
func (s CloneStage) Execute(rc *pipeline.Context) pipeline.Result {
	rc.Log.Append(s.Tag(), "Starting Stage 1: Clone Repository")

	if err := os.RemoveAll(rc.Workspace); err != nil {
		return pipeline.Result{Detail: fmt.Sprintf("clear workspace: %v", err)}
	}
	if err := os.MkdirAll(rc.Workspace, 0o755); err != nil {
		return pipeline.Result{Detail: fmt.Sprintf("create workspace: %v", err)}
	}

	if res := rc.Runner.Run("git clone "+rc.RepoURL+" .", rc.Workspace, s.Tag()); !res.OK {
		return pipeline.Result{Detail: "git clone failed"}
	}
	rc.Log.Append(s.Tag(), "Repository cloned successfully")
	return pipeline.Result{OK: true}
}
