package stages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bgricker/pipesim/internal/pipeline"
)

// DeployStage copies the build artifacts into the deployment directory
// and writes the deployment manifest. The deployment directory is never
// cleared first: artifacts overwrite their previous versions in place.
type DeployStage struct{}

// Name implements pipeline.Stage.
func (DeployStage) Name() string { return "Deploy Application" }

// Tag implements pipeline.Stage.
func (DeployStage) Tag() string { return "STAGE-5" }

// Execute implements pipeline.Stage.
func (s DeployStage) Execute(rc *pipeline.Context) pipeline.Result {
	rc.Log.Append(s.Tag(), "Starting Stage 5: Deploy Application (Simulation)")

	if err := os.MkdirAll(rc.DeployDir, 0o755); err != nil {
		return pipeline.Result{Detail: fmt.Sprintf("create deployment directory: %v", err)}
	}
	rc.Log.Appendf(s.Tag(), "Deployment directory created: %s", rc.DeployDir)

	for _, artifact := range deployArtifacts {
		src := filepath.Join(rc.Workspace, artifact)
		dst := filepath.Join(rc.DeployDir, artifact)
		if err := copyPath(src, dst); err != nil {
			rc.Log.Appendf(s.Tag(), "Failed to copy %s: %v", artifact, err)
			return pipeline.Result{Detail: "copy failed: " + artifact}
		}
		rc.Log.Appendf(s.Tag(), "Copied: %s", artifact)
	}

	if err := s.writeManifest(rc); err != nil {
		rc.Log.Appendf(s.Tag(), "Failed to create manifest: %v", err)
		return pipeline.Result{Detail: "manifest write failed"}
	}
	rc.Log.Appendf(s.Tag(), "Deployment manifest created: %s", manifestName)

	rc.Log.Appendf(s.Tag(), "Application deployed successfully to: %s", rc.DeployDir)
	return pipeline.Result{OK: true}
}

// writeManifest records the deployment metadata as exactly four
// "Key: value" lines.
func (s DeployStage) writeManifest(rc *pipeline.Context) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Deployment Date: %s\n", rc.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Deployment Directory: %s\n", rc.DeployDir)
	fmt.Fprintf(&b, "Pipeline Simulator Version: %s\n", rc.Version)
	fmt.Fprintf(&b, "Status: SUCCESS\n")
	return os.WriteFile(filepath.Join(rc.DeployDir, manifestName), []byte(b.String()), 0o644)
}
