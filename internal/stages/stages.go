// Package stages implements the five stages of the simulated pipeline:
// clone, dependency install, unit tests, build verification, and the
// simulated deployment.
package stages

import "github.com/bgricker/pipesim/internal/pipeline"

const (
	// envDir is the virtual environment directory created inside the workspace.
	envDir = "venv"
	// manifestName is the manifest the deploy stage writes alongside the artifacts.
	manifestName = "DEPLOYMENT_INFO.txt"
)

// requiredArtifacts must be present in the workspace for the build to
// be considered valid.
var requiredArtifacts = []string{"app.py", "requirements.txt", "templates"}

// deployArtifacts are copied into the deployment directory.
var deployArtifacts = []string{"app.py", "requirements.txt", "templates", "test_app.py"}

// All returns the pipeline stages in execution order.
func All() []pipeline.Stage {
	return []pipeline.Stage{
		CloneStage{},
		DepsStage{},
		TestStage{},
		BuildStage{},
		DeployStage{},
	}
}
