package pipeline

import (
	"time"

	"github.com/bgricker/pipesim/internal/buildlog"
	"github.com/bgricker/pipesim/internal/executor"
	"github.com/bgricker/pipesim/internal/shell"
)

// CommandRunner executes one command line in a directory and reports
// the outcome under a stage tag.
type CommandRunner interface {
	Run(script, dir, stage string) executor.Result
}

// Context carries the fixed inputs of a single pipeline run. It is
// assembled once before the first stage executes and read-only after
// that; all mutable run state lives in the build log and the results
// the runner accumulates.
type Context struct {
	RepoURL   string
	Workspace string
	DeployDir string
	Version   string

	Runner CommandRunner
	Shell  shell.Shell
	Log    *buildlog.Log
	Now    func() time.Time
}

// NewContext fills in defaults for any unset collaborator fields.
func NewContext(rc Context) Context {
	if rc.Version == "" {
		rc.Version = SimulatorVersion
	}
	if rc.Shell == nil {
		rc.Shell = shell.Default()
	}
	if rc.Log == nil {
		rc.Log = buildlog.New(buildlog.Options{})
	}
	if rc.Now == nil {
		rc.Now = time.Now
	}
	if rc.Runner == nil {
		rc.Runner = executor.New(executor.Options{Shell: rc.Shell, Log: rc.Log})
	}
	return rc
}
