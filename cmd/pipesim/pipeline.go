package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bgricker/pipesim/internal/config"
	"github.com/bgricker/pipesim/internal/report"
	"github.com/bgricker/pipesim/internal/stages"
	"github.com/bgricker/pipesim/internal/version"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	root, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, "", err
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyFlags(&cfg, flags)

	return cfg, root, nil
}

// resolveDirs anchors the workspace and deployment directories at root
// unless they are already absolute.
func resolveDirs(root string, cfg config.Config) (workspace, deployDir string) {
	workspace = cfg.Workspace
	if !filepath.IsAbs(workspace) {
		workspace = filepath.Join(root, workspace)
	}
	deployDir = cfg.DeployDir
	if !filepath.IsAbs(deployDir) {
		deployDir = filepath.Join(root, deployDir)
	}
	return workspace, deployDir
}

// repoBase extracts the repository name for the banner subtitle.
func repoBase(repoURL string) string {
	base := path.Base(strings.TrimSuffix(repoURL, "/"))
	base = strings.TrimSuffix(base, ".git")
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// planResults describes the stages of a run before any has started.
func planResults() []report.StageResult {
	all := stages.All()
	plan := make([]report.StageResult, 0, len(all))
	for _, st := range all {
		plan = append(plan, report.StageResult{
			Name:   st.Name(),
			Tag:    st.Tag(),
			Status: report.StatusNotStarted,
		})
	}
	return plan
}

// preflightWarnings reports missing or undetectable external tools.
// The warnings never influence the run's verdict.
func preflightWarnings() []string {
	var warnings []string
	if _, err := version.DetectGit(); err != nil {
		warnings = append(warnings, toolWarning("git", "the clone stage will fail", err))
	}
	if _, err := version.DetectPython(); err != nil {
		warnings = append(warnings, toolWarning("python", "the dependency and test stages will fail", err))
	}
	return warnings
}

func toolWarning(name, consequence string, err error) string {
	if version.Missing(err) {
		return fmt.Sprintf("%s executable not found; %s", name, consequence)
	}
	return fmt.Sprintf("unable to detect %s version: %v", name, err)
}
