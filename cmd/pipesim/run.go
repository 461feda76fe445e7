package main

import (
	"fmt"
	"strings"

	"github.com/bgricker/pipesim/internal/buildlog"
	"github.com/bgricker/pipesim/internal/config"
	"github.com/bgricker/pipesim/internal/executor"
	"github.com/bgricker/pipesim/internal/output"
	"github.com/bgricker/pipesim/internal/pipeline"
	"github.com/bgricker/pipesim/internal/shell"
	"github.com/bgricker/pipesim/internal/stages"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Execute the pipeline stages locally",
		RunE:  runExecute,
	}
}

func runExecute(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format := strings.ToLower(cfg.Format)
	if format != config.FormatPretty && format != config.FormatJSON {
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}

	workspace, deployDir := resolveDirs(root, cfg)

	for _, msg := range preflightWarnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
	}

	// Pretty runs stream the build log and verbose command output to
	// stdout as they happen; JSON runs keep stdout machine-readable
	// and stream both to stderr instead.
	logOut := cmd.OutOrStdout()
	if format == config.FormatJSON {
		logOut = cmd.ErrOrStderr()
	}
	log := buildlog.New(buildlog.Options{Out: logOut})

	sh := shell.Default()
	execRunner := executor.New(executor.Options{
		Shell:   sh,
		Log:     log,
		Stdout:  logOut,
		Stderr:  cmd.ErrOrStderr(),
		Verbose: cfg.Verbose,
	})

	if format == config.FormatPretty {
		if err := output.NewPretty(cmd.OutOrStdout()).RenderBanner(repoBase(cfg.RepoURL)); err != nil {
			return err
		}
	}

	runner := pipeline.New(pipeline.Context{
		RepoURL:   cfg.RepoURL,
		Workspace: workspace,
		DeployDir: deployDir,
		Runner:    execRunner,
		Shell:     sh,
		Log:       log,
	})
	log.Appendf("", "Starting pipeline run (shell: %s)", sh.Name())
	results, summary := runner.Run(stages.All())

	switch format {
	case config.FormatPretty:
		if err := output.NewPretty(cmd.OutOrStdout()).RenderResults(results, summary, deployDir); err != nil {
			return err
		}
	case config.FormatJSON:
		rep := output.Report{
			RunID:   summary.RunID,
			Stages:  results,
			Summary: summary,
			Log:     log.Entries(),
		}
		if err := output.NewJSON(cmd.OutOrStdout()).Render(rep); err != nil {
			return err
		}
	}

	if summary.ExitCode != 0 {
		return fmt.Errorf("one or more stages failed")
	}
	return nil
}
