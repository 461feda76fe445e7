package main

import (
	"fmt"

	"github.com/bgricker/pipesim/internal/config"
	"github.com/spf13/cobra"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	if flags.Changed("repo-url") {
		v, err := flags.GetString("repo-url")
		if err != nil {
			return values, fmt.Errorf("parse --repo-url: %w", err)
		}
		values.RepoURL = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("workspace") {
		v, err := flags.GetString("workspace")
		if err != nil {
			return values, fmt.Errorf("parse --workspace: %w", err)
		}
		values.Workspace = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("deploy-dir") {
		v, err := flags.GetString("deploy-dir")
		if err != nil {
			return values, fmt.Errorf("parse --deploy-dir: %w", err)
		}
		values.DeployDir = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return values, fmt.Errorf("parse --format: %w", err)
		}
		values.Format = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return values, fmt.Errorf("parse --verbose: %w", err)
		}
		values.Verbose = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}
