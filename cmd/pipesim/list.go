package main

import (
	"fmt"
	"strings"

	"github.com/bgricker/pipesim/internal/config"
	"github.com/bgricker/pipesim/internal/output"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pipeline stages without executing them",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	plan := planResults()
	switch strings.ToLower(cfg.Format) {
	case config.FormatPretty:
		return output.NewPretty(cmd.OutOrStdout()).RenderPlan(plan)
	case config.FormatJSON:
		return output.NewJSON(cmd.OutOrStdout()).RenderPlan(plan)
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}
