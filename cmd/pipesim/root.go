package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pipesim",
		Short:         "Pipesim runs a simulated CI/CD pipeline locally",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.String("repo-url", "", "repository to clone and build")
	persistent.String("workspace", "", "working directory for the cloned repository")
	persistent.String("deploy-dir", "", "directory receiving the simulated deployment")
	persistent.String("format", "pretty", "output format (pretty|json)")
	persistent.BoolP("verbose", "v", false, "stream command output in real time")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
