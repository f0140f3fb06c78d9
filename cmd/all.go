package cmd

import "github.com/spf13/cobra"

// allCmd represents the all command.
var allCmd = newAllCmd()

func newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run the whole test suite",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.RunAll(cmd.Context(), runArgs())
		},
	}

	configureDryRunFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(allCmd)
}
