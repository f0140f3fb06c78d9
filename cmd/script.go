package cmd

import (
	"github.com/spf13/cobra"

	"gutrun.dev/pkg/gutrun/internal/domain"
)

// scriptCmd represents the script command.
var scriptCmd = newScriptCmd()

func newScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script <script.gd>",
		Short: "Run every test of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := parseScript(args[0])
			if err != nil {
				return err
			}

			return workflow.RunScript(cmd.Context(), domain.ScriptArgs{
				RunArgs: runArgs(),
				Script:  script,
			})
		},
	}

	configureDryRunFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}
