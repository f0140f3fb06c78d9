package cmd

import (
	"github.com/spf13/cobra"

	"gutrun.dev/pkg/gutrun/internal/domain"
)

// debugCmd represents the debug command.
var debugCmd = newDebugCmd()

func newDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug <script.gd>",
		Short: "Write a debug launch configuration for a script or the scope under the cursor",
		Long: `Write a Godot debug launch configuration (debug.launch_file) whose
additional_options run GUT on the script, or on the scope under the cursor
when --line is given.

` + symbolsHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			atCursor := cmd.Flags().Changed(lineFlagName)

			var debugArgs domain.DebugArgs

			if atCursor {
				cursorArgs, err := parseCursorArgs(args[0])
				if err != nil {
					return err
				}

				debugArgs.CursorArgs = cursorArgs
			} else {
				script, err := parseScript(args[0])
				if err != nil {
					return err
				}

				debugArgs.CursorArgs = domain.CursorArgs{RunArgs: runArgs(), Script: script}
			}

			debugArgs.AtCursor = atCursor

			return workflow.Debug(cmd.Context(), debugArgs)
		},
	}

	configureCursorFlags(cmd)
	configureDryRunFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
