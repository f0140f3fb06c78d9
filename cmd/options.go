package cmd

import "github.com/spf13/cobra"

var explainFlag bool

// optionsCmd represents the options command.
var optionsCmd = newOptionsCmd()

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options <script.gd>",
		Short: "Print the GUT options for the scope under the cursor",
		Long: `Print the -gselect, -ginner_class and -gunit_test_name options for the
scope under the cursor, for editors that launch Godot themselves.

` + symbolsHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cursorArgs, err := parseCursorArgs(args[0])
			if err != nil {
				return err
			}

			cursorArgs.Explain = explainFlag

			return workflow.Options(cmd.Context(), cursorArgs)
		},
	}

	configureCursorFlags(cmd)
	cmd.Flags().BoolVar(&explainFlag, explainFlagName, false, "also print the resolved script, class and method")

	return cmd
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
