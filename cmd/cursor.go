package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gutrun.dev/pkg/gutrun/internal/domain"
	m "gutrun.dev/pkg/gutrun/internal/model"
)

var lineFlag int
var symbolsFlag string
var dryRunFlag bool

const cursorLongDescription = `Run the narrowest scope that encloses a line of a test script: a single
test method, an inner class, or the whole script. When nothing can be
resolved (the file is not a test script) every test is run.

` + symbolsHelp

// cursorCmd represents the cursor command.
var cursorCmd = newCursorCmd()

func newCursorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cursor <script.gd>",
		Short: "Run the test, inner class or script under the cursor",
		Long:  cursorLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cursorArgs, err := parseCursorArgs(args[0])
			if err != nil {
				return err
			}

			return workflow.RunAtCursor(cmd.Context(), cursorArgs)
		},
	}

	configureCursorFlags(cmd)
	configureDryRunFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(cursorCmd)
}

func configureCursorFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&lineFlag, lineFlagName, "l", -1, "0-indexed cursor line")
	cmd.Flags().StringVar(&symbolsFlag, symbolsFlagName, "", "document symbol dump (.json, .yaml or - for stdin)")
}

func configureDryRunFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&dryRunFlag, dryRunFlagName, "n", false, "print the command instead of running it")
}

func parseCursorArgs(scriptArg string) (domain.CursorArgs, error) {
	script, err := parseScript(scriptArg)
	if err != nil {
		return domain.CursorArgs{}, err
	}

	if lineFlag < 0 {
		return domain.CursorArgs{}, fmt.Errorf("--%s must be a 0-indexed line number, got %d", lineFlagName, lineFlag)
	}

	return domain.CursorArgs{
		RunArgs: runArgs(),
		Script:  script,
		Symbols: m.Path(symbolsFlag),
		Line:    lineFlag,
	}, nil
}

func runArgs() domain.RunArgs {
	return domain.RunArgs{
		Settings: settingsFromConfig(),
		DryRun:   dryRunFlag,
	}
}
