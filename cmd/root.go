// Package cmd provides the root command and CLI setup for gutrun.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gutrun.dev/pkg/gutrun/internal/adapter"
	"gutrun.dev/pkg/gutrun/internal/controller"
	"gutrun.dev/pkg/gutrun/internal/domain"
	m "gutrun.dev/pkg/gutrun/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var symbolAdapter adapter.SymbolProviderAdapter
var terminalAdapter adapter.TerminalAdapter
var launcherAdapter adapter.DebugLauncherAdapter
var resolver domain.ScopeResolver
var workflow domain.Workflow
var ui controller.UI

// shellFlag overrides the shell GUT commands run in.
var shellFlag string

// godotFlag overrides the Godot executable.
var godotFlag string

var logFileFlag string
var verboseFlag bool

const rootLongDescription = `gutrun launches GUT (Godot Unit Test) runs from the command line or an
editor. It resolves the test method, inner class or script under a cursor
from the editor's document symbols and passes the matching -gselect,
-ginner_class and -gunit_test_name options to Godot.`

const symbolsHelp = `Document symbols are read from a JSON or YAML dump of an LSP
textDocument/documentSymbol response. Use "-" to read the dump from stdin.
When --symbols is omitted, <script>.symbols.json next to the script is used.`

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	symbolAdapter = adapter.NewLSPSymbolProviderAdapter()
	terminalAdapter = adapter.NewLocalTerminalAdapter()
	launcherAdapter = adapter.NewFileDebugLauncherAdapter(fsAdapter)
	resolver = domain.NewScopeResolver()
	workflow = domain.NewWorkflow(
		fsAdapter,
		symbolAdapter,
		terminalAdapter,
		launcherAdapter,
		ui,
		resolver,
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gutrun",
		Short:         "Run GUT tests at the cursor",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&shellFlag, shellFlagName, viper.GetString(shellKey), "shell that runs GUT commands (powershell/pwsh values get quoted options)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(shellFlagName), shellKey)

	cmd.PersistentFlags().StringVar(&godotFlag, godotFlagName, viper.GetString(godotOverridePathKey), "path to the Godot executable, overrides godot.editor_path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(godotFlagName), godotOverridePathKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (default from log.filename)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parseScript(arg string) (m.Path, error) {
	script := m.Path(arg)
	if arg == "" {
		return "", fmt.Errorf("script path is empty")
	}

	return script, nil
}
