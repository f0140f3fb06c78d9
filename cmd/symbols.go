package cmd

import (
	"github.com/spf13/cobra"

	"gutrun.dev/pkg/gutrun/internal/domain"
	m "gutrun.dev/pkg/gutrun/internal/model"
)

// symbolsCmd represents the symbols command.
var symbolsCmd = newSymbolsCmd()

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <dump.json|dump.yaml|->",
		Short: "Show a document symbol dump as the resolver sees it",
		Long: `Print every symbol of a dump with its logical kind and line range.
Useful to check how a language server reports a script.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Symbols(cmd.Context(), domain.SymbolsArgs{Symbols: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
