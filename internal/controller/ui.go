// Package controller provides the output side of the gutrun CLI.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gutrun.dev/pkg/gutrun/internal/model"
)

// UI defines how workflow results are shown to the user.
type UI interface {
	// Out and Err are where launched processes stream their output.
	Out() io.Writer
	Err() io.Writer
	DisplayCommand(ctx context.Context, command string, dryRun bool)
	DisplayScope(ctx context.Context, scope m.ScopeState, line int)
	DisplayOptions(ctx context.Context, options string)
	DisplaySymbols(ctx context.Context, tree []m.SymbolNode) error
	DisplayLaunchConfig(ctx context.Context, path m.Path, options string)
}

// NewUI returns the UI for cmd. Styled output is only used on terminals.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	ui := NewSimpleUI(cmd)
	ui.styled = isTTY

	return ui
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
