package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gutrun.dev/pkg/gutrun/internal/adapter"
	"gutrun.dev/pkg/gutrun/internal/controller"
	m "gutrun.dev/pkg/gutrun/internal/model"
)

const (
	symbolsFileSuffix = ".symbols.json"
	launchConfigName  = "GUT"
	launchConfigType  = "godot"
	launchRequest     = "launch"
)

// ErrSymbolsUnreadable is returned when the symbol tree of a script cannot be loaded.
var ErrSymbolsUnreadable = errors.New("cannot read document symbols")

// RunArgs holds what every command that launches GUT needs.
type RunArgs struct {
	Settings Settings
	DryRun   bool
}

// CursorArgs selects a script and a cursor line in it.
type CursorArgs struct {
	RunArgs
	Script  m.Path
	Symbols m.Path // defaults to DefaultSymbolsPath(Script)
	Line    int    // 0-indexed
	Explain bool
}

// ScriptArgs selects a whole script.
type ScriptArgs struct {
	RunArgs
	Script m.Path
}

// DebugArgs selects what a debug session runs. Without AtCursor the whole
// script is selected.
type DebugArgs struct {
	CursorArgs
	AtCursor bool
}

// SymbolsArgs points at a document-symbol dump.
type SymbolsArgs struct {
	Symbols m.Path
}

// Workflow is the set of actions the CLI exposes.
type Workflow interface {
	RunAtCursor(ctx context.Context, args CursorArgs) error
	RunScript(ctx context.Context, args ScriptArgs) error
	RunAll(ctx context.Context, args RunArgs) error
	Options(ctx context.Context, args CursorArgs) error
	Debug(ctx context.Context, args DebugArgs) error
	Symbols(ctx context.Context, args SymbolsArgs) error
}

type workflow struct {
	fs       adapter.SourceFSAdapter
	symbols  adapter.SymbolProviderAdapter
	terminal adapter.TerminalAdapter
	launcher adapter.DebugLauncherAdapter
	ui       controller.UI
	resolver ScopeResolver
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	symbols adapter.SymbolProviderAdapter,
	terminal adapter.TerminalAdapter,
	launcher adapter.DebugLauncherAdapter,
	ui controller.UI,
	resolver ScopeResolver,
) Workflow {
	return &workflow{
		fs:       fs,
		symbols:  symbols,
		terminal: terminal,
		launcher: launcher,
		ui:       ui,
		resolver: resolver,
	}
}

// DefaultSymbolsPath is where a symbol dump for script is looked up when none
// is given: next to the script, named after it.
func DefaultSymbolsPath(script m.Path) m.Path {
	return m.Path(strings.TrimSuffix(string(script), ScriptExtension) + symbolsFileSuffix)
}

func (w *workflow) RunAtCursor(ctx context.Context, args CursorArgs) error {
	builder := NewCommandBuilder(w.fs, args.Settings)

	scope, err := w.resolveCursor(ctx, args)
	if err != nil {
		return err
	}

	options := scope.Render(builder.Formatter())
	if options == "" {
		slog.Warn("no test scope at cursor, running all tests", "script", args.Script, "line", args.Line)
	}

	command, err := builder.Command(ctx, options)
	if err != nil {
		return err
	}

	return w.execute(ctx, args.RunArgs, command)
}

func (w *workflow) RunScript(ctx context.Context, args ScriptArgs) error {
	builder := NewCommandBuilder(w.fs, args.Settings)

	options, err := builder.ScriptOptions(args.Script)
	if err != nil {
		return err
	}

	command, err := builder.Command(ctx, options)
	if err != nil {
		return err
	}

	return w.execute(ctx, args.RunArgs, command)
}

func (w *workflow) RunAll(ctx context.Context, args RunArgs) error {
	command, err := NewCommandBuilder(w.fs, args.Settings).Command(ctx, "")
	if err != nil {
		return err
	}

	return w.execute(ctx, args, command)
}

func (w *workflow) Options(ctx context.Context, args CursorArgs) error {
	scope, err := w.resolveCursor(ctx, args)
	if err != nil {
		return err
	}

	if args.Explain {
		w.ui.DisplayScope(ctx, scope, args.Line)
	}

	w.ui.DisplayOptions(ctx, scope.Render(NewOptionFormatter(args.Settings.Shell.IsPowerShell)))

	return nil
}

func (w *workflow) Debug(ctx context.Context, args DebugArgs) error {
	builder := NewCommandBuilder(w.fs, args.Settings)

	var options string

	if args.AtCursor {
		scope, err := w.resolveCursor(ctx, args.CursorArgs)
		if err != nil {
			return err
		}

		options = scope.Render(builder.Formatter())
	} else {
		var err error

		options, err = builder.ScriptOptions(args.Script)
		if err != nil {
			return err
		}
	}

	cfg := adapter.LaunchConfig{
		Name:              launchConfigName,
		Type:              launchConfigType,
		Request:           launchRequest,
		AdditionalOptions: builder.GutOptions() + options,
	}

	if args.DryRun {
		w.ui.DisplayOptions(ctx, cfg.AdditionalOptions)
		return nil
	}

	path, err := w.launcher.Launch(ctx, args.Settings.LaunchFile, cfg)
	if err != nil {
		return err
	}

	w.ui.DisplayLaunchConfig(ctx, path, cfg.AdditionalOptions)

	return nil
}

func (w *workflow) Symbols(ctx context.Context, args SymbolsArgs) error {
	tree, err := w.symbols.Load(ctx, args.Symbols)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSymbolsUnreadable, err)
	}

	return w.ui.DisplaySymbols(ctx, tree)
}

// resolveCursor loads the symbols and text of the script and resolves the
// scope at the cursor. An unreadable script only degrades the resolution.
func (w *workflow) resolveCursor(ctx context.Context, args CursorArgs) (m.ScopeState, error) {
	symbolsPath := args.Symbols
	if symbolsPath == "" {
		symbolsPath = DefaultSymbolsPath(args.Script)
	}

	tree, err := w.symbols.Load(ctx, symbolsPath)
	if err != nil {
		slog.Error("Failed to load document symbols", "path", symbolsPath, "error", err)
		return m.ScopeState{}, fmt.Errorf("%w: %w", ErrSymbolsUnreadable, err)
	}

	var lines m.LineSource

	text, err := w.fs.ReadLines(ctx, args.Script)
	if err != nil {
		slog.Warn("Failed to read script, resolving without source text", "script", args.Script, "error", err)
	} else {
		lines = text
	}

	return w.resolver.Resolve(tree, args.Line, lines), nil
}

func (w *workflow) execute(ctx context.Context, args RunArgs, command string) error {
	w.ui.DisplayCommand(ctx, command, args.DryRun)

	if args.DryRun {
		return nil
	}

	return w.terminal.Run(ctx, args.Settings.Shell, command, w.ui.Out(), w.ui.Err())
}
