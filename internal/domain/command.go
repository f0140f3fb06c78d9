package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gutrun.dev/pkg/gutrun/internal/adapter"
	m "gutrun.dev/pkg/gutrun/internal/model"
)

var (
	// ErrGodotNotFound is returned when the configured Godot executable does not exist.
	ErrGodotNotFound = errors.New("could not find Godot")
	// ErrNotTestScript is returned when a file that is not a GDScript is passed in.
	ErrNotTestScript = errors.New("not a GDScript test script")
)

// Settings is the user configuration the workflow needs to assemble and
// launch GUT commands.
type Settings struct {
	Shell             m.Shell
	GodotEditorPath   m.Path
	GodotOverridePath m.Path
	AdditionalOptions string
	CmdlnScript       string
	LaunchFile        m.Path
}

// GodotPath returns the executable to launch: the override when set,
// otherwise the editor path.
func (s Settings) GodotPath() m.Path {
	if strings.TrimSpace(string(s.GodotOverridePath)) != "" {
		return s.GodotOverridePath
	}

	return s.GodotEditorPath
}

// CommandBuilder assembles GUT command lines for one set of settings.
type CommandBuilder struct {
	fs        adapter.SourceFSAdapter
	settings  Settings
	formatter *OptionFormatter
}

// NewCommandBuilder constructs a CommandBuilder that validates the Godot
// executable through fs.
func NewCommandBuilder(fs adapter.SourceFSAdapter, settings Settings) *CommandBuilder {
	return &CommandBuilder{
		fs:        fs,
		settings:  settings,
		formatter: NewOptionFormatter(settings.Shell.IsPowerShell),
	}
}

// Formatter returns the option formatter bound to the configured shell.
func (b *CommandBuilder) Formatter() *OptionFormatter {
	return b.formatter
}

// GodotCommand returns the quoted Godot executable. PowerShell needs the call
// operator to run a quoted path.
func (b *CommandBuilder) GodotCommand(ctx context.Context) (string, error) {
	path := b.settings.GodotPath()

	info, err := b.fs.FileInfo(ctx, path)
	if err != nil || info.IsDir() {
		slog.Error("Godot executable not found", "path", path, "error", err)
		return "", fmt.Errorf("%w at [%s], check the godot.editor_path setting", ErrGodotNotFound, path)
	}

	command := `"` + string(path) + `"`
	if b.settings.Shell.IsPowerShell() {
		command = "&" + command
	}

	return command, nil
}

// GutOptions returns the options that make Godot run GUT from the command
// line, without any scope selection.
func (b *CommandBuilder) GutOptions() string {
	options := strings.TrimSpace(b.settings.AdditionalOptions)
	if options != "" {
		options += " "
	}

	return options + "-s " + b.settings.CmdlnScript
}

// Command returns the full command line running GUT with scopeOptions
// appended. scopeOptions is a rendered scope and may be empty.
func (b *CommandBuilder) Command(ctx context.Context, scopeOptions string) (string, error) {
	godot, err := b.GodotCommand(ctx)
	if err != nil {
		return "", err
	}

	return godot + " " + b.GutOptions() + scopeOptions, nil
}

// ScriptOptions returns the option selecting a whole script.
func (b *CommandBuilder) ScriptOptions(script m.Path) (string, error) {
	if !strings.HasSuffix(string(script), ScriptExtension) {
		return "", fmt.Errorf("%w: %s", ErrNotTestScript, script)
	}

	return b.formatter.ScriptFlag(script.Base()), nil
}
