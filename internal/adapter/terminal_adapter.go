package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	m "gutrun.dev/pkg/gutrun/internal/model"
)

// TerminalAdapter is the sink that executes finished GUT command lines.
type TerminalAdapter interface {
	// Run executes command through shell, streaming the process output to
	// stdout and stderr until it exits or ctx is cancelled.
	Run(ctx context.Context, shell m.Shell, command string, stdout, stderr io.Writer) error
}

// LocalTerminalAdapter runs commands as child processes of the CLI.
type LocalTerminalAdapter struct{}

// NewLocalTerminalAdapter constructs a LocalTerminalAdapter.
func NewLocalTerminalAdapter() *LocalTerminalAdapter {
	return &LocalTerminalAdapter{}
}

// Run executes command through shell.
func (a *LocalTerminalAdapter) Run(ctx context.Context, shell m.Shell, command string, stdout, stderr io.Writer) error {
	if shell == "" {
		return fmt.Errorf("no shell configured")
	}

	// #nosec G204 - running the user's command through the user's shell is the point
	cmd := exec.CommandContext(ctx, string(shell), ShellArgs(shell, command)...)

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("attach stdout: %w", err)
	}

	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("attach stderr: %w", err)
	}

	slog.Info("starting command", "shell", shell, "command", command)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", shell, err)
	}

	var group errgroup.Group

	group.Go(func() error {
		return stream(stdout, outPipe)
	})
	group.Go(func() error {
		return stream(stderr, errPipe)
	})

	copyErr := group.Wait()

	if err := cmd.Wait(); err != nil {
		slog.Error("command failed", "command", command, "error", err)
		return fmt.Errorf("run command: %w", err)
	}

	if copyErr != nil {
		return fmt.Errorf("stream output: %w", copyErr)
	}

	return nil
}

// stream copies a process pipe into w. When w fails the rest of the pipe is
// discarded so the child never blocks on a full pipe.
func stream(w io.Writer, pipe io.Reader) error {
	_, err := io.Copy(w, pipe)
	if err != nil {
		_, _ = io.Copy(io.Discard, pipe)
	}

	return err
}

// ShellArgs returns the arguments that make shell execute command.
func ShellArgs(shell m.Shell, command string) []string {
	if shell.IsPowerShell() {
		return []string{"-NoProfile", "-Command", command}
	}

	name := strings.ToLower(filepath.Base(strings.ReplaceAll(string(shell), "\\", "/")))
	if name == "cmd" || name == "cmd.exe" {
		return []string{"/C", command}
	}

	return []string{"-c", command}
}
