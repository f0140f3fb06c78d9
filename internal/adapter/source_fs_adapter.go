// Package adapter contains the infrastructure adapters of the gutrun CLI:
// file system, symbol provider, terminal and debug launcher.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	m "gutrun.dev/pkg/gutrun/internal/model"
)

// SourceFSAdapter abstracts the file system operations the domain layer
// relies on, so workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// ReadLines loads a document and exposes it line by line.
	ReadLines(ctx context.Context, path m.Path) (m.Lines, error)

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is the script or symbol dump the user asked for
	return os.ReadFile(string(path))
}

// ReadLines loads a document and splits it into lines.
func (a *LocalSourceFSAdapter) ReadLines(ctx context.Context, path m.Path) (m.Lines, error) {
	content, err := a.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	return m.SplitLines(string(content)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// WriteFile writes content to path, creating missing parent directories.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	return os.WriteFile(string(path), content, perm)
}
