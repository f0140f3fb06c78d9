package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	m "gutrun.dev/pkg/gutrun/internal/model"
)

const launchConfigVersion = "0.2.0"

// LaunchConfig is a debug configuration for the Godot debug adapter.
type LaunchConfig struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	Request           string `json:"request"`
	AdditionalOptions string `json:"additional_options"`
}

type launchFile struct {
	Version        string         `json:"version"`
	Configurations []LaunchConfig `json:"configurations"`
}

// DebugLauncherAdapter hands GUT options to a debugger instead of a shell.
type DebugLauncherAdapter interface {
	// Launch publishes cfg and returns where it was written.
	Launch(ctx context.Context, target m.Path, cfg LaunchConfig) (m.Path, error)
}

// FileDebugLauncherAdapter writes launch configurations as JSON files that
// an editor's debug adapter picks up.
type FileDebugLauncherAdapter struct {
	fs SourceFSAdapter
}

// NewFileDebugLauncherAdapter constructs a FileDebugLauncherAdapter writing through fs.
func NewFileDebugLauncherAdapter(fs SourceFSAdapter) *FileDebugLauncherAdapter {
	return &FileDebugLauncherAdapter{fs: fs}
}

// Launch writes cfg to target.
func (a *FileDebugLauncherAdapter) Launch(ctx context.Context, target m.Path, cfg LaunchConfig) (m.Path, error) {
	content, err := json.MarshalIndent(launchFile{
		Version:        launchConfigVersion,
		Configurations: []LaunchConfig{cfg},
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode launch configuration: %w", err)
	}

	content = append(content, '\n')

	if err := a.fs.WriteFile(ctx, target, content, 0o600); err != nil {
		slog.Error("Failed to write launch configuration", "path", target, "error", err)
		return "", fmt.Errorf("write launch configuration: %w", err)
	}

	slog.Info("wrote launch configuration", "path", target, "options", cfg.AdditionalOptions)

	return target, nil
}
