package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gutrun.dev/pkg/gutrun/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "gutrun", configBaseName)
	assert.Equal(t, "gutrun.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "shell", shellFlagName)
	assert.Equal(t, "godot", godotFlagName)
	assert.Equal(t, "line", lineFlagName)
	assert.Equal(t, "symbols", symbolsFlagName)
	assert.Equal(t, "godot.editor_path", godotEditorPathKey)
	assert.Equal(t, "godot.override_path", godotOverridePathKey)
	assert.Equal(t, "gut.additional_options", additionalOptionsKey)
	assert.Equal(t, "-d", defaultAdditionalOptions)
	assert.Equal(t, "res://addons/gut/gut_cmdln.gd", defaultCmdlnScript)
	assert.Equal(t, "GUTRUN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestDefaultShell(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		envShell string
		want     string
	}{
		{"SHELL wins", "linux", "/bin/zsh", "/bin/zsh"},
		{"SHELL wins on windows", "windows", "/usr/bin/bash", "/usr/bin/bash"},
		{"windows fallback", "windows", "", "powershell.exe"},
		{"posix fallback", "darwin", "  ", "/bin/sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultShell(tt.goos, tt.envShell))
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

// withEnv sets a GUTRUN_ variable for key and rebinds the persistent flags to a
// fresh root command, so flags changed by earlier tests do not mask it.
func withEnv(t *testing.T, key, value string) {
	t.Helper()

	t.Setenv(envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), value)
	newRootCmd()
}

func TestSettingsFromConfig(t *testing.T) {
	withEnv(t, shellKey, "pwsh")
	withEnv(t, godotEditorPathKey, "/opt/godot/Godot")
	withEnv(t, additionalOptionsKey, "-d --headless")

	settings := settingsFromConfig()

	assert.Equal(t, m.Shell("pwsh"), settings.Shell)
	assert.Equal(t, m.Path("/opt/godot/Godot"), settings.GodotPath())
	assert.Equal(t, "-d --headless", settings.AdditionalOptions)
	assert.Equal(t, defaultCmdlnScript, settings.CmdlnScript)
	assert.Equal(t, m.Path(defaultLaunchFile), settings.LaunchFile)
}

func TestSettingsFromConfig_FlagsOutrankEnvironment(t *testing.T) {
	withEnv(t, shellKey, "/bin/sh")

	out := runExample(t, newOptionsCmd(), "options", innerClassScript, "--line", "6", "--shell", "pwsh")

	assert.Equal(t, ` -gselect="test_bar.gd" -ginner_class="TestFoo" -gunit_test_name="test_one"`+"\n", out)
}

func TestSettingsFromConfig_LeavesNoOverrides(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		withEnv(t, shellKey, "pwsh")
		withEnv(t, godotOverridePathKey, "/opt/godot/Godot")
		assert.Equal(t, m.Shell("pwsh"), settingsFromConfig().Shell)
	})

	t.Run("defaults afterwards", func(t *testing.T) {
		newRootCmd()

		settings := settingsFromConfig()

		assert.Equal(t, m.Shell(defaultShell(runtime.GOOS, os.Getenv("SHELL"))), settings.Shell)
		assert.Equal(t, m.Path(defaultGodotOverridePath), settings.GodotOverridePath)
	})
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "gutrun.log")

	configureLogger(logPath, false)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	configureLogger(logPath, true)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	slog.Info("resolved scope", "script", "test_bar.gd")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "resolved scope")
}
