package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type generatedConfig struct {
	Version int    `yaml:"version"`
	Shell   string `yaml:"shell"`
	Godot   struct {
		EditorPath   string `yaml:"editor_path"`
		OverridePath string `yaml:"override_path"`
	} `yaml:"godot"`
	Gut struct {
		AdditionalOptions string `yaml:"additional_options"`
		CmdlnScript       string `yaml:"cmdln_script"`
	} `yaml:"gut"`
	Debug struct {
		LaunchFile string `yaml:"launch_file"`
	} `yaml:"debug"`
	Log struct {
		Filename string `yaml:"filename"`
	} `yaml:"log"`
}

// chdirTemp moves the test into an empty working directory.
func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func executeInit(t *testing.T) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	return cmd.Execute()
}

func readGeneratedConfig(t *testing.T, path string) generatedConfig {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg generatedConfig
	require.NoError(t, yaml.Unmarshal(contents, &cfg))

	return cfg
}

func TestInitCmd_WritesGutrunDefaults(t *testing.T) {
	tempDir := chdirTemp(t)

	require.NoError(t, executeInit(t))

	targetPath := filepath.Join(tempDir, configFileName)
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	cfg := readGeneratedConfig(t, targetPath)

	assert.Equal(t, currentConfigVersion, cfg.Version)
	assert.NotEmpty(t, cfg.Shell)
	assert.Equal(t, defaultGodotEditorPath, cfg.Godot.EditorPath)
	assert.Empty(t, cfg.Godot.OverridePath)
	assert.Equal(t, "-d", cfg.Gut.AdditionalOptions)
	assert.Equal(t, "res://addons/gut/gut_cmdln.gd", cfg.Gut.CmdlnScript)
	assert.Equal(t, ".gutrun/launch.json", cfg.Debug.LaunchFile)
	assert.Equal(t, defaultLogFilename, cfg.Log.Filename)
}

func TestInitCmd_WritesEnvironmentValues(t *testing.T) {
	tempDir := chdirTemp(t)
	withEnv(t, additionalOptionsKey, "-d --headless")
	withEnv(t, godotEditorPathKey, "/usr/local/bin/godot4")

	require.NoError(t, executeInit(t))

	cfg := readGeneratedConfig(t, filepath.Join(tempDir, configFileName))

	assert.Equal(t, "-d --headless", cfg.Gut.AdditionalOptions)
	assert.Equal(t, "/usr/local/bin/godot4", cfg.Godot.EditorPath)
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("shell: pwsh\n"), 0o600))

	err := executeInit(t)
	require.Error(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "shell: pwsh\n", string(contents))
}
