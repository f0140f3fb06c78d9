package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gutrun.dev/pkg/gutrun/internal/domain"
	m "gutrun.dev/pkg/gutrun/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "gutrun"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	shellFlagName   = "shell"
	godotFlagName   = "godot"
	logFileFlagName = "log-file"
	verboseFlagName = "verbose"
	lineFlagName    = "line"
	symbolsFlagName = "symbols"
	dryRunFlagName  = "dry-run"
	explainFlagName = "explain"

	shellKey             = "shell"
	godotEditorPathKey   = "godot.editor_path"
	godotOverridePathKey = "godot.override_path"
	additionalOptionsKey = "gut.additional_options"
	cmdlnScriptKey       = "gut.cmdln_script"
	launchFileKey        = "debug.launch_file"

	defaultGodotEditorPath   = "/Applications/Godot.app/Contents/MacOS/Godot"
	defaultGodotOverridePath = ""
	defaultAdditionalOptions = "-d"
	defaultCmdlnScript       = "res://addons/gut/gut_cmdln.gd"
	defaultLaunchFile        = ".gutrun/launch.json"
	defaultWindowsShell      = "powershell.exe"
	defaultPosixShell        = "/bin/sh"

	envPrefix = "GUTRUN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".gutrun.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(shellKey, defaultShell(runtime.GOOS, os.Getenv("SHELL")))
	viper.SetDefault(godotEditorPathKey, defaultGodotEditorPath)
	viper.SetDefault(godotOverridePathKey, defaultGodotOverridePath)
	viper.SetDefault(additionalOptionsKey, defaultAdditionalOptions)
	viper.SetDefault(cmdlnScriptKey, defaultCmdlnScript)
	viper.SetDefault(launchFileKey, defaultLaunchFile)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// defaultShell picks the shell GUT commands run in when none is configured.
func defaultShell(goos, envShell string) string {
	if strings.TrimSpace(envShell) != "" {
		return envShell
	}

	if goos == "windows" {
		return defaultWindowsShell
	}

	return defaultPosixShell
}

// settingsFromConfig collects the resolved configuration for the domain layer.
func settingsFromConfig() domain.Settings {
	return domain.Settings{
		Shell:             m.Shell(viper.GetString(shellKey)),
		GodotEditorPath:   m.Path(viper.GetString(godotEditorPathKey)),
		GodotOverridePath: m.Path(viper.GetString(godotOverridePathKey)),
		AdditionalOptions: viper.GetString(additionalOptionsKey),
		CmdlnScript:       viper.GetString(cmdlnScriptKey),
		LaunchFile:        m.Path(viper.GetString(launchFileKey)),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
