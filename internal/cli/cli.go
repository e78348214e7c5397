package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vk/jucer2cmake/internal/app"
	"github.com/vk/jucer2cmake/internal/config"
)

// Environment variables read before the settings file.
const (
	EnvOutput    = "JUCER2CMAKE_OUTPUT"
	EnvLogLevel  = "JUCER2CMAKE_LOG_LEVEL"
	EnvLogFormat = "JUCER2CMAKE_LOG_FORMAT"
	EnvConfig    = "JUCER2CMAKE_CONFIG"
)

// DefaultSettingsFile is read from the working directory when no settings
// file is named explicitly.
const DefaultSettingsFile = "jucer2cmake.hcl"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Env looks up environment variables.
type Env func(key string) (string, bool)

// Parse processes command-line arguments against the process environment and
// working directory. It returns a populated Config, a boolean indicating if
// the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	return ParseIn(wd, os.LookupEnv, args, output, loader)
}

// ParseIn is Parse with an explicit working directory and environment. A
// .env file in workDir supplies variables the environment does not set.
func ParseIn(workDir string, env Env, args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("jucer2cmake", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Jucer2CMake - converts a Projucer project to a Reprojucer CMakeLists.txt.

Usage:
  jucer2cmake [options] <jucer_project_file> <Reprojucer.cmake_file>
  jucer2cmake --juce6 [options] <jucer_project_file>

Options:
`)
		flagSet.PrintDefaults()
	}

	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file. Defaults to ./"+DefaultSettingsFile+" when present.")
	outputFlag := flagSet.String("output", app.DefaultOutput, "Path of the generated file.")
	juce6Flag := flagSet.Bool("juce6", false, "Generate a CMakeLists.txt for JUCE 6's CMake API instead of Reprojucer.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	wantArgs := 2
	if *juce6Flag {
		wantArgs = 1
	}
	if flagSet.NArg() != wantArgs {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 1, Message: "wrong number of arguments"}
	}

	env = withDotEnv(env, filepath.Join(workDir, ".env"))

	cfg := app.DefaultConfig()
	cfg.WorkDir = workDir
	cfg.ProjectFile = flagSet.Arg(0)
	if !*juce6Flag {
		cfg.ReprojucerFile = flagSet.Arg(1)
	}
	cfg.Juce6 = *juce6Flag
	applyEnv(&cfg, env)

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	settingsFile, explicit := *configFlag, set["config"]
	if !explicit {
		settingsFile, explicit = env(EnvConfig)
	}
	if !explicit {
		candidate := filepath.Join(workDir, DefaultSettingsFile)
		if _, err := os.Stat(candidate); err == nil {
			settingsFile = candidate
		}
	}
	if settingsFile != "" {
		if !filepath.IsAbs(settingsFile) {
			settingsFile = filepath.Join(workDir, settingsFile)
		}
		settings, err := loader.Load(context.Background(), settingsFile)
		if err != nil {
			return nil, false, &ExitError{Code: 1, Message: err.Error()}
		}
		applySettings(&cfg, settings)
		cfg.SettingsFile = settingsFile
		slog.Debug("Settings file loaded.", "path", settingsFile)
	}

	if set["output"] {
		cfg.Output = *outputFlag
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevelFlag
	}
	if set["log-format"] {
		cfg.LogFormat = *logFormatFlag
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}

// withDotEnv falls back to the variables of the .env file at path for keys
// env does not set. A missing or unreadable file is ignored.
func withDotEnv(env Env, path string) Env {
	vars, err := godotenv.Read(path)
	if err != nil {
		slog.Debug("No .env file loaded.", "path", path, "reason", err)
		return env
	}
	return func(key string) (string, bool) {
		if v, ok := env(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
}

func applyEnv(cfg *app.Config, env Env) {
	if v, ok := env(EnvOutput); ok && v != "" {
		cfg.Output = v
	}
	if v, ok := env(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := env(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
}

func applySettings(cfg *app.Config, s *config.Settings) {
	if s.Output != nil {
		cfg.Output = *s.Output
	}
	if s.LogLevel != nil {
		cfg.LogLevel = *s.LogLevel
	}
	if s.LogFormat != nil {
		cfg.LogFormat = *s.LogFormat
	}
	if s.HeaderCacheSize != nil {
		cfg.HeaderCacheSize = *s.HeaderCacheSize
	}
	if len(s.VST3Folders) > 0 {
		cfg.VST3Folders = s.VST3Folders
	}
}
