package app

import (
	"errors"
	"fmt"

	"github.com/vk/jucer2cmake/internal/exporters"
)

// Defaults for the settings that have one.
const (
	DefaultOutput          = "CMakeLists.txt"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultHeaderCacheSize = 64
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectFile    string // .jucer file
	ReprojucerFile string // Reprojucer.cmake, unused in JUCE 6 mode
	// WorkDir resolves relative paths and is where the script is generated
	// for. Empty means the process working directory.
	WorkDir string
	Output  string
	// SettingsFile is the HCL file the configuration was read from, if any.
	SettingsFile string

	LogFormat       string
	LogLevel        string
	HeaderCacheSize int

	Juce6       bool
	VST3Folders map[string]string
}

// DefaultConfig returns a Config carrying the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output:          DefaultOutput,
		LogFormat:       DefaultLogFormat,
		LogLevel:        DefaultLogLevel,
		HeaderCacheSize: DefaultHeaderCacheSize,
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectFile == "" {
		return nil, errors.New("ProjectFile is a required configuration field and cannot be empty")
	}
	if !cfg.Juce6 && cfg.ReprojucerFile == "" {
		return nil, errors.New("ReprojucerFile is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		return nil, errors.New("Output cannot be empty")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.HeaderCacheSize <= 0 {
		return nil, fmt.Errorf("header cache size must be positive, got %d", cfg.HeaderCacheSize)
	}

	for id := range cfg.VST3Folders {
		if _, ok := exporters.Lookup(id); !ok {
			return nil, fmt.Errorf("unknown exporter %q in VST3 folder overrides", id)
		}
	}

	return &cfg, nil
}
