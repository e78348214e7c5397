package config

import "context"

// Settings is the content of a settings file. A nil field was not set and
// leaves the lower-precedence value in place.
type Settings struct {
	Output          *string
	LogLevel        *string
	LogFormat       *string
	HeaderCacheSize *int
	// VST3Folders replaces the default VST3 SDK folder of export targets,
	// keyed by exporter ID.
	VST3Folders map[string]string
}

// Loader reads a settings file.
type Loader interface {
	Load(ctx context.Context, path string) (*Settings, error)
}
