package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/jucer2cmake/internal/config"
	"github.com/vk/jucer2cmake/internal/ctxlog"
	"github.com/vk/jucer2cmake/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a loader that exposes the process environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// NewLoaderWithEnv creates a loader that exposes the given KEY=VALUE pairs as
// the env object instead of the process environment.
func NewLoaderWithEnv(environ []string) *Loader {
	return &Loader{environ: func() []string { return environ }}
}

// Load parses and decodes the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	if diags = checkExporterBlocks(file.Body); diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL file %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject(l.environ())},
	}

	var root schema.SettingsFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	settings := &config.Settings{
		Output:          root.Output,
		LogLevel:        root.LogLevel,
		LogFormat:       root.LogFormat,
		HeaderCacheSize: root.HeaderCacheSize,
	}
	if len(root.Exporters) > 0 {
		settings.VST3Folders = make(map[string]string, len(root.Exporters))
		for _, e := range root.Exporters {
			settings.VST3Folders[e.ID] = e.VST3Folder
		}
	}

	logger.Debug("HCL loading complete.", "exporters", len(settings.VST3Folders))
	return settings, nil
}

// envObject builds the `env` variable from KEY=VALUE pairs.
func envObject(environ []string) cty.Value {
	vals := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vals[k] = cty.StringVal(v)
	}
	if len(vals) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vals)
}
