// Package schema declares the HCL shape of the settings file.
package schema

// ExporterBlock represents an `exporter "<ID>" { ... }` block.
type ExporterBlock struct {
	ID         string `hcl:"id,label"`
	VST3Folder string `hcl:"vst3_folder"`
}

// SettingsFile represents the top-level structure of a settings file.
type SettingsFile struct {
	Output          *string          `hcl:"output,optional"`
	LogLevel        *string          `hcl:"log_level,optional"`
	LogFormat       *string          `hcl:"log_format,optional"`
	HeaderCacheSize *int             `hcl:"header_cache_size,optional"`
	Exporters       []*ExporterBlock `hcl:"exporter,block"`
}
