// Package config defines the format-agnostic settings model of the
// application and the Loader interface that concrete settings file formats
// implement. The HCL implementation lives in the hcl package.
package config
