// Package modules resolves the project's declared modules to their search
// path, scans each module header for configurable options and writes the
// jucer_project_module calls.
//
// Option identifiers come from header lines starting with the marker
// "/** Config: ". Their state comes from the project-wide option overrides.
package modules
