// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It layers
// defaults, the environment, an optional settings file and the flags into
// the application's configuration.
package cli
