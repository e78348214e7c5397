// Package cmake holds the text helpers used to write CMake scripts: escaping
// for quoted arguments, join/split, identifier sanitization, the settings
// accessor that turns optional properties into arguments or placeholder
// comments, and a line-oriented Writer.
package cmake
