// Package testutil holds fixtures shared by tests: sample project documents,
// module header builders and helpers that lay them out on disk.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles creates every file of files below dir. Keys are slash-separated
// paths relative to dir; parent directories are created as needed.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// ModuleHeader returns a module header declaring the given options with the
// "/** Config: " marker, each followed by a line of description.
func ModuleHeader(options ...string) string {
	var sb strings.Builder
	sb.WriteString("/*******************************************************************************\n")
	sb.WriteString(" BEGIN_JUCE_MODULE_DECLARATION\n END_JUCE_MODULE_DECLARATION\n")
	sb.WriteString("*******************************************************************************/\n\n#pragma once\n\n")
	for _, o := range options {
		sb.WriteString("/** Config: " + o + "\n    Description of " + o + ".\n*/\n")
		sb.WriteString("#ifndef " + o + "\n #define " + o + " 0\n#endif\n\n")
	}
	return sb.String()
}

// LayoutPlugin writes PluginProject, its module headers and a stub
// Reprojucer.cmake below dir in the layout PluginExpected assumes. The
// returned paths are relative to dir.
func LayoutPlugin(t *testing.T, dir string) (projectFile, reprojucerFile string) {
	t.Helper()
	files := map[string]string{
		"project/Gain Plugin.jucer": PluginProject,
		"cmake/Reprojucer.cmake":    "# stub\n",
	}
	for name, content := range PluginModuleHeaders {
		files["project/"+name] = content
	}
	WriteFiles(t, dir, files)
	return filepath.Join("project", "Gain Plugin.jucer"), filepath.Join("cmake", "Reprojucer.cmake")
}
