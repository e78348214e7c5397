package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/jucer2cmake/internal/modules"
	"github.com/vk/jucer2cmake/internal/testutil"
)

func setupApp(t *testing.T, mutate func(*Config)) (*App, string, *testutil.SafeBuffer) {
	t.Helper()
	workDir := t.TempDir()
	projectFile, reprojucerFile := testutil.LayoutPlugin(t, workDir)

	cfg := DefaultConfig()
	cfg.ProjectFile = projectFile
	cfg.ReprojucerFile = reprojucerFile
	cfg.WorkDir = workDir
	cfg.LogLevel = "debug"
	if mutate != nil {
		mutate(&cfg)
	}
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	logs := &testutil.SafeBuffer{}
	a, err := NewApp(logs, validated)
	require.NoError(t, err)
	return a, workDir, logs
}

func TestRun_WritesScript(t *testing.T) {
	// --- Arrange ---
	a, workDir, logs := setupApp(t, nil)

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(workDir, "CMakeLists.txt"))
	require.NoError(t, err)
	assert.Equal(t, testutil.PluginExpected, string(got))
	assert.Contains(t, logs.String(), "CMakeLists.txt written.")
	assert.NotContains(t, logs.String(), "jucer_project_begin", "script must not leak into the log stream")

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".jucer2cmake-"), "temporary file %s left behind", e.Name())
	}
}

func TestRun_OutputOverride(t *testing.T) {
	testCases := []struct {
		name        string
		output      string
		includeLine string
	}{
		{
			name:        "sibling directory",
			output:      "project/Generated.cmake",
			includeLine: `list(APPEND CMAKE_MODULE_PATH "${CMAKE_CURRENT_LIST_DIR}/../cmake")`,
		},
		{
			name:        "nested build directory",
			output:      "build/sub/CMakeLists.txt",
			includeLine: `list(APPEND CMAKE_MODULE_PATH "${CMAKE_CURRENT_LIST_DIR}/../../cmake")`,
		},
		{
			name:        "next to Reprojucer",
			output:      "cmake/CMakeLists.txt",
			includeLine: `list(APPEND CMAKE_MODULE_PATH "${CMAKE_CURRENT_LIST_DIR}/.")`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			output := filepath.FromSlash(tc.output)
			a, workDir, _ := setupApp(t, func(c *Config) { c.Output = output })
			testutil.WriteFiles(t, workDir, map[string]string{"build/sub/.keep": ""})

			// --- Act ---
			err := a.Run(context.Background())

			// --- Assert ---
			require.NoError(t, err)
			got, err := os.ReadFile(filepath.Join(workDir, output))
			require.NoError(t, err)
			assert.Contains(t, string(got), tc.includeLine+"\n")
			_, err = os.Stat(filepath.Join(workDir, "CMakeLists.txt"))
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestRun_Juce6(t *testing.T) {
	a, workDir, _ := setupApp(t, func(c *Config) { c.Juce6 = true; c.ReprojucerFile = "" })

	require.NoError(t, a.Run(context.Background()))

	got, err := os.ReadFile(filepath.Join(workDir, "CMakeLists.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "juce_add_plugin(Gain Plugin")
	assert.NotContains(t, string(got), "Reprojucer")
}

func TestRun_FailureKeepsExistingOutput(t *testing.T) {
	// --- Arrange ---
	a, workDir, _ := setupApp(t, nil)
	outPath := filepath.Join(workDir, "CMakeLists.txt")
	require.NoError(t, os.WriteFile(outPath, []byte("previous\n"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(workDir, "project", "modules", "juce_core", "juce_core.h")))

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	assert.ErrorIs(t, err, modules.ErrModuleHeader)
	got, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Equal(t, "previous\n", string(got))
}

func TestRun_NotAJucerProject(t *testing.T) {
	a, workDir, _ := setupApp(t, nil)
	testutil.WriteFiles(t, workDir, map[string]string{"project/Gain Plugin.jucer": "<OTHER/>"})

	err := a.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid Jucer project")
	_, statErr := os.Stat(filepath.Join(workDir, "CMakeLists.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewApp_DefaultsWorkDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProjectFile = "a.jucer"
	cfg.ReprojucerFile = "b.cmake"

	a, err := NewApp(&bytes.Buffer{}, &cfg)

	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, a.Config().WorkDir)
	assert.Empty(t, cfg.WorkDir, "caller's config must not be modified")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
