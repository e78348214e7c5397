package integrationtests

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/jucer2cmake/internal/app"
	"github.com/vk/jucer2cmake/internal/cli"
	"github.com/vk/jucer2cmake/internal/hcl"
	"github.com/vk/jucer2cmake/internal/testutil"
)

// Result holds the outcome of one harness run.
type Result struct {
	Err     error
	Logs    string
	Usage   string
	WorkDir string
}

// ExitCode maps Err the way main does.
func (r *Result) ExitCode() int {
	if r.Err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(r.Err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Output reads a file the run produced, relative to the working directory.
// It fails the test when the file does not exist.
func (r *Result) Output(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.WorkDir, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether the run left name in the working directory.
func (r *Result) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(r.WorkDir, filepath.FromSlash(name)))
	return err == nil
}

// RunIntegrationTest lays files out in a fresh working directory and runs
// jucer2cmake there with args. env is the whole environment the run sees.
func RunIntegrationTest(t *testing.T, files, env map[string]string, args ...string) *Result {
	t.Helper()
	workDir := t.TempDir()
	testutil.WriteFiles(t, workDir, files)

	var environ []string
	for k, v := range env {
		environ = append(environ, k+"="+v)
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	var usage bytes.Buffer
	logs := &testutil.SafeBuffer{}
	result := &Result{WorkDir: workDir}

	cfg, shouldExit, err := cli.ParseIn(workDir, lookup, args, &usage, hcl.NewLoaderWithEnv(environ))
	result.Usage = usage.String()
	if err != nil || shouldExit {
		result.Err = err
		return result
	}

	a, err := app.NewApp(logs, cfg)
	if err != nil {
		result.Err = err
		return result
	}
	result.Err = a.Run(context.Background())
	result.Logs = logs.String()

	t.Cleanup(func() {
		if os.Getenv("JUCER2CMAKE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.Logs)
		}
	})
	return result
}

// pluginFiles is the PluginProject layout of testutil, keyed for
// RunIntegrationTest.
func pluginFiles() map[string]string {
	files := map[string]string{
		"project/Gain Plugin.jucer": testutil.PluginProject,
		"cmake/Reprojucer.cmake":    "# stub\n",
	}
	for name, content := range testutil.PluginModuleHeaders {
		files["project/"+name] = content
	}
	return files
}
