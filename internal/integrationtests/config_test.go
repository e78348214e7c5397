package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SettingsFileWithEnvInterpolation(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := pluginFiles()
	files["jucer2cmake.hcl"] = `
output    = "${env.BUILD_DIR}/CMakeLists.txt"
log_level = "debug"

exporter "XCODE_MAC" {
  vst3_folder = "/opt/VST3_SDK"
}
`
	files["build/.keep"] = ""
	env := map[string]string{"BUILD_DIR": "build"}

	// --- Act ---
	result := RunIntegrationTest(t, files, env, pluginArgs...)

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.False(t, result.Exists("CMakeLists.txt"))
	out := result.Output(t, "build/CMakeLists.txt")
	assert.Contains(t, out, "list(APPEND CMAKE_MODULE_PATH \"${CMAKE_CURRENT_LIST_DIR}/../cmake\")\n")
	assert.Contains(t, out, "  \"Xcode (MacOSX)\"\n  VST3_SDK_FOLDER \"/opt/VST3_SDK\"\n")
	assert.Contains(t, out, "  \"Visual Studio 2015\"\n  VST3_SDK_FOLDER \"c:\\\\SDKs\\\\VST_SDK\\\\VST3_SDK\"\n")
	assert.Contains(t, result.Logs, "level=DEBUG")
}

func TestConfig_ProjectVST3FolderWinsOverSettings(t *testing.T) {
	t.Parallel()

	project := `<JUCERPROJECT id="x" name="Host" projectType="guiapp">
  <EXPORTFORMATS>
    <VS2013 vst3Folder="e:\vst3">
      <MODULEPATHS>
        <MODULEPATH id="juce_audio_processors" path="modules"/>
      </MODULEPATHS>
    </VS2013>
  </EXPORTFORMATS>
  <MODULES>
    <MODULE id="juce_audio_processors"/>
  </MODULES>
  <JUCEOPTIONS JUCE_PLUGINHOST_VST3="enabled"/>
</JUCERPROJECT>`
	files := map[string]string{
		"Host.jucer":       project,
		"Reprojucer.cmake": "",
		"settings.hcl":     "exporter \"VS2013\" {\n  vst3_folder = \"d:/ignored\"\n}\n",
	}
	files["modules/juce_audio_processors/juce_audio_processors.h"] = "/** Config: JUCE_PLUGINHOST_VST3 */\n"

	result := RunIntegrationTest(t, files, nil, "--config", "settings.hcl", "Host.jucer", "Reprojucer.cmake")

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output(t, "CMakeLists.txt"), "  VST3_SDK_FOLDER \"e:\\\\vst3\"\n")
}

func TestConfig_DotEnv(t *testing.T) {
	t.Parallel()

	files := pluginFiles()
	files[".env"] = "JUCER2CMAKE_OUTPUT=FromDotEnv.cmake\nJUCER2CMAKE_LOG_FORMAT=json\n"

	result := RunIntegrationTest(t, files, nil, pluginArgs...)

	require.NoError(t, result.Err)
	assert.True(t, result.Exists("FromDotEnv.cmake"))
	assert.False(t, result.Exists("CMakeLists.txt"))
	assert.Contains(t, result.Logs, `"msg":"Project loaded."`)
}

func TestConfig_FlagOverridesEnvironment(t *testing.T) {
	t.Parallel()

	env := map[string]string{"JUCER2CMAKE_OUTPUT": "env.cmake"}
	args := append([]string{"--output", "flag.cmake"}, pluginArgs...)

	result := RunIntegrationTest(t, pluginFiles(), env, args...)

	require.NoError(t, result.Err)
	assert.True(t, result.Exists("flag.cmake"))
	assert.False(t, result.Exists("env.cmake"))
}

func TestConfig_InvalidSettingsFile(t *testing.T) {
	t.Parallel()

	files := pluginFiles()
	files["jucer2cmake.hcl"] = "output = env.UNDEFINED\n"

	result := RunIntegrationTest(t, files, nil, pluginArgs...)

	require.Error(t, result.Err)
	assert.Equal(t, 1, result.ExitCode())
	assert.Contains(t, result.Err.Error(), "failed to decode HCL file")
	assert.False(t, result.Exists("CMakeLists.txt"))
}
