package testutil

// GUIAppProject is a minimal GUI application project with one source group.
const GUIAppProject = `<?xml version="1.0" encoding="UTF-8"?>

<JUCERPROJECT id="aB3dE5" name="Foo" projectType="guiapp" version="1.0.0">
  <MAINGROUP id="m1" name="Foo">
    <GROUP id="g1" name="Source">
      <FILE id="f1" name="Main.cpp" compile="1" resource="0" file="Source/Main.cpp"/>
      <FILE id="f2" name="Main.h" resource="0" file="Source/Main.h"/>
    </GROUP>
  </MAINGROUP>
</JUCERPROJECT>
`

// PluginProject is an audio plug-in with nested groups, resources, two
// modules and three export targets listed out of canonical order.
const PluginProject = `<?xml version="1.0" encoding="UTF-8"?>

<JUCERPROJECT id="Pl4g1n" name="Gain Plugin" projectType="audioplug" version="0.2.0"
              companyName="ACME &quot;Audio&quot;" bundleIdentifier="com.acme.gain"
              defines="GAIN_FEATURE=1" buildVST="1" buildAU="0"
              pluginName="Gain" pluginManufacturerCode="Acme" pluginCode="Gain"
              pluginIsSynth="0" pluginWantsMidiIn="0" pluginChannelConfigs="{1, 1}">
  <MAINGROUP id="m1" name="Gain Plugin">
    <GROUP id="g1" name="Source">
      <FILE id="f1" name="PluginProcessor.cpp" compile="1" resource="0" file="Source/PluginProcessor.cpp"/>
      <FILE id="f2" name="PluginProcessor.h" compile="0" resource="0" file="Source/PluginProcessor.h"/>
      <GROUP id="g2" name="DSP">
        <FILE id="f3" name="Filter.cpp" compile="0" resource="0" file="Source/DSP/Filter.cpp"/>
      </GROUP>
      <FILE id="f4" name="PluginEditor.cpp" compile="1" resource="0" file="Source/PluginEditor.cpp"/>
    </GROUP>
    <GROUP id="g3" name="Resources">
      <FILE id="f5" name="logo.png" compile="0" resource="1" file="Resources/logo.png"/>
    </GROUP>
  </MAINGROUP>
  <EXPORTFORMATS>
    <VS2015 targetFolder="Builds/VisualStudio2015" extraCompilerFlags="/W4">
      <CONFIGURATIONS>
        <CONFIGURATION name="Debug" headerPath="../../JuceLibraryCode" defines="DEBUG=1"/>
      </CONFIGURATIONS>
      <MODULEPATHS>
        <MODULEPATH id="juce_core" path="modules"/>
        <MODULEPATH id="juce_audio_processors" path="modules"/>
      </MODULEPATHS>
    </VS2015>
    <XCODE_MAC targetFolder="Builds/MacOSX" extraDefs="MAC=1">
      <CONFIGURATIONS>
        <CONFIGURATION name="Debug" osxSDK="default" osxCompatibility="10.9 SDK"/>
        <CONFIGURATION name="Release" osxSDK="10.11 SDK" osxCompatibility="10.4 SDK"/>
      </CONFIGURATIONS>
      <MODULEPATHS>
        <MODULEPATH id="juce_core" path="elsewhere"/>
        <MODULEPATH id="juce_audio_processors" path="elsewhere"/>
      </MODULEPATHS>
    </XCODE_MAC>
  </EXPORTFORMATS>
  <MODULES>
    <MODULE id="juce_core" showAllCode="1"/>
    <MODULE id="juce_audio_processors" showAllCode="1"/>
  </MODULES>
  <JUCEOPTIONS JUCE_PLUGINHOST_VST3="enabled" JUCE_USE_CURL="disabled"/>
</JUCERPROJECT>
`

// PluginModuleHeaders are the headers PluginProject's modules need, keyed by
// path relative to the project directory.
var PluginModuleHeaders = map[string]string{
	"modules/juce_core/juce_core.h":                         ModuleHeader("JUCE_FORCE_DEBUG", "JUCE_USE_CURL"),
	"modules/juce_audio_processors/juce_audio_processors.h": ModuleHeader("JUCE_PLUGINHOST_VST3", "JUCE_PLUGINHOST_AU"),
}

// PluginExpected is the Reprojucer script for PluginProject when the project
// lives in a "project" directory and Reprojucer.cmake in "cmake", both below
// the working directory.
const PluginExpected = `# This file was generated by Jucer2CMake from Gain Plugin.jucer

cmake_minimum_required(VERSION 3.4)


list(APPEND CMAKE_MODULE_PATH "${CMAKE_CURRENT_LIST_DIR}/cmake")
include(Reprojucer)


if(NOT DEFINED Gain_Plugin_jucer_FILE)
  message(FATAL_ERROR "Gain_Plugin_jucer_FILE must be defined")
endif()

get_filename_component(Gain_Plugin_jucer_FILE
  "${Gain_Plugin_jucer_FILE}" ABSOLUTE
  BASE_DIR "${CMAKE_BINARY_DIR}"
)


jucer_project_begin(
  PROJECT_FILE "${Gain_Plugin_jucer_FILE}"
  PROJECT_ID "Pl4g1n"
)

jucer_project_settings(
  PROJECT_NAME "Gain Plugin"
  PROJECT_VERSION "0.2.0"
  COMPANY_NAME "ACME \"Audio\""
  # COMPANY_WEBSITE
  # COMPANY_EMAIL
  PROJECT_TYPE "Audio Plug-in"
  BUNDLE_IDENTIFIER "com.acme.gain"
  BINARYDATACPP_SIZE_LIMIT "Default"
  # BINARYDATA_NAMESPACE
  PREPROCESSOR_DEFINITIONS "GAIN_FEATURE=1"
)

jucer_audio_plugin_settings(
  BUILD_VST ON
  BUILD_AUDIOUNIT OFF
  PLUGIN_NAME "Gain"
  # PLUGIN_DESCRIPTION
  # PLUGIN_MANUFACTURER
  PLUGIN_MANUFACTURER_CODE "Acme"
  PLUGIN_CODE "Gain"
  PLUGIN_CHANNEL_CONFIGURATIONS "{1, 1}"
  PLUGIN_IS_A_SYNTH OFF
  PLUGIN_MIDI_INPUT OFF
  # PLUGIN_MIDI_OUTPUT
  # MIDI_EFFECT_PLUGIN
  # KEY_FOCUS
  # PLUGIN_AU_EXPORT_PREFIX
  # PLUGIN_AU_MAIN_TYPE
  # VST_CATEGORY
)

jucer_project_files("Gain Plugin/Source"
  "Source/PluginProcessor.cpp"
  "Source/PluginProcessor.h"
)

jucer_project_files("Gain Plugin/Source/DSP"
  "Source/DSP/Filter.cpp"
)
set_source_files_properties(
  "${JUCER_PROJECT_DIR}/Source/DSP/Filter.cpp"
  PROPERTIES HEADER_FILE_ONLY TRUE
)

jucer_project_files("Gain Plugin/Source"
  "Source/PluginEditor.cpp"
)

jucer_project_resources("Gain Plugin/Resources"
  "Resources/logo.png"
)

jucer_project_module(
  juce_core
  PATH "modules"
  # JUCE_FORCE_DEBUG
  JUCE_USE_CURL OFF
)

jucer_project_module(
  juce_audio_processors
  PATH "modules"
  JUCE_PLUGINHOST_VST3 ON
  # JUCE_PLUGINHOST_AU
)

jucer_export_target(
  "Xcode (MacOSX)"
  VST3_SDK_FOLDER "~/SDKs/VST_SDK/VST3_SDK"
  EXTRA_PREPROCESSOR_DEFINITIONS "MAC=1"
  # EXTRA_COMPILER_FLAGS
)

jucer_export_target_configuration(
  "Xcode (MacOSX)"
  NAME "Debug"
  # HEADER_SEARCH_PATHS
  # PREPROCESSOR_DEFINITIONS
  OSX_BASE_SDK_VERSION "Use Default"
  OSX_DEPLOYMENT_TARGET "10.9"
)

jucer_export_target_configuration(
  "Xcode (MacOSX)"
  NAME "Release"
  # HEADER_SEARCH_PATHS
  # PREPROCESSOR_DEFINITIONS
  OSX_BASE_SDK_VERSION "10.11 SDK"
  # OSX_DEPLOYMENT_TARGET
)

jucer_export_target(
  "Visual Studio 2015"
  VST3_SDK_FOLDER "c:\\SDKs\\VST_SDK\\VST3_SDK"
  # EXTRA_PREPROCESSOR_DEFINITIONS
  EXTRA_COMPILER_FLAGS "/W4"
)

jucer_export_target_configuration(
  "Visual Studio 2015"
  NAME "Debug"
  HEADER_SEARCH_PATHS "JuceLibraryCode"
  PREPROCESSOR_DEFINITIONS "DEBUG=1"
)

jucer_project_end()
`
