package script

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/vk/jucer2cmake/internal/cmake"
	"github.com/vk/jucer2cmake/internal/ctxlog"
	"github.com/vk/jucer2cmake/internal/exporters"
	"github.com/vk/jucer2cmake/internal/filegroup"
	"github.com/vk/jucer2cmake/internal/fsutil"
	"github.com/vk/jucer2cmake/internal/jucer"
	"github.com/vk/jucer2cmake/internal/modules"
)

// Options are the run-specific inputs of the Reprojucer writer.
type Options struct {
	// ProjectFile is the absolute path of the .jucer file.
	ProjectFile string
	// ReprojucerFile is the absolute path of Reprojucer.cmake.
	ReprojucerFile string
	// OutputDir is the directory the script is generated into; paths in the
	// script are relative to it.
	OutputDir string
	// Headers reads module headers.
	Headers modules.LineSource
	// VST3Folders overrides the default VST3 SDK folder per export target.
	VST3Folders map[string]string
}

// Write renders the Reprojucer script for p into out. Module headers are
// resolved before anything is written, so a missing module leaves out
// untouched.
func Write(ctx context.Context, out io.Writer, p *jucer.Project, opts Options) error {
	logger := ctxlog.FromContext(ctx)
	projectDir := fsutil.Parent(opts.ProjectFile)

	resolver := &modules.Resolver{
		ProjectDir: projectDir,
		Paths:      p.ModulePaths(),
		Overrides:  p.Options(),
		Headers:    opts.Headers,
	}
	mods, err := resolver.Resolve(ctx, p.ModuleIDs())
	if err != nil {
		return err
	}
	units := filegroup.Flatten(p.MainGroup())
	logger.Debug("Project model read.", "file_groups", len(units), "modules", len(mods))

	w := cmake.NewWriter(out)
	fileName := fsutil.FileName(opts.ProjectFile)
	fileVar := cmake.SanitizeIdentifier(fileName) + "_FILE"

	writePreamble(w, fileName)
	writeInclude(w, opts.ReprojucerFile, opts.OutputDir)
	writeFileGuard(w, fileVar)
	writeProjectBegin(w, p, fileVar)
	writeProjectSettings(w, p)
	if p.Type() == jucer.TypeAudioPlug {
		writeAudioPluginSettings(w, p)
	}
	filegroup.Write(w, units)
	modules.Write(w, mods)
	exporters.NewEmitter(p, projectDir, opts.VST3Folders).Write(ctx, w, p)
	w.Line("jucer_project_end()")

	if err := w.Err(); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

func writePreamble(w *cmake.Writer, fileName string) {
	w.Line("# This file was generated by Jucer2CMake from ", fileName)
	w.Line()
	w.Line("cmake_minimum_required(VERSION 3.4)")
	w.Line()
	w.Line()
}

func writeInclude(w *cmake.Writer, reprojucerFile, outputDir string) {
	dir := filepath.ToSlash(fsutil.RelativeTo(fsutil.Parent(reprojucerFile), outputDir))
	w.Line(`list(APPEND CMAKE_MODULE_PATH "${CMAKE_CURRENT_LIST_DIR}/`, dir, `")`)
	w.Line("include(Reprojucer)")
	w.Line()
	w.Line()
}

func writeFileGuard(w *cmake.Writer, fileVar string) {
	w.Line("if(NOT DEFINED ", fileVar, ")")
	w.Line(`  message(FATAL_ERROR "`, fileVar, ` must be defined")`)
	w.Line("endif()")
	w.Line()
	w.Line("get_filename_component(", fileVar)
	w.Line(`  "${`, fileVar, `}" ABSOLUTE`)
	w.Line(`  BASE_DIR "${CMAKE_BINARY_DIR}"`)
	w.Line(")")
	w.Line()
	w.Line()
}

func writeProjectBegin(w *cmake.Writer, p *jucer.Project, fileVar string) {
	id, ok := p.Property("id")
	w.Call("jucer_project_begin(",
		`PROJECT_FILE "${`+fileVar+`}"`,
		cmake.Setting("PROJECT_ID", id, ok),
	)
}

func writeProjectSettings(w *cmake.Writer, p *jucer.Project) {
	s := settings{p}
	w.Call("jucer_project_settings(",
		s.str("PROJECT_NAME", "name"),
		s.str("PROJECT_VERSION", "version"),
		s.str("COMPANY_NAME", "companyName"),
		s.str("COMPANY_WEBSITE", "companyWebsite"),
		s.str("COMPANY_EMAIL", "companyEmail"),
		"PROJECT_TYPE "+cmake.Quoted(p.TypeDescription()),
		s.str("BUNDLE_IDENTIFIER", "bundleIdentifier"),
		`BINARYDATACPP_SIZE_LIMIT "Default"`,
		s.str("BINARYDATA_NAMESPACE", "binaryDataNamespace"),
		s.str("PREPROCESSOR_DEFINITIONS", "defines"),
	)
}

func writeAudioPluginSettings(w *cmake.Writer, p *jucer.Project) {
	s := settings{p}
	w.Call("jucer_audio_plugin_settings(",
		s.flag("BUILD_VST", "buildVST"),
		s.flag("BUILD_AUDIOUNIT", "buildAU"),
		s.str("PLUGIN_NAME", "pluginName"),
		s.str("PLUGIN_DESCRIPTION", "pluginDesc"),
		s.str("PLUGIN_MANUFACTURER", "pluginManufacturer"),
		s.str("PLUGIN_MANUFACTURER_CODE", "pluginManufacturerCode"),
		s.str("PLUGIN_CODE", "pluginCode"),
		s.str("PLUGIN_CHANNEL_CONFIGURATIONS", "pluginChannelConfigs"),
		s.flag("PLUGIN_IS_A_SYNTH", "pluginIsSynth"),
		s.flag("PLUGIN_MIDI_INPUT", "pluginWantsMidiIn"),
		s.flag("PLUGIN_MIDI_OUTPUT", "pluginProducesMidiOut"),
		s.flag("MIDI_EFFECT_PLUGIN", "pluginIsMidiEffectPlugin"),
		s.flag("KEY_FOCUS", "pluginEditorRequiresKeys"),
		s.str("PLUGIN_AU_EXPORT_PREFIX", "pluginAUExportPrefix"),
		s.str("PLUGIN_AU_MAIN_TYPE", "pluginAUMainType"),
		s.str("VST_CATEGORY", "pluginVSTCategory"),
	)
}

// settings binds the settings accessor to project attributes.
type settings struct {
	p *jucer.Project
}

func (s settings) str(tag, property string) string {
	v, ok := s.p.Property(property)
	return cmake.Setting(tag, v, ok)
}

func (s settings) flag(tag, property string) string {
	v, ok := s.p.Int(property)
	return cmake.Flag(tag, v, ok)
}
