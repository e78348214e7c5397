package script

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/jucer2cmake/internal/cmake"
	"github.com/vk/jucer2cmake/internal/ctxlog"
	"github.com/vk/jucer2cmake/internal/jucer"
)

// WriteJuce6 renders a script for JUCE 6's own CMake API: it finds the
// installed JUCE package, adds one target named after the project and
// generates its JuceHeader.h.
func WriteJuce6(ctx context.Context, out io.Writer, p *jucer.Project) error {
	logger := ctxlog.FromContext(ctx)
	w := cmake.NewWriter(out)

	projectType := p.Type()
	target := p.Name()

	cmakeVersion := "3.12"
	if projectType == jucer.TypeAudioPlug {
		cmakeVersion = "3.15"
	}

	w.Line()
	w.Line("cmake_minimum_required(VERSION ", cmakeVersion, ")")
	w.Line()
	w.Line("project(", cmake.Quoted(target), ")")
	w.Line()
	w.Line()
	w.Line("find_package(JUCE CONFIG REQUIRED)")
	w.Line()
	w.Line()

	addFunction := juceAddFunction(projectType)
	if addFunction == "" {
		logger.Warn("Project type has no JUCE 6 target function.", "project_type", projectType)
	}
	args := []string{`VERSION "1.0.0"`}
	if projectType == jucer.TypeAudioPlug {
		args = append(args, `FORMATS "AU" "VST3" "Standalone"`)
	}
	w.Call(addFunction+"("+target, args...)

	w.Line("juce_generate_juce_header(", target, ")")

	if err := w.Err(); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

func juceAddFunction(projectType string) string {
	switch projectType {
	case jucer.TypeGUIApp:
		return "juce_add_gui_app"
	case jucer.TypeConsoleApp:
		return "juce_add_console_app"
	case jucer.TypeAudioPlug:
		return "juce_add_plugin"
	}
	return ""
}
