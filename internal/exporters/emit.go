package exporters

import (
	"context"
	"strings"

	"github.com/vk/jucer2cmake/internal/cmake"
	"github.com/vk/jucer2cmake/internal/ctxlog"
	"github.com/vk/jucer2cmake/internal/fsutil"
	"github.com/vk/jucer2cmake/internal/jucer"
)

// Module and option that decide whether targets need a VST3 SDK folder.
const (
	audioProcessorsModule = "juce_audio_processors"
	vst3HostingOption     = "JUCE_PLUGINHOST_VST3"
)

// Emitter writes the export targets of one project.
type Emitter struct {
	// ProjectDir is the directory of the project file.
	ProjectDir string
	// VST3Hosting adds VST3_SDK_FOLDER to every target block.
	VST3Hosting bool
	// VST3Folders replaces the table's default VST3 folder, keyed by target ID.
	VST3Folders map[string]string
}

// NewEmitter prepares an Emitter for p.
func NewEmitter(p *jucer.Project, projectDir string, vst3Folders map[string]string) *Emitter {
	return &Emitter{
		ProjectDir:  projectDir,
		VST3Hosting: VST3HostingEnabled(p),
		VST3Folders: vst3Folders,
	}
}

// VST3HostingEnabled reports whether p hosts VST3 plug-ins: the audio
// processors module is declared and its VST3 hosting option is enabled.
func VST3HostingEnabled(p *jucer.Project) bool {
	return p.HasModule(audioProcessorsModule) && p.Options().State(vst3HostingOption) == jucer.OptionEnabled
}

// Write emits every supported target p declares, in table order.
func (e *Emitter) Write(ctx context.Context, w *cmake.Writer, p *jucer.Project) {
	logger := ctxlog.FromContext(ctx)

	for _, t := range Targets {
		exp := p.Exporter(t.ID)
		if exp == nil {
			continue
		}
		e.writeTarget(w, t, exp)

		configs := exp.Configurations()
		for _, c := range configs {
			e.writeConfiguration(w, t, exp, c)
		}
		logger.Debug("Export target written.", "exporter", t.ID, "configurations", len(configs))
	}

	for _, exp := range p.Exporters() {
		if _, ok := Lookup(exp.ID()); !ok {
			logger.Warn("Unsupported export target skipped.", "exporter", exp.ID())
		}
	}
}

func (e *Emitter) writeTarget(w *cmake.Writer, t Target, exp *jucer.Exporter) {
	args := []string{cmake.Quoted(t.Name)}
	if e.VST3Hosting {
		args = append(args, "VST3_SDK_FOLDER "+cmake.Quoted(cmake.EscapePath(e.vst3Folder(t, exp))))
	}
	extraDefs, ok := exp.Property("extraDefs")
	args = append(args, cmake.Setting("EXTRA_PREPROCESSOR_DEFINITIONS", extraDefs, ok))
	flags, ok := exp.Property("extraCompilerFlags")
	args = append(args, cmake.Setting("EXTRA_COMPILER_FLAGS", flags, ok))

	w.Call("jucer_export_target(", args...)
}

func (e *Emitter) vst3Folder(t Target, exp *jucer.Exporter) string {
	if f := exp.VST3Folder(); f != "" {
		return f
	}
	if f := e.VST3Folders[t.ID]; f != "" {
		return f
	}
	return t.DefaultVST3Folder
}

func (e *Emitter) writeConfiguration(w *cmake.Writer, t Target, exp *jucer.Exporter, c *jucer.Configuration) {
	args := []string{
		cmake.Quoted(t.Name),
		"NAME " + cmake.Quoted(cmake.EscapeString(c.Name())),
	}

	if raw := c.HeaderPath(); raw == "" {
		args = append(args, cmake.Placeholder("HEADER_SEARCH_PATHS"))
	} else {
		paths := e.headerSearchPaths(exp.TargetFolder(), raw)
		args = append(args, "HEADER_SEARCH_PATHS "+cmake.Quoted(cmake.EscapePath(paths)))
	}

	defines, ok := c.Property("defines")
	args = append(args, cmake.Setting("PREPROCESSOR_DEFINITIONS", defines, ok))

	if t.ID == XcodeMac {
		sdk, _ := c.Property("osxSDK")
		args = append(args, BaseSDKVersion(sdk))
		compat, _ := c.Property("osxCompatibility")
		args = append(args, DeploymentTarget(compat))
	}

	w.Call("jucer_export_target_configuration(", args...)
}

// headerSearchPaths re-expresses each newline-separated path, given relative
// to the exporter's target folder, relative to the project directory. Empty
// lines are dropped.
func (e *Emitter) headerSearchPaths(targetFolder, raw string) string {
	targetDir := fsutil.ChildFile(e.ProjectDir, targetFolder)

	var resolved []string
	for _, p := range strings.Split(raw, "\n") {
		if p == "" {
			continue
		}
		resolved = append(resolved, fsutil.RelativeTo(fsutil.ChildFile(targetDir, p), e.ProjectDir))
	}
	return strings.Join(resolved, "\n")
}

// BaseSDKVersion renders the OSX_BASE_SDK_VERSION argument for an osxSDK value.
func BaseSDKVersion(v string) string {
	switch {
	case v == sdkDefault:
		return "OSX_BASE_SDK_VERSION " + cmake.Quoted(sdkUseDefault)
	case knownSDK(v):
		return "OSX_BASE_SDK_VERSION " + cmake.Quoted(v)
	}
	return cmake.Placeholder("OSX_BASE_SDK_VERSION")
}

// DeploymentTarget renders the OSX_DEPLOYMENT_TARGET argument for an
// osxCompatibility value. Known versions lose their " SDK" suffix.
func DeploymentTarget(v string) string {
	switch {
	case v == sdkDefault:
		return "OSX_DEPLOYMENT_TARGET " + cmake.Quoted(sdkUseDefault)
	case knownSDK(v):
		return "OSX_DEPLOYMENT_TARGET " + cmake.Quoted(strings.TrimSuffix(v, sdkSuffix))
	}
	return cmake.Placeholder("OSX_DEPLOYMENT_TARGET")
}
