package modules

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/jucer2cmake/internal/ctxlog"
	"github.com/vk/jucer2cmake/internal/fsutil"
	"github.com/vk/jucer2cmake/internal/jucer"
)

// ConfigMarker starts every option declaration in a module header.
const ConfigMarker = "/** Config: "

var (
	// ErrUnresolvedModule means no module search path names the module.
	ErrUnresolvedModule = errors.New("unresolved module path")
	// ErrModuleHeader means the module's public header could not be read.
	ErrModuleHeader = errors.New("unreadable module header")
)

// Option is a module option and the project's override for it.
type Option struct {
	Name  string
	State jucer.OptionState
}

// Module is a declared module with its resolved path and options.
type Module struct {
	ID      string
	Path    string
	Options []Option
}

// Resolver turns declared module identifiers into Modules.
type Resolver struct {
	// ProjectDir is the directory of the project file; module paths are
	// relative to it.
	ProjectDir string
	Paths      jucer.ModulePaths
	Overrides  jucer.Options
	Headers    LineSource
}

// Resolve handles ids in order. The first module whose path or header cannot
// be found stops the run.
func (r *Resolver) Resolve(ctx context.Context, ids []string) ([]Module, error) {
	logger := ctxlog.FromContext(ctx)

	mods := make([]Module, 0, len(ids))
	for _, id := range ids {
		path, ok := r.Paths.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not listed in the first exporter's module paths", ErrUnresolvedModule, id)
		}

		header := fsutil.Join(fsutil.ChildFile(r.ProjectDir, path), id, id+".h")
		lines, err := r.Headers.Lines(header)
		if err != nil {
			return nil, fmt.Errorf("%w: module %q: %w", ErrModuleHeader, id, err)
		}

		names := ScanOptions(lines)
		m := Module{ID: id, Path: path, Options: make([]Option, 0, len(names))}
		for _, name := range names {
			m.Options = append(m.Options, Option{Name: name, State: r.Overrides.State(name)})
		}
		logger.Debug("Module resolved.", "module", id, "path", path, "options", len(m.Options))
		mods = append(mods, m)
	}
	return mods, nil
}

// ScanOptions returns the option identifiers declared in header lines, in
// line order. Duplicates are kept.
func ScanOptions(lines []string) []string {
	var names []string
	for _, line := range lines {
		rest, ok := strings.CutPrefix(line, ConfigMarker)
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		name := strings.TrimSuffix(fields[0], "*/")
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
