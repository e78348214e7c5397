package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/jucer2cmake/internal/ctxlog"
	"github.com/vk/jucer2cmake/internal/fsutil"
	"github.com/vk/jucer2cmake/internal/jucer"
	"github.com/vk/jucer2cmake/internal/script"
)

// Run reads the project, renders the script and writes it to the output
// file. Nothing is written unless rendering succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	cfg := a.config
	projectFile := fsutil.Absolute(cfg.ProjectFile, cfg.WorkDir)
	output := fsutil.Absolute(cfg.Output, cfg.WorkDir)
	if cfg.SettingsFile != "" {
		a.logger.Debug("Settings file applied.", "path", cfg.SettingsFile)
	}

	p, err := jucer.Load(projectFile)
	if err != nil {
		return err
	}
	a.logger.Info("Project loaded.", "name", p.Name(), "type", p.Type(), "path", projectFile)

	var buf bytes.Buffer
	if cfg.Juce6 {
		err = script.WriteJuce6(ctx, &buf, p)
	} else {
		err = script.Write(ctx, &buf, p, script.Options{
			ProjectFile:    projectFile,
			ReprojucerFile: fsutil.Absolute(cfg.ReprojucerFile, cfg.WorkDir),
			OutputDir:      fsutil.Parent(output),
			Headers:        a.headers,
			VST3Folders:    cfg.VST3Folders,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to generate script for %s: %w", projectFile, err)
	}

	if err := writeFileAtomic(output, buf.Bytes()); err != nil {
		return err
	}
	a.logger.Info("🏁 CMakeLists.txt written.", "path", output, "bytes", buf.Len(), "cached_headers", a.headers.Len())
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jucer2cmake-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
