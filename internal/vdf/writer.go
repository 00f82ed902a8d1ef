package vdf

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Norgate-AV/scb/internal/answers"
)

// Writer persists descriptors to the configuration directory
type Writer struct {
	fs  afero.Fs
	dir string
	log logrus.FieldLogger
}

// NewWriter creates a writer for dir
func NewWriter(fs afero.Fs, dir string, log logrus.FieldLogger) *Writer {
	return &Writer{fs: fs, dir: dir, log: log}
}

// Exists reports whether the configuration directory is already present
func (w *Writer) Exists() (bool, error) {
	return afero.DirExists(w.fs, w.dir)
}

// Reset removes the configuration directory with everything in it and
// creates it again empty
func (w *Writer) Reset() error {
	if err := w.fs.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("failed to remove config directory: %w", err)
	}

	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Write renders the app descriptor and one depot descriptor per configured
// platform. Existing files with the same name are overwritten. It returns
// the written paths, app descriptor first.
func (w *Writer) Write(a answers.AnswerSet) ([]string, error) {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	var written []string

	appPath := filepath.Join(w.dir, AppFileName(a.AppID))
	if err := w.writeFile(appPath, RenderApp(a)); err != nil {
		return written, err
	}
	written = append(written, appPath)

	for _, d := range a.Depots.Configured() {
		depotPath := filepath.Join(w.dir, DepotFileName(d.ID))
		if err := w.writeFile(depotPath, RenderDepot(d)); err != nil {
			return written, err
		}
		written = append(written, depotPath)
	}

	return written, nil
}

func (w *Writer) writeFile(path, content string) error {
	if err := afero.WriteFile(w.fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	w.log.WithField("file", filepath.Base(path)).Debug("Wrote descriptor")

	return nil
}
