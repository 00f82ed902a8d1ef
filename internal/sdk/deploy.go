package sdk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Deploy replaces the staged scripts directory with the descriptors found in
// configDir. Only regular files with the descriptor extension are copied,
// subdirectories are not descended into. It returns the copied file names.
func (s *Stager) Deploy(configDir string) ([]string, error) {
	s.log.Info("Copying config...")

	targetDir := s.cfg.ScriptsPath()

	if err := s.fs.RemoveAll(targetDir); err != nil {
		return nil, fmt.Errorf("failed to purge scripts directory: %w", err)
	}

	if err := s.fs.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scripts directory: %w", err)
	}

	descriptors, err := s.collectDescriptors(configDir)
	if err != nil {
		return nil, err
	}

	for _, name := range descriptors {
		if err := copyFile(s.fs, filepath.Join(configDir, name), filepath.Join(targetDir, name)); err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", name, err)
		}

		s.log.WithField("file", name).Debug("Deployed descriptor")
	}

	return descriptors, nil
}

// collectDescriptors lists the descriptor files directly inside dir
func (s *Stager) collectDescriptors(dir string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var descriptors []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}

		if strings.HasSuffix(entry.Name(), s.cfg.DescriptorExt) {
			descriptors = append(descriptors, entry.Name())
		}
	}

	return descriptors, nil
}

// copyFile copies a file from src to dst
func copyFile(fs afero.Fs, src, dst string) error {
	srcFile, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	// Preserve file permissions
	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}

	return dstFile.Close()
}
