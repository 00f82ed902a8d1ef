package sdk

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"
)

// ExtractResult summarises an extraction
type ExtractResult struct {
	// Files written below the staged directory
	Files int
	// Bytes written below the staged directory
	Bytes uint64
	// Discarded entries outside the marker subtree
	Discarded int
}

// Extract purges the staged directory and fills it with the marker subtree
// of archive. Every other entry is read and dropped, which also verifies its
// checksum. The archive is deleted once all entries were processed.
func (s *Stager) Extract(archive string) (*ExtractResult, error) {
	s.log.WithField("archive", filepath.Base(archive)).Info("Extracting Steam SDK...")

	if err := s.fs.RemoveAll(s.cfg.StagedDir); err != nil {
		return nil, fmt.Errorf("failed to purge staged SDK directory: %w", err)
	}

	result, err := s.extractArchive(archive)
	if err != nil {
		return nil, err
	}

	if err := s.fs.Remove(archive); err != nil {
		return nil, fmt.Errorf("failed to remove SDK archive: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"files":     result.Files,
		"discarded": result.Discarded,
	}).Infof("Extracted %s of content builder", humanize.IBytes(result.Bytes))

	return result, nil
}

func (s *Stager) extractArchive(archive string) (*ExtractResult, error) {
	f, err := s.fs.Open(archive)
	if err != nil {
		return nil, fmt.Errorf("failed to open SDK archive: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat SDK archive: %w", err)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to read SDK archive: %w", err)
	}

	// The staged root exists even when the marker subtree turns out empty
	if err := s.fs.MkdirAll(s.cfg.StagedDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staged SDK directory: %w", err)
	}

	result := &ExtractResult{}
	for _, entry := range zr.File {
		rel, ok := stripMarker(entry.Name, s.cfg.ArchiveMarker)
		if !ok {
			if err := drain(entry); err != nil {
				return nil, err
			}
			result.Discarded++
			continue
		}

		if rel == "" {
			continue
		}

		if rel == ".." || strings.HasPrefix(rel, "../") {
			return nil, fmt.Errorf("archive entry %s escapes the staged directory", entry.Name)
		}

		target := filepath.Join(s.cfg.StagedDir, filepath.FromSlash(rel))

		if entry.FileInfo().IsDir() {
			if err := s.fs.MkdirAll(target, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create %s: %w", rel, err)
			}
			continue
		}

		n, err := s.extractFile(entry, target)
		if err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", rel, err)
		}

		s.log.WithField("file", rel).Debug("Extracted")
		result.Files++
		result.Bytes += uint64(n)
	}

	return result, nil
}

func (s *Stager) extractFile(entry *zip.File, target string) (int64, error) {
	if err := s.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, err
	}

	rc, err := entry.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	// Keep executable bits of the builder binaries, but always stay writable
	perm := entry.Mode().Perm() | 0o600

	dst, err := s.fs.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, rc)
	if err != nil {
		dst.Close()
		return n, err
	}

	return n, dst.Close()
}

// drain reads an unwanted entry to the end so a corrupt entry still fails the run
func drain(entry *zip.File) error {
	if entry.FileInfo().IsDir() {
		return nil
	}

	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to read archive entry %s: %w", entry.Name, err)
	}
	defer rc.Close()

	if _, err := io.Copy(io.Discard, rc); err != nil {
		return fmt.Errorf("failed to read archive entry %s: %w", entry.Name, err)
	}

	return nil
}

// stripMarker returns the part of name below the first path component equal
// to marker. ok is false when name has no such component.
func stripMarker(name, marker string) (rel string, ok bool) {
	parts := strings.Split(strings.ReplaceAll(name, `\`, "/"), "/")

	for i, part := range parts {
		if part != marker {
			continue
		}

		rel = strings.Join(parts[i+1:], "/")
		if rel == "" {
			return "", true
		}

		rel = path.Clean(rel)
		if rel == "." {
			return "", true
		}

		return rel, true
	}

	return "", false
}
