package sdk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound means neither an extracted SDK nor an SDK archive is present
var ErrNotFound = errors.New("no Steamworks SDK or SDK archive found")

// SourceKind tells where the content builder comes from
type SourceKind int

const (
	// SourceNone means neither an extracted SDK nor an archive was found
	SourceNone SourceKind = iota
	// SourceExtracted means the staged directory already exists
	SourceExtracted
	// SourceArchive means the SDK has to be extracted from Archive
	SourceArchive
)

func (k SourceKind) String() string {
	switch k {
	case SourceExtracted:
		return "extracted"
	case SourceArchive:
		return "archive"
	}

	return "none"
}

// Source is the result of locating the SDK
type Source struct {
	Kind    SourceKind
	Archive string
}

// Available reports whether setup can go ahead with this source
func (s Source) Available() bool {
	return s.Kind != SourceNone
}

// Locate looks for the SDK. An extracted content builder takes precedence
// over an archive. A missing SDK directory is not an error.
func (s *Stager) Locate() (Source, error) {
	extracted, err := afero.DirExists(s.fs, s.cfg.StagedDir)
	if err != nil {
		return Source{}, fmt.Errorf("failed to check staged SDK directory: %w", err)
	}

	if extracted {
		return Source{Kind: SourceExtracted}, nil
	}

	archive, err := s.findArchive()
	if err != nil {
		return Source{}, err
	}

	if archive == "" {
		return Source{Kind: SourceNone}, nil
	}

	return Source{Kind: SourceArchive, Archive: archive}, nil
}

// findArchive returns the lexicographically first archive in the SDK
// directory, or "" when there is none
func (s *Stager) findArchive() (string, error) {
	entries, err := afero.ReadDir(s.fs, s.cfg.SDKDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("failed to read SDK directory: %w", err)
	}

	var archives []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}

		if strings.HasSuffix(strings.ToLower(entry.Name()), strings.ToLower(s.cfg.ArchiveExt)) {
			archives = append(archives, entry.Name())
		}
	}

	if len(archives) == 0 {
		return "", nil
	}

	sort.Strings(archives)
	if len(archives) > 1 {
		s.log.WithField("archives", archives).Warnf("Found %d SDK archives, using %s", len(archives), archives[0])
	}

	return filepath.Join(s.cfg.SDKDir, archives[0]), nil
}
