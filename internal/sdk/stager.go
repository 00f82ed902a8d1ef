// Package sdk stages the Steamworks SDK content builder.
//
// The SDK is dropped into the SDK directory either already extracted or as
// the zip archive Valve distributes. The archive bundles many unrelated
// tools, so only the subtree below the marker component (ContentBuilder) is
// extracted into the staged directory and the archive is removed afterwards.
// Generated descriptors are then deployed into the staged scripts directory.
package sdk

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Norgate-AV/scb/internal/config"
)

// Stager locates, extracts and deploys into the staged content builder
type Stager struct {
	fs  afero.Fs
	cfg *config.Config
	log logrus.FieldLogger
}

// NewStager creates a stager operating on the directories of cfg
func NewStager(fs afero.Fs, cfg *config.Config, log logrus.FieldLogger) *Stager {
	return &Stager{fs: fs, cfg: cfg, log: log}
}

// Stage extracts src when it is an archive. An already extracted SDK is left alone.
func (s *Stager) Stage(src Source) (*ExtractResult, error) {
	if src.Kind != SourceArchive {
		s.log.WithField("dir", s.cfg.StagedDir).Debug("Steam SDK already extracted")
		return nil, nil
	}

	return s.Extract(src.Archive)
}
