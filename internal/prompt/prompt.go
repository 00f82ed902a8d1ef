// Package prompt collects the answers needed to generate build descriptors,
// either interactively from a terminal or from flags and config files.
package prompt

import (
	"errors"

	"github.com/Norgate-AV/scb/internal/answers"
	"github.com/Norgate-AV/scb/internal/config"
)

// ErrInputClosed is returned when input ends before all questions were answered
var ErrInputClosed = errors.New("input closed before setup was complete")

var errSDKStillMissing = errors.New("Steam SDK still not found")

// Prompter gathers a validated answer set
type Prompter interface {
	// WaitForSDK blocks until available reports true
	WaitForSDK(available func() (bool, error)) error

	// Collect returns the answers. configExists controls whether the
	// overwrite confirmation is part of the answers.
	Collect(preset config.Answers, defaultBranch string, configExists bool) (answers.AnswerSet, error)
}

const (
	sdkMissingMessage   = "No Steamworks SDK or steamworks_sdk_*.zip found. Please download the SDK before proceeding."
	sdkWaitDescription  = "Place it in the steam-sdk directory and press Enter"
	appIDMessage        = "Steam APP ID"
	descriptionMessage  = "Build description (optional)"
	branchMessage       = "Name of the branch to set live after deployment"
	overrideMessage     = "Config directory already exists. Do you want to replace the config? (Otherwise script is aborted)"
	depotMessagePattern = "Depot ID for %s build, leave empty if you don't have a %s build"
)

// depotsOf maps the preset depot answers to their platform
func depotsOf(preset config.Answers) map[answers.Platform]string {
	return map[answers.Platform]string{
		answers.Windows: preset.Windows,
		answers.MacOS:   preset.MacOS,
		answers.Linux:   preset.Linux,
	}
}
