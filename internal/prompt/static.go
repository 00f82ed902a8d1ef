package prompt

import (
	"strings"

	"github.com/Norgate-AV/scb/internal/answers"
	"github.com/Norgate-AV/scb/internal/config"
	"github.com/Norgate-AV/scb/internal/sdk"
)

// Static answers from flags and config files without asking. Invalid
// answers are returned as errors instead of being asked again.
type Static struct{}

// NewStatic creates a prompter for unattended runs
func NewStatic() *Static {
	return &Static{}
}

// WaitForSDK checks once and fails when the SDK is missing
func (p *Static) WaitForSDK(available func() (bool, error)) error {
	ok, err := available()
	if err != nil {
		return err
	}

	if !ok {
		return sdk.ErrNotFound
	}

	return nil
}

// Collect validates the preset answers. An existing config is only replaced
// when the override was given explicitly.
func (p *Static) Collect(preset config.Answers, defaultBranch string, configExists bool) (answers.AnswerSet, error) {
	var a answers.AnswerSet
	var err error

	if a.AppID, err = answers.ParseAppID(preset.AppID); err != nil {
		return a, err
	}

	a.Description = strings.TrimSpace(preset.Description)

	if a.Branch, err = answers.ParseBranch(preset.Branch, defaultBranch); err != nil {
		return a, err
	}

	presetDepots := depotsOf(preset)

	for _, platform := range answers.Platforms {
		id, err := answers.ParseDepotID(platform, presetDepots[platform])
		if err != nil {
			return a, err
		}

		a.Depots.Set(platform, id)
	}

	if configExists {
		override := preset.Override
		a.Override = &override
	}

	return a, nil
}
