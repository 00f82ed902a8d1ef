// Package setup runs the steps that turn the user's answers into deployed
// content builder descriptors. Every step runs to completion before the next
// one starts. A failing step ends the run, files written up to that point
// stay in place.
package setup

import (
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Norgate-AV/scb/internal/answers"
	"github.com/Norgate-AV/scb/internal/builder"
	"github.com/Norgate-AV/scb/internal/config"
	"github.com/Norgate-AV/scb/internal/prompt"
	"github.com/Norgate-AV/scb/internal/sdk"
	"github.com/Norgate-AV/scb/internal/vdf"
)

// Result describes a finished run
type Result struct {
	// Abort is ErrNoDepot or ErrOverrideDeclined when the run stopped on purpose
	Abort  error
	Reason string

	Answers   answers.AnswerSet
	Source    sdk.Source
	Written   []string
	Extracted *sdk.ExtractResult
	Deployed  []string

	// UploadCommand is how the user uploads the build afterwards
	UploadCommand *builder.ShellCommand
}

// Aborted reports whether the run stopped before writing anything
func (r *Result) Aborted() bool {
	return r.Abort != nil
}

// Runner wires the collector, writer, stager and deployer together
type Runner struct {
	cfg      *config.Config
	log      logrus.FieldLogger
	prompter prompt.Prompter
	writer   *vdf.Writer
	stager   *sdk.Stager
	goos     string
}

// NewRunner creates a runner working on fs with the directories of cfg
func NewRunner(fs afero.Fs, cfg *config.Config, log logrus.FieldLogger, prompter prompt.Prompter) *Runner {
	return &Runner{
		cfg:      cfg,
		log:      log,
		prompter: prompter,
		writer:   vdf.NewWriter(fs, cfg.ConfigDir, log),
		stager:   sdk.NewStager(fs, cfg, log),
		goos:     runtime.GOOS,
	}
}

type step struct {
	name string
	run  func(*Result) error
}

// Run executes every step in order. Aborts are reported through the result,
// failures through the error.
func (r *Runner) Run() (*Result, error) {
	steps := []step{
		{"locate sdk", r.locateSDK},
		{"collect answers", r.collectAnswers},
		{"write config", r.writeConfig},
		{"stage sdk", r.stageSDK},
		{"deploy config", r.deployConfig},
	}

	result := &Result{}
	for _, s := range steps {
		r.log.WithField("step", s.name).Debug("Running step")

		if err := s.run(result); err != nil {
			return result, err
		}

		if result.Aborted() {
			r.log.Warn(result.Reason)
			return result, nil
		}
	}

	result.UploadCommand = builder.GetUploadCommand(r.cfg, result.Answers.AppID, r.goos)

	r.log.Info("Done.")
	r.log.WithField("dir", result.UploadCommand.Dir).Infof("Upload the build with: %s", result.UploadCommand)

	return result, nil
}

// locateSDK blocks until an extracted SDK or an SDK archive is present
func (r *Runner) locateSDK(result *Result) error {
	return r.prompter.WaitForSDK(func() (bool, error) {
		src, err := r.stager.Locate()
		if err != nil {
			return false, err
		}

		result.Source = src
		return src.Available(), nil
	})
}

func (r *Runner) collectAnswers(result *Result) error {
	exists, err := r.writer.Exists()
	if err != nil {
		return err
	}

	a, err := r.prompter.Collect(r.cfg.Answers, r.cfg.DefaultBranch, exists)
	if err != nil {
		return err
	}

	if err := a.Validate(); err != nil {
		return err
	}

	decision := answers.Decide(a)
	if decision.Aborted() {
		result.Abort = decision.Err
		result.Reason = decision.Reason
		return nil
	}

	result.Answers = decision.Answers
	return nil
}

func (r *Runner) writeConfig(result *Result) error {
	r.log.Info("Creating config files...")

	if err := r.writer.Reset(); err != nil {
		return err
	}

	written, err := r.writer.Write(result.Answers)
	result.Written = written

	return err
}

func (r *Runner) stageSDK(result *Result) error {
	extracted, err := r.stager.Stage(result.Source)
	result.Extracted = extracted

	return err
}

func (r *Runner) deployConfig(result *Result) error {
	deployed, err := r.stager.Deploy(r.cfg.ConfigDir)
	result.Deployed = deployed

	return err
}
