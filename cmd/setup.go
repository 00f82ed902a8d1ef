package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Norgate-AV/scb/internal/config"
	"github.com/Norgate-AV/scb/internal/prompt"
	"github.com/Norgate-AV/scb/internal/setup"
)

var setupCmd = &cobra.Command{
	Use:           "setup",
	Short:         "Set up the Steam content builder",
	Long:          `Ask for the app and depot ids, write the build descriptors, extract the content builder from the Steamworks SDK and deploy the descriptors into it.`,
	RunE:          runSetup,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
}

// newLoader builds the config loader of a run
var newLoader = config.NewLoader

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := newLoader().LoadForSetup(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	log.WithFields(logrus.Fields{
		"root":   cfg.Root,
		"config": cfg.ConfigDir,
		"sdk":    cfg.SDKDir,
	}).Debug("Loaded configuration")

	runner := setup.NewRunner(afero.NewOsFs(), cfg, log, newPrompter(cmd, cfg))

	_, err = runner.Run()
	return err
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// newPrompter asks on the terminal unless prompting was disabled or stdin is
// not a terminal
func newPrompter(cmd *cobra.Command, cfg *config.Config) prompt.Prompter {
	if cfg.NonInteractive || !isTerminal(cmd.InOrStdin()) {
		return prompt.NewStatic()
	}

	return prompt.NewInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Accessible)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
