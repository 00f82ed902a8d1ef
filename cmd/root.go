package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Norgate-AV/scb/internal/answers"
	"github.com/Norgate-AV/scb/internal/codes"
	"github.com/Norgate-AV/scb/internal/sdk"
	"github.com/Norgate-AV/scb/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "scb",
	Short:         "Steam content builder setup",
	Long:          `Generate Steam app and depot build descriptors and stage the Steamworks SDK content builder`,
	RunE:          runSetup,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(report(newLogger(rootCmd.ErrOrStderr(), false), err))
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	addSetupFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(setupCmd)
}

// addSetupFlags registers every flag the config loader binds
func addSetupFlags(flags *pflag.FlagSet) {
	flags.StringP("root", "r", ".", "Install root containing config/ and steam-sdk/")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.BoolP("non-interactive", "n", false, "Never prompt, take all answers from flags and config files")
	flags.Bool("accessible", false, "Ask plain line based questions instead of showing a terminal form")
	flags.String("username", "", "Steam account shown in the upload command")
	flags.String("app-id", "", "Steam APP ID")
	flags.String("description", "", "Build description")
	flags.String("branch", "", "Name of the branch to set live after deployment (default \"beta\")")
	flags.String("windows-depot", "", "Depot ID for the windows build")
	flags.String("macos-depot", "", "Depot ID for the macos build")
	flags.String("linux-depot", "", "Depot ID for the linux build")
	flags.BoolP("yes", "y", false, "Replace an existing config directory without asking")
}

// report logs a failed run at error level and returns the process exit code
func report(log logrus.FieldLogger, err error) int {
	code := exitCode(err)
	if codes.IsSuccess(code) {
		return code
	}

	log.WithError(err).WithField("code", code).Error(codes.GetErrorMessage(code))

	return code
}

// exitCode maps an error returned by a command to the process exit code
func exitCode(err error) int {
	if err == nil {
		return codes.Success
	}

	if errors.Is(err, sdk.ErrNotFound) {
		return codes.SDKMissing
	}

	var verr *answers.ValidationError
	if errors.As(err, &verr) {
		return codes.InvalidInput
	}

	return codes.Failure
}
