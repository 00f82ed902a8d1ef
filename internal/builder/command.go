// Package builder describes how the staged content builder is run to upload
// a build. scb never runs it, the command is shown to the user.
package builder

import (
	"path/filepath"
	"strings"

	"github.com/Norgate-AV/scb/internal/config"
	"github.com/Norgate-AV/scb/internal/vdf"
)

// UsernamePlaceholder stands in for an unconfigured Steam account
const UsernamePlaceholder = "<username>"

type ShellCommand struct {
	// Working directory the command has to be started from
	Dir  string
	Path string
	Args []string
}

// String renders the command line, quoting arguments that contain spaces
func (c *ShellCommand) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, p := range append([]string{c.Path}, c.Args...) {
		if strings.ContainsAny(p, " \t") {
			p = `"` + p + `"`
		}
		parts = append(parts, p)
	}

	return strings.Join(parts, " ")
}

// GetUploadCommand returns the steamcmd invocation that builds and uploads
// appID with the descriptors deployed to the staged scripts directory
func GetUploadCommand(cfg *config.Config, appID uint64, goos string) *ShellCommand {
	dir, exe := steamcmd(goos)
	builderDir := filepath.Join(cfg.StagedDir, dir)

	username := cfg.SteamUsername
	if username == "" {
		username = UsernamePlaceholder
	}

	// steamcmd resolves the script relative to its own directory
	script := "../" + cfg.ScriptsDir + "/" + vdf.AppFileName(appID)

	return &ShellCommand{
		Dir:  builderDir,
		Path: filepath.Join(builderDir, exe),
		Args: []string{"+login", username, "+run_app_build", script, "+quit"},
	}
}

// steamcmd returns the builder directory and executable for goos
func steamcmd(goos string) (string, string) {
	switch goos {
	case "windows":
		return "builder", "steamcmd.exe"
	case "darwin":
		return "builder_osx", "steamcmd.sh"
	}

	return "builder_linux", "steamcmd.sh"
}
