package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag names bound to their viper keys
var flagKeys = map[string]string{
	"root":            "root",
	"verbose":         "verbose",
	"non-interactive": "non_interactive",
	"accessible":      "accessible",
	"username":        "steam_username",
	"app-id":          "app_id",
	"description":     "description",
	"branch":          "branch",
	"windows-depot":   "depots.windows",
	"macos-depot":     "depots.macos",
	"linux-depot":     "depots.linux",
	"yes":             "override",
}

// Loader handles configuration loading from various sources
type Loader struct {
	// userConfigDir locates the per-user config directory
	userConfigDir func() (string, error)
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{userConfigDir: os.UserConfigDir}
}

// WithUserConfigDir makes the loader look for the global config file in dir
func (l *Loader) WithUserConfigDir(dir string) *Loader {
	l.userConfigDir = func() (string, error) { return dir, nil }
	return l
}

// LoadForSetup loads configuration for a setup run. Flags override the local
// .scb.* file, which overrides the global config file.
func (l *Loader) LoadForSetup(cmd *cobra.Command) (*Config, error) {
	l.setupViperDefaults()
	l.loadGlobalConfig()
	l.loadLocalConfig(rootFlag(cmd))
	l.bindCommandFlags(cmd)

	return Load()
}

// setupViperDefaults sets up default values for viper
func (l *Loader) setupViperDefaults() {
	viper.SetDefault("root", DefaultRoot)
	viper.SetDefault("config_dir", DefaultConfigDir)
	viper.SetDefault("sdk_dir", DefaultSDKDir)
	viper.SetDefault("staged_dir", DefaultStagedDir)
	viper.SetDefault("scripts_dir", DefaultScriptsDir)
	viper.SetDefault("archive_marker", DefaultArchiveMarker)
	viper.SetDefault("archive_ext", DefaultArchiveExt)
	viper.SetDefault("descriptor_ext", DefaultDescriptorExt)
	viper.SetDefault("default_branch", DefaultBranch)
	viper.SetDefault("verbose", DefaultVerbose)

	// Same switch other terminal forms honour
	_ = viper.BindEnv("accessible", "ACCESSIBLE")
}

// loadGlobalConfig loads global configuration from the user config directory
func (l *Loader) loadGlobalConfig() {
	dir, err := l.userConfigDir()
	if err != nil || dir == "" {
		return
	}

	globalPath := FindGlobalConfig(filepath.Join(dir, "scb"))
	if globalPath != "" {
		viper.SetConfigFile(globalPath)
		_ = viper.ReadInConfig()
	}
}

// loadLocalConfig merges the nearest .scb.* file found from the install root upwards
func (l *Loader) loadLocalConfig(root string) {
	if root == "" {
		root = DefaultRoot
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return // silently ignore, config.Load() will handle validation
	}

	localPath := FindLocalConfig(absRoot)
	if localPath != "" {
		viper.SetConfigFile(localPath)
		_ = viper.MergeInConfig()
	}
}

// bindCommandFlags binds command flags to viper
func (l *Loader) bindCommandFlags(cmd *cobra.Command) {
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
}

func rootFlag(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("root"); f != nil {
		return f.Value.String()
	}

	return ""
}
