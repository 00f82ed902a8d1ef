package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default configuration values
const (
	DefaultRoot          = "."
	DefaultConfigDir     = "config"
	DefaultSDKDir        = "steam-sdk"
	DefaultStagedDir     = "content-builder"
	DefaultScriptsDir    = "scripts"
	DefaultArchiveMarker = "ContentBuilder"
	DefaultArchiveExt    = ".zip"
	DefaultDescriptorExt = ".vdf"
	DefaultBranch        = "beta"
	DefaultVerbose       = false
)

// Holds the configuration options for scb
type Config struct {
	// Install root every other relative path is resolved against
	Root string

	// Directory the generated descriptors are written to
	ConfigDir string

	// Vendor drop location of the Steamworks SDK
	SDKDir string
	// Extracted content builder inside SDKDir
	StagedDir string
	// Name of the descriptor directory inside StagedDir
	ScriptsDir string

	// Path component that marks the content builder inside the SDK archive
	ArchiveMarker string
	ArchiveExt    string
	DescriptorExt string

	// Branch offered when the user gives none
	DefaultBranch string

	// Steam account shown in the upload hint
	SteamUsername string

	// Answers given up front through flags or config files
	Answers Answers

	// Never prompt, fail on missing or invalid answers instead
	NonInteractive bool

	// Ask plain line based questions instead of showing the terminal form
	Accessible bool

	// Enable verbose output
	Verbose bool
}

// Answers holds raw, unvalidated answers from flags and config files
type Answers struct {
	AppID       string
	Description string
	Branch      string
	Windows     string
	MacOS       string
	Linux       string

	// Replace an existing config directory without asking
	Override bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Root:           viper.GetString("root"),
		ConfigDir:      viper.GetString("config_dir"),
		SDKDir:         viper.GetString("sdk_dir"),
		StagedDir:      viper.GetString("staged_dir"),
		ScriptsDir:     viper.GetString("scripts_dir"),
		ArchiveMarker:  viper.GetString("archive_marker"),
		ArchiveExt:     viper.GetString("archive_ext"),
		DescriptorExt:  viper.GetString("descriptor_ext"),
		DefaultBranch:  viper.GetString("default_branch"),
		SteamUsername:  viper.GetString("steam_username"),
		NonInteractive: viper.GetBool("non_interactive"),
		Accessible:     viper.GetBool("accessible"),
		Verbose:        viper.GetBool("verbose"),
		Answers: Answers{
			AppID:       viper.GetString("app_id"),
			Description: viper.GetString("description"),
			Branch:      viper.GetString("branch"),
			Windows:     viper.GetString("depots.windows"),
			MacOS:       viper.GetString("depots.macos"),
			Linux:       viper.GetString("depots.linux"),
			Override:    viper.GetBool("override"),
		},
	}

	// Apply defaults if not set
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}

	if cfg.ConfigDir == "" {
		cfg.ConfigDir = DefaultConfigDir
	}

	if cfg.SDKDir == "" {
		cfg.SDKDir = DefaultSDKDir
	}

	if cfg.StagedDir == "" {
		cfg.StagedDir = DefaultStagedDir
	}

	if cfg.ScriptsDir == "" {
		cfg.ScriptsDir = DefaultScriptsDir
	}

	if cfg.ArchiveMarker == "" {
		cfg.ArchiveMarker = DefaultArchiveMarker
	}

	if cfg.ArchiveExt == "" {
		cfg.ArchiveExt = DefaultArchiveExt
	}

	if cfg.DescriptorExt == "" {
		cfg.DescriptorExt = DefaultDescriptorExt
	}

	if cfg.DefaultBranch == "" {
		cfg.DefaultBranch = DefaultBranch
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate resolves every directory to an absolute path. ConfigDir and SDKDir
// are relative to Root, StagedDir is relative to SDKDir.
func (c *Config) Validate() error {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("invalid root path: %v", err)
	}
	c.Root = root

	c.ConfigDir = resolve(c.Root, c.ConfigDir)
	c.SDKDir = resolve(c.Root, c.SDKDir)
	c.StagedDir = resolve(c.SDKDir, c.StagedDir)

	if c.ScriptsDir == "" || filepath.Base(c.ScriptsDir) != c.ScriptsDir {
		return fmt.Errorf("invalid scripts directory name: %q", c.ScriptsDir)
	}

	if c.ArchiveMarker == "" || strings.ContainsAny(c.ArchiveMarker, `/\`) {
		return fmt.Errorf("invalid archive marker: %q", c.ArchiveMarker)
	}

	for name, ext := range map[string]string{"archive": c.ArchiveExt, "descriptor": c.DescriptorExt} {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid %s extension: %q", name, ext)
		}
	}

	return nil
}

// ScriptsPath is the directory the content builder reads descriptors from
func (c *Config) ScriptsPath() string {
	return filepath.Join(c.StagedDir, c.ScriptsDir)
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(base, path)
}
