// Package config loads hearthkeep's configuration.
//
// Configuration merges three layers, later layers winning: built-in
// defaults, an optional config.toml or config.yaml under the XDG config
// directory, and HEARTHKEEP_* environment variables.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/hearthkeep/hearthkeep/pkg/constants"
)

// Paths holds the directories hearthkeep operates on
type Paths struct {
	// AddonDir is the installation root, e.g. <game>/Interface/AddOns
	AddonDir string `koanf:"addon_dir"`

	// DownloadDir holds downloaded addon archives awaiting install
	DownloadDir string `koanf:"download_dir"`

	// StateDir is the root of per-addon saved state (the WTF directory)
	StateDir string `koanf:"state_dir"`
}

// Logging holds logging configuration
type Logging struct {
	// Verbosity maps to log levels: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int `koanf:"verbosity"`
}

// Config is the complete hearthkeep configuration
type Config struct {
	Paths   Paths   `koanf:"paths"`
	Logging Logging `koanf:"logging"`
}

// Default returns the built-in configuration. The addon and state dirs have
// no sensible default; they must come from the config file or environment.
func Default() *Config {
	return &Config{
		Paths: Paths{
			DownloadDir: filepath.Join(xdg.CacheHome, constants.AppName, "downloads"),
		},
	}
}

// RegistryPath returns the location of the persisted addon registry
func RegistryPath() string {
	return filepath.Join(xdg.DataHome, constants.AppName, "addons.toml")
}

// Global configuration instance
var globalConfig *Config

// Initialize sets up the global configuration
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	globalConfig = cfg
}

// Get returns the current configuration
func Get() *Config {
	if globalConfig == nil {
		Initialize(nil)
	}
	return globalConfig
}
