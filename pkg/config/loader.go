package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hearthkeep/hearthkeep/pkg/constants"
	"github.com/hearthkeep/hearthkeep/pkg/errors"
)

// envPrefix for configuration overrides, e.g. HEARTHKEEP_PATHS__ADDON_DIR.
// A double underscore separates nesting levels so that keys may themselves
// contain underscores.
const envPrefix = "HEARTHKEEP_"

// Load builds the configuration from defaults, an optional config file and
// the environment. configPath may be empty, in which case the XDG config
// directory is searched for config.toml and config.yaml.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"paths.addon_dir":    defaults.Paths.AddonDir,
		"paths.download_dir": defaults.Paths.DownloadDir,
		"paths.state_dir":    defaults.Paths.StateDir,
		"logging.verbosity":  defaults.Logging.Verbosity,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading defaults")
	}

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		parser, err := parserFor(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configPath), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "loading config from %s", configPath)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling configuration")
	}

	return &cfg, nil
}

// findConfigFile returns the first existing config file under the XDG
// config directory, or empty when none exists.
func findConfigFile() string {
	dir := filepath.Join(xdg.ConfigHome, constants.AppName)
	for _, name := range []string{"config.toml", "config.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// parserFor picks a koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path))
	}
}
