// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// PURPOSE: Configuration layering: defaults, files, environment overrides

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/pkg/errors"
)

// isolateXDG keeps tests from picking up a real user config
func isolateXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
}

func TestLoadDefaults(t *testing.T) {
	isolateXDG(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Paths.AddonDir)
	assert.NotEmpty(t, cfg.Paths.DownloadDir)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
}

func TestLoadTomlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
addon_dir = "/games/wow/Interface/AddOns"
state_dir = "/games/wow/WTF"

[logging]
verbosity = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/games/wow/Interface/AddOns", cfg.Paths.AddonDir)
	assert.Equal(t, "/games/wow/WTF", cfg.Paths.StateDir)
	assert.Equal(t, 2, cfg.Logging.Verbosity)
	// Unset keys keep their defaults
	assert.NotEmpty(t, cfg.Paths.DownloadDir)
}

func TestLoadYamlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
paths:
  addon_dir: /games/wow/Interface/AddOns
logging:
  verbosity: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/games/wow/Interface/AddOns", cfg.Paths.AddonDir)
	assert.Equal(t, 1, cfg.Logging.Verbosity)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("HEARTHKEEP_PATHS__ADDON_DIR", "/env/addons")
	t.Setenv("HEARTHKEEP_PATHS__STATE_DIR", "/env/wtf")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/env/addons", cfg.Paths.AddonDir)
	assert.Equal(t, "/env/wtf", cfg.Paths.StateDir)
}

func TestLoadEnvironmentBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[paths]\naddon_dir = \"/file/addons\"\n"), 0o644))

	t.Setenv("HEARTHKEEP_PATHS__ADDON_DIR", "/env/addons")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/addons", cfg.Paths.AddonDir)
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()

	badToml := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(badToml, []byte("not [valid toml"), 0o644))
	_, err := Load(badToml)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	unknown := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(unknown, []byte("{}"), 0o644))
	_, err = Load(unknown)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestGlobalAccess(t *testing.T) {
	t.Cleanup(func() { globalConfig = nil })

	globalConfig = nil
	cfg := Get()
	require.NotNil(t, cfg)

	custom := &Config{Paths: Paths{AddonDir: "/custom"}}
	Initialize(custom)
	assert.Equal(t, "/custom", Get().Paths.AddonDir)
}
