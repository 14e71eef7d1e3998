package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the config dir at a scratch home directory.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, DefaultCommandTimeout, cfg.CommandTimeout)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestTimeoutFallback(t *testing.T) {
	assert.Equal(t, 30*time.Second, (&Config{}).Timeout())
	assert.Equal(t, 30*time.Second, (&Config{CommandTimeout: -5}).Timeout())
	assert.Equal(t, 90*time.Second, (&Config{CommandTimeout: 90}).Timeout())
}

func TestConfigExistsBeforeInit(t *testing.T) {
	isolateHome(t)

	exists, err := ConfigExists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSaveAndLoadConfig(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, CreateConfigDir())

	cfg := NewConfig()
	cfg.SitesRoot = filepath.Join(home, "sites")
	cfg.ThemesRoot = filepath.Join(home, "themes")
	cfg.HugoPath = "/usr/local/bin/hugo"
	require.NoError(t, SaveConfig(cfg))

	exists, err := ConfigExists()
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.SitesRoot, loaded.SitesRoot)
	assert.Equal(t, cfg.ThemesRoot, loaded.ThemesRoot)
	assert.Equal(t, cfg.HugoPath, loaded.HugoPath)
	assert.Equal(t, DefaultCommandTimeout, loaded.CommandTimeout)
}

func TestLoadConfigExpandsTilde(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, CreateConfigDir())

	cfg := NewConfig()
	cfg.SitesRoot = "~/sites"
	cfg.ThemesRoot = "~/themes"
	cfg.HugoPath = "~/bin/hugo"
	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sites"), loaded.SitesRoot)
	assert.Equal(t, filepath.Join(home, "themes"), loaded.ThemesRoot)
	assert.Equal(t, filepath.Join(home, "bin", "hugo"), loaded.HugoPath)
}

func TestLoadConfigNormalizesTimeout(t *testing.T) {
	isolateHome(t)
	require.NoError(t, CreateConfigDir())

	cfg := NewConfig()
	cfg.CommandTimeout = 0
	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultCommandTimeout, loaded.CommandTimeout)
}

func TestGetInventoryPath(t *testing.T) {
	home := isolateHome(t)

	path, err := GetInventoryPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, GetConfigDirName(), InventoryFileName), path)
}
