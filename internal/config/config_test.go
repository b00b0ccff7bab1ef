package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "recipeAppShoppingListData", cfg.Store.Key)
	assert.Equal(t, 5<<20, cfg.Store.MaxBytes)
	assert.Equal(t, 60*time.Second, cfg.Service.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.Equal(t, ".basket", filepath.Base(cfg.Store.Path))
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "basket.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
store:
  backend: sqlite
  path: /tmp/basket-data
service:
  base_url: https://recipes.example.com
  timeout: 5s
ui:
  theme: neon
`), 0o644))
	t.Setenv("BASKET_UI_THEME", "mono")
	t.Setenv("BASKET_STORE_MAX_BYTES", "1024")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/tmp/basket-data", cfg.Store.Path)
	assert.Equal(t, "https://recipes.example.com", cfg.Service.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Service.Timeout)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, 1024, cfg.Store.MaxBytes)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BASKET_STORE_BACKEND", "redis")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.backend")
}

func TestValidate(t *testing.T) {
	good := Config{
		Store:   StoreConfig{Backend: "file", Path: "x", Key: "k", MaxBytes: 1},
		Service: ServiceConfig{Timeout: time.Second},
		Log:     LogConfig{Format: "json"},
	}
	require.NoError(t, good.Validate())

	bad := good
	bad.Store.MaxBytes = 0
	assert.Error(t, bad.Validate())

	bad = good
	bad.Log.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = good
	bad.Store.Key = " "
	assert.Error(t, bad.Validate())
}

// chdir stands in for testing.T.Chdir (Go 1.24+): it changes the working
// directory for the duration of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
