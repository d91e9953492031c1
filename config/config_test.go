package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menagerie/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Load with no config files should use defaults
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./static", cfg.Server.StaticDir)
	assert.Equal(t, "./animals.json", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.CORS.Enabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  static_dir: /srv/pages
store:
  path: /var/lib/menagerie/animals.json
cors:
  enabled: true
  allowed_origins:
    - https://example.com
log:
  level: debug
  format: json
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/pages", cfg.Server.StaticDir)
	assert.Equal(t, "/var/lib/menagerie/animals.json", cfg.Store.Path)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFileMerge(t *testing.T) {
	tmpDir := t.TempDir()

	basePath := filepath.Join(tmpDir, "base.yaml")
	baseContent := `
server:
  port: 9090
store:
  path: base.json
`
	require.NoError(t, os.WriteFile(basePath, []byte(baseContent), 0o644))

	overridePath := filepath.Join(tmpDir, "override.yaml")
	overrideContent := `
store:
  path: override.json
`
	require.NoError(t, os.WriteFile(overridePath, []byte(overrideContent), 0o644))

	cfg, err := config.Load([]string{basePath, overridePath}, nil)
	require.NoError(t, err)

	// Later files win per key; untouched keys fall through.
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "override.json", cfg.Store.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MENAGERIE_SERVER_PORT", "7070")
	t.Setenv("MENAGERIE_STORE_PATH", "env.json")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env.json", cfg.Store.Path)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
log:
  level: loud
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	_, err := config.Load([]string{configPath}, nil)
	assert.Error(t, err)
}
