package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, 2025, cfg.Edition)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.False(t, cfg.Dev)
	require.Empty(t, cfg.TemplatesDir)
}

func TestLoadPortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("ICIBM_WEB_EDITION", "2026")
	t.Setenv("ICIBM_WEB_BASE_URL", "https://icibm.example.org/")
	t.Setenv("ICIBM_WEB_DEV", "true")
	t.Setenv("ICIBM_WEB_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, 2026, cfg.Edition)
	require.Equal(t, "https://icibm.example.org", cfg.BaseURL, "trailing slash is trimmed")
	require.True(t, cfg.Dev)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("ICIBM_WEB_EDITION", "2026")
	t.Setenv("ICIBM_WEB_ADDR", ":7000")

	cfg, err := Load([]string{"--edition", "2025", "--addr", "127.0.0.1:8081", "--log-level", "DEBUG"})
	require.NoError(t, err)
	require.Equal(t, 2025, cfg.Edition)
	require.Equal(t, "127.0.0.1:8081", cfg.Addr)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "web.yaml")
	require.NoError(t, os.WriteFile(path, []byte("edition: 2026\nlog_level: warn\n"), 0o600))

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)
	require.Equal(t, 2026, cfg.Edition)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.ErrorIs(t, err, ErrConfigFileRead)
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	_, err := Load([]string{"--base-url", "icibm.example.org"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be absolute")
}

func TestValidateRequiresPositiveTimeout(t *testing.T) {
	cfg := Config{Edition: 2025, ShutdownTimeout: 0}
	require.Error(t, cfg.Validate())
}
