package config

import (
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "SESSION_KEY", "CSRF_KEY", "COOKIE_SECURE", "LOG_LEVEL", "LOGIN_BURST"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "8585", cfg.Port)
	assert.Equal(t, "./pcstoreDB.db", cfg.DBPath)
	assert.Len(t, cfg.SessionKey, 32)
	assert.Len(t, cfg.CSRFKey, 32)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 5, cfg.LoginBurst)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "PORT=9090\nDB_PATH=/tmp/x.db\nSESSION_KEY=" + key + "\nLOG_LEVEL=debug\nLOGIN_BURST=oops\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	for _, k := range []string{"PORT", "DB_PATH", "SESSION_KEY", "LOG_LEVEL", "LOGIN_BURST"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, []byte("0123456789abcdef0123456789abcdef"), cfg.SessionKey)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "http")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "8585", cfg.Port)
}
