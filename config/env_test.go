package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	const key = "MARKET_DASHBOARD_TEST_ENV_KEY"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	cfg := GetDefaultCoingeckoConfig()
	cfg.APIKeyEnv = key
	cfg.ResolveAPIKey()
	assert.Equal(t, "from-file", cfg.APIKey)
}

func TestLoadEnvFile_ProcessEnvironmentWins(t *testing.T) {
	const key = "MARKET_DASHBOARD_TEST_ENV_OVERRIDE"
	t.Setenv(key, "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv(key))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadEnvFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOT A VALID LINE WITHOUT EQUALS 'unterminated\n"), 0600))

	assert.Error(t, LoadEnvFile(path))
}
