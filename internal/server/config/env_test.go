package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Chdir(t.TempDir())

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Setenv("TIMEVAULT_DATABASE_DSN", "memory")
		t.Setenv("TIMEVAULT_SHARE_TOKEN_VALIDITY", "1h30m")
		t.Setenv("TIMEVAULT_BCRYPT_COST", "12")
		t.Setenv("TIMEVAULT_B2_KEY", "k")

		cfg := &Config{}
		parseEnv(cfg)

		assert.Equal(t, "memory", cfg.DatabaseDSN)
		assert.Equal(t, 90*time.Minute, cfg.ShareTokenValidity)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Equal(t, "k", cfg.B2Key)
	})

	t.Run("empty values keep defaults", func(t *testing.T) {
		t.Setenv("TIMEVAULT_SECRET_KEY", "")

		cfg := &Config{SecretKey: "keep"}
		parseEnv(cfg)

		assert.Equal(t, "keep", cfg.SecretKey)
	})

	t.Run("malformed duration panics", func(t *testing.T) {
		t.Setenv("TIMEVAULT_STORAGE_TIMEOUT", "later")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("malformed int panics", func(t *testing.T) {
		t.Setenv("TIMEVAULT_BCRYPT_COST", "high")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}

func Test_parseEnv_EnvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TIMEVAULT_LOG_FORMAT=text\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TIMEVAULT_LOG_FORMAT") })

	os.Args = []string{"testbin", "-env-file", path}

	cfg := &Config{LogFormat: "json"}
	parseEnv(cfg)
	assert.Equal(t, "text", cfg.LogFormat)

	os.Args = []string{"testbin", "-env-file", filepath.Join(dir, "missing.env")}
	require.Panics(t, func() { parseEnv(&Config{}) })
}
