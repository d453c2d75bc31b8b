package server

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(t *testing.T) *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = config.MemoryDSN
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.StorageBackend = config.StorageB2Local
	c.B2LocalPath = t.TempDir()
	c.LogLevel = "error"
	return c
}

func TestNewApp_MemoryStore(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig(t))
	require.NoError(t, err)
	assert.NotNil(t, app.server)
	assert.NotNil(t, app.repomanager)
}

func TestNewApp_S3Backend(t *testing.T) {
	c := memoryConfig(t)
	c.StorageBackend = config.StorageS3

	_, err := NewApp(context.Background(), c)
	require.NoError(t, err)
}

func TestNewApp_Errors(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		c := memoryConfig(t)
		c.StorageBackend = "ftp"
		_, err := NewApp(context.Background(), c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage init error")
	})

	t.Run("b2 without credentials", func(t *testing.T) {
		c := memoryConfig(t)
		c.StorageBackend = config.StorageB2
		_, err := NewApp(context.Background(), c)
		assert.Error(t, err)
	})

	t.Run("empty secret", func(t *testing.T) {
		c := memoryConfig(t)
		c.SecretKey = ""
		_, err := NewApp(context.Background(), c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token service")
	})

	t.Run("db open failure", func(t *testing.T) {
		orig := openDB
		t.Cleanup(func() { openDB = orig })
		openDB = func(string) (*sql.DB, error) { return nil, errors.New("no db") }

		c := memoryConfig(t)
		c.DatabaseDSN = "postgres://nowhere/db"
		c.SecretKey = "prod-secret"
		_, err := NewApp(context.Background(), c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db init error")
	})

	t.Run("default secret with postgres", func(t *testing.T) {
		orig := openDB
		t.Cleanup(func() { openDB = orig })
		opened := false
		openDB = func(string) (*sql.DB, error) { opened = true; return nil, errors.New("no db") }

		c := memoryConfig(t)
		c.DatabaseDSN = "postgres://nowhere/db"
		_, err := NewApp(context.Background(), c)
		require.ErrorIs(t, err, errDefaultSecretKey)
		assert.False(t, opened)
	})
}

func TestCheckSecretKey(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, "warn", "text")

	c := &config.Config{}
	c.LoadDefaults()
	require.True(t, c.UsesDefaultSecretKey())

	assert.ErrorIs(t, checkSecretKey(context.Background(), c, l), errDefaultSecretKey)
	assert.Empty(t, buf.String())

	c.DatabaseDSN = config.MemoryDSN
	require.NoError(t, checkSecretKey(context.Background(), c, l))
	assert.Contains(t, buf.String(), "development secret key")

	buf.Reset()
	c.SecretKey = "prod-secret"
	c.DatabaseDSN = "postgres://db/timevault"
	require.NoError(t, checkSecretKey(context.Background(), c, l))
	assert.Empty(t, buf.String())
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
