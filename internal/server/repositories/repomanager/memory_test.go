package repomanager

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryManager_SharedStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepositoryManager(clock.Fake(time.Now()))
	var _ RepositoryManager = m

	require.NoError(t, m.RunMigrations(ctx))
	assert.Nil(t, m.DB())

	_, err := m.Vaults(m.DB()).Create(ctx, &models.Vault{ID: "v1", OwnerID: "u1", Name: "n"})
	require.NoError(t, err)

	err = m.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := m.Files(tx).Append(ctx, "v1", []string{"a"})
		return err
	})
	require.NoError(t, err)

	n, err := m.Files(nil).Count(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, m.Close())
}

func TestMemoryRepositoryManager_WithTxDoesNotSerialize(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)

	release := make(chan struct{})
	entered := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- m.WithTx(context.Background(), func(ctx context.Context, _ dbx.DBTX) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	// a second transaction completes while the first one is still open
	var ran atomic.Bool
	finished := make(chan error, 1)
	go func() {
		finished <- m.WithTx(context.Background(), func(ctx context.Context, _ dbx.DBTX) error {
			ran.Store(true)
			return nil
		})
	}()

	select {
	case err := <-finished:
		require.NoError(t, err)
		assert.True(t, ran.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("second transaction waited for the first one")
	}

	close(release)
	require.NoError(t, <-done)
}

func TestMemoryRepositoryManager_WithTxErrors(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	boom := errors.New("boom")

	err := m.WithTx(context.Background(), func(context.Context, dbx.DBTX) error { return boom })
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err = m.WithTx(ctx, func(context.Context, dbx.DBTX) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
