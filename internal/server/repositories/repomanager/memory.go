package repomanager

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/files"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/memory"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/users"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/vaults"
)

// MemoryRepositoryManager serves every repository from one memory.Store.
// The DBTX arguments are ignored. Each repository call is atomic on its
// own; callers serialize work on one vault with their own per-vault lock.
type MemoryRepositoryManager struct {
	store *memory.Store
}

// NewMemoryRepositoryManager returns a manager over a fresh, empty store.
func NewMemoryRepositoryManager(clk clock.Clock) *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore(clk)}
}

// RunMigrations is a no-op.
func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

// DB returns nil; memory repositories need no handle.
func (m *MemoryRepositoryManager) DB() dbx.DBTX { return nil }

// WithTx runs fn without a manager-wide lock, so a slow fn never holds up
// work on other vaults. Writes made before fn fails are not undone; callers
// validate before they write.
func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn dbx.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, nil)
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return memory.NewUserRepository(m.store)
}

func (m *MemoryRepositoryManager) Vaults(dbx.DBTX) vaults.Repository {
	return memory.NewVaultRepository(m.store)
}

func (m *MemoryRepositoryManager) Files(dbx.DBTX) files.Repository {
	return memory.NewFileRepository(m.store)
}

func (m *MemoryRepositoryManager) Close() error { return nil }
