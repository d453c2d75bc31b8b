package repomanager

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/files"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/users"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/vaults"
)

// RepositoryManager vends repositories bound to a DBTX and owns the
// underlying connection.
//
// Repositories obtained with DB() operate outside of any transaction;
// inside WithTx they must be obtained with the tx handle passed to fn.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	DB() dbx.DBTX
	WithTx(ctx context.Context, fn dbx.TxFunc) error
	Users(db dbx.DBTX) users.Repository
	Vaults(db dbx.DBTX) vaults.Repository
	Files(db dbx.DBTX) files.Repository
	Close() error
}
