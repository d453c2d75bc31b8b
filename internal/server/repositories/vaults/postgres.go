package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts vault and fills CreatedAt from the database.
func (r *PostgresRepository) Create(ctx context.Context, vault *models.Vault) (*models.Vault, error) {
	query :=
		`INSERT INTO vaults (id, owner_id, name, unlock_at, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		vault.ID, vault.OwnerID, vault.Name, vault.UnlockAt, vault.PasswordHash).Scan(&vault.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vault, nil
}

// GetByID loads a vault without its file references.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Vault, error) {
	query :=
		`SELECT id, owner_id, name, unlock_at, password_hash, created_at FROM vaults
		 WHERE id = $1
		 `
	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate loads a vault and takes a row lock on it. Only meaningful
// inside a transaction.
func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Vault, error) {
	query :=
		`SELECT id, owner_id, name, unlock_at, password_hash, created_at FROM vaults
		 WHERE id = $1
		 FOR UPDATE
		 `
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, id string) (*models.Vault, error) {
	v := &models.Vault{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&v.ID, &v.OwnerID, &v.Name, &v.UnlockAt, &v.PasswordHash, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

// FindByOwnerAndName returns all of ownerID's vaults called name.
func (r *PostgresRepository) FindByOwnerAndName(ctx context.Context, ownerID, name string) ([]*models.Vault, error) {
	query :=
		`SELECT id, owner_id, name, unlock_at, password_hash, created_at FROM vaults
		 WHERE owner_id = $1 AND name = $2
		 ORDER BY id
		 `
	rows, err := r.db.QueryContext(ctx, query, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to select vaults: %w", err)
	}
	defer rows.Close()

	var result []*models.Vault
	for rows.Next() {
		v := &models.Vault{}
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.UnlockAt, &v.PasswordHash, &v.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByOwner returns summaries of ownerID's vaults ordered by creation.
// Ids are ULIDs, so ordering by id is ordering by creation time.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.VaultSummary, error) {
	query :=
		`SELECT v.id, v.name, v.unlock_at, v.created_at, COUNT(f.ref)
		 FROM vaults v
		 LEFT JOIN vault_files f ON f.vault_id = v.id
		 WHERE v.owner_id = $1
		 GROUP BY v.id, v.name, v.unlock_at, v.created_at
		 ORDER BY v.id
		 `
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select vaults: %w", err)
	}
	defer rows.Close()

	result := make([]*models.VaultSummary, 0)
	for rows.Next() {
		s := &models.VaultSummary{}
		if err := rows.Scan(&s.ID, &s.Name, &s.UnlockAt, &s.CreatedAt, &s.FileCount); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the vault row; vault_files rows go with it (ON DELETE CASCADE).
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM vaults WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vault: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
