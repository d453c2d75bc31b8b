package files

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/timevault/internal/dbx"
)

// PostgresRepository implements file reference storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append inserts one vault_files row per ref. Rows are only ever inserted,
// so concurrent appends cannot overwrite each other; position comes from a
// sequence and keeps append order. Callers run this inside a transaction
// holding the vault row lock so that a batch lands as a unit.
func (r *PostgresRepository) Append(ctx context.Context, vaultID string, refs []string) (int, error) {
	query := `INSERT INTO vault_files (vault_id, ref) VALUES ($1, $2)`
	for _, ref := range refs {
		if _, err := r.db.ExecContext(ctx, query, vaultID, ref); err != nil {
			return 0, fmt.Errorf("db error: %w", err)
		}
	}
	return r.Count(ctx, vaultID)
}

// List returns refs ordered by position.
func (r *PostgresRepository) List(ctx context.Context, vaultID string) ([]string, error) {
	query := ` SELECT ref FROM vault_files
		WHERE vault_id=$1
		ORDER BY position
		`
	rows, err := r.db.QueryContext(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		result = append(result, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context, vaultID string) (int, error) {
	query := `SELECT COUNT(*) FROM vault_files WHERE vault_id=$1`

	var n int
	if err := r.db.QueryRowContext(ctx, query, vaultID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return n, nil
}

// DeleteByVault removes all of vaultID's references. Deleting the vault row
// cascades as well; this is used when refs must go first.
func (r *PostgresRepository) DeleteByVault(ctx context.Context, vaultID string) error {
	query := `DELETE FROM vault_files WHERE vault_id=$1`
	if _, err := r.db.ExecContext(ctx, query, vaultID); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}
