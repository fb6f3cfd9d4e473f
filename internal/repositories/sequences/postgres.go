// Package sequences provides the PostgreSQL-backed repository for the
// per-prefix code counters behind enrollment and teacher codes.
package sequences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/dbx"
)

// PostgresRepository implements counter storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Current returns the counter for prefix. FOR UPDATE makes concurrent
// registrations for the same prefix queue behind each other until the
// surrounding transaction ends.
func (r *PostgresRepository) Current(ctx context.Context, prefix string) (int64, error) {
	query :=
		`SELECT value FROM code_sequences
		 WHERE prefix = $1
		 FOR UPDATE
		 `

	var value int64
	err := r.db.QueryRowContext(ctx, query, prefix).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return value, nil
}

// Set writes the counter for prefix, creating the row on first use.
func (r *PostgresRepository) Set(ctx context.Context, prefix string, value int64) error {
	query :=
		`INSERT INTO code_sequences (prefix, value)
		 VALUES ($1, $2)
		 ON CONFLICT (prefix) DO UPDATE SET value = EXCLUDED.value
		 `

	if _, err := r.db.ExecContext(ctx, query, prefix, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
