// Package credentials provides the PostgreSQL-backed repository for login
// credentials.
package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/dbx"
	"github.com/dmarques2003/gradekeeper/internal/models"
)

const uniqueViolation = "23505"

// PostgresRepository implements credential storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a credential and returns it with ID and CreatedAt set.
// A username collision yields common.ErrDuplicateUsername.
func (r *PostgresRepository) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	if cred.ID == "" {
		cred.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO credentials (id, username, password_hash, role, display_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		cred.ID, cred.Username, cred.PasswordHash, cred.Role, cred.DisplayName).Scan(&cred.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

// GetByUsername returns the credential for username or common.ErrNotFound.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	query :=
		`SELECT id, username, password_hash, role, display_name, created_at FROM credentials
		 WHERE username = $1
		 `

	cred := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&cred.ID, &cred.Username, &cred.PasswordHash, &cred.Role, &cred.DisplayName, &cred.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

// EnsureSeed inserts cred if its username is free and does nothing otherwise,
// so repeated startups neither fail nor duplicate the seed row.
func (r *PostgresRepository) EnsureSeed(ctx context.Context, cred *models.Credential) error {
	if cred.ID == "" {
		cred.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO credentials (id, username, password_hash, role, display_name)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (username) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query,
		cred.ID, cred.Username, cred.PasswordHash, cred.Role, cred.DisplayName); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
