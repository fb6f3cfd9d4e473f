// Package teachers provides the PostgreSQL-backed repository for teacher
// records.
package teachers

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

// PostgresRepository implements teacher storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a teacher row. A teacher-code collision yields
// common.ErrDuplicateIdentifier.
func (r *PostgresRepository) Create(ctx context.Context, tc *models.Teacher) (*models.Teacher, error) {
	if tc.ID == "" {
		tc.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO teachers (id, teacher_code, name, subject, credential_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		tc.ID, tc.TeacherCode, tc.Name, tc.Subject, tc.CredentialID).Scan(&tc.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateIdentifier
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tc, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*models.Teacher, error) {
	query :=
		`SELECT id, teacher_code, name, subject, credential_id, created_at FROM teachers
		 WHERE ` + where

	tc := &models.Teacher{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&tc.ID, &tc.TeacherCode, &tc.Name, &tc.Subject, &tc.CredentialID, &tc.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tc, nil
}

// GetByID returns the teacher with the given id or common.ErrNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	return r.getOne(ctx, `id = $1`, id)
}

// GetByCredential returns the teacher linked to credentialID or
// common.ErrNotFound.
func (r *PostgresRepository) GetByCredential(ctx context.Context, credentialID string) (*models.Teacher, error) {
	return r.getOne(ctx, `credential_id = $1`, credentialID)
}

// ListNewestFirst returns all teachers, most recently created first.
func (r *PostgresRepository) ListNewestFirst(ctx context.Context) ([]*models.Teacher, error) {
	query :=
		`SELECT id, teacher_code, name, subject, credential_id, created_at FROM teachers
		 ORDER BY created_at DESC, teacher_code DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select teachers: %w", err)
	}
	defer rows.Close()

	var result []*models.Teacher
	for rows.Next() {
		var tc models.Teacher
		if err := rows.Scan(
			&tc.ID, &tc.TeacherCode, &tc.Name, &tc.Subject, &tc.CredentialID, &tc.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the teacher row only; the linked credential stays behind.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// MaxCode returns the numerically greatest teacher code. Ordering by length
// before value keeps codes comparable after the sequence widens past three
// digits.
func (r *PostgresRepository) MaxCode(ctx context.Context) (string, error) {
	query :=
		`SELECT teacher_code FROM teachers
		 ORDER BY length(teacher_code) DESC, teacher_code DESC
		 LIMIT 1
		 `

	var code string
	err := r.db.QueryRowContext(ctx, query).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return code, nil
}
