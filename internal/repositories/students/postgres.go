// Package students provides the PostgreSQL-backed repository for student
// records.
package students

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

// PostgresRepository implements student storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a student row. An enrollment-code collision yields
// common.ErrDuplicateIdentifier.
func (r *PostgresRepository) Create(ctx context.Context, st *models.Student) (*models.Student, error) {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO students (id, enrollment_code, name, class_section, credential_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		st.ID, st.EnrollmentCode, st.Name, st.ClassSection, st.CredentialID).Scan(&st.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateIdentifier
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return st, nil
}

// GetByCredential returns the student linked to credentialID or
// common.ErrNotFound.
func (r *PostgresRepository) GetByCredential(ctx context.Context, credentialID string) (*models.Student, error) {
	query :=
		`SELECT id, enrollment_code, name, class_section, credential_id, created_at FROM students
		 WHERE credential_id = $1
		 `

	st := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, credentialID).Scan(
		&st.ID, &st.EnrollmentCode, &st.Name, &st.ClassSection, &st.CredentialID, &st.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return st, nil
}

// ListNewestFirst returns all students, most recently created first.
func (r *PostgresRepository) ListNewestFirst(ctx context.Context) ([]*models.Student, error) {
	query :=
		`SELECT id, enrollment_code, name, class_section, credential_id, created_at FROM students
		 ORDER BY created_at DESC, enrollment_code DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select students: %w", err)
	}
	defer rows.Close()

	var result []*models.Student
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(
			&st.ID, &st.EnrollmentCode, &st.Name, &st.ClassSection, &st.CredentialID, &st.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the student row only; the linked credential stays behind
// and simply stops resolving to a student.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
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

// MaxCodeForPrefix returns the numerically greatest enrollment code starting
// with prefix. Ordering by length before value keeps codes comparable after
// the sequence widens past three digits.
func (r *PostgresRepository) MaxCodeForPrefix(ctx context.Context, prefix string) (string, error) {
	query :=
		`SELECT enrollment_code FROM students
		 WHERE enrollment_code LIKE $1 || '%'
		 ORDER BY length(enrollment_code) DESC, enrollment_code DESC
		 LIMIT 1
		 `

	var code string
	err := r.db.QueryRowContext(ctx, query, prefix).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return code, nil
}
