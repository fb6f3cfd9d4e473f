// Package grades provides the PostgreSQL-backed repository for recorded
// grades and the grade projections served to teachers and students.
package grades

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarques2003/gradekeeper/internal/dbx"
	"github.com/dmarques2003/gradekeeper/internal/models"
)

// PostgresRepository implements grade storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts the grade or, when a row for the same (student, subject,
// teacher) triple exists, overwrites its score in place. The existing row
// keeps its identity; only the score changes.
func (r *PostgresRepository) Upsert(ctx context.Context, g *models.Grade) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	query := `
		INSERT INTO grades (id, student_id, subject, score, teacher_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, subject, teacher_id)
		DO UPDATE SET
			score = EXCLUDED.score;
	`
	res, err := r.db.ExecContext(ctx, query,
		g.ID, g.StudentID, g.Subject, g.Score, g.TeacherID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// ClassView returns every student with the teacher's score in the given
// subject where one exists. Students without a grade come back with a nil
// Score rather than being filtered out.
func (r *PostgresRepository) ClassView(ctx context.Context, teacherID, subject string) ([]*models.ClassEntry, error) {
	query := `
		SELECT s.id, s.enrollment_code, s.name, s.class_section, g.score
		FROM students s
		LEFT JOIN grades g ON s.id = g.student_id
			AND g.subject = $1 AND g.teacher_id = $2
		ORDER BY s.name
	`
	rows, err := r.db.QueryContext(ctx, query, subject, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to select class view: %w", err)
	}
	defer rows.Close()

	var result []*models.ClassEntry
	for rows.Next() {
		var item models.ClassEntry
		if err := rows.Scan(
			&item.StudentID, &item.EnrollmentCode, &item.StudentName, &item.ClassSection, &item.Score,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Transcript returns the student's grades joined with the recording
// teacher's name, ordered by subject.
func (r *PostgresRepository) Transcript(ctx context.Context, studentID string) ([]*models.TranscriptEntry, error) {
	query := `
		SELECT g.subject, g.score, t.name
		FROM grades g
		JOIN teachers t ON g.teacher_id = t.id
		WHERE g.student_id = $1
		ORDER BY g.subject
	`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select transcript: %w", err)
	}
	defer rows.Close()

	var result []*models.TranscriptEntry
	for rows.Next() {
		var item models.TranscriptEntry
		if err := rows.Scan(&item.Subject, &item.Score, &item.TeacherName); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
