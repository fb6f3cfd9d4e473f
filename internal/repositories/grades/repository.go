package grades

import (
	"context"

	"github.com/dmarques2003/gradekeeper/internal/models"
)

type Repository interface {
	// Upsert records the grade: a new row when the (student, subject,
	// teacher) triple is unseen, an in-place score overwrite otherwise.
	// The write is a single conditional statement, so two concurrent
	// graders targeting the same triple cannot produce duplicate rows.
	Upsert(ctx context.Context, g *models.Grade) error
	// ClassView lists every student, left-joined against the given
	// teacher's grades in the given subject, ordered by student name.
	ClassView(ctx context.Context, teacherID, subject string) ([]*models.ClassEntry, error)
	// Transcript lists the student's grades with the recording teacher's
	// name, ordered by subject.
	Transcript(ctx context.Context, studentID string) ([]*models.TranscriptEntry, error)
}
