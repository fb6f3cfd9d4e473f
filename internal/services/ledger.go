package services

import (
	"context"
	"database/sql"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/logging"
	"github.com/dmarques2003/gradekeeper/internal/models"
	"github.com/dmarques2003/gradekeeper/internal/repositories/repomanager"
)

// LedgerService records grades. Writes are keyed on the
// (student, subject, teacher) triple and overwrite in place, so recording
// twice never duplicates a row.
type LedgerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *LedgerService {
	return &LedgerService{db: db, repomanager: m, log: log}
}

// RecordGrade stores score for the student in the caller's subject. Teacher
// only, and only under the caller's own teacher identity: teacherID must be
// the row linked to the session's credential. The score is validated before
// any storage access.
func (s *LedgerService) RecordGrade(ctx context.Context, sess models.Session, studentID, subject string, score float64, teacherID string) error {
	if !sess.IsTeacher() {
		return common.ErrUnauthorized
	}
	if !models.ValidScore(score) {
		return common.ErrInvalidScore
	}

	own, err := s.repomanager.Teachers(s.db).GetByCredential(ctx, sess.CredentialID)
	if err != nil {
		return err
	}
	if own.ID != teacherID {
		return common.ErrUnauthorized
	}

	err = s.repomanager.Grades(s.db).Upsert(ctx, &models.Grade{
		StudentID: studentID,
		Subject:   subject,
		Score:     score,
		TeacherID: teacherID,
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "grade recorded", "student", studentID, "subject", subject)
	return nil
}
