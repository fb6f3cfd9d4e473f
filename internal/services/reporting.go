package services

import (
	"context"
	"database/sql"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/models"
	"github.com/dmarques2003/gradekeeper/internal/repositories/repomanager"
)

// Roster is the secretariat's view: every student and teacher on record.
type Roster struct {
	Students []*models.Student
	Teachers []*models.Teacher
}

// Transcript is the student's view: their grades and the arithmetic mean of
// the scores. Average is nil when no grades exist yet.
type Transcript struct {
	Entries []*models.TranscriptEntry
	Average *float64
}

// ReportingService serves the three role-scoped read views. All methods are
// pure reads.
type ReportingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewReportingService constructs a ReportingService.
func NewReportingService(db *sql.DB, m repomanager.RepositoryManager) *ReportingService {
	return &ReportingService{db: db, repomanager: m}
}

// Roster returns all students and teachers, each most recently created
// first. Secretariat only.
func (s *ReportingService) Roster(ctx context.Context, sess models.Session) (*Roster, error) {
	if !sess.IsSecretariat() {
		return nil, common.ErrUnauthorized
	}

	students, err := s.repomanager.Students(s.db).ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.repomanager.Teachers(s.db).ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	return &Roster{Students: students, Teachers: teachers}, nil
}

// TeacherProfile returns the caller's own teacher row. Teacher only.
func (s *ReportingService) TeacherProfile(ctx context.Context, sess models.Session) (*models.Teacher, error) {
	if !sess.IsTeacher() {
		return nil, common.ErrUnauthorized
	}
	return s.repomanager.Teachers(s.db).GetByCredential(ctx, sess.CredentialID)
}

// ClassView returns every student with the caller's grade in the caller's
// subject, ordered by student name; Score is nil for students not graded
// yet. Teacher only. A session whose teacher row was deleted gets
// common.ErrNotFound.
func (s *ReportingService) ClassView(ctx context.Context, sess models.Session) ([]*models.ClassEntry, error) {
	if !sess.IsTeacher() {
		return nil, common.ErrUnauthorized
	}

	own, err := s.repomanager.Teachers(s.db).GetByCredential(ctx, sess.CredentialID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Grades(s.db).ClassView(ctx, own.ID, own.Subject)
}

// StudentTranscript returns the caller's grades ordered by subject plus the
// mean score. Student only. A session whose student row was deleted gets
// common.ErrNotFound.
func (s *ReportingService) StudentTranscript(ctx context.Context, sess models.Session) (*Transcript, error) {
	if !sess.IsStudent() {
		return nil, common.ErrUnauthorized
	}

	own, err := s.repomanager.Students(s.db).GetByCredential(ctx, sess.CredentialID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repomanager.Grades(s.db).Transcript(ctx, own.ID)
	if err != nil {
		return nil, err
	}

	t := &Transcript{Entries: entries}
	if len(entries) > 0 {
		var sum float64
		for _, e := range entries {
			sum += e.Score
		}
		avg := sum / float64(len(entries))
		t.Average = &avg
	}
	return t, nil
}
