package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/dbx"
	"github.com/dmarques2003/gradekeeper/internal/logging"
	"github.com/dmarques2003/gradekeeper/internal/models"
	credentialsrepo "github.com/dmarques2003/gradekeeper/internal/repositories/credentials"
	gradesrepo "github.com/dmarques2003/gradekeeper/internal/repositories/grades"
	sequencesrepo "github.com/dmarques2003/gradekeeper/internal/repositories/sequences"
	studentsrepo "github.com/dmarques2003/gradekeeper/internal/repositories/students"
	teachersrepo "github.com/dmarques2003/gradekeeper/internal/repositories/teachers"
)

// --- shared test doubles ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type noopLogger struct{}

func (noopLogger) Debug(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, string, ...any) {}

func (l noopLogger) With(...any) logging.Logger { return l }

type fakeCredentialsRepo struct {
	created   []*models.Credential
	createErr error

	getOut *models.Credential
	getErr error
}

func (f *fakeCredentialsRepo) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *cred
	if out.ID == "" {
		out.ID = "cred-1"
	}
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeCredentialsRepo) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeCredentialsRepo) EnsureSeed(ctx context.Context, cred *models.Credential) error {
	return nil
}

type fakeStudentsRepo struct {
	created   []*models.Student
	createErr error

	getOut *models.Student
	getErr error

	listOut []*models.Student
	listErr error

	deleted []string
	delErr  error

	maxCode    string
	maxCodeErr error
}

func (f *fakeStudentsRepo) Create(ctx context.Context, st *models.Student) (*models.Student, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *st
	if out.ID == "" {
		out.ID = "stud-1"
	}
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeStudentsRepo) GetByCredential(ctx context.Context, credentialID string) (*models.Student, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeStudentsRepo) ListNewestFirst(ctx context.Context) ([]*models.Student, error) {
	return f.listOut, f.listErr
}

func (f *fakeStudentsRepo) Delete(ctx context.Context, id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStudentsRepo) MaxCodeForPrefix(ctx context.Context, prefix string) (string, error) {
	return f.maxCode, f.maxCodeErr
}

type fakeTeachersRepo struct {
	created   []*models.Teacher
	createErr error

	byID    *models.Teacher
	byIDErr error

	byCred    *models.Teacher
	byCredErr error

	listOut []*models.Teacher
	listErr error

	deleted []string
	delErr  error

	maxCode    string
	maxCodeErr error
}

func (f *fakeTeachersRepo) Create(ctx context.Context, tc *models.Teacher) (*models.Teacher, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *tc
	if out.ID == "" {
		out.ID = "teach-1"
	}
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeTeachersRepo) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeTeachersRepo) GetByCredential(ctx context.Context, credentialID string) (*models.Teacher, error) {
	if f.byCredErr != nil {
		return nil, f.byCredErr
	}
	return f.byCred, nil
}

func (f *fakeTeachersRepo) ListNewestFirst(ctx context.Context) ([]*models.Teacher, error) {
	return f.listOut, f.listErr
}

func (f *fakeTeachersRepo) Delete(ctx context.Context, id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeTeachersRepo) MaxCode(ctx context.Context) (string, error) {
	return f.maxCode, f.maxCodeErr
}

type fakeGradesRepo struct {
	upserts   []*models.Grade
	upsertErr error

	classOut []*models.ClassEntry
	classErr error

	transcriptOut []*models.TranscriptEntry
	transcriptErr error
}

func (f *fakeGradesRepo) Upsert(ctx context.Context, g *models.Grade) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, g)
	return nil
}

func (f *fakeGradesRepo) ClassView(ctx context.Context, teacherID, subject string) ([]*models.ClassEntry, error) {
	return f.classOut, f.classErr
}

func (f *fakeGradesRepo) Transcript(ctx context.Context, studentID string) ([]*models.TranscriptEntry, error) {
	return f.transcriptOut, f.transcriptErr
}

// fakeSequencesRepo behaves like the real counter table: Current reports
// common.ErrNotFound for an unseen prefix, Set creates or overwrites.
type fakeSequencesRepo struct {
	values map[string]int64

	currentErr error
	setErr     error
}

func (f *fakeSequencesRepo) Current(ctx context.Context, prefix string) (int64, error) {
	if f.currentErr != nil {
		return 0, f.currentErr
	}
	v, ok := f.values[prefix]
	if !ok {
		return 0, common.ErrNotFound
	}
	return v, nil
}

func (f *fakeSequencesRepo) Set(ctx context.Context, prefix string, value int64) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.values == nil {
		f.values = map[string]int64{}
	}
	f.values[prefix] = value
	return nil
}

type fakeRepoManager struct {
	creds *fakeCredentialsRepo
	studs *fakeStudentsRepo
	teach *fakeTeachersRepo
	grads *fakeGradesRepo
	seqs  *fakeSequencesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Credentials(db dbx.DBTX) credentialsrepo.Repository {
	return m.creds
}
func (m *fakeRepoManager) Students(db dbx.DBTX) studentsrepo.Repository { return m.studs }
func (m *fakeRepoManager) Teachers(db dbx.DBTX) teachersrepo.Repository { return m.teach }

func (m *fakeRepoManager) Grades(db dbx.DBTX) gradesrepo.Repository { return m.grads }

func (m *fakeRepoManager) Sequences(db dbx.DBTX) sequencesrepo.Repository { return m.seqs }
