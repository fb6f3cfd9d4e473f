package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/models"
)

var secretariatSession = models.Session{CredentialID: "cred-sec", Role: models.RoleSecretariat}

func TestRegisterStudent_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		creds: &fakeCredentialsRepo{},
		studs: &fakeStudentsRepo{maxCodeErr: common.ErrNotFound},
		seqs:  &fakeSequencesRepo{},
	}
	svc := NewRegistrationService(db, rm, NewCodeService(rm), noopLogger{}, bcrypt.MinCost)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) }

	code, err := svc.RegisterStudent(context.Background(), secretariatSession, NewStudent{
		Name:         "Ana Souza",
		ClassSection: "3B",
		Username:     "ana",
		Password:     "pw123",
	})
	if err != nil {
		t.Fatalf("RegisterStudent error: %v", err)
	}
	if code != "2025001" {
		t.Fatalf("code = %q, want 2025001", code)
	}

	if len(rm.creds.created) != 1 {
		t.Fatalf("credentials created = %d, want 1", len(rm.creds.created))
	}
	cred := rm.creds.created[0]
	if cred.Role != models.RoleStudent {
		t.Errorf("credential role = %q", cred.Role)
	}
	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte("pw123")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	if len(rm.studs.created) != 1 {
		t.Fatalf("students created = %d, want 1", len(rm.studs.created))
	}
	st := rm.studs.created[0]
	if st.EnrollmentCode != "2025001" || st.CredentialID != cred.ID {
		t.Errorf("student = %+v", st)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("tx expectations: %v", err)
	}
}

func TestRegisterStudent_NotSecretariat(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{creds: &fakeCredentialsRepo{}}
	svc := NewRegistrationService(db, rm, NewCodeService(rm), noopLogger{}, bcrypt.MinCost)

	sess := models.Session{CredentialID: "cred-t", Role: models.RoleTeacher}
	_, err := svc.RegisterStudent(context.Background(), sess, NewStudent{Username: "x", Password: "y"})
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if len(rm.creds.created) != 0 {
		t.Fatal("credential created despite role gate")
	}
}

func TestRegisterStudent_DuplicateUsernameRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		creds: &fakeCredentialsRepo{createErr: common.ErrDuplicateUsername},
		studs: &fakeStudentsRepo{maxCodeErr: common.ErrNotFound},
		seqs:  &fakeSequencesRepo{},
	}
	svc := NewRegistrationService(db, rm, NewCodeService(rm), noopLogger{}, bcrypt.MinCost)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) }

	_, err := svc.RegisterStudent(context.Background(), secretariatSession, NewStudent{
		Name:     "Ana Souza",
		Username: "taken",
		Password: "pw",
	})
	if !errors.Is(err, common.ErrDuplicateUsername) {
		t.Fatalf("want ErrDuplicateUsername, got %v", err)
	}
	if len(rm.studs.created) != 0 {
		t.Fatal("student row created despite credential failure")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("tx expectations: %v", err)
	}
}

func TestRegisterTeacher_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		creds: &fakeCredentialsRepo{},
		teach: &fakeTeachersRepo{maxCodeErr: common.ErrNotFound},
		seqs:  &fakeSequencesRepo{},
	}
	svc := NewRegistrationService(db, rm, NewCodeService(rm), noopLogger{}, bcrypt.MinCost)

	code, err := svc.RegisterTeacher(context.Background(), secretariatSession, NewTeacher{
		Name:     "Carlos Lima",
		Subject:  "Matematica",
		Username: "carlos",
		Password: "pw123",
	})
	if err != nil {
		t.Fatalf("RegisterTeacher error: %v", err)
	}
	if code != "PROF001" {
		t.Fatalf("code = %q, want PROF001", code)
	}

	if len(rm.teach.created) != 1 {
		t.Fatalf("teachers created = %d, want 1", len(rm.teach.created))
	}
	tc := rm.teach.created[0]
	if tc.TeacherCode != "PROF001" || tc.Subject != "Matematica" {
		t.Errorf("teacher = %+v", tc)
	}
	if rm.creds.created[0].Role != models.RoleTeacher {
		t.Errorf("credential role = %q", rm.creds.created[0].Role)
	}
}

func TestRegisterTeacher_DomainRowFailureRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		creds: &fakeCredentialsRepo{},
		teach: &fakeTeachersRepo{maxCodeErr: common.ErrNotFound, createErr: common.ErrDuplicateIdentifier},
		seqs:  &fakeSequencesRepo{},
	}
	svc := NewRegistrationService(db, rm, NewCodeService(rm), noopLogger{}, bcrypt.MinCost)

	_, err := svc.RegisterTeacher(context.Background(), secretariatSession, NewTeacher{
		Name:     "Carlos Lima",
		Username: "carlos",
		Password: "pw",
	})
	if !errors.Is(err, common.ErrDuplicateIdentifier) {
		t.Fatalf("want ErrDuplicateIdentifier, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("tx expectations: %v", err)
	}
}

func TestDeleteStudent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{studs: &fakeStudentsRepo{}}
	svc := NewRegistrationService(db, rm, NewCodeService(rm), noopLogger{}, bcrypt.MinCost)

	if err := svc.DeleteStudent(context.Background(), secretariatSession, "stud-9"); err != nil {
		t.Fatalf("DeleteStudent error: %v", err)
	}
	if len(rm.studs.deleted) != 1 || rm.studs.deleted[0] != "stud-9" {
		t.Fatalf("deleted = %v", rm.studs.deleted)
	}

	sess := models.Session{Role: models.RoleStudent}
	if err := svc.DeleteStudent(context.Background(), sess, "stud-9"); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestDeleteTeacher_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{teach: &fakeTeachersRepo{delErr: common.ErrNotFound}}
	svc := NewRegistrationService(db, rm, NewCodeService(rm), noopLogger{}, bcrypt.MinCost)

	if err := svc.DeleteTeacher(context.Background(), secretariatSession, "missing"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
