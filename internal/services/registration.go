package services

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/dbx"
	"github.com/dmarques2003/gradekeeper/internal/logging"
	"github.com/dmarques2003/gradekeeper/internal/models"
	"github.com/dmarques2003/gradekeeper/internal/repositories/repomanager"
)

// NewStudent carries the secretariat's input for a student registration.
type NewStudent struct {
	Name         string
	ClassSection string
	Username     string
	Password     string
}

// NewTeacher carries the secretariat's input for a teacher registration.
type NewTeacher struct {
	Name     string
	Subject  string
	Username string
	Password string
}

// RegistrationService creates and removes students and teachers. Each
// registration is one transaction: allocate the code, insert the credential,
// insert the domain row. Any failure rolls the whole unit back, so no usable
// login without a domain row (and vice versa) ever survives.
type RegistrationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codes       *CodeService
	log         logging.Logger
	bcryptCost  int

	// now is a seam for tests that pin the enrollment-code year.
	now func() time.Time
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(db *sql.DB, m repomanager.RepositoryManager, codes *CodeService, log logging.Logger, bcryptCost int) *RegistrationService {
	return &RegistrationService{
		db:          db,
		repomanager: m,
		codes:       codes,
		log:         log,
		bcryptCost:  bcryptCost,
		now:         time.Now,
	}
}

// RegisterStudent registers a student and returns the assigned enrollment
// code. Secretariat only.
func (s *RegistrationService) RegisterStudent(ctx context.Context, sess models.Session, in NewStudent) (string, error) {
	if !sess.IsSecretariat() {
		return "", common.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return "", common.ErrInternal
	}

	var code string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		code, err = s.codes.NextEnrollmentCode(ctx, tx, s.now().Year())
		if err != nil {
			return err
		}

		cred, err := s.repomanager.Credentials(tx).Create(ctx, &models.Credential{
			Username:     in.Username,
			PasswordHash: hash,
			Role:         models.RoleStudent,
			DisplayName:  in.Name,
		})
		if err != nil {
			return err
		}

		_, err = s.repomanager.Students(tx).Create(ctx, &models.Student{
			EnrollmentCode: code,
			Name:           in.Name,
			ClassSection:   in.ClassSection,
			CredentialID:   cred.ID,
		})
		return err
	})
	if err != nil {
		return "", err
	}

	s.log.Info(ctx, "student registered", "code", code)
	return code, nil
}

// RegisterTeacher registers a teacher and returns the assigned teacher code.
// Secretariat only.
func (s *RegistrationService) RegisterTeacher(ctx context.Context, sess models.Session, in NewTeacher) (string, error) {
	if !sess.IsSecretariat() {
		return "", common.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return "", common.ErrInternal
	}

	var code string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		code, err = s.codes.NextTeacherCode(ctx, tx)
		if err != nil {
			return err
		}

		cred, err := s.repomanager.Credentials(tx).Create(ctx, &models.Credential{
			Username:     in.Username,
			PasswordHash: hash,
			Role:         models.RoleTeacher,
			DisplayName:  in.Name,
		})
		if err != nil {
			return err
		}

		_, err = s.repomanager.Teachers(tx).Create(ctx, &models.Teacher{
			TeacherCode:  code,
			Name:         in.Name,
			Subject:      in.Subject,
			CredentialID: cred.ID,
		})
		return err
	})
	if err != nil {
		return "", err
	}

	s.log.Info(ctx, "teacher registered", "code", code)
	return code, nil
}

// DeleteStudent removes the student's domain row. The linked credential is
// left behind and stops granting a working view. Secretariat only.
func (s *RegistrationService) DeleteStudent(ctx context.Context, sess models.Session, id string) error {
	if !sess.IsSecretariat() {
		return common.ErrUnauthorized
	}
	return s.repomanager.Students(s.db).Delete(ctx, id)
}

// DeleteTeacher removes the teacher's domain row. Secretariat only.
func (s *RegistrationService) DeleteTeacher(ctx context.Context, sess models.Session, id string) error {
	if !sess.IsSecretariat() {
		return common.ErrUnauthorized
	}
	return s.repomanager.Teachers(s.db).Delete(ctx, id)
}
