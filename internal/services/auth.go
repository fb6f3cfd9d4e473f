// Package services contains the business logic of Gradekeeper: credential
// verification, identifier generation, registration, the grade ledger and
// the role-scoped reporting views. Services receive the caller's Session
// explicitly; there is no ambient login state.
package services

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/logging"
	"github.com/dmarques2003/gradekeeper/internal/models"
	"github.com/dmarques2003/gradekeeper/internal/repositories/repomanager"
)

// dummyHash is a valid bcrypt hash compared against on the unknown-user path
// so that a missing username costs the same as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService verifies usernames and passwords against stored credentials.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *AuthService {
	return &AuthService{db: db, repomanager: m, log: log}
}

// Authenticate looks up the credential for username and compares the bcrypt
// hash. Unknown username and wrong password are indistinguishable to the
// caller: both return common.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Session, error) {
	repo := s.repomanager.Credentials(s.db)

	cred, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, common.ErrInvalidCredentials
		}
		s.log.Error(ctx, "credential lookup failed", "error", err)
		return nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return &models.Session{
		CredentialID: cred.ID,
		Role:         cred.Role,
		DisplayName:  cred.DisplayName,
	}, nil
}
