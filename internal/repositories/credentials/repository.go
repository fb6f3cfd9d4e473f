package credentials

import (
	"context"

	"github.com/dmarques2003/gradekeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, cred *models.Credential) (*models.Credential, error)
	GetByUsername(ctx context.Context, username string) (*models.Credential, error)
	// EnsureSeed inserts cred unless a credential with the same username
	// already exists. Safe to call on every startup.
	EnsureSeed(ctx context.Context, cred *models.Credential) error
}
