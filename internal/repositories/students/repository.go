package students

import (
	"context"

	"github.com/dmarques2003/gradekeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, st *models.Student) (*models.Student, error)
	GetByCredential(ctx context.Context, credentialID string) (*models.Student, error)
	// ListNewestFirst returns all students, most recently created first.
	ListNewestFirst(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id string) error
	// MaxCodeForPrefix returns the numerically greatest enrollment code with
	// the given prefix, or common.ErrNotFound when none exists. Used to seed
	// the per-year counter from legacy data.
	MaxCodeForPrefix(ctx context.Context, prefix string) (string, error)
}
