package teachers

import (
	"context"

	"github.com/dmarques2003/gradekeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, tc *models.Teacher) (*models.Teacher, error)
	GetByID(ctx context.Context, id string) (*models.Teacher, error)
	GetByCredential(ctx context.Context, credentialID string) (*models.Teacher, error)
	// ListNewestFirst returns all teachers, most recently created first.
	ListNewestFirst(ctx context.Context) ([]*models.Teacher, error)
	Delete(ctx context.Context, id string) error
	// MaxCode returns the numerically greatest teacher code, or
	// common.ErrNotFound when no teachers exist. Used to seed the counter
	// from legacy data.
	MaxCode(ctx context.Context) (string, error)
}
