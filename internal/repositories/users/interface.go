package users

import (
	"context"

	"github.com/dmitrijs2005/megastore/internal/models"
)

// Repository describes persistence of cached user profiles.
type Repository interface {
	// CreateOrUpdate inserts a user or overwrites every field of the one
	// stored under the same handle.
	CreateOrUpdate(ctx context.Context, user *models.User) error

	// Update writes only the non-nil fields of patch. It returns a wrapped
	// common.ErrorNotFound when no user has the handle.
	Update(ctx context.Context, handle uint64, patch models.UserPatch) error

	// GetByHandle returns the user or a wrapped common.ErrorNotFound.
	GetByHandle(ctx context.Context, handle uint64) (*models.User, error)
}
