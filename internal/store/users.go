package store

import (
	"context"

	"github.com/dmitrijs2005/megastore/internal/models"
)

// InsertUser stores a user profile, replacing any cached one for handle.
func (s *Store) InsertUser(ctx context.Context, handle uint64, firstName, lastName, email string) error {
	return s.users.CreateOrUpdate(ctx, &models.User{
		Handle:    handle,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	})
}

// UpdateUser writes the non-nil fields of patch. Unknown handles yield a
// wrapped common.ErrorNotFound, also for an empty patch.
func (s *Store) UpdateUser(ctx context.Context, handle uint64, patch models.UserPatch) error {
	if patch.IsEmpty() {
		_, err := s.users.GetByHandle(ctx, handle)
		return err
	}
	return s.users.Update(ctx, handle, patch)
}

// FetchUser returns the cached profile for handle, or nil.
func (s *Store) FetchUser(ctx context.Context, handle uint64) (*models.User, error) {
	return absent(s.users.GetByHandle(ctx, handle))
}
