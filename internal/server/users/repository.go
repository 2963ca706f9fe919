package users

import (
	"context"
)

// Repository persists user credentials. Username uniqueness is the store's
// responsibility: Create must reject a duplicate atomically, not rely on a
// prior lookup.
type Repository interface {
	// Create persists the user and returns it with its assigned id.
	// A username already in use yields common.ErrorUserExists.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByUsername returns the user with the exact (case-sensitive)
	// username, or common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
