package notes

import (
	"context"
)

// Repository persists notes and their share sets.
//
// Owner-scoped reads return common.ErrorNotFound both for a missing note and
// for a note owned by someone else; callers cannot tell the two apart.
type Repository interface {
	// Create persists the note and returns it with its assigned id.
	Create(ctx context.Context, note *Note) (*Note, error)

	// ListByOwner returns all notes owned by ownerID, oldest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*Note, error)

	// GetByIDAndOwner returns the note only if ownerID owns it.
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*Note, error)

	// GetByID returns the note regardless of owner. Used by the share path,
	// which distinguishes "no such note" from "not yours".
	GetByID(ctx context.Context, id string) (*Note, error)

	// Update overwrites the non-nil fields of the note owned by ownerID and
	// returns the updated note. Nil fields keep their stored values.
	Update(ctx context.Context, id, ownerID string, title, body *string) (*Note, error)

	// Delete removes the note owned by ownerID.
	Delete(ctx context.Context, id, ownerID string) error

	// AddShare appends userID to the note's share set. A duplicate share
	// yields common.ErrorAlreadyShared; a vanished note yields
	// common.ErrorNotFound. The append must be atomic under concurrent
	// calls for the same (note, user) pair.
	AddShare(ctx context.Context, noteID, userID string) error
}
