package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/server/users"
)

// Service enforces the ownership and sharing rules on notes. Every operation
// takes the authenticated user id produced by the transport's guard; the
// service trusts it blindly and scopes all access by it.
type Service struct {
	repo  Repository
	users users.Repository
}

func NewService(repo Repository, usersRepo users.Repository) *Service {
	return &Service{repo: repo, users: usersRepo}
}

// Create stores a new private note owned by the caller.
func (s *Service) Create(ctx context.Context, ownerID, title, body string) (*Note, error) {
	note, err := s.repo.Create(ctx, &Note{Title: title, Body: body, OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return note, nil
}

// List returns the caller's own notes. Notes shared with the caller are not
// listed; sharing records visibility for the owner but grants the viewer
// nothing here.
func (s *Service) List(ctx context.Context, ownerID string) ([]*Note, error) {
	notes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

// Get returns the caller's note. A note owned by someone else answers
// common.ErrorNotFound, same as a nonexistent one.
func (s *Service) Get(ctx context.Context, ownerID, noteID string) (*Note, error) {
	return s.repo.GetByIDAndOwner(ctx, noteID, ownerID)
}

// Update overwrites the supplied fields of the caller's note. A nil field is
// left untouched.
func (s *Service) Update(ctx context.Context, ownerID, noteID string, title, body *string) (*Note, error) {
	return s.repo.Update(ctx, noteID, ownerID, title, body)
}

// Delete removes the caller's note.
func (s *Service) Delete(ctx context.Context, ownerID, noteID string) error {
	return s.repo.Delete(ctx, noteID, ownerID)
}

// Share appends the user named targetUsername to the note's share set.
// Unlike the owner-scoped operations, share distinguishes a missing note
// (common.ErrorNotFound) from a note owned by someone else
// (common.ErrorPermissionDenied); neither leaks credential information.
// A repeated share is an explicit common.ErrorAlreadyShared, not a no-op.
func (s *Service) Share(ctx context.Context, ownerID, noteID, targetUsername string) error {

	note, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}

	if note.OwnerID != ownerID {
		return common.ErrorPermissionDenied
	}

	target, err := s.users.GetByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUserNotFound
		}
		return err
	}

	return s.repo.AddShare(ctx, noteID, target.ID)
}
