package notes

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notevault/internal/common"
)

// MemoryRepository is a mutex-guarded map store used by tests and the
// "memory" backend. The single mutex makes every operation atomic, matching
// the guarantees the Postgres implementation gets from its constraints.
type MemoryRepository struct {
	mu    sync.Mutex
	byID  map[string]*Note
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*Note)}
}

func clone(note *Note) *Note {
	result := *note
	result.SharedWith = slices.Clone(note.SharedWith)
	return &result
}

func (r *MemoryRepository) Create(ctx context.Context, note *Note) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clone(note)
	stored.ID = uuid.NewString()
	stored.SharedWith = []string{}
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return clone(stored), nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := []*Note{}
	for _, id := range r.order {
		note, ok := r.byID[id]
		if !ok || note.OwnerID != ownerID {
			continue
		}
		notes = append(notes, clone(note))
	}

	return notes, nil
}

func (r *MemoryRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.byID[id]
	if !ok || note.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}

	return clone(note), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return clone(note), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id, ownerID string, title, body *string) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.byID[id]
	if !ok || note.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}

	if title != nil {
		note.Title = *title
	}
	if body != nil {
		note.Body = *body
	}

	return clone(note), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.byID[id]
	if !ok || note.OwnerID != ownerID {
		return common.ErrorNotFound
	}

	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) AddShare(ctx context.Context, noteID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.byID[noteID]
	if !ok {
		return common.ErrorNotFound
	}

	if slices.Contains(note.SharedWith, userID) {
		return common.ErrorAlreadyShared
	}

	note.SharedWith = append(note.SharedWith, userID)
	return nil
}
