package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notevault/internal/common"
)

// MemoryRepository is a mutex-guarded map store used by tests and the
// "memory" backend. The mutex gives Create the same atomicity as the
// database UNIQUE constraint.
type MemoryRepository struct {
	mu         sync.Mutex
	byUsername map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUsername: make(map[string]*User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return nil, common.ErrorUserExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byUsername[stored.Username] = &stored

	result := stored
	return &result, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	result := *user
	return &result, nil
}
