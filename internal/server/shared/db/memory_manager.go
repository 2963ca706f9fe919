package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/notevault/internal/server/notes"
	"github.com/dmitrijs2005/notevault/internal/server/users"
)

// MemoryRepositoryManager backs the repositories with in-process maps.
// Useful for tests and local runs without a database; nothing survives a
// restart.
type MemoryRepositoryManager struct {
	users users.Repository
	notes notes.Repository
}

func (m *MemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Notes() notes.Repository {
	return m.notes
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}

func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		notes: notes.NewMemoryRepository(),
	}
}
