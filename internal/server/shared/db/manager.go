// Package db wires repositories to a concrete storage backend.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/notevault/internal/server/notes"
	"github.com/dmitrijs2005/notevault/internal/server/users"
)

// RepositoryManager hands out the repositories backed by one store.
type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Notes() notes.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
