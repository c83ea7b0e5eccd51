// Package repomanager wires a storage backend to the repositories the
// services use. The backend is chosen from the DSN scheme.
package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userregistry/internal/server/repositories/users"
)

// UnitOfWork runs against a repository bound to the current transaction.
type UnitOfWork func(ctx context.Context, repo users.Repository) error

type RepositoryManager interface {
	// Users returns a repository bound to the shared connection.
	Users() users.Repository
	// WithinTx runs fn with a repository whose reads and writes are grouped
	// as tightly as the backend allows.
	WithinTx(ctx context.Context, fn UnitOfWork) error
	// RunMigrations creates tables and unique indexes.
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New opens the backend named by dsn's scheme:
//
//	postgres://, postgresql://     PostgreSQL via pgx
//	sqlite://<path>, file:<path>   SQLite via modernc.org/sqlite
//	mongodb://, mongodb+srv://     MongoDB
//	memory://                      process memory, lost on exit
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		m, err := NewPostgresRepositoryManager(dsn)
		if err != nil {
			return nil, err
		}
		return m, nil
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		m, err := NewSQLiteRepositoryManager(strings.TrimPrefix(dsn, "sqlite://"))
		if err != nil {
			return nil, err
		}
		return m, nil
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		m, err := NewMongoRepositoryManager(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return m, nil
	case strings.HasPrefix(dsn, "memory://"):
		return NewInMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database DSN scheme: %q", schemeOf(dsn))
	}
}

func schemeOf(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i]
	}
	return dsn
}
