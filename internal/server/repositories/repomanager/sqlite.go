package repomanager

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userregistry/internal/dbx"
	"github.com/dmitrijs2005/userregistry/internal/filex"
	"github.com/dmitrijs2005/userregistry/internal/server/migrations"
	"github.com/dmitrijs2005/userregistry/internal/server/repositories/users"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. The pool is
// limited to one connection; SQLite serialises writers anyway.
type SQLiteRepositoryManager struct {
	sqlManager
}

// NewSQLiteRepositoryManager opens the database file at path, creating its
// directory if needed. ":memory:" and "file:" URIs are passed through as is.
func NewSQLiteRepositoryManager(path string) (*SQLiteRepositoryManager, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		p, err := filex.EnsureParentDir(path)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		path = p
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	return &SQLiteRepositoryManager{sqlManager{
		db:            db,
		dialect:       "sqlite3",
		migrationsDir: migrations.SQLiteDir,
		newUsers:      func(db dbx.DBTX) users.Repository { return users.NewSQLiteRepository(db) },
	}}, nil
}
