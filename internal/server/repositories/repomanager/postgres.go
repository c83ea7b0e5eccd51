package repomanager

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userregistry/internal/dbx"
	"github.com/dmitrijs2005/userregistry/internal/server/migrations"
	"github.com/dmitrijs2005/userregistry/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct {
	sqlManager
}

// NewPostgresRepositoryManager opens a pgx connection pool. No connection is
// made until first use; call Ping to verify reachability.
func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return newPostgresRepositoryManager(db), nil
}

func newPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{sqlManager{
		db:            db,
		dialect:       "pgx",
		migrationsDir: migrations.PostgresDir,
		newUsers:      func(db dbx.DBTX) users.Repository { return users.NewPostgresRepository(db) },
	}}
}
