package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userregistry/internal/dbx"
	"github.com/dmitrijs2005/userregistry/internal/server/migrations"
	"github.com/dmitrijs2005/userregistry/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlManager is shared by the Postgres and SQLite managers.
type sqlManager struct {
	db            *sql.DB
	dialect       string
	migrationsDir string
	newUsers      func(dbx.DBTX) users.Repository
}

func (m *sqlManager) Users() users.Repository {
	return m.newUsers(m.db)
}

func (m *sqlManager) WithinTx(ctx context.Context, fn UnitOfWork) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, m.newUsers(tx))
	})
}

// RunMigrations applies the embedded goose migrations for the dialect.
func (m *sqlManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, m.migrationsDir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

func (m *sqlManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *sqlManager) Close(context.Context) error {
	return m.db.Close()
}
