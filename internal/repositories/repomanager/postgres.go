// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dkhamitov/ipotracker/internal/dbx"
	"github.com/dkhamitov/ipotracker/internal/migrations"
	"github.com/dkhamitov/ipotracker/internal/repositories/investments"
	"github.com/dkhamitov/ipotracker/internal/repositories/ipos"
	"github.com/dkhamitov/ipotracker/internal/repositories/users"
	"github.com/dkhamitov/ipotracker/internal/repositories/watchlist"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes the schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// IPOs returns an ipos.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) IPOs(db dbx.DBTX) ipos.Repository {
	return ipos.NewPostgresRepository(db)
}

// Watchlist returns a watchlist.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Watchlist(db dbx.DBTX) watchlist.Repository {
	return watchlist.NewPostgresRepository(db)
}

// Investments returns an investments.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Investments(db dbx.DBTX) investments.Repository {
	return investments.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection. The migration SQL uses
// IF NOT EXISTS throughout, so re-running against an already-initialized
// database is a no-op.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed
// RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
