// Command migrate applies the embedded schema migrations to the
// configured PostgreSQL database. Safe to re-run: the migration SQL
// creates tables only when absent.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dkhamitov/ipotracker/internal/config"
	"github.com/dkhamitov/ipotracker/internal/logging"
	"github.com/dkhamitov/ipotracker/internal/repositories/repomanager"
)

func main() {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Error(ctx, "error opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Error(ctx, "migration error", "error", err)
		os.Exit(1)
	}

	log.Info(ctx, "migrations applied", "database", cfg.Name)
}
