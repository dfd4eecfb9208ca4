// Command seed fills the configured database with demo data: a user,
// a handful of IPO listings, watchlist entries, and one recorded
// investment. Usernames get a random suffix so the command can be run
// repeatedly against the same database.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"

	"github.com/dkhamitov/ipotracker/internal/config"
	"github.com/dkhamitov/ipotracker/internal/logging"
	"github.com/dkhamitov/ipotracker/internal/models"
	"github.com/dkhamitov/ipotracker/internal/repositories/repomanager"
	"github.com/dkhamitov/ipotracker/internal/services"
)

func strptr(s string) *string { return &s }

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

	us := services.NewUserService(db, rm)
	is := services.NewIPOService(db, rm)
	ws := services.NewWatchlistService(db, rm)
	vs := services.NewInvestmentService(db, rm)

	suffix := uuid.NewString()[:8]
	username := fmt.Sprintf("demo_%s", suffix)
	email := fmt.Sprintf("demo_%s@example.com", suffix)

	userID, err := us.Register(ctx, username, email, "demo-password", strptr("Demo"), nil)
	if err != nil {
		log.Error(ctx, "error creating demo user", "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "demo user created", "user_id", userID, "username", username)

	listings := []models.IPO{
		{
			Name:          "Acme Robotics",
			Symbol:        "ACME",
			CompanyName:   strptr("Acme Robotics Inc."),
			OfferingPrice: decimal.NullDecimal{Decimal: decimal.RequireFromString("21.50"), Valid: true},
			IPODate:       timeptr(time.Now().AddDate(0, 1, 0)),
		},
		{
			Name:          "Globex",
			Symbol:        "GLBX",
			CompanyName:   strptr("Globex Corp."),
			OfferingPrice: decimal.NullDecimal{Decimal: decimal.RequireFromString("30.00"), Valid: true},
			IPODate:       timeptr(time.Now().AddDate(0, 2, 0)),
			Status:        "priced",
		},
		{
			Name:    "Initech",
			Symbol:  "INTC",
			IPODate: timeptr(time.Now().AddDate(0, 0, -30)),
			Status:  "listed",
		},
	}

	ipoIDs := make([]int64, 0, len(listings))
	for i := range listings {
		id, err := is.Store(ctx, &listings[i])
		if err != nil {
			log.Error(ctx, "error storing ipo", "symbol", listings[i].Symbol, "error", err)
			os.Exit(1)
		}
		ipoIDs = append(ipoIDs, id)
	}
	log.Info(ctx, "demo ipos stored", "count", len(ipoIDs))

	for _, ipoID := range ipoIDs[:2] {
		if _, err := ws.Add(ctx, userID, ipoID, nil); err != nil {
			log.Error(ctx, "error adding watchlist entry", "error", err)
			os.Exit(1)
		}
	}

	invID, err := vs.Add(ctx, userID, ipoIDs[2], 100, decimal.RequireFromString("18.25"), nil, "")
	if err != nil {
		log.Error(ctx, "error adding investment", "error", err)
		os.Exit(1)
	}
	if err := vs.UpdateStatus(ctx, invID, userID, "sold", timeptr(time.Now())); err != nil {
		log.Error(ctx, "error updating investment", "error", err)
		os.Exit(1)
	}

	watch, err := ws.ListByUser(ctx, userID)
	if err != nil {
		log.Error(ctx, "error listing watchlist", "error", err)
		os.Exit(1)
	}
	held, err := vs.ListByUser(ctx, userID)
	if err != nil {
		log.Error(ctx, "error listing investments", "error", err)
		os.Exit(1)
	}

	log.Info(ctx, "seed complete", "watchlist", len(watch), "investments", len(held))
}

func timeptr(t time.Time) *time.Time { return &t }
