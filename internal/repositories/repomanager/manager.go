package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkhamitov/ipotracker/internal/dbx"
	"github.com/dkhamitov/ipotracker/internal/repositories/investments"
	"github.com/dkhamitov/ipotracker/internal/repositories/ipos"
	"github.com/dkhamitov/ipotracker/internal/repositories/users"
	"github.com/dkhamitov/ipotracker/internal/repositories/watchlist"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	IPOs(db dbx.DBTX) ipos.Repository
	Watchlist(db dbx.DBTX) watchlist.Repository
	Investments(db dbx.DBTX) investments.Repository
}
