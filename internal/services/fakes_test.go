package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dkhamitov/ipotracker/internal/dbx"
	"github.com/dkhamitov/ipotracker/internal/models"
	investmentsrepo "github.com/dkhamitov/ipotracker/internal/repositories/investments"
	iposrepo "github.com/dkhamitov/ipotracker/internal/repositories/ipos"
	usersrepo "github.com/dkhamitov/ipotracker/internal/repositories/users"
	watchlistrepo "github.com/dkhamitov/ipotracker/internal/repositories/watchlist"
)

// Canned-response fakes for the repository interfaces. Each fake records
// the arguments of its last call so tests can assert on what the service
// passed down.

type fakeUsersRepo struct {
	created   *models.User
	createID  int64
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (int64, error) {
	f.created = u
	if f.createErr != nil {
		return 0, f.createErr
	}
	u.ID = f.createID
	return f.createID, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeIPOsRepo struct {
	created   *models.IPO
	createID  int64
	createErr error

	getOut *models.IPO
	getErr error
}

func (f *fakeIPOsRepo) Create(ctx context.Context, ipo *models.IPO) (int64, error) {
	f.created = ipo
	if f.createErr != nil {
		return 0, f.createErr
	}
	ipo.ID = f.createID
	return f.createID, nil
}

func (f *fakeIPOsRepo) Get(ctx context.Context, ipoID int64) (*models.IPO, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeWatchlistRepo struct {
	added  *models.WatchlistEntry
	addID  int64
	addErr error

	removedID     int64
	removedUserID int64
	removeErr     error

	listOut []*models.WatchlistItem
	listErr error
}

func (f *fakeWatchlistRepo) Add(ctx context.Context, entry *models.WatchlistEntry) (int64, error) {
	f.added = entry
	if f.addErr != nil {
		return 0, f.addErr
	}
	entry.ID = f.addID
	return f.addID, nil
}

func (f *fakeWatchlistRepo) Remove(ctx context.Context, watchlistID, userID int64) error {
	f.removedID, f.removedUserID = watchlistID, userID
	return f.removeErr
}

func (f *fakeWatchlistRepo) ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeInvestmentsRepo struct {
	added     *models.Investment
	addedSold *time.Time
	addID     int64
	addErr    error

	updatedID     int64
	updatedUserID int64
	updatedStatus string
	updatedSold   *time.Time
	updateErr     error

	listOut []*models.InvestmentRecord
	listErr error
}

func (f *fakeInvestmentsRepo) Add(ctx context.Context, inv *models.Investment, soldDate *time.Time) (int64, error) {
	f.added, f.addedSold = inv, soldDate
	if f.addErr != nil {
		return 0, f.addErr
	}
	inv.ID = f.addID
	return f.addID, nil
}

func (f *fakeInvestmentsRepo) UpdateStatus(ctx context.Context, investmentID, userID int64, status string, soldDate *time.Time) error {
	f.updatedID, f.updatedUserID, f.updatedStatus, f.updatedSold = investmentID, userID, status, soldDate
	return f.updateErr
}

func (f *fakeInvestmentsRepo) ListByUser(ctx context.Context, userID int64) ([]*models.InvestmentRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u   *fakeUsersRepo
	i   *fakeIPOsRepo
	w   *fakeWatchlistRepo
	inv *fakeInvestmentsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) IPOs(db dbx.DBTX) iposrepo.Repository        { return m.i }
func (m *fakeRepoManager) Watchlist(db dbx.DBTX) watchlistrepo.Repository {
	return m.w
}
func (m *fakeRepoManager) Investments(db dbx.DBTX) investmentsrepo.Repository {
	return m.inv
}
